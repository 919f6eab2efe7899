package extract

import (
	"strconv"
	"strings"

	"docflow/internal/domain"
)

func endsWithAny(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// NumberedParagraphs reassembles the numbered paragraphs of a pleading body
// from its line text. A paragraph starts at a line prefixed "{n}. " where n
// counts up from 1; skipped numbers end the sequence. Each paragraph's lines
// are joined with single spaces.
//
// The final paragraph has no successor marker, so it runs until a line ends
// in "." or "?". When the next line opens a sworn answer ("answer" prefix,
// case-insensitive) the paragraph extends through it, up to a line ending in
// ".", "?" or ":". A final paragraph with no such terminator anywhere before
// the end of the document is a format error, never an infinite scan.
func NumberedParagraphs(lines []string) ([]string, error) {
	var starts []int
	for i, n := 0, 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], strconv.Itoa(n)+". ") {
			starts = append(starts, i)
			n++
		}
	}
	if len(starts) == 0 {
		return nil, nil
	}

	var paragraphs []string
	for k := 0; k < len(starts)-1; k++ {
		paragraphs = append(paragraphs, strings.Join(lines[starts[k]:starts[k+1]], " "))
	}

	last := starts[len(starts)-1]
	end := -1
	for i := last; i < len(lines); i++ {
		if endsWithAny(lines[i], ".", "?") {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, domain.ErrUnterminatedParagraph
	}
	for end+1 < len(lines) && startsWithFold(lines[end+1], "answer") {
		extended := -1
		for i := end + 1; i < len(lines); i++ {
			if endsWithAny(lines[i], ".", "?", ":") {
				extended = i
				break
			}
		}
		if extended < 0 {
			return nil, domain.ErrUnterminatedParagraph
		}
		end = extended
	}
	paragraphs = append(paragraphs, strings.Join(lines[last:end+1], " "))
	return paragraphs, nil
}
