package extract

import (
	"strings"

	"docflow/internal/domain"
)

// PleadingQueries are the page-1 questions submitted with a pleading's
// document-analysis job. Their answers are more reliable than the
// positional header heuristics and supersede them when present.
var PleadingQueries = []domain.Query{
	{Text: "Who is the plaintiff?", Alias: "plaintiff", Pages: []string{"1"}},
	{Text: "Who are the defendants?", Alias: "defendants", Pages: []string{"1"}},
	{Text: "In which state is this filed?", Alias: "state", Pages: []string{"1"}},
	{Text: "In which county is this filed?", Alias: "county", Pages: []string{"1"}},
	{Text: "In which court is this filed?", Alias: "court", Pages: []string{"1"}},
}

func startsWithFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// takeLine removes and returns the first line matching match, or fails with
// the locator's anchor error.
func takeLine(lines []string, match func(string) bool, missing *domain.FormatError) (string, []string, error) {
	for i, line := range lines {
		if match(line) {
			return line, append(lines[:i:i], lines[i+1:]...), nil
		}
	}
	return "", lines, missing
}

// PleadingHeaderFromBlocks extracts the caption fields of a pleading's
// first page from its ordered line blocks. Every locator fails fast with a
// distinct anchor error; a failure here is local to this document's
// enrichment and never aborts sibling work.
//
// Caption layout assumed: plaintiff name, "Plaintiff," label, "vs.",
// defendant names, "Defendant." label, with the case number and division
// set off to the side and ")" divider lines in between.
func PleadingHeaderFromBlocks(blocks []domain.Block) (domain.PleadingHeader, error) {
	var header domain.PleadingHeader

	var lines []string
	for _, line := range LineTexts(blocks) {
		if line != ")" {
			lines = append(lines, line)
		}
	}

	defendantIdx := -1
	for i, line := range lines {
		if containsFold(line, "defendant") {
			defendantIdx = i
			break
		}
	}
	if defendantIdx < 0 {
		return header, domain.ErrNoDefendantLine
	}
	caption := append([]string(nil), lines[:defendantIdx]...)

	caseNumber, caption, err := takeLine(caption, func(s string) bool {
		return startsWithFold(s, "cause") || startsWithFold(s, "case")
	}, domain.ErrNoCaseNumberLine)
	if err != nil {
		return header, err
	}

	_, caption, err = takeLine(caption, func(s string) bool {
		return startsWithFold(s, "vs.") || startsWithFold(s, "v.")
	}, domain.ErrNoVsLine)
	if err != nil {
		return header, err
	}

	division, caption, err := takeLine(caption, func(s string) bool {
		return startsWithFold(s, "division")
	}, domain.ErrNoDivisionLine)
	if err != nil {
		return header, err
	}

	plaintiffIdx := -1
	for i, line := range caption {
		if startsWithFold(line, "plaintiff") {
			plaintiffIdx = i
			break
		}
	}
	if plaintiffIdx < 0 {
		return header, domain.ErrNoPlaintiffLine
	}

	// Everything after the plaintiff label is the defendants list, minus
	// "and," continuation lines. Assumes exactly one plaintiff: the name is
	// the line immediately before its label.
	var defendants []string
	for _, line := range caption[plaintiffIdx+1:] {
		if !startsWithFold(line, "and,") {
			defendants = append(defendants, line)
		}
	}
	if plaintiffIdx == 0 {
		return header, domain.ErrNoPlaintiffLine
	}

	header.Plaintiff = caption[plaintiffIdx-1]
	header.CaseNumber = caseNumber
	header.Division = division
	header.Defendants = defendants
	return header, nil
}
