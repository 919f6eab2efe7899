package extract

import (
	"bytes"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhillyerd/enmime"

	"docflow/internal/domain"
)

func addressList(header mail.Header, key string) []string {
	addrs, err := header.AddressList(key)
	if err != nil {
		// Malformed address headers degrade to the raw header text.
		if raw := header.Get(key); raw != "" {
			return []string{raw}
		}
		return nil
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.String())
	}
	return out
}

// ParseEmail parses a raw .eml message into its extraction record. The plain
// text body is preferred; HTML-only messages fall back to the HTML part.
func ParseEmail(raw []byte) (domain.EmailExtraction, error) {
	envelope, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return domain.EmailExtraction{}, fmt.Errorf("failed to parse email: %w", err)
	}

	header := mail.Header{}
	for _, key := range []string{"From", "To", "Cc", "Bcc"} {
		if v := envelope.GetHeader(key); v != "" {
			header[key] = []string{v}
		}
	}

	body := envelope.Text
	if body == "" {
		body = envelope.HTML
	}

	// The MIME reader tolerates degenerate input; a message with neither
	// routing headers nor a body is not a correspondence document.
	if body == "" && envelope.GetHeader("From") == "" && envelope.GetHeader("To") == "" &&
		envelope.GetHeader("Subject") == "" {
		return domain.EmailExtraction{}, domain.ErrEmptyEmail
	}

	var references []string
	for _, ref := range strings.Fields(envelope.GetHeader("References")) {
		references = append(references, strings.Trim(ref, "<>"))
	}

	extraction := domain.EmailExtraction{
		MessageID:  strings.Trim(envelope.GetHeader("Message-Id"), "<>"),
		Date:       envelope.GetHeader("Date"),
		From:       addressList(header, "From"),
		To:         addressList(header, "To"),
		Cc:         addressList(header, "Cc"),
		Bcc:        addressList(header, "Bcc"),
		Subject:    envelope.GetHeader("Subject"),
		Body:       body,
		References: references,
	}
	for _, part := range envelope.Attachments {
		if part.FileName == "" {
			continue
		}
		extraction.Attachments = append(extraction.Attachments, domain.EmailAttachment{
			Filename: part.FileName,
			Content:  part.Content,
		})
	}
	return extraction, nil
}
