package filter

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"github.com/mikey/phish-detector/internal/core"
)

// maxMultipartDepth bounds recursion into nested multipart bodies
const maxMultipartDepth = 5

var headerDecoder = new(mime.WordDecoder)

// parseMessage reads an RFC 5322 message and returns it as an Email whose
// body holds every text/plain and text/html part, in message order
func parseMessage(r io.Reader, source string) (*core.Email, error) {
	msg, err := mail.ReadMessage(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email %s: %w", source, err)
	}

	body, err := extractText(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read email body %s: %w", source, err)
	}

	email := &core.Email{
		Source:  source,
		From:    decodeHeader(msg.Header.Get("From")),
		Subject: decodeHeader(msg.Header.Get("Subject")),
		Body:    body,
		Headers: make(map[string][]string, len(msg.Header)),
	}
	for k, v := range msg.Header {
		email.Headers[k] = v
	}

	return email, nil
}

// decodeHeader decodes RFC 2047 encoded words, keeping the raw value on error
func decodeHeader(value string) string {
	decoded, err := headerDecoder.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}

// extractText returns the readable text of one entity. Single part bodies
// without a usable Content-Type are returned whole.
func extractText(contentType, transferEncoding string, body io.Reader, depth int) (string, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		raw, err := io.ReadAll(decodeTransfer(transferEncoding, body))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	boundary, ok := params["boundary"]
	if !ok || depth >= maxMultipartDepth {
		raw, err := io.ReadAll(body)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	var text bytes.Buffer
	mr := multipart.NewReader(body, boundary)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep what was readable before the broken boundary.
			if text.Len() > 0 {
				return text.String(), nil
			}
			return "", err
		}

		partType := part.Header.Get("Content-Type")
		if partType == "" {
			partType = "text/plain"
		}
		partMedia, _, _ := mime.ParseMediaType(partType)

		switch {
		case strings.HasPrefix(partMedia, "multipart/"):
			nested, err := extractText(partType, part.Header.Get("Content-Transfer-Encoding"), part, depth+1)
			if err != nil {
				continue
			}
			appendPart(&text, nested)
		case partMedia == "text/plain" || partMedia == "text/html":
			// multipart.Reader already undoes quoted-printable and strips the header.
			raw, err := io.ReadAll(decodeTransfer(part.Header.Get("Content-Transfer-Encoding"), part))
			if err != nil {
				continue
			}
			appendPart(&text, string(raw))
		}
		// Attachments and other media are skipped.
	}

	return text.String(), nil
}

func appendPart(buf *bytes.Buffer, s string) {
	if s == "" {
		return
	}
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString(s)
}

// decodeTransfer undoes base64 and quoted-printable transfer encodings
func decodeTransfer(encoding string, r io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}
