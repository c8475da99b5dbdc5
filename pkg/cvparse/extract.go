package cvparse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hirewire/pinpoint-mcp/pkg/logging"
)

// ParseFailureText is returned instead of an error when the PDF itself cannot
// be parsed. A malformed or image-only document is a content problem the
// caller can reason about; a failed download is operational and surfaces as
// an error.
const ParseFailureText = "Error extracting text from PDF"

const maxPDFBytes = 32 << 20

// Extractor downloads PDFs and recovers their plain text.
type Extractor struct {
	httpClient *http.Client
	logger     *logging.Logger
}

func New(httpClient *http.Client, logger *logging.Logger) *Extractor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Extractor{httpClient: httpClient, logger: logger}
}

// FromURL fetches the PDF at rawURL and returns the concatenation of every
// recoverable text fragment, separated by single spaces.
func (e *Extractor) FromURL(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("cvparse: invalid URL %q: must be absolute http(s)", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("cvparse: build request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cvparse: failed to download PDF: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("cvparse: failed to download PDF: unexpected status %s", resp.Status)
	}

	buf, err := io.ReadAll(io.LimitReader(resp.Body, maxPDFBytes))
	if err != nil {
		return "", fmt.Errorf("cvparse: failed to download PDF: %w", err)
	}

	text, err := extractText(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("PDF parse failed", "url", rawURL, "err", err)
		}
		return ParseFailureText, nil
	}

	return text, nil
}

// extractText walks every page and joins the recoverable text fragments.
// Pages that cannot be read (image-only, damaged) are skipped.
func extractText(ra io.ReaderAt, size int64) (text string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cvparse: parser panic: %v", r)
		}
	}()

	rdr, err := pdf.NewReader(ra, size)
	if err != nil {
		return "", err
	}

	var parts []string
	for i := 1; i <= rdr.NumPage(); i++ {
		pg := rdr.Page(i)
		if pg.V.IsNull() {
			continue
		}

		txt, err := pg.GetPlainText(nil)
		if err != nil {
			continue
		}
		if s := strings.TrimSpace(txt); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, " "), nil
}
