package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"

	"golang.org/x/net/html"
)

const (
	// DefaultGoogleURL is the mobile translate page, which renders the result
	// server side.
	DefaultGoogleURL = "https://translate.google.com/m"

	maxGoogleResponse = 4 << 20
	googleUserAgent   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// resultClasses are tried in order.
var resultClasses = []string{"t0", "result-container"}

// GoogleTranslator scrapes the public Google Translate web page.
type GoogleTranslator struct {
	baseURL string
	client  *http.Client
	logger  domain.Logger
}

// NewGoogleTranslator creates a scraper against baseURL. An empty baseURL
// uses DefaultGoogleURL.
func NewGoogleTranslator(baseURL string, client *http.Client, logger domain.Logger) *GoogleTranslator {
	if baseURL == "" {
		baseURL = DefaultGoogleURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleTranslator{baseURL: baseURL, client: client, logger: logger}
}

// Name implements domain.Translator
func (g *GoogleTranslator) Name() string {
	return "google"
}

// Translate implements domain.Translator
func (g *GoogleTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	params := url.Values{}
	params.Set("sl", "auto")
	params.Set("tl", targetLanguage)
	params.Set("q", text)

	reqURL := g.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", apperrors.NewInternalError("Failed to build translation request", err)
	}
	req.Header.Set("User-Agent", googleUserAgent)

	g.logger.Debug("Calling Google Translate", "target_language", targetLanguage, "characters", len([]rune(text)))
	resp, err := g.client.Do(req)
	if err != nil {
		return "", apperrors.NewNetworkError("Translation service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", apperrors.NewUpstreamError("Translation service rate limit reached",
			fmt.Errorf("google translate returned %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NewUpstreamError("Translation service request failed",
			fmt.Errorf("google translate returned %d", resp.StatusCode))
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxGoogleResponse))
	if err != nil {
		return "", apperrors.NewUpstreamError("Could not parse translation response", err)
	}

	for _, class := range resultClasses {
		if node := findDivWithClass(doc, class); node != nil {
			return strings.TrimSpace(nodeText(node)), nil
		}
	}
	return "", apperrors.NewUpstreamError("No translation in provider response", domain.ErrEmptyTranslation)
}

func findDivWithClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findDivWithClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			if n.Data == "br" {
				sb.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
