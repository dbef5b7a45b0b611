package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Elements that render as blocks; their boundaries become newlines so the
// extracted text keeps the document's line structure.
var blockSelectors = "p, div, li, br, h1, h2, h3, h4, h5, h6, tr, section, article, header, footer"

// ExtractHTMLText reduces an HTML document to its visible text. Script and
// style content is dropped, block boundaries become line breaks, and list
// items keep a leading bullet so they survive cleaning as bullet lines.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &InputError{Message: "failed to parse HTML: " + err.Error()}
	}

	doc.Find("script, style, noscript, head").Remove()

	// Insert newline markers at block boundaries before flattening.
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "li" {
			s.PrependHtml("\n- ")
			return
		}
		s.PrependHtml("\n")
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}
	return body.Text(), nil
}
