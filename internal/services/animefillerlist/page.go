package animefillerlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const episodesClass = "Episodes"

// Page is a parsed show page.
type Page struct {
	Show string
	URL  string
	doc  *goquery.Document
}

// ParsePage parses page HTML that was obtained elsewhere.
func ParsePage(show string, r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("animefillerlist: parse page: %w", err)
	}
	return &Page{Show: show, doc: doc}, nil
}

// Field returns the episode list text of the first div carrying the category
// class, with whitespace runs collapsed to single spaces. A trailing ","
// keeps its following space so the list still reads as "a, b, ". The class
// is matched literally so labels such as "mixed_canon/filler" work without
// selector escaping.
func (p *Page) Field(category string) (string, bool) {
	if p == nil || p.doc == nil {
		return "", false
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return "", false
	}
	container := p.doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(category)
	}).First()
	if container.Length() == 0 {
		return "", false
	}
	span := container.Find("span." + episodesClass).First()
	if span.Length() == 0 {
		return "", false
	}
	text := strings.Join(strings.Fields(span.Text()), " ")
	if strings.HasSuffix(text, ",") {
		text += " "
	}
	return text, true
}

// Title returns the page heading, falling back to the show slug.
func (p *Page) Title() string {
	if p == nil || p.doc == nil {
		return ""
	}
	if title := strings.TrimSpace(p.doc.Find("h1").First().Text()); title != "" {
		return title
	}
	return p.Show
}
