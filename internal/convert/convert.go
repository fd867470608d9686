// Package convert turns Markdown pages into Confluence storage documents.
package convert

import (
	"fmt"

	"github.com/dgallion1/md2conf/internal/markdown"
	"github.com/dgallion1/md2conf/internal/storage"
)

// Result is a converted page together with the references found in it.
type Result struct {
	PageID string   `json:"page_id" yaml:"page_id"`
	Title  string   `json:"title,omitempty" yaml:"title,omitempty"`
	XHTML  string   `json:"xhtml" yaml:"-"`
	Links  []string `json:"links" yaml:"links"`
	Images []string `json:"images" yaml:"images"`
}

// Converter runs Markdown through the HTML renderer and the storage
// converter. It holds no per-page state and may be shared.
type Converter struct {
	renderer *markdown.Renderer
}

func New() *Converter {
	return &Converter{renderer: markdown.New()}
}

// Convert renders src and assembles its storage document.
func (c *Converter) Convert(src []byte) (*Result, error) {
	html, err := c.Render(src)
	if err != nil {
		return nil, err
	}
	res, err := Assemble(html)
	if err != nil {
		return nil, err
	}
	res.Title = c.Title(src)
	return res, nil
}

// Title returns the text of the page's first h1.
func (c *Converter) Title(src []byte) string {
	return c.renderer.Title(src)
}

// Render runs the Markdown step only.
func (c *Converter) Render(src []byte) (string, error) {
	html, err := c.renderer.Render(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return html, nil
}

// Assemble builds the storage document for already rendered HTML.
func Assemble(html string) (*Result, error) {
	doc, err := storage.NewDocument(html)
	if err != nil {
		return nil, fmt.Errorf("assemble document: %w", err)
	}
	return &Result{
		PageID: doc.ID,
		XHTML:  doc.XHTML(),
		Links:  doc.Links,
		Images: doc.Images,
	}, nil
}

// Markdown converts src with a fresh Converter.
func Markdown(src []byte) (*Result, error) {
	return New().Convert(src)
}
