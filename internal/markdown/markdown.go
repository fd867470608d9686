// Package markdown renders Markdown source to the HTML consumed by the
// storage converter.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Renderer converts Markdown to XHTML-compatible HTML using goldmark with
// tables and strikethrough enabled. Raw HTML, including the page id
// comment, is passed through untouched.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer. It is safe for concurrent use.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
			),
			goldmark.WithRendererOptions(
				html.WithXHTML(),
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts src to HTML.
func (r *Renderer) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// ToHTML renders src with a default Renderer.
func ToHTML(src string) (string, error) {
	return New().Render([]byte(src))
}

// Title returns the plain text of the first top-level h1 in src, or "" if
// there is none.
func (r *Renderer) Title(src []byte) string {
	doc := r.md.Parser().Parse(text.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			return strings.TrimSpace(inlineText(h, src))
		}
	}
	return ""
}

func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.RawHTML:
		default:
			buf.WriteString(inlineText(c, src))
		}
	}
	return buf.String()
}
