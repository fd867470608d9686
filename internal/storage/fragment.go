// Package storage converts HTML into the Confluence storage format and
// normalizes storage documents for comparison.
package storage

import (
	"encoding/xml"
	"strings"

	"github.com/beevik/etree"
)

// Namespaces bound on every parsed fragment.
const (
	NamespaceContent  = "http://atlassian.com/content"
	NamespaceResource = "http://atlassian.com/resource/identifier"
)

const wrapperTag = "root"

var wrapperOpen = `<` + wrapperTag + ` xmlns:ac="` + NamespaceContent + `" xmlns:ri="` + NamespaceResource + `">`

// ParseError reports markup that is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse storage fragment: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var readSettings = etree.ReadSettings{
	PreserveCData: true,
	Entity:        xml.HTMLEntity,
}

var writeSettings = etree.WriteSettings{
	CanonicalText:    true,
	CanonicalAttrVal: true,
}

// ParseFragment parses the concatenated items inside a synthetic root that
// binds the ac and ri prefixes. A single resulting child element is returned
// on its own; otherwise the synthetic root is returned.
func ParseFragment(items ...string) (*etree.Element, error) {
	root, err := parseWrapped(items)
	if err != nil {
		return nil, err
	}
	children := root.ChildElements()
	if len(children) == 1 {
		return children[0], nil
	}
	return root, nil
}

// parseWrapped always returns the synthetic root, detached from its document.
func parseWrapped(items []string) (*etree.Element, error) {
	var b strings.Builder
	b.WriteString(wrapperOpen)
	for _, item := range items {
		b.WriteString(item)
	}
	b.WriteString("</" + wrapperTag + ">")

	doc := etree.NewDocument()
	doc.ReadSettings = readSettings
	if err := doc.ReadFromString(b.String()); err != nil {
		return nil, &ParseError{Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Err: etree.ErrXML}
	}
	doc.RemoveChild(root)
	stripBlankText(root)
	return root, nil
}

// stripBlankText drops whitespace-only text from elements whose content is
// made of elements only. Mixed content and CDATA are left alone.
func stripBlankText(e *etree.Element) {
	if hasElementChild(e) && !hasSignificantText(e) {
		for i := len(e.Child) - 1; i >= 0; i-- {
			if cd, ok := e.Child[i].(*etree.CharData); ok && !cd.IsCData() {
				e.RemoveChildAt(i)
			}
		}
	}
	for _, c := range e.ChildElements() {
		stripBlankText(c)
	}
}

func hasElementChild(e *etree.Element) bool {
	for _, t := range e.Child {
		if _, ok := t.(*etree.Element); ok {
			return true
		}
	}
	return false
}

func hasSignificantText(e *etree.Element) bool {
	for _, t := range e.Child {
		if cd, ok := t.(*etree.CharData); ok && (cd.IsCData() || !cd.IsWhitespace()) {
			return true
		}
	}
	return false
}

// Serialize renders e as markup. The synthetic parse root never appears in
// the output; only its children are written.
func Serialize(e *etree.Element) string {
	var b strings.Builder
	if isWrapper(e) {
		for _, t := range e.Child {
			t.WriteTo(&b, &writeSettings)
		}
		return b.String()
	}
	e.WriteTo(&b, &writeSettings)
	return b.String()
}

func isWrapper(e *etree.Element) bool {
	return e.Parent() == nil &&
		e.Space == "" &&
		e.Tag == wrapperTag &&
		e.SelectAttrValue("xmlns:ac", "") == NamespaceContent
}

// attr looks up an unprefixed attribute, reporting whether it was present.
func attr(e *etree.Element, key string) (string, bool) {
	for _, a := range e.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// textContent concatenates all character data below e in document order.
func textContent(e *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(n *etree.Element) {
		for _, t := range n.Child {
			switch t := t.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(e)
	return b.String()
}
