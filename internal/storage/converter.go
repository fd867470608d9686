package storage

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/beevik/etree"
)

// ErrMissingAttribute is returned when an element lacks an attribute its
// conversion depends on.
var ErrMissingAttribute = errors.New("missing required attribute")

// Converter rewrites plain HTML into the Confluence storage format. It
// records relative link targets and image paths in the order they are met.
type Converter struct {
	Links  []string
	Images []string
}

// NewConverter returns a Converter with empty link and image lists.
func NewConverter() *Converter {
	return &Converter{
		Links:  []string{},
		Images: []string{},
	}
}

type rule struct {
	name  string
	match func(e *etree.Element) bool
	apply func(c *Converter, e *etree.Element) (*etree.Element, error)
}

// rules are tried in order; the first match decides the outcome.
var rules = []rule{
	{
		// <p><img src="..." alt="..." /></p>
		name:  "image-paragraph",
		match: func(e *etree.Element) bool { return hasOnlyChild(e, "p", "img") },
		apply: func(c *Converter, e *etree.Element) (*etree.Element, error) {
			return c.transformImage(e.ChildElements()[0])
		},
	},
	{
		name:  "image",
		match: func(e *etree.Element) bool { return isHTML(e, "img") },
		apply: (*Converter).transformImage,
	},
	{
		name:  "link",
		match: func(e *etree.Element) bool { return isHTML(e, "a") },
		apply: (*Converter).transformLink,
	},
	{
		// <pre><code class="language-java">...</code></pre>
		name:  "code-block",
		match: func(e *etree.Element) bool { return hasOnlyChild(e, "pre", "code") },
		apply: func(c *Converter, e *etree.Element) (*etree.Element, error) {
			return c.transformBlock(e.ChildElements()[0])
		},
	},
}

// Transform implements Transformer.
func (c *Converter) Transform(child *etree.Element) (*etree.Element, error) {
	for _, r := range rules {
		if !r.match(child) {
			continue
		}
		target, err := r.apply(c, child)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.name, err)
		}
		return target, nil
	}
	return nil, nil
}

func (c *Converter) transformImage(img *etree.Element) (*etree.Element, error) {
	path, ok := attr(img, "src")
	if !ok {
		return nil, fmt.Errorf("%w: src on <img>", ErrMissingAttribute)
	}
	caption, _ := attr(img, "alt")
	c.Images = append(c.Images, path)
	return imageMacro(path, caption), nil
}

// transformLink records local targets; the anchor itself is kept.
func (c *Converter) transformLink(anchor *etree.Element) (*etree.Element, error) {
	href, ok := attr(anchor, "href")
	if !ok {
		return nil, nil
	}
	if !IsAbsoluteURL(href) {
		c.Links = append(c.Links, href)
	}
	return nil, nil
}

func (c *Converter) transformBlock(code *etree.Element) (*etree.Element, error) {
	class, _ := attr(code, "class")
	return codeMacro(ResolveLanguage(class), textContent(code)), nil
}

// IsAbsoluteURL reports whether u names a network location. URLs that fail
// to parse are not absolute.
func IsAbsoluteURL(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	return parsed.Host != "" || parsed.User != nil
}

func imageMacro(path, caption string) *etree.Element {
	m := etree.NewElement("ac:image")
	m.CreateAttr("ac:align", "center")
	m.CreateAttr("ac:layout", "center")
	m.CreateElement("ri:attachment").CreateAttr("ri:filename", path)
	p := m.CreateElement("ac:caption").CreateElement("p")
	if caption != "" {
		p.CreateText(caption)
	}
	return m
}

func codeMacro(language, body string) *etree.Element {
	m := etree.NewElement("ac:structured-macro")
	m.CreateAttr("ac:name", "code")
	m.CreateAttr("ac:schema-version", "1")
	parameter(m, "theme", "Midnight")
	parameter(m, "language", language)
	parameter(m, "linenumbers", "true")
	text := m.CreateElement("ac:plain-text-body")
	for _, section := range cdataSections(body) {
		text.CreateCData(section)
	}
	return m
}

func parameter(macro *etree.Element, name, value string) {
	p := macro.CreateElement("ac:parameter")
	p.CreateAttr("ac:name", name)
	p.CreateText(value)
}

// cdataSections splits s so that no section contains the CDATA terminator.
// Written back to back, the sections reproduce s exactly.
func cdataSections(s string) []string {
	parts := strings.Split(s, "]]>")
	if len(parts) == 1 {
		return parts
	}
	sections := make([]string, len(parts))
	for i, p := range parts {
		if i > 0 {
			p = ">" + p
		}
		if i < len(parts)-1 {
			p += "]]"
		}
		sections[i] = p
	}
	return sections
}

func isHTML(e *etree.Element, tag string) bool {
	return e.Space == "" && e.Tag == tag
}

// hasOnlyChild reports whether e is a <parent> whose sole content is a
// single <child> element, ignoring surrounding whitespace.
func hasOnlyChild(e *etree.Element, parent, child string) bool {
	if !isHTML(e, parent) || hasSignificantText(e) {
		return false
	}
	children := e.ChildElements()
	return len(children) == 1 && isHTML(children[0], child)
}
