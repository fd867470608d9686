package storage

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

var (
	ErrMissingPageID   = errors.New("no confluence-page-id comment found")
	ErrDuplicatePageID = errors.New("more than one confluence-page-id comment found")
)

var pageIDComment = regexp.MustCompile(`^\s*confluence-page-id:\s*(\d+)\s*$`)

var infoBanner = []string{
	`<ac:structured-macro ac:name="info" ac:schema-version="1">`,
	`<ac:rich-text-body><p>This page has been generated with a tool.</p></ac:rich-text-body>`,
	`</ac:structured-macro>`,
}

// Document is an HTML page converted to the storage format.
type Document struct {
	ID     string
	Root   *etree.Element
	Links  []string
	Images []string
}

// NewDocument converts html, which must carry exactly one
// <!-- confluence-page-id: NNN --> comment. The comment is removed and an
// info banner is placed ahead of the content.
func NewDocument(src string) (*Document, error) {
	id, err := findPageID(src)
	if err != nil {
		return nil, err
	}

	items := make([]string, 0, len(infoBanner)+2)
	items = append(items, infoBanner...)
	items = append(items, src[:id.start], src[id.end:])

	root, err := ParseFragment(items...)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", id.value, err)
	}

	conv := NewConverter()
	if err := Visit(conv, root); err != nil {
		return nil, fmt.Errorf("page %s: %w", id.value, err)
	}

	return &Document{
		ID:     id.value,
		Root:   root,
		Links:  conv.Links,
		Images: conv.Images,
	}, nil
}

// XHTML renders the document in the storage format.
func (d *Document) XHTML() string {
	return Serialize(d.Root)
}

type pageID struct {
	value      string
	start, end int
}

// findPageID scans the HTML comments of src for the page identifier and
// returns its byte span.
func findPageID(src string) (pageID, error) {
	z := html.NewTokenizer(strings.NewReader(src))
	var (
		found  []pageID
		offset int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return pageID{}, fmt.Errorf("scan html: %w", err)
			}
			break
		}
		n := len(z.Raw())
		if tt == html.CommentToken {
			if m := pageIDComment.FindStringSubmatch(string(z.Text())); m != nil {
				found = append(found, pageID{value: m[1], start: offset, end: offset + n})
			}
		}
		offset += n
	}

	switch len(found) {
	case 0:
		return pageID{}, ErrMissingPageID
	case 1:
		return found[0], nil
	default:
		return pageID{}, fmt.Errorf("%w: %d matches", ErrDuplicatePageID, len(found))
	}
}
