package convert

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/dgallion1/md2conf/internal/storage"
)

const page = `<!-- confluence-page-id: 65536 -->

# Release notes

See the [install guide](install.md) and the [homepage](https://example.com).

![Overview diagram](img/overview.png)

` + "```bash\nmake build\n```" + `

| Column | Value |
|--------|-------|
| a      | ~~b~~ |
`

func TestConvert_Page(t *testing.T) {
	res, err := New().Convert([]byte(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PageID != "65536" {
		t.Errorf("expected page id %q, got %q", "65536", res.PageID)
	}
	if res.Title != "Release notes" {
		t.Errorf("expected title %q, got %q", "Release notes", res.Title)
	}
	if !slices.Equal(res.Links, []string{"install.md"}) {
		t.Errorf("expected links [install.md], got %v", res.Links)
	}
	if !slices.Equal(res.Images, []string{"img/overview.png"}) {
		t.Errorf("expected images [img/overview.png], got %v", res.Images)
	}

	for _, want := range []string{
		`<ac:structured-macro ac:name="info" ac:schema-version="1">`,
		`<h1>Release notes</h1>`,
		`<ri:attachment ri:filename="img/overview.png"/><ac:caption><p>Overview diagram</p></ac:caption>`,
		`<ac:parameter ac:name="language">bash</ac:parameter>`,
		"<![CDATA[make build\n]]>",
		`<del>b</del>`,
	} {
		if !strings.Contains(res.XHTML, want) {
			t.Errorf("expected xhtml to contain %q, got %q", want, res.XHTML)
		}
	}
	if strings.Contains(res.XHTML, "<img") || strings.Contains(res.XHTML, "<pre>") {
		t.Errorf("expected images and code blocks rewritten, got %q", res.XHTML)
	}
}

func TestConvert_MissingPageID(t *testing.T) {
	_, err := New().Convert([]byte("# No id here\n"))
	if !errors.Is(err, storage.ErrMissingPageID) {
		t.Fatalf("expected ErrMissingPageID, got %v", err)
	}
}

func TestConvert_RawHTMLMustBeWellFormed(t *testing.T) {
	_, err := New().Convert([]byte("<!-- confluence-page-id: 1 -->\n\n<div>\n\nunclosed\n"))
	var perr *storage.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *storage.ParseError, got %v", err)
	}
}

func TestMarkdown_MatchesConverter(t *testing.T) {
	a, err := Markdown([]byte(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := New().Convert([]byte(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.XHTML != b.XHTML {
		t.Errorf("expected identical output, got %q and %q", a.XHTML, b.XHTML)
	}
}

func TestAssemble_DuplicatePageID(t *testing.T) {
	_, err := Assemble("<!-- confluence-page-id: 1 --><p>x</p><!-- confluence-page-id: 2 -->")
	if !errors.Is(err, storage.ErrDuplicatePageID) {
		t.Fatalf("expected ErrDuplicatePageID, got %v", err)
	}
}
