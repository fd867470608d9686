package storage

import (
	"errors"
	"testing"
)

func TestParseFragment_SingleChildUnwrapped(t *testing.T) {
	e, err := ParseFragment("<p>hello</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Tag != "p" {
		t.Fatalf("expected unwrapped <p>, got <%s>", e.FullTag())
	}
	if got := Serialize(e); got != "<p>hello</p>" {
		t.Errorf("expected %q, got %q", "<p>hello</p>", got)
	}
}

func TestParseFragment_MultipleChildrenKeepRoot(t *testing.T) {
	e, err := ParseFragment("<p>a</p>", "<p>b</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Tag != wrapperTag {
		t.Fatalf("expected synthetic root, got <%s>", e.FullTag())
	}
	if got := Serialize(e); got != "<p>a</p><p>b</p>" {
		t.Errorf("expected root tag stripped from output, got %q", got)
	}
}

func TestParseFragment_NamespacedMarkup(t *testing.T) {
	e, err := ParseFragment(`<ac:image ac:align="center"><ri:attachment ri:filename="x.png" /></ac:image>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Space != "ac" || e.Tag != "image" {
		t.Fatalf("expected ac:image, got %s", e.FullTag())
	}
	want := `<ac:image ac:align="center"><ri:attachment ri:filename="x.png"/></ac:image>`
	if got := Serialize(e); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseFragment_MalformedMarkup(t *testing.T) {
	_, err := ParseFragment("<p>unclosed")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Unwrap() == nil {
		t.Error("expected wrapped syntax diagnostic")
	}
}

func TestParseFragment_StripsBlankTextBetweenTags(t *testing.T) {
	e, err := ParseFragment("\n<ul>\n  <li>one</li>\n  <li>two</li>\n</ul>\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<ul><li>one</li><li>two</li></ul>"
	if got := Serialize(e); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseFragment_KeepsMixedContentWhitespace(t *testing.T) {
	e, err := ParseFragment("<p>Hello <strong>bold</strong> <em>world</em></p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<p>Hello <strong>bold</strong> <em>world</em></p>"
	if got := Serialize(e); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseFragment_PreservesCData(t *testing.T) {
	in := "<ac:plain-text-body><![CDATA[if a < b {\n    return  &x\n}]]></ac:plain-text-body>"
	e, err := ParseFragment(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Serialize(e); got != in {
		t.Errorf("expected CDATA preserved\nwant %q\ngot  %q", in, got)
	}
}

func TestParseFragment_HTMLEntities(t *testing.T) {
	e, err := ParseFragment("<p>&copy; 2024 &amp; &lt;tag&gt;</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<p>© 2024 &amp; &lt;tag&gt;</p>"
	if got := Serialize(e); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseFragment_Empty(t *testing.T) {
	e, err := ParseFragment("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Serialize(e); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
