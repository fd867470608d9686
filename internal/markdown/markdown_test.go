package markdown

import (
	"strings"
	"testing"
)

func TestRender_PassesPageIDComment(t *testing.T) {
	out, err := ToHTML("<!-- confluence-page-id: 123 -->\n\n# Title\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<!-- confluence-page-id: 123 -->") {
		t.Errorf("expected comment passed through, got %q", out)
	}
	if !strings.Contains(out, "<h1>Title</h1>") {
		t.Errorf("expected heading, got %q", out)
	}
}

func TestRender_FencedCode(t *testing.T) {
	out, err := ToHTML("```python\nx = 1\n```\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<pre><code class=\"language-python\">x = 1\n</code></pre>"
	if !strings.Contains(out, want) {
		t.Errorf("expected %q in output, got %q", want, out)
	}
}

func TestRender_ImageIsSelfClosing(t *testing.T) {
	out, err := ToHTML("![Cap](a.png)\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<p><img src="a.png" alt="Cap" /></p>`
	if !strings.Contains(out, want) {
		t.Errorf("expected %q in output, got %q", want, out)
	}
}

func TestRender_TableAndStrikethrough(t *testing.T) {
	input := "| a | b |\n|---|---|\n| 1 | ~~2~~ |\n"
	out, err := ToHTML(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected table, got %q", out)
	}
	if !strings.Contains(out, "<del>2</del>") {
		t.Errorf("expected strikethrough, got %q", out)
	}
}

func TestRender_EmptyInput(t *testing.T) {
	out, err := New().Render(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestTitle(t *testing.T) {
	r := New()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"first h1", "<!-- confluence-page-id: 1 -->\n\n# Getting *started*\n\n# Second\n", "Getting started"},
		{"setext", "Release `v2` notes\n===\n", "Release v2 notes"},
		{"skips h2", "## Sub\n\n# Main\n", "Main"},
		{"nested h1 ignored", "> # Quoted\n", ""},
		{"none", "plain text\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Title([]byte(tt.src)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
