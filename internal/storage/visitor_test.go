package storage

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
)

// wrapTransformer replaces every <x> with <wrapped><x/></wrapped>.
type wrapTransformer struct {
	seen []string
}

func (w *wrapTransformer) Transform(child *etree.Element) (*etree.Element, error) {
	w.seen = append(w.seen, child.FullTag())
	if child.Tag != "x" {
		return nil, nil
	}
	out := etree.NewElement("wrapped")
	out.CreateElement("x")
	return out, nil
}

func TestVisit_ReplacementIsNotRevisited(t *testing.T) {
	root, err := ParseFragment("<div><x/><p><x/></p></div>", "<x/>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := &wrapTransformer{}
	if err := Visit(w, root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<div><wrapped><x/></wrapped><p><wrapped><x/></wrapped></p></div><wrapped><x/></wrapped>"
	if got := Serialize(root); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// div, x, p, x, x: the <x/> inside each replacement is never offered.
	if len(w.seen) != 5 {
		t.Errorf("expected 5 transform calls, got %d: %v", len(w.seen), w.seen)
	}
}

func TestVisit_PreservesSiblingOrder(t *testing.T) {
	root, err := ParseFragment("<a/>", "<x/>", "<b/>", "text", "<x/>", "<c/>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Visit(&wrapTransformer{}, root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<a/><wrapped><x/></wrapped><b/>text<wrapped><x/></wrapped><c/>"
	if got := Serialize(root); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestVisit_NopTransformerLeavesTreeUnchanged(t *testing.T) {
	in := `<div class="a"><p>one<br/>two</p><ul><li>x</li></ul></div><p>tail</p>`
	root, err := ParseFragment(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Visit(NopTransformer{}, root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Serialize(root); got != in {
		t.Errorf("expected %q, got %q", in, got)
	}
}

type failingTransformer struct{ err error }

func (f failingTransformer) Transform(child *etree.Element) (*etree.Element, error) {
	if child.Tag == "bad" {
		return nil, f.err
	}
	return nil, nil
}

func TestVisit_PropagatesTransformError(t *testing.T) {
	root, err := ParseFragment("<div><p><bad/></p></div>", "<p/>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sentinel := errors.New("boom")
	if err := Visit(failingTransformer{err: sentinel}, root); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestVisit_LeafIsNoop(t *testing.T) {
	leaf := etree.NewElement("p")
	if err := Visit(&wrapTransformer{}, leaf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
