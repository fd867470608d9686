package storage

import "github.com/beevik/etree"

// Transformer rewrites a single child element during a Visit. Returning a
// non-nil element replaces the child; returning nil leaves it in place and
// lets the walk descend into it.
type Transformer interface {
	Transform(child *etree.Element) (*etree.Element, error)
}

// NopTransformer never rewrites anything.
type NopTransformer struct{}

func (NopTransformer) Transform(*etree.Element) (*etree.Element, error) {
	return nil, nil
}

// Visit walks the child elements of node depth-first, in index order.
// A replacement produced by t takes the child's slot and is not visited:
// replacements are already in their final form.
func Visit(t Transformer, node *etree.Element) error {
	for i := 0; i < len(node.Child); i++ {
		child, ok := node.Child[i].(*etree.Element)
		if !ok {
			continue
		}
		target, err := t.Transform(child)
		if err != nil {
			return err
		}
		if target != nil {
			replaceChildAt(node, i, target)
			continue
		}
		if err := Visit(t, child); err != nil {
			return err
		}
	}
	return nil
}

func replaceChildAt(parent *etree.Element, i int, target *etree.Element) {
	parent.RemoveChildAt(i)
	parent.InsertChildAt(i, target)
}
