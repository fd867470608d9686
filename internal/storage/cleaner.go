package storage

import "github.com/beevik/etree"

// Cleaner strips attributes that Confluence injects at save time so that
// two copies of a page can be compared.
type Cleaner struct{}

// Transform implements Transformer. It edits child in place and never
// replaces it.
func (Cleaner) Transform(child *etree.Element) (*etree.Element, error) {
	kept := child.Attr[:0]
	for _, a := range child.Attr {
		if !isVolatile(a) {
			kept = append(kept, a)
		}
	}
	child.Attr = kept
	return nil, nil
}

// isVolatile matches ac:macro-id and ri:version-at-save, by bound namespace
// or, when no binding is in scope, by prefix.
func isVolatile(a etree.Attr) bool {
	switch a.Key {
	case "macro-id":
		return inNamespace(a, "ac", NamespaceContent)
	case "version-at-save":
		return inNamespace(a, "ri", NamespaceResource)
	}
	return false
}

func inNamespace(a etree.Attr, prefix, uri string) bool {
	if a.Space == "" {
		return false
	}
	if ns := a.NamespaceURI(); ns != "" {
		return ns == uri
	}
	return a.Space == prefix
}
