package storage

// Sanitize removes volatile attributes from a storage-format document,
// top-level elements included, and returns the canonical markup.
func Sanitize(markup string) (string, error) {
	root, err := parseWrapped([]string{markup})
	if err != nil {
		return "", err
	}
	if err := Visit(Cleaner{}, root); err != nil {
		return "", err
	}
	return Serialize(root), nil
}

// Equivalent reports whether two storage-format documents are the same once
// volatile attributes are ignored.
func Equivalent(a, b string) (bool, error) {
	sa, err := Sanitize(a)
	if err != nil {
		return false, err
	}
	sb, err := Sanitize(b)
	if err != nil {
		return false, err
	}
	return sa == sb, nil
}
