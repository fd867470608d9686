package storage

import (
	"regexp"
	"slices"
)

// NoLanguage is the code macro language used when none is recognized.
const NoLanguage = "none"

// languages lists the syntax-highlighting names the code macro accepts.
var languages = map[string]struct{}{
	"actionscript3": {},
	"bash":          {},
	"csharp":        {},
	"coldfusion":    {},
	"cpp":           {},
	"css":           {},
	"delphi":        {},
	"diff":          {},
	"erlang":        {},
	"groovy":        {},
	"html":          {},
	"java":          {},
	"javafx":        {},
	"javascript":    {},
	"json":          {},
	"perl":          {},
	"php":           {},
	"powershell":    {},
	"python":        {},
	"ruby":          {},
	"scala":         {},
	"sql":           {},
	"vb":            {},
	"xml":           {},
}

var languageClass = regexp.MustCompile(`^language-(.*)$`)

// ResolveLanguage maps the class attribute of a code element to a code macro
// language. Missing, malformed or unknown classes resolve to NoLanguage.
func ResolveLanguage(class string) string {
	m := languageClass.FindStringSubmatch(class)
	if m == nil {
		return NoLanguage
	}
	if !IsLanguage(m[1]) {
		return NoLanguage
	}
	return m[1]
}

// IsLanguage reports whether name is a recognized code macro language.
func IsLanguage(name string) bool {
	_, ok := languages[name]
	return ok
}

// Languages returns the recognized language names in sorted order.
func Languages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
