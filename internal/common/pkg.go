package common

import (
	"path/filepath"
	"strings"
	"unicode"
)

// DirPackageName derives a Go package name from the last element of dir.
// Characters that are not valid in an identifier become underscores.
// Returns empty string if dir is empty.
func DirPackageName(dir string) string {
	if dir == "" {
		return ""
	}

	base := strings.ToLower(filepath.Base(filepath.Clean(dir)))

	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}

		return '_'
	}, base)

	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}

	return name
}
