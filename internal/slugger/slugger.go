// Package slugger derives URL slugs for notes from their titles.
package slugger

import (
	"strings"

	"github.com/gosimple/slug"
)

// MaxLength 与 Note.Slug 列的长度保持一致
const MaxLength = 100

// Make slugifies a title: lowercase, transliterated, hyphen-separated,
// truncated to MaxLength.
func Make(title string) string {
	s := slug.Make(title)
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	return s
}

// Derive returns the explicit slug when given, otherwise one derived
// from the title.
func Derive(explicit, title string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return Make(title)
}
