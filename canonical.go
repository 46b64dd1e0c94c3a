package verbalizer

import "golang.org/x/text/unicode/norm"

// Canonicalize returns the NFKC form of text. Compatibility characters such as
// fullwidth digits and colons fold to their ASCII forms so the matchers see them.
func Canonicalize(text string) string {
	if norm.NFKC.IsNormalString(text) {
		return text
	}
	return norm.NFKC.String(text)
}
