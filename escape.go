package jtag

import "strings"

// Unescape resolves the escape sequences `\<`, `\>` and `\\` in a single pass
// from left to right. A backslash in front of any other character, as well as
// a trailing lone backslash, is kept literally.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '<', '>', '\\':
				b.WriteByte(s[i+1])
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Escape is the inverse of Unescape: it prefixes every `<`, `>` and `\` with a
// backslash, so that the result parses back to s as literal text.
func Escape(s string) string {
	if strings.IndexAny(s, `<>\`) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '<', '>', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
