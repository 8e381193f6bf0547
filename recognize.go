package jtag

import (
	"strings"
)

// --- Tag recognition -------------------------------------------------------

// recognize tries to build a tag from the bracket pair s[open]…s[end].
// base is the offset of s within the input the parse started on; it is used
// for tag positions only.
//
// A bracket pair forms a tag if it holds a non-blank name, optionally followed
// by a colon and non-blank content. The first colon separates name and content,
// therefore names never contain a colon. If depth is exhausted, nested brackets
// in the content are not expanded and stay literal text.
func recognize(s string, open, end, depth, base int) (Tag, bool) {
	inner := s[open+1 : end]
	t := Tag{
		raw: s[open : end+1],
		pos: base + open,
	}
	colon := strings.IndexByte(inner, ':')
	if colon < 0 {
		name := strings.TrimSpace(inner)
		if name == "" {
			tracer().Debugf("jtag: blank tag at %d", t.pos)
			return Tag{}, false
		}
		t.name = Unescape(name)
		return t, true
	}
	name := strings.TrimSpace(inner[:colon])
	content := inner[colon+1:]
	if name == "" || isBlank(content) {
		tracer().Debugf("jtag: tag at %d has blank name or content", t.pos)
		return Tag{}, false
	}
	t.name = Unescape(name)
	if depth <= 0 {
		t.content = Unescape(content)
		return t, true
	}
	t.content, t.children = extract(content, depth-1, base+open+colon+2)
	return t, true
}

// extract splits content into nested tags and the remaining text. Nested spans
// which are not valid tags are kept in the text verbatim. The text is unescaped
// as a whole after all nested spans have been removed.
func extract(content string, depth, base int) (string, []Tag) {
	var b strings.Builder
	var children []Tag
	i := 0
	for i < len(content) {
		open, end := span(content, i)
		if open < 0 || end < 0 {
			break
		}
		b.WriteString(content[i:open])
		if child, ok := recognize(content, open, end, depth, base); ok {
			children = append(children, child)
		} else {
			b.WriteString(content[open : end+1])
		}
		i = end + 1
	}
	b.WriteString(content[i:])
	return Unescape(b.String()), children
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
