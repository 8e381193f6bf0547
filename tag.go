package jtag

import (
	"iter"
	"strings"
)

// Tag is a parsed unit of markup, consisting of a name, a content and an ordered
// list of child tags.
//
// Tags are immutable values. The zero value
//
//	Tag{}
//
// is the void tag; it never results from parsing and is used to signal
// the absence of a tag.
type Tag struct {
	name     string
	content  string
	children []Tag
	raw      string
	pos      int
}

// Span is a byte-range descriptor inside a parsed input.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos int
	Len int
}

// End returns the byte offset right after the span.
func (s Span) End() int {
	return s.Pos + s.Len
}

// NewTag creates a tag from its parts. The name is trimmed of surrounding
// whitespace and must neither be blank nor contain a colon. A tag without
// children must not have blank content other than the empty string, as its
// markup would not form a tag.
//
// Tags created by NewTag have no source position; their raw form is the
// canonical markup as produced by Markup.
func NewTag(name, content string, children ...Tag) (Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tag{}, ErrBlankName
	}
	if strings.IndexByte(name, ':') >= 0 {
		return Tag{}, ErrIllegalName
	}
	for _, ch := range children {
		if ch.IsVoid() {
			return Tag{}, ErrIllegalArguments
		}
	}
	if len(children) == 0 && content != "" && isBlank(content) {
		return Tag{}, ErrIllegalArguments
	}
	t := Tag{
		name:    name,
		content: content,
	}
	if len(children) > 0 {
		t.children = make([]Tag, len(children))
		copy(t.children, children)
	}
	t.raw = t.Markup()
	return t, nil
}

// IsVoid reports whether t is the void tag.
func (t Tag) IsVoid() bool {
	return t.name == ""
}

// Name returns the tag's name. It is never blank for non-void tags.
func (t Tag) Name() string {
	return t.name
}

// Content returns the text directly owned by the tag, with nested child tags
// removed and escape sequences resolved.
func (t Tag) Content() string {
	return t.content
}

// ChildCount returns the number of direct children.
func (t Tag) ChildCount() int {
	return len(t.children)
}

// Child returns the i-th child of t. It panics if i is out of range, as does
// indexing a slice.
func (t Tag) Child(i int) Tag {
	return t.children[i]
}

// Children returns a copy of the list of direct children, in order of appearance.
func (t Tag) Children() []Tag {
	if len(t.children) == 0 {
		return []Tag{}
	}
	c := make([]Tag, len(t.children))
	copy(c, t.children)
	return c
}

// RangeChildren returns an iterator over the direct children in order of appearance.
func (t Tag) RangeChildren() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for _, ch := range t.children {
			if !yield(ch) {
				return
			}
		}
	}
}

// Raw returns the exact source text of the tag, including its brackets and
// the raw text of nested children.
func (t Tag) Raw() string {
	return t.raw
}

// Span returns the position of the tag's raw text within the input it has
// been parsed from. For tags created with NewTag, Pos is 0.
func (t Tag) Span() Span {
	return Span{Pos: t.pos, Len: len(t.raw)}
}

// Equals compares two tags structurally: names, contents and children
// (recursively) must be equal. Raw text and positions are not considered.
func (t Tag) Equals(other Tag) bool {
	if t.name != other.name || t.content != other.content {
		return false
	}
	if len(t.children) != len(other.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equals(other.children[i]) {
			return false
		}
	}
	return true
}

// Markup returns the canonical markup of t: name and content are escaped, and
// children follow the content. Parsing the result yields a tag equal to t.
//
// The markup of a tag differs from its raw text whenever children were
// interleaved with content in the source.
func (t Tag) Markup() string {
	if t.IsVoid() {
		return ""
	}
	var b strings.Builder
	t.writeMarkup(&b)
	return b.String()
}

func (t Tag) writeMarkup(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(Escape(t.name))
	if t.content != "" || len(t.children) > 0 {
		b.WriteByte(':')
		b.WriteString(Escape(t.content))
		for _, ch := range t.children {
			ch.writeMarkup(b)
		}
	}
	b.WriteByte('>')
}

// String returns a debug representation of the form
//
//	Tag{name="a", content="b", children=[…]}
func (t Tag) String() string {
	var b strings.Builder
	t.writeString(&b)
	return b.String()
}

func (t Tag) writeString(b *strings.Builder) {
	b.WriteString(`Tag{name="`)
	b.WriteString(t.name)
	b.WriteString(`", content="`)
	b.WriteString(t.content)
	b.WriteString(`", children=[`)
	for i, ch := range t.children {
		if i > 0 {
			b.WriteString(", ")
		}
		ch.writeString(b)
	}
	b.WriteString("]}")
}

// item makes Tag a variant of Item.
func (Tag) item() {}
