package jtag

import (
	"iter"
	"strings"
)

// Result is the outcome of parsing a single tag with ParseOne.
type Result struct {
	skipped   string
	tag       Tag
	remaining string
	next      int
}

// Skipped returns the literal text in front of the tag found, with escapes
// resolved. If no tag has been found, Skipped holds all of the scanned text.
func (r Result) Skipped() string {
	return r.skipped
}

// Tag returns the tag found, if any.
func (r Result) Tag() (Tag, bool) {
	return r.tag, !r.tag.IsVoid()
}

// HasTag reports whether a tag has been found.
func (r Result) HasTag() bool {
	return !r.tag.IsVoid()
}

// Remaining returns the unconsumed text after the tag, with escapes resolved.
// It is empty if no tag has been found.
func (r Result) Remaining() string {
	return r.remaining
}

// Next returns the byte offset within the input where the remaining text
// starts. Clients may continue parsing from there; Remaining is unescaped and
// therefore not suited for re-parsing.
func (r Result) Next() int {
	return r.next
}

// --- Parse-all results -----------------------------------------------------

// Item is an element of a parse-all result: either a Text or a Tag.
type Item interface {
	item()
}

// Text is a span of literal text in a parse-all result, with escapes resolved.
type Text string

func (Text) item() {}

// AllResult is the full decomposition of an input into an ordered sequence of
// literal text spans and tags.
type AllResult struct {
	items []Item
}

func (r *AllResult) addText(s string) {
	if s != "" {
		r.items = append(r.items, Text(s))
	}
}

func (r *AllResult) addTag(t Tag) {
	r.items = append(r.items, t)
}

// Len returns the number of items.
func (r *AllResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// At returns the i-th item, or nil if i is out of range.
func (r *AllResult) At(i int) Item {
	if r == nil || i < 0 || i >= len(r.items) {
		return nil
	}
	return r.items[i]
}

// TagAt returns the i-th item if it is a tag.
func (r *AllResult) TagAt(i int) (Tag, bool) {
	t, ok := r.At(i).(Tag)
	return t, ok
}

// TextAt returns the i-th item if it is a literal text span.
func (r *AllResult) TextAt(i int) (string, bool) {
	s, ok := r.At(i).(Text)
	return string(s), ok
}

// Tags returns all tags, in order.
func (r *AllResult) Tags() []Tag {
	tags := make([]Tag, 0, r.Len())
	for _, it := range r.Range() {
		if t, ok := it.(Tag); ok {
			tags = append(tags, t)
		}
	}
	return tags
}

// Texts returns all literal text spans, in order.
func (r *AllResult) Texts() []string {
	texts := make([]string, 0, r.Len())
	for _, it := range r.Range() {
		if s, ok := it.(Text); ok {
			texts = append(texts, string(s))
		}
	}
	return texts
}

// Excess returns the concatenation of all literal text spans.
func (r *AllResult) Excess() string {
	var b strings.Builder
	for _, it := range r.Range() {
		if s, ok := it.(Text); ok {
			b.WriteString(string(s))
		}
	}
	return b.String()
}

// Range returns an iterator over all items together with their index.
func (r *AllResult) Range() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		if r == nil {
			return
		}
		for i, it := range r.items {
			if !yield(i, it) {
				return
			}
		}
	}
}
