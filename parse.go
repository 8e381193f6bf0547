package jtag

import (
	"math"
	"strings"
)

// Unlimited is the depth budget which expands nested tags to any depth.
const Unlimited = math.MaxInt

// ParseOne searches input for the first tag at or after byte offset from.
// Nested tags are expanded up to maxDepth levels; with maxDepth 0 the content
// of the tag found is kept as literal text.
//
// The text in front of the tag is reported as skipped text. Bracket pairs
// which do not form a valid tag are part of the skipped text, and the search
// continues after them. If a '<' is never closed, the search stops and all of
// the text from offset from on is skipped text.
//
// The only error condition is an offset from outside of [0, len(input)].
func ParseOne(input string, from, maxDepth int) (Result, error) {
	if from < 0 || from > len(input) {
		return Result{next: len(input)}, ErrIndexOutOfBounds
	}
	return withRemaining(input, parseOne(input, from, maxDepth)), nil
}

// withRemaining fills in the unescaped remaining text of r.
func withRemaining(input string, r Result) Result {
	if r.HasTag() {
		r.remaining = Unescape(input[r.next:])
	}
	return r
}

// parseOne does not fill in Result.remaining, see withRemaining.
func parseOne(input string, from, maxDepth int) Result {
	text := input[from:]
	i := 0
	if escapedAt(input, from) {
		i = 1 // the character at from belongs to an escape sequence in front of from
	}
	for {
		open, end := span(text, i)
		if open < 0 {
			break
		}
		if end < 0 {
			tracer().Debugf("jtag: unterminated tag at %d", from+open)
			break
		}
		if tag, ok := recognize(text, open, end, maxDepth, from); ok {
			return Result{
				skipped: Unescape(text[:open]),
				tag:     tag,
				next:    from + end + 1,
			}
		}
		i = end + 1
	}
	return Result{
		skipped: Unescape(text),
		next:    len(input),
	}
}

// ParseAll decomposes input, starting at byte offset from, into an ordered
// sequence of literal text spans and tags. Text spans have their escapes
// resolved and are never empty; adjacent items never are both text.
// Parsing stops as soon as the text after a tag is blank, so trailing
// whitespace is not part of the result.
//
// The only error condition is an offset from outside of [0, len(input)].
func ParseAll(input string, from, maxDepth int) (*AllResult, error) {
	if from < 0 || from > len(input) {
		return &AllResult{}, ErrIndexOutOfBounds
	}
	return parseAll(input, from, maxDepth), nil
}

func parseAll(input string, from, maxDepth int) *AllResult {
	res := &AllResult{}
	for pos := from; pos < len(input); {
		r := parseOne(input, pos, maxDepth)
		res.addText(r.skipped)
		if !r.HasTag() {
			break
		}
		res.addTag(r.tag)
		if r.next <= pos {
			tracer().Errorf("jtag: parser did not advance at %d", pos)
			break
		}
		pos = r.next
		if strings.TrimSpace(input[pos:]) == "" {
			break
		}
	}
	return res
}

// ParseTags collects the top-level tags of input, starting at byte offset from.
// Literal text between the tags is dropped. Scanning stops at the first
// unterminated tag.
//
// The only error condition is an offset from outside of [0, len(input)].
func ParseTags(input string, from, maxDepth int) ([]Tag, error) {
	if from < 0 || from > len(input) {
		return []Tag{}, ErrIndexOutOfBounds
	}
	return parseAll(input, from, maxDepth).Tags(), nil
}

// --- Defaults --------------------------------------------------------------

// First finds the first tag in input, expanding nested tags to any depth.
// It is a shortcut for ParseOne(input, 0, Unlimited).
func First(input string) Result {
	return withRemaining(input, parseOne(input, 0, Unlimited))
}

// All decomposes input into text spans and tags, expanding nested tags to
// any depth. It is a shortcut for ParseAll(input, 0, Unlimited).
func All(input string) *AllResult {
	return parseAll(input, 0, Unlimited)
}

// Tags collects the top-level tags of input, expanding nested tags to any
// depth. It is a shortcut for ParseTags(input, 0, Unlimited).
func Tags(input string) []Tag {
	return parseAll(input, 0, Unlimited).Tags()
}
