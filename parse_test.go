package jtag

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseNoTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	expect(t, First("No tags"), "No tags", Tag{}, "")
	expect(t, First(""), "", Tag{}, "")
}

func TestParseSimpleTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	expect(t, First("<simple>"), "", mk("simple", ""), "")
	expect(t, First("a<simple>b"), "a", mk("simple", ""), "b")
	expect(t, First("<tag:content>"), "", mk("tag", "content"), "")
	expect(t, First("<a:b<c>>"), "", mk("a", "b", mk("c", "")), "")
	expect(t, First("<a:b<c:d>>"), "", mk("a", "b", mk("c", "d")), "")
	expect(t, First("< name :content>"), "", mk("name", "content"), "")
}

func TestParseEscape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	expect(t, First(`\<Escape\>`), "<Escape>", Tag{}, "")
	expect(t, First(`<\\>`), "", mk(`\`, ""), "")
	expect(t, First(`<\\:\\>`), "", mk(`\`, `\`), "")
	expect(t, First(`\\<\\:\\>\\`), `\`, mk(`\`, `\`), `\`)
	expect(t, First(`\\\<a>`), `\<a>`, Tag{}, "")
	expect(t, First(`a\b<c:d\e>`), `a\b`, mk("c", `d\e`), "")
	expect(t, First(`trailing\`), `trailing\`, Tag{}, "")
}

func TestParseUnclosedTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	expect(t, First(`\<unclosed`), "<unclosed", Tag{}, "")
	expect(t, First("<unclosed"), "<unclosed", Tag{}, "")
	expect(t, First(`unclosed\>`), "unclosed>", Tag{}, "")
	expect(t, First("unclosed>"), "unclosed>", Tag{}, "")
	expect(t, First("<tag<unclosed>"), "<tag<unclosed>", Tag{}, "")
	expect(t, First("<tag:<unclosed>"), "<tag:<unclosed>", Tag{}, "")
	expect(t, First(`<a:b\>`), "<a:b>", Tag{}, "")
	expect(t, First(`<a:b\`), `<a:b\`, Tag{}, "")
}

func TestParseBlankTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	expect(t, First("< >"), "< >", Tag{}, "")
	expect(t, First("<  >"), "<  >", Tag{}, "")
	expect(t, First("<a: >"), "<a: >", Tag{}, "")
	expect(t, First("< :a>"), "< :a>", Tag{}, "")
	expect(t, First("< : >"), "< : >", Tag{}, "")
	expect(t, First("<a:>"), "<a:>", Tag{}, "")
	expect(t, First("<>"), "<>", Tag{}, "")
	// nested
	expect(t, First("<a:< : >>"), "", mk("a", "< : >"), "")
}

func TestParseSkipsRejectedSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	res := First("< >x<a:b>y")
	expect(t, res, "< >x", mk("a", "b"), "y")
	if res.Next() != 9 {
		t.Errorf("expected next offset to be 9, is %d", res.Next())
	}
}

func TestParseNestLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	res, err := ParseOne("<a:b<c:d>>", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, res, "", mk("a", "b<c:d>"), "")
	res, _ = ParseOne("<a:<b:c>>", 0, 0)
	expect(t, res, "", mk("a", "<b:c>"), "")
	res, _ = ParseOne("<a:<b:c>>", 0, 1)
	expect(t, res, "", mk("a", "", mk("b", "c")), "")
	res, _ = ParseOne("<a:<b:<c:d>>>", 0, 1)
	expect(t, res, "", mk("a", "", mk("b", "<c:d>")), "")
	res, _ = ParseOne(`<a:\<x\>>`, 0, 0)
	expect(t, res, "", mk("a", "<x>"), "")
	res, _ = ParseOne("<a:<b:c>>", 0, -5)
	expect(t, res, "", mk("a", "<b:c>"), "")
}

func TestParseFromIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	input := "<a:b><c:d>"
	res, err := ParseOne(input, 5, Unlimited)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, res, "", mk("c", "d"), "")
	tag, _ := res.Tag()
	if tag.Span().Pos != 5 {
		t.Errorf("expected tag to start at 5, starts at %d", tag.Span().Pos)
	}
	res, err = ParseOne(input, len(input), Unlimited)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, res, "", Tag{}, "")
	res, _ = ParseOne(`\<a:b>`, 1, Unlimited)
	expect(t, res, "<a:b>", Tag{}, "")
	res, _ = ParseOne(`\\<a:b>`, 2, Unlimited)
	expect(t, res, "", mk("a", "b"), "")
	all, _ := ParseAll(`x\<a:b><c>`, 2, Unlimited)
	if diff := cmp.Diff([]Item{Text("<a:b>"), mk("c", "")}, items(all), tagComparer); diff != "" {
		t.Errorf("parse all after escape mismatch (-want +got):\n%s", diff)
	}
	for _, from := range []int{-1, len(input) + 1} {
		if _, err = ParseOne(input, from, Unlimited); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("expected ParseOne(from=%d) to fail with index error, got %v", from, err)
		}
		if _, err = ParseAll(input, from, Unlimited); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("expected ParseAll(from=%d) to fail with index error, got %v", from, err)
		}
		if _, err = ParseTags(input, from, Unlimited); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("expected ParseTags(from=%d) to fail with index error, got %v", from, err)
		}
	}
}

func TestParseRawAndSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	input := "x<a:b<c:d>e>y"
	tag, ok := First(input).Tag()
	if !ok {
		t.Fatalf("expected to find a tag in %q", input)
	}
	if tag.Raw() != "<a:b<c:d>e>" {
		t.Errorf("unexpected raw text %q", tag.Raw())
	}
	if tag.Content() != "be" {
		t.Errorf("expected content 'be', is %q", tag.Content())
	}
	if s := tag.Span(); s.Pos != 1 || s.Len != 11 || s.End() != 12 {
		t.Errorf("unexpected span %v", s)
	}
	child := tag.Child(0)
	if child.Raw() != "<c:d>" || child.Span().Pos != 5 {
		t.Errorf("unexpected child raw %q at %d", child.Raw(), child.Span().Pos)
	}
	if input[child.Span().Pos:child.Span().End()] != child.Raw() {
		t.Errorf("child span does not address its raw text")
	}
}

// --- Parse all -------------------------------------------------------------

func TestParseAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	res := All("<a:b>c<d:e>f")
	want := []Item{mk("a", "b"), Text("c"), mk("d", "e"), Text("f")}
	if diff := cmp.Diff(want, items(res), tagComparer); diff != "" {
		t.Errorf("parse all mismatch (-want +got):\n%s", diff)
	}
	if tag, ok := res.TagAt(0); !ok || !tag.Equals(mk("a", "b")) {
		t.Errorf("expected tag a at index 0, got %v", res.At(0))
	}
	if s, ok := res.TextAt(1); !ok || s != "c" {
		t.Errorf("expected text 'c' at index 1, got %v", res.At(1))
	}
	if _, ok := res.TextAt(0); ok {
		t.Errorf("expected item 0 not to be text")
	}
	if res.At(4) != nil || res.At(-1) != nil {
		t.Errorf("expected out of range items to be nil")
	}
	if res.Excess() != "cf" {
		t.Errorf("expected excess 'cf', is %q", res.Excess())
	}
	if diff := cmp.Diff([]string{"c", "f"}, res.Texts()); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
	if len(res.Tags()) != 2 {
		t.Errorf("expected 2 tags, have %d", len(res.Tags()))
	}
}

func TestParseAllDegrades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	tests := []struct {
		input string
		want  []Item
	}{
		{"", nil},
		{"plain", []Item{Text("plain")}},
		{"x< >y", []Item{Text("x< >y")}},
		{"<a:b>  ", []Item{mk("a", "b")}},
		{"<a:b> \n<c:d>\t", []Item{mk("a", "b"), Text(" \n"), mk("c", "d")}},
		{"  ", []Item{Text("  ")}},
		{"text <unclosed <a:b>", []Item{Text("text <unclosed <a:b>")}},
		{`\<a:b\><c>`, []Item{Text("<a:b>"), mk("c", "")}},
		{"<a><b>", []Item{mk("a", ""), mk("b", "")}},
		{"<a:b><unclosed", []Item{mk("a", "b"), Text("<unclosed")}},
	}
	for _, tt := range tests {
		got := items(All(tt.input))
		if diff := cmp.Diff(tt.want, got, tagComparer); diff != "" {
			t.Errorf("All(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseAllManyTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	n := 20000
	input := strings.Repeat("<a:b>", n) + `\\`
	done := make(chan *AllResult, 1)
	go func() { done <- All(input) }()
	select {
	case res := <-done:
		if res.Len() != n+1 || res.Excess() != `\` {
			t.Errorf("expected %d tags and a backslash, have %d items, excess %q", n, res.Len(), res.Excess())
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("parsing %d tags takes too long", n)
	}
	first := First("<a:b>" + input)
	if first.Remaining() != strings.Repeat("<a:b>", n)+`\` {
		t.Errorf("unexpected remaining text after first tag")
	}
}

func TestParseAllFromIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	res, err := ParseAll("skip<a:b>c", 4, Unlimited)
	if err != nil {
		t.Fatal(err)
	}
	want := []Item{mk("a", "b"), Text("c")}
	if diff := cmp.Diff(want, items(res), tagComparer); diff != "" {
		t.Errorf("parse all mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNestedMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	tag, ok := First("<outer:<valid:ok>< ><another:tag>>").Tag()
	if !ok {
		t.Fatalf("expected outer tag")
	}
	want := mk("outer", "< >", mk("valid", "ok"), mk("another", "tag"))
	if !tag.Equals(want) {
		t.Errorf("expected %s, got %s", want, tag)
	}
	// a bare name without colon is a valid nested tag
	tag, _ = First("<outer:<valid:ok><bare><another:tag>>").Tag()
	want = mk("outer", "", mk("valid", "ok"), mk("bare", ""), mk("another", "tag"))
	if !tag.Equals(want) {
		t.Errorf("expected %s, got %s", want, tag)
	}
}

// --- Legacy array form -----------------------------------------------------

func TestParseTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jtag")
	defer teardown()
	//
	tests := []struct {
		input string
		want  []Tag
	}{
		{"<unclosed:content", []Tag{}},
		{"a<b>c<d:e>", []Tag{mk("b", ""), mk("d", "e")}},
		{"<a:b> <unclosed <c:d>", []Tag{mk("a", "b")}},
		{"< ><a:b<c:d>>", []Tag{mk("a", "b", mk("c", "d"))}},
	}
	for _, tt := range tests {
		got := Tags(tt.input)
		if diff := cmp.Diff(tt.want, got, tagComparer); diff != "" {
			t.Errorf("Tags(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
	got, err := ParseTags("<a:<b:c>>", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].Equals(mk("a", "<b:c>")) {
		t.Errorf("expected a single unexpanded tag, got %v", got)
	}
}

// --- Helpers ---------------------------------------------------------------

var tagComparer = cmp.Comparer(func(a, b Tag) bool {
	return a.Equals(b)
})

func mk(name, content string, children ...Tag) Tag {
	t, err := NewTag(name, content, children...)
	if err != nil {
		panic(err)
	}
	return t
}

func items(res *AllResult) []Item {
	var list []Item
	for _, it := range res.Range() {
		list = append(list, it)
	}
	return list
}

func expect(t *testing.T, res Result, skipped string, tag Tag, remaining string) {
	t.Helper()
	if res.Skipped() != skipped {
		t.Errorf("expected skipped text %q, is %q", skipped, res.Skipped())
	}
	got, ok := res.Tag()
	if tag.IsVoid() {
		if ok {
			t.Errorf("expected no tag, found %s", got)
		}
	} else if !ok {
		t.Errorf("expected tag %s, found none", tag)
	} else if !got.Equals(tag) {
		t.Errorf("expected tag %s, found %s", tag, got)
	}
	if res.Remaining() != remaining {
		t.Errorf("expected remaining text %q, is %q", remaining, res.Remaining())
	}
}
