package render

import (
	"iter"
	"strings"

	"github.com/npillmayer/jtag"
)

// Run is a piece of text together with the names of the tags enclosing it,
// outermost first. Text outside of any tag has an empty path.
type Run struct {
	Text string
	Path []string
}

// Level returns the nesting level of a run, i.e. the length of its path.
func (r Run) Level() int {
	return len(r.Path)
}

// Innermost returns the name of the innermost enclosing tag, or "".
func (r Run) Innermost() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[len(r.Path)-1]
}

func (r Run) String() string {
	return "[" + strings.Join(r.Path, "/") + "]" + r.Text
}

// Runs flattens a parse-all result into runs of text. A tag contributes its
// content first, followed by the runs of its children; tags without content
// contribute no run of their own.
func Runs(res *jtag.AllResult) []Run {
	var runs []Run
	for run := range RangeRuns(res) {
		runs = append(runs, run)
	}
	return runs
}

// RangeRuns returns an iterator over the runs of a parse-all result, in the
// order defined by Runs.
func RangeRuns(res *jtag.AllResult) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		for _, item := range res.Range() {
			switch it := item.(type) {
			case jtag.Text:
				if !yield(Run{Text: string(it)}) {
					return
				}
			case jtag.Tag:
				if !tagRuns(it, nil, yield) {
					return
				}
			}
		}
	}
}

func tagRuns(t jtag.Tag, path []string, yield func(Run) bool) bool {
	p := make([]string, len(path), len(path)+1)
	copy(p, path)
	p = append(p, t.Name())
	if t.Content() != "" {
		if !yield(Run{Text: t.Content(), Path: p}) {
			return false
		}
	}
	for ch := range t.RangeChildren() {
		if !tagRuns(ch, p, yield) {
			return false
		}
	}
	return true
}
