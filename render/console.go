package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/jtag"
)

// Dump outputs a forest of tags as an indented tree, one tag per line.
// Tag names are colored by nesting level, contents are quoted and shortened
// to fit config.LineWidth.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties.
func Dump(w io.Writer, tags []jtag.Tag, config *Config) error {
	if w == nil {
		return jtag.ErrIllegalArguments
	}
	config = normalized(config)
	d := dumper{w: w, config: config}
	for _, t := range tags {
		d.tag(t, 0)
	}
	return d.err
}

// DumpAll outputs a parse-all result. Tags are dumped as by Dump, literal text
// spans are output as quoted lines on the top level.
func DumpAll(w io.Writer, res *jtag.AllResult, config *Config) error {
	if w == nil || res == nil {
		return jtag.ErrIllegalArguments
	}
	config = normalized(config)
	d := dumper{w: w, config: config}
	for _, item := range res.Range() {
		switch it := item.(type) {
		case jtag.Tag:
			d.tag(it, 0)
		case jtag.Text:
			d.line(0, fmt.Sprintf("%q", Shorten(string(it), config.LineWidth-2, config.Context)))
		}
	}
	return d.err
}

// Print dumps a forest of tags to stdout, using a config derived from the terminal.
func Print(tags []jtag.Tag) error {
	return Dump(os.Stdout, tags, nil)
}

type dumper struct {
	w      io.Writer
	config *Config
	err    error
}

func (d *dumper) tag(t jtag.Tag, level int) {
	if t.IsVoid() {
		tracer().Errorf("render: void tag in dump")
		return
	}
	name := d.config.color(level).Sprint(t.Name())
	indent := level * d.config.Indent
	if t.Content() == "" {
		d.line(indent, name)
	} else {
		room := d.config.LineWidth - indent - Width(t.Name(), d.config.Context) - 3
		content := Shorten(t.Content(), room, d.config.Context)
		d.line(indent, name+" \""+content+"\"")
	}
	for ch := range t.RangeChildren() {
		d.tag(ch, level+1)
	}
}

func (d *dumper) line(indent int, s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, strings.Repeat(" ", indent)+s+"\n")
}

// --- Styled output ---------------------------------------------------------

// WriteStyled outputs the text of a parse-all result, with the tags removed.
// Text owned by a tag is colored according to the tag's nesting level;
// literal text outside of tags is output plain.
func WriteStyled(w io.Writer, res *jtag.AllResult, config *Config) error {
	if w == nil || res == nil {
		return jtag.ErrIllegalArguments
	}
	config = normalized(config)
	for _, run := range Runs(res) {
		var err error
		if run.Level() == 0 {
			_, err = io.WriteString(w, run.Text)
		} else {
			_, err = config.color(run.Level() - 1).Fprint(w, run.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
