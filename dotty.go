package jtag

import (
	"fmt"
	"io"
	"strings"
)

// TagsToDot outputs a forest of tags in Graphviz DOT format
// (for debugging purposes).
//
// Every tag becomes a node labelled with its name, position and the start
// of its content; edges connect parents to children.
func TagsToDot(tags []Tag, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	id := 0
	var walk func(t Tag, depth int) int
	walk = func(t Tag, depth int) int {
		id++
		ID := id
		label := fmt.Sprintf("%s @%d\\n“%s”", dotEscape(t.name), t.pos, dotEscape(strstart(t.content)))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(depth, t.ChildCount() == 0))
		for _, ch := range t.children {
			chID := walk(ch, depth+1)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, chID)
		}
		return ID
	}
	for _, t := range tags {
		if t.IsVoid() {
			tracer().Errorf("tag DOT: void tag in forest")
			continue
		}
		walk(t, 0)
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func strstart(s string) string {
	if len(s) <= 10 {
		return s
	}
	r := []rune(s)
	if len(r) <= 10 {
		return s
	}
	return string(r[:10]) + "…"
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

func nodeDotStyles(depth int, isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=ellipse"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
