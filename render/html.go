package render

import (
	"io"

	"github.com/npillmayer/jtag"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSS classes used for HTML output.
const (
	ClassResult = "jtag"
	ClassTag    = "jtag-tag"
	AttrTagName = "data-tag"
)

// HTMLNode creates an HTML node tree for a parse-all result.
//
// The result is a
//
//	<div class="jtag"> … </div>
//
// element. Literal text becomes text nodes, every tag becomes a
//
//	<span class="jtag-tag" data-tag="name"> … </span>
//
// element holding the tag's content followed by the elements of its children.
func HTMLNode(res *jtag.AllResult) (*html.Node, error) {
	if res == nil {
		return nil, jtag.ErrIllegalArguments
	}
	root := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "class", Val: ClassResult}},
	}
	for _, item := range res.Range() {
		switch it := item.(type) {
		case jtag.Text:
			root.AppendChild(textNode(string(it)))
		case jtag.Tag:
			root.AppendChild(tagNode(it))
		}
	}
	return root, nil
}

func tagNode(t jtag.Tag) *html.Node {
	tracer().Debugf("render HTML: <%s>", t.Name())
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr: []html.Attribute{
			{Key: "class", Val: ClassTag},
			{Key: AttrTagName, Val: t.Name()},
		},
	}
	if t.Content() != "" {
		n.AppendChild(textNode(t.Content()))
	}
	for ch := range t.RangeChildren() {
		n.AppendChild(tagNode(ch))
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// WriteHTML renders a parse-all result as an HTML fragment to w.
// See HTMLNode for the structure of the output.
func WriteHTML(w io.Writer, res *jtag.AllResult) error {
	n, err := HTMLNode(res)
	if err != nil {
		return err
	}
	return html.Render(w, n)
}
