package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/jtag"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MarkupFromHTML converts an HTML fragment into tag markup. The HTML fragment
// should reflect the content of a paragraph-like element.
//
// Every element becomes a tag named after the element, holding the markup of
// the element's descendents as content:
//
//	<p>My <b>first</b> paragraph.</p>   ⟹   <p:My <b:first> paragraph.>
//
// Text is escaped. Attributes, comments and doctype declarations are dropped.
// Elements without textual content become bare tags. Colons in element names
// are replaced by '-'.
func MarkupFromHTML(input io.Reader) (string, error) {
	if input == nil {
		return "", jtag.ErrIllegalArguments
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return "", fmt.Errorf("render: cannot parse HTML fragment: %w", err)
	}
	var b strings.Builder
	for _, n := range nodes {
		collectMarkup(n, &b)
	}
	return b.String(), nil
}

// MarkupFromHTMLNode converts an HTML node and all of its descendents into tag
// markup, as described for MarkupFromHTML.
func MarkupFromHTMLNode(n *html.Node) (string, error) {
	if n == nil {
		return "", jtag.ErrIllegalArguments
	}
	var b strings.Builder
	collectMarkup(n, &b)
	return b.String(), nil
}

func collectMarkup(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(jtag.Escape(n.Data))
	case html.ElementNode:
		if len(n.Attr) > 0 {
			tracer().Debugf("render: dropping attributes of <%s>", n.Data)
		}
		var inner strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectMarkup(c, &inner)
		}
		b.WriteByte('<')
		b.WriteString(jtag.Escape(strings.ReplaceAll(n.Data, ":", "-"))) // names must not hold a colon
		if strings.TrimSpace(inner.String()) != "" {
			b.WriteByte(':')
			b.WriteString(inner.String())
		}
		b.WriteByte('>')
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectMarkup(c, b)
		}
	}
}
