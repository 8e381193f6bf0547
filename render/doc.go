/*
Package render presents parsed tags to humans and to other markup languages.

Package jtag parses text into tags; it does not care what a tag means. This
package offers a few general-purpose consumers of parse results:

▪︎ Dump a tag tree to a console, with colored tag names and content
shortened to the width of the terminal

▪︎ Write text with tags as styled runs, coloring tagged text by nesting level

▪︎ Render a parse result as an HTML fragment and, vice versa, convert an HTML
fragment into tag markup

Console output measures text in display cells, not bytes or runes. It relies
on UAX#29 (graphemes) and UAX#11 (character width) to do so.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'jtag.render'
func tracer() tracing.Trace {
	return tracing.Select("jtag.render")
}
