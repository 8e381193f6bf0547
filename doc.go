/*
Package jtag parses text containing nested tags.

Tags

A tag is written between angle brackets. It carries a name and, separated by
the first colon, an optional content:

	<name>
	<name:content>
	<outer:text <inner:more text> and more>

Tags may nest to arbitrary depth. Nested tags are extracted from the content
of their parent and become its children; the parent's content keeps the
remaining text only. Nested spans which do not form a valid tag stay in the
content verbatim.

A backslash escapes the next character. `\<` and `\>` denote literal brackets,
`\\` denotes a literal backslash. Escapes are resolved in names, contents and
in all text between tags. A backslash in front of any other character is kept
as is.

Tolerance

Parsing never fails on malformed input. Stray brackets, unterminated tags,
blank names and blank contents simply degrade to literal text. The only
errors are illegal arguments, e.g. a start offset outside of the input.

	res := jtag.First("Hello <b:World>!")
	tag, _ := res.Tag()
	fmt.Println(res.Skipped(), tag.Name(), tag.Content(), res.Remaining())
	// Output: Hello  b World !

Package jtag works on byte offsets into UTF-8 text. All delimiters are ASCII,
therefore scanning never splits a multi-byte character.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package jtag

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'jtag'
func tracer() tracing.Trace {
	return tracing.Select("jtag")
}

// TagError is an error type for the jtag module
type TagError string

func (e TagError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a start offset is negative or
// greater than the length of the input.
const ErrIndexOutOfBounds = TagError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TagError("illegal arguments")

// ErrBlankName is flagged when constructing a tag with an empty or all-whitespace name.
const ErrBlankName = TagError("tag name is blank")

// ErrIllegalName is flagged when constructing a tag with a name which cannot be
// written as markup, i.e. a name containing a colon.
const ErrIllegalName = TagError("tag name contains a colon")
