package jtag

// --- Bracket scanning ------------------------------------------------------

// findOpen returns the index of the next live '<' in s at or after from, or -1.
//
// A '<' is live if it is preceded by an even run of backslashes (zero
// included). Runs are counted starting at from; callers starting in the
// middle of a text use escapedAt to check the character at from.
func findOpen(s string, from int) int {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // skip escaped character; a trailing backslash ends the loop
		case '<':
			return i
		}
	}
	return -1
}

// escapedAt reports whether the character at pos is escaped, i.e. whether it
// is preceded by an odd run of backslashes.
func escapedAt(s string, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// findClose returns the index of the '>' matching the live '<' at position
// open, or -1 if s ends before the bracket is closed.
//
// Nested live brackets increase and decrease the nesting depth, escaped
// characters are skipped as pairs.
func findClose(s string, open int) int {
	depth := 1
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// span locates the next complete bracket pair in s at or after from.
// It returns the indices of the opening and closing bracket. If no live '<'
// is found, open is -1. If the live '<' is never closed, end is -1.
func span(s string, from int) (open, end int) {
	open = findOpen(s, from)
	if open < 0 {
		return -1, -1
	}
	return open, findClose(s, open)
}
