// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package doc implements a document based pretty printer.
//
// A document is built from text fragments, line breaks, nesting and
// grouping, and is laid out against a target width. A group is printed on
// a single line when it, and the text after it up to the next line break,
// fits in the remaining width and it holds no hard line break; otherwise
// each of its line breaks starts a new, indented line.
// The width is a soft budget: text is never split to honour it.
package doc

import (
	"fmt"
	"slices"
)

// Doc is a document fragment.
type Doc interface {
	isDoc()
}

type text string

type line struct {
	flat string // Replacement text when laid out flat.
	hard bool   // Hard lines are never flattened.
}

type concat []Doc

type nest struct {
	indent int
	doc    Doc
}

type group struct {
	doc Doc
}

func (text) isDoc()   {}
func (line) isDoc()   {}
func (concat) isDoc() {}
func (nest) isDoc()   {}
func (group) isDoc()  {}

// Nil returns the empty document.
func Nil() Doc {
	return concat(nil)
}

// Text returns a document of literal text. The text must not contain
// line breaks.
func Text(s string) Doc {
	return text(s)
}

// Textf returns a document of formatted literal text.
func Textf(format string, args ...any) Doc {
	return text(fmt.Sprintf(format, args...))
}

// Space returns a single space.
func Space() Doc {
	return text(" ")
}

// Line returns a line break that becomes a space when flattened.
func Line() Doc {
	return line{flat: " "}
}

// SoftLine returns a line break that disappears when flattened.
func SoftLine() Doc {
	return line{}
}

// Hardline returns a line break that is never flattened.
func Hardline() Doc {
	return line{hard: true}
}

// Concat returns the documents laid out one after another.
func Concat(docs ...Doc) Doc {
	return concat(slices.Clone(docs))
}

// Intersperse returns the documents with sep between each pair.
func Intersperse(docs []Doc, sep Doc) Doc {
	out := make(concat, 0, 2*len(docs))
	for n, d := range docs {
		if n > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return out
}

// Nest indents every line break inside d by indent further columns.
func Nest(indent int, d Doc) Doc {
	return nest{indent: indent, doc: d}
}

// Group marks d as a unit to be laid out flat when it fits.
func Group(d Doc) Doc {
	return group{doc: d}
}
