package doc

import (
	"io"
	"strings"
	"unicode/utf8"
)

type mode int

const (
	MODE_BREAK = mode(0) // Line breaks start new lines.
	MODE_FLAT  = mode(1) // Line breaks are replaced by their flat text.
)

type command struct {
	indent int
	mode   mode
	doc    Doc
}

type printer struct {
	out     strings.Builder
	width   int
	column  int
	pending int // Indentation owed before the next text, or -1.
}

// Render lays out d against width and writes it to w.
func Render(w io.Writer, width int, d Doc) (err error) {
	p := &printer{width: width, pending: -1}
	p.layout(d)

	_, err = io.WriteString(w, p.out.String())
	return
}

// Pretty lays out d against width and returns the text.
func Pretty(width int, d Doc) string {
	p := &printer{width: width, pending: -1}
	p.layout(d)
	return p.out.String()
}

func (p *printer) text(s string) {
	if len(s) == 0 {
		return
	}

	if p.pending >= 0 {
		p.out.WriteString(strings.Repeat(" ", p.pending))
		p.column = p.pending
		p.pending = -1
	}

	p.out.WriteString(s)
	p.column += utf8.RuneCountInString(s)
}

func (p *printer) newline(indent int) {
	p.out.WriteByte('\n')
	p.column = 0
	p.pending = indent
}

// remaining is the width left on the current line.
func (p *printer) remaining() int {
	column := p.column
	if p.pending >= 0 {
		column = p.pending
	}
	return p.width - column
}

func (p *printer) layout(d Doc) {
	stack := []command{{indent: 0, mode: MODE_BREAK, doc: d}}

	for len(stack) > 0 {
		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch d := cmd.doc.(type) {
		case text:
			p.text(string(d))
		case line:
			if cmd.mode == MODE_FLAT && !d.hard {
				p.text(d.flat)
			} else {
				p.newline(cmd.indent)
			}
		case concat:
			for n := len(d) - 1; n >= 0; n-- {
				stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: d[n]})
			}
		case nest:
			stack = append(stack, command{indent: cmd.indent + d.indent, mode: cmd.mode, doc: d.doc})
		case group:
			grouped := MODE_BREAK
			if cmd.mode == MODE_FLAT || fits(p.remaining(), d.doc, stack) {
				grouped = MODE_FLAT
			}
			stack = append(stack, command{indent: cmd.indent, mode: grouped, doc: d.doc})
		}
	}
}

// fits reports whether d laid out flat, followed by rest up to its next
// line break, fits in width columns.
func fits(width int, d Doc, rest []command) bool {
	stack := []command{{mode: MODE_FLAT, doc: d}}
	flat := true

	for width >= 0 {
		if len(stack) == 0 {
			if len(rest) == 0 {
				break
			}
			stack = append(stack, rest[len(rest)-1])
			rest = rest[:len(rest)-1]
			flat = false
			continue
		}

		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch d := cmd.doc.(type) {
		case text:
			width -= utf8.RuneCountInString(string(d))
		case line:
			if d.hard && flat {
				return false
			}
			if d.hard || cmd.mode == MODE_BREAK {
				return true
			}
			width -= utf8.RuneCountInString(d.flat)
		case concat:
			for n := len(d) - 1; n >= 0; n-- {
				stack = append(stack, command{mode: cmd.mode, doc: d[n]})
			}
		case nest:
			stack = append(stack, command{mode: cmd.mode, doc: d.doc})
		case group:
			stack = append(stack, command{mode: cmd.mode, doc: d.doc})
		}
	}

	return width >= 0
}
