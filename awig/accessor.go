package awig

import (
	"fmt"

	"github.com/ezrec/awig/doc"
)

const (
	ARG_ID    = "id"    // Hardware id argument of the dispatch functions.
	ARG_ADDR  = "addr"  // Memory address argument.
	ARG_SEL   = "sel"   // Word selector argument.
	ARG_VALUE = "value" // Word written.
	VAR_DATA  = "data"  // Word aligned accessor buffer.
)

func (e element) decls(write bool) (decls []doc.Doc) {
	args := e.Kind.args()
	if write {
		args = append(args, ARG_VALUE)
	}

	for _, arg := range args {
		decls = append(decls, input(arg))
	}
	decls = append(decls, variable(VAR_DATA, RoundWidth(e.Width)))

	return
}

// load checks the selector, then copies the element into the cleared
// buffer.
func (e element) load() []doc.Doc {
	return []doc.Doc{
		assertLess(ARG_SEL, MaxSel(e.Width)),
		assign(slice(VAR_DATA, "0", RoundWidth(e.Width)), doc.Text("0")),
		assign(slice(VAR_DATA, "0", e.Width), doc.Text(e.target())),
	}
}

// word is the selected word of the buffer.
func (e element) word() doc.Doc {
	return slice(VAR_DATA, fmt.Sprintf("%v*%d", ARG_SEL, WORD_WIDTH), WORD_WIDTH)
}

func (e element) readDoc() doc.Doc {
	body := append(e.load(), ret(e.word()))
	return function("int", ReadName(e.Path), e.decls(false), body)
}

func (e element) writeDoc() doc.Doc {
	body := append(e.load(),
		assign(e.word(), doc.Text(ARG_VALUE)),
		assign(doc.Text(e.target()), slice(VAR_DATA, "0", e.Width)),
	)
	return function("void", WriteName(e.Path), e.decls(true), body)
}

// accessors returns the read and write functions of e.
func (e element) accessors() doc.Doc {
	return doc.Concat(e.readDoc(), doc.Hardline(), e.writeDoc())
}
