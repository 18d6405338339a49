package awig

import (
	"fmt"

	"github.com/ezrec/awig/doc"
)

// dispatch returns the function that forwards a read, or a write, to the
// accessor of the element of kind whose id matches.
//
// A read that matches no id stops the simulation with $fatal, as there is
// no value to return. A write that matches no id only reports an error.
func dispatch(kind Kind, prefix string, elems []element, write bool) doc.Doc {
	args := kind.args()
	verb, rtype, name := "reading", "int", ReadName(prefix)
	diagnose := fatalTask
	if write {
		args = append(args, ARG_VALUE)
		verb, rtype, name = "writing", "void", WriteName(prefix)
		diagnose = errorTask
	}

	decls := []doc.Doc{input(ARG_ID)}
	for _, arg := range args {
		decls = append(decls, input(arg))
	}

	if len(elems) == 0 {
		return function(rtype, name, decls, []doc.Doc{diagnose(fmt.Sprintf("no %v declared", kind))})
	}

	chain := make([]doc.Doc, 0, len(elems)+1)
	for n, e := range elems {
		var action doc.Doc
		if write {
			action = statement(call(WriteName(e.Path), names(args)...))
		} else {
			action = ret(call(ReadName(e.Path), names(args)...))
		}

		branch := ifEqual(ARG_ID, e.Id, action)
		if n > 0 {
			branch = doc.Concat(doc.Text("else"), doc.Space(), branch)
		}
		chain = append(chain, branch)
	}

	fallback := diagnose(fmt.Sprintf("wrong id for %v %v", verb, kind))
	chain = append(chain, doc.Concat(doc.Text("else"), doc.Hardline(), beginEnd(fallback)))

	return function(rtype, name, decls, chain)
}
