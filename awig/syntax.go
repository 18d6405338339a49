package awig

import (
	"strconv"

	"github.com/ezrec/awig/doc"
)

// INDENT is the indentation of a nested block.
const INDENT = 2

func paren(d doc.Doc) doc.Doc {
	return doc.Concat(doc.Text("("), d, doc.Text(")"))
}

func statement(d doc.Doc) doc.Doc {
	return doc.Concat(d, doc.Text(";"))
}

func quote(s string) doc.Doc {
	return doc.Text(strconv.Quote(s))
}

// block lays out head and body as an indented block closed by tail.
func block(head doc.Doc, body doc.Doc, tail string) doc.Doc {
	return doc.Concat(
		doc.Group(doc.Nest(INDENT, doc.Concat(head, doc.Hardline(), body))),
		doc.Hardline(),
		doc.Text(tail),
	)
}

func lines(docs []doc.Doc) doc.Doc {
	return doc.Intersperse(docs, doc.Hardline())
}

func beginEnd(body doc.Doc) doc.Doc {
	return block(doc.Text("begin"), body, "end")
}

func module(name string, body doc.Doc) doc.Doc {
	return block(statement(doc.Textf("module %v", name)), body, "endmodule")
}

func function(rtype string, name string, decls []doc.Doc, body []doc.Doc) doc.Doc {
	inner := doc.Concat(lines(decls), doc.Hardline(), beginEnd(lines(body)))
	return block(statement(doc.Textf("function %v %v", rtype, name)), inner, "endfunction")
}

func input(name string) doc.Doc {
	return statement(doc.Textf("input int %v", name))
}

func variable(name string, width uint32) doc.Doc {
	return statement(doc.Textf("reg [%d-1:0] %v", width, name))
}

// slice is the indexed part select name[base+:width].
func slice(name string, base string, width uint32) doc.Doc {
	return doc.Textf("%v[%v+:%d]", name, base, width)
}

func binary(lhs doc.Doc, op string, rhs doc.Doc) doc.Doc {
	return doc.Concat(lhs, doc.Space(), doc.Text(op), doc.Space(), rhs)
}

func assign(lhs doc.Doc, rhs doc.Doc) doc.Doc {
	return statement(binary(lhs, "=", rhs))
}

func ret(value doc.Doc) doc.Doc {
	return statement(doc.Concat(doc.Text("return"), doc.Space(), value))
}

// call lays out a function call, breaking the arguments over several
// lines when they overflow.
func call(name string, args ...doc.Doc) doc.Doc {
	list := doc.Intersperse(args, doc.Concat(doc.Text(","), doc.Line()))
	return doc.Concat(doc.Text(name), paren(doc.Group(doc.Nest(INDENT, list))))
}

func names(args []string) (docs []doc.Doc) {
	for _, arg := range args {
		docs = append(docs, doc.Text(arg))
	}
	return
}

func errorTask(msg string) doc.Doc {
	return statement(call("$error", quote(msg)))
}

func fatalTask(msg string) doc.Doc {
	return statement(call("$fatal", doc.Text("1"), quote(msg)))
}

func assertLess(arg string, limit uint32) doc.Doc {
	cond := binary(doc.Text(arg), "<", doc.Textf("%d", limit))
	return doc.Concat(
		doc.Text("assert"), doc.Space(), paren(cond),
		doc.Space(), doc.Text("else"), doc.Space(),
		errorTask(arg+" out of bounds"),
	)
}

// ifEqual is the branch if (arg == value) begin body end.
func ifEqual(arg string, value uint32, body doc.Doc) doc.Doc {
	cond := binary(doc.Text(arg), "==", doc.Textf("%d", value))
	return doc.Concat(doc.Text("if"), doc.Space(), paren(cond), doc.Hardline(), beginEnd(body))
}

func export(name string) doc.Doc {
	return statement(doc.Concat(
		doc.Text("export"), doc.Space(), quote("DPI-C"),
		doc.Space(), doc.Text("function"), doc.Space(), doc.Text(name),
	))
}
