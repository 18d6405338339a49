package doc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", Pretty(80, Nil()))
	assert.Equal("hello", Pretty(80, Text("hello")))
	assert.Equal("x = 42", Pretty(80, Textf("%v = %d", "x", 42)))
	assert.Equal("a b", Pretty(80, Concat(Text("a"), Space(), Text("b"))))
}

func TestIntersperse(t *testing.T) {
	assert := assert.New(t)

	docs := []Doc{Text("a"), Text("b"), Text("c")}
	assert.Equal("a, b, c", Pretty(80, Intersperse(docs, Text(", "))))
	assert.Equal("", Pretty(80, Intersperse(nil, Text(", "))))
	assert.Equal("a", Pretty(80, Intersperse(docs[:1], Text(", "))))
}

func TestNest(t *testing.T) {
	assert := assert.New(t)

	d := Concat(
		Nest(2, Concat(Text("begin"), Hardline(), Text("x;"), Hardline(), Text("y;"))),
		Hardline(),
		Text("end"),
	)
	assert.Equal("begin\n  x;\n  y;\nend", Pretty(80, d))

	inner := Concat(Nest(2, Concat(Text("begin"), Hardline(), Text("x;"))), Hardline(), Text("end"))
	outer := Concat(Nest(2, Concat(Text("module m;"), Hardline(), inner)), Hardline(), Text("endmodule"))
	assert.Equal("module m;\n  begin\n    x;\n  end\nendmodule", Pretty(80, outer))
}

func TestNoTrailingWhitespace(t *testing.T) {
	assert := assert.New(t)

	d := Nest(4, Concat(Text("a"), Hardline(), Hardline(), Text("b"), Hardline()))
	out := Pretty(80, d)
	assert.Equal("a\n\n    b\n", out)

	for _, line := range strings.Split(out, "\n") {
		assert.Equal(strings.TrimRight(line, " "), line)
	}
}

func TestGroup(t *testing.T) {
	assert := assert.New(t)

	args := Intersperse([]Doc{Text("alpha"), Text("beta"), Text("gamma")}, Concat(Text(","), Line()))
	call := Concat(Text("f("), Group(Nest(2, Concat(SoftLine(), args))), Text(")"))

	assert.Equal("f(alpha, beta, gamma)", Pretty(80, call))
	assert.Equal("f(\n  alpha,\n  beta,\n  gamma)", Pretty(10, call))

	// A hard line forces its group to break.
	hard := Group(Concat(Text("a"), Line(), Text("b"), Hardline(), Text("c")))
	assert.Equal("a\nb\nc", Pretty(80, hard))
}

func TestGroupRemainingWidth(t *testing.T) {
	assert := assert.New(t)

	g := Group(Concat(Text("xx"), Line(), Text("yy")))

	// Fits at column zero, but not after a prefix.
	assert.Equal("xx yy", Pretty(5, g))
	assert.Equal("0123xx\nyy", Pretty(5, Concat(Text("0123"), g)))
}

func TestGroupTrailingText(t *testing.T) {
	assert := assert.New(t)

	g := Group(Nest(2, Concat(Text("aa,"), Line(), Text("bb"))))

	// Text after the group counts up to the next line break.
	assert.Equal("f(aa,\n  bb);;;;;", Pretty(10, Concat(Text("f("), g, Text(");;;;;"))))
	assert.Equal("f(aa, bb)\n0123456789", Pretty(10, Concat(Text("f("), g, Text(")"), Hardline(), Text("0123456789"))))

	// A following group in break mode ends the measure at its first line.
	next := Group(Concat(Text("c"), Line(), Text("dddddddddd")))
	assert.Equal("f(aa, bb)c\ndddddddddd", Pretty(10, Concat(Text("f("), g, Text(")"), next)))
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	err := Render(buff, 80, Concat(Text("a"), Hardline(), Text("b")))
	assert.NoError(err)
	assert.Equal("a\nb", buff.String())
}

func TestConcatCopies(t *testing.T) {
	assert := assert.New(t)

	docs := []Doc{Text("a"), Text("b")}
	d := Concat(docs...)
	docs[0] = Text("z")
	assert.Equal("ab", Pretty(80, d))
}
