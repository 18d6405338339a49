package awig

import (
	"strings"
)

// Register is a scalar storage cell of the circuit.
type Register struct {
	Id    uint32 // Hardware id, unique among registers.
	Path  string // Dotted hierarchical reference below the top instance.
	Width uint32 // Width in bits.
}

// Memory is an addressable array of the circuit.
type Memory struct {
	Id    uint32 // Hardware id, unique among memories.
	Path  string // Dotted hierarchical reference below the top instance.
	Width uint32 // Width of one entry in bits.
}

// Element is implemented by Register and Memory.
type Element interface {
	element() element
}

var _ Element = Register{}
var _ Element = Memory{}

func (reg Register) element() element {
	return element{Kind: KIND_REGISTER, Id: reg.Id, Path: reg.Path, Width: reg.Width}
}

func (mem Memory) element() element {
	return element{Kind: KIND_MEMORY, Id: mem.Id, Path: mem.Path, Width: mem.Width}
}

type element struct {
	Kind  Kind
	Id    uint32
	Path  string
	Width uint32
}

// elements copies a list of registers or memories.
func elements[E Element](list []E) (elems []element) {
	elems = make([]element, 0, len(list))
	for _, e := range list {
		elems = append(elems, e.element())
	}
	return
}

// qualify prefixes every path with the top instance name.
func qualify(top string, elems []element) (qualified []element) {
	qualified = make([]element, len(elems))
	for n, e := range elems {
		e.Path = top + "." + e.Path
		qualified[n] = e
	}
	return
}

// target is the expression the accessors of e read and write.
func (e element) target() string {
	if e.Kind == KIND_MEMORY {
		return e.Path + "[" + ARG_ADDR + "]"
	}
	return e.Path
}

func functionName(path string, suffix string) string {
	return strings.ReplaceAll(path, ".", "_") + "_" + suffix
}

// ReadName returns the name of the read function generated for path.
func ReadName(path string) string {
	return functionName(path, "read")
}

// WriteName returns the name of the write function generated for path.
func WriteName(path string) string {
	return functionName(path, "write")
}
