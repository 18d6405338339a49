// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package awig

import (
	"log"
	"os"
	"slices"

	"github.com/ezrec/awig/doc"
	"github.com/ezrec/awig/internal"
)

// DEFAULT_WIDTH is the layout width of the generated module.
const DEFAULT_WIDTH = 100

// Request describes one accessor module.
type Request struct {
	TopName        string     // Instance name prefixed to every path.
	ModuleName     string     // Name of the generated module.
	RegisterPrefix string     // Name prefix of the register dispatch functions.
	MemoryPrefix   string     // Name prefix of the memory dispatch functions.
	Registers      []Register // Registers, in dispatch order.
	Memories       []Memory   // Memories, in dispatch order.
}

// Generator turns requests into accessor modules.
type Generator struct {
	Verbose bool // If set, verbosely logs the generator actions.
	Width   int  // Layout width; DEFAULT_WIDTH if zero.
}

func (gen *Generator) width() int {
	if gen.Width <= 0 {
		return DEFAULT_WIDTH
	}
	return gen.Width
}

// Document validates req and returns the document of its module.
func (gen *Generator) Document(req Request) (d doc.Doc, err error) {
	err = req.Validate()
	if err != nil {
		return
	}

	regs := qualify(req.TopName, elements(req.Registers))
	mems := qualify(req.TopName, elements(req.Memories))

	if gen.Verbose {
		for _, e := range slices.Concat(regs, mems) {
			log.Printf("awig: %v %d: %v, %d bits in %d words", e.Kind, e.Id, e.Path, e.Width, MaxSel(e.Width))
		}
	}

	accessors := internal.IterSeqConcat(
		internal.IterMap(slices.Values(regs), element.accessors),
		internal.IterMap(slices.Values(mems), element.accessors),
	)

	parts := slices.Collect(accessors)
	parts = append(parts,
		dispatch(KIND_REGISTER, req.RegisterPrefix, regs, false),
		dispatch(KIND_REGISTER, req.RegisterPrefix, regs, true),
		dispatch(KIND_MEMORY, req.MemoryPrefix, mems, false),
		dispatch(KIND_MEMORY, req.MemoryPrefix, mems, true),
		export(ReadName(req.RegisterPrefix)),
		export(WriteName(req.RegisterPrefix)),
		export(ReadName(req.MemoryPrefix)),
		export(WriteName(req.MemoryPrefix)),
	)

	d = module(req.ModuleName, lines(parts))
	return
}

// Generate validates req and returns the text of its module.
func (gen *Generator) Generate(req Request) (text string, err error) {
	d, err := gen.Document(req)
	if err != nil {
		return
	}

	text = doc.Pretty(gen.width(), d) + "\n"
	return
}

// Compile writes the module of req to path. Nothing is written when req
// is invalid.
func (gen *Generator) Compile(path string, req Request) (err error) {
	text, err := gen.Generate(req)
	if err != nil {
		return
	}

	err = os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		err = &ErrOutput{Path: path, Err: err}
		return
	}

	if gen.Verbose {
		log.Printf("awig: %v: module %v, %d registers, %d memories", path, req.ModuleName, len(req.Registers), len(req.Memories))
	}

	return
}

// Compile writes to path the accessor module named moduleName for the
// registers and memories below the instance topName.
func Compile(path string, topName string, moduleName string, registerPrefix string, memoryPrefix string, registers []Register, memories []Memory) error {
	gen := &Generator{}
	return gen.Compile(path, Request{
		TopName:        topName,
		ModuleName:     moduleName,
		RegisterPrefix: registerPrefix,
		MemoryPrefix:   memoryPrefix,
		Registers:      registers,
		Memories:       memories,
	})
}
