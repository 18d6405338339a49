// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package build describes a simulation build and generates its accessor
// module.
package build

import (
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/awig/awig"
)

const (
	TOOL_NAME       = "lastlayer" // Prefix of the virtual top module.
	REGISTER_PREFIX = "dpi_reg"   // Register dispatch function prefix.
	MEMORY_PREFIX   = "dpi_mem"   // Memory dispatch function prefix.
)

// Build is the description of a simulation build.
type Build struct {
	Verbose      bool     // If set, verbosely logs the build actions.
	Top          string   // Top module of the user design.
	Clock        string   // Clock port of the top module.
	Reset        string   // Reset port of the top module.
	OutDir       string   // Directory receiving generated sources.
	VerilogFiles []string // Sources handed to the simulator compiler.

	Registers []awig.Register
	Memories  []awig.Memory
}

// NewBuild returns a build description with the default clock and reset
// port names.
func NewBuild() *Build {
	return &Build{
		Clock: "clock",
		Reset: "reset",
	}
}

// AddRegister appends a register accessible under id.
func (b *Build) AddRegister(id uint32, path string, width uint32) *Build {
	b.Registers = append(b.Registers, awig.Register{Id: id, Path: path, Width: width})
	return b
}

// AddMemory appends a memory accessible under id.
func (b *Build) AddMemory(id uint32, path string, width uint32) *Build {
	b.Memories = append(b.Memories, awig.Memory{Id: id, Path: path, Width: width})
	return b
}

// VerilogFile appends a source for the simulator compiler.
func (b *Build) VerilogFile(path string) *Build {
	b.VerilogFiles = append(b.VerilogFiles, path)
	return b
}

// VirtualTop returns the name of the module wrapping the top module.
func (b *Build) VirtualTop() string {
	return TOOL_NAME + "_" + b.Top
}

// ModuleName returns the name of the generated accessor module.
func (b *Build) ModuleName() string {
	return b.VirtualTop() + "_dpi"
}

// Request returns the accessor module request of the build.
func (b *Build) Request() awig.Request {
	return awig.Request{
		TopName:        b.VirtualTop(),
		ModuleName:     b.ModuleName(),
		RegisterPrefix: REGISTER_PREFIX,
		MemoryPrefix:   MEMORY_PREFIX,
		Registers:      b.Registers,
		Memories:       b.Memories,
	}
}

// GenerateAccessors writes the accessor module into the output directory
// and adds it to the Verilog sources.
func (b *Build) GenerateAccessors() (path string, err error) {
	if len(b.Top) == 0 {
		err = ErrTopMissing
		return
	}

	if len(b.OutDir) == 0 {
		err = ErrOutDirMissing
		return
	}

	err = os.MkdirAll(b.OutDir, 0o755)
	if err != nil {
		err = &awig.ErrOutput{Path: b.OutDir, Err: err}
		return
	}

	path = filepath.Join(b.OutDir, b.ModuleName()+".v")

	gen := &awig.Generator{Verbose: b.Verbose}
	err = gen.Compile(path, b.Request())
	if err != nil {
		return
	}

	b.VerilogFile(path)

	if b.Verbose {
		log.Printf("build: %v: accessors for %v", path, b.VirtualTop())
	}

	return
}
