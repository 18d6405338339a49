// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads build descriptions written in Starlark.
//
// A description calls the predeclared builtins to fill in a build:
//
//	top_module("adder")
//	clock("clk")
//	register(0, "a", 8)
//	memory(id = 0, path = "ram.mem", width = 64)
//	verilog_file("adder.v")
//	out_dir("build")
package config

import (
	"log"
	"math"

	"github.com/pkg/errors"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/awig/build"
)

// setter returns a builtin storing its single string argument in dest.
func setter(name string, arg string, dest func(value string)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var value string
		err := starlark.UnpackArgs(fn.Name(), args, kwargs, arg, &value)
		if err != nil {
			return nil, err
		}
		dest(value)
		return starlark.None, nil
	})
}

// element returns a builtin declaring a register or memory.
func element(name string, add func(id uint32, path string, width uint32)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var id, width int64
		var path string
		err := starlark.UnpackArgs(fn.Name(), args, kwargs, "id", &id, "path", &path, "width", &width)
		if err != nil {
			return nil, err
		}
		for _, arg := range []struct {
			name  string
			value int64
		}{{"id", id}, {"width", width}} {
			switch {
			case arg.value < 0:
				return nil, errors.Wrapf(ErrNegative, "%v: %v %d", fn.Name(), arg.name, arg.value)
			case arg.value > math.MaxUint32:
				return nil, errors.Wrapf(ErrRange, "%v: %v %d", fn.Name(), arg.name, arg.value)
			}
		}
		add(uint32(id), path, uint32(width))
		return starlark.None, nil
	})
}

// Predeclared returns the builtins of a description filling in bld.
func Predeclared(bld *build.Build) starlark.StringDict {
	return starlark.StringDict{
		"top_module":   setter("top_module", "name", func(value string) { bld.Top = value }),
		"clock":        setter("clock", "name", func(value string) { bld.Clock = value }),
		"reset":        setter("reset", "name", func(value string) { bld.Reset = value }),
		"out_dir":      setter("out_dir", "path", func(value string) { bld.OutDir = value }),
		"verilog_file": setter("verilog_file", "path", func(value string) { bld.VerilogFile(value) }),
		"register": element("register", func(id uint32, path string, width uint32) {
			bld.AddRegister(id, path, width)
		}),
		"memory": element("memory", func(id uint32, path string, width uint32) {
			bld.AddMemory(id, path, width)
		}),
	}
}

// Load executes the description in filename. If src is nil the file is
// read, otherwise src (a string, []byte or io.Reader) is the script.
func Load(filename string, src any) (bld *build.Build, err error) {
	bld = build.NewBuild()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}

	opts := syntax.FileOptions{TopLevelControl: true, GlobalReassign: true}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, Predeclared(bld))
	if err != nil {
		err = errors.Wrap(err, filename)
		bld = nil
		return
	}

	return
}
