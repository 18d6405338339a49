package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/awig/awig"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		`top_module("adder")`,
		`clock("clk")`,
		`reset(name = "rst")`,
		`out_dir("out")`,
		`verilog_file("adder.v")`,
		`for n, name in enumerate(["a", "b"]):`,
		`    register(n, name, 8)`,
		`register(id = 2, path = "y", width = 8 + 1)`,
		`memory(0, "ram.mem", 64)`,
		`print("loaded")`,
	}

	bld, err := Load("adder.star", strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal("adder", bld.Top)
	assert.Equal("clk", bld.Clock)
	assert.Equal("rst", bld.Reset)
	assert.Equal("out", bld.OutDir)
	assert.Equal([]string{"adder.v"}, bld.VerilogFiles)
	assert.Equal([]awig.Register{
		{Id: 0, Path: "a", Width: 8},
		{Id: 1, Path: "b", Width: 8},
		{Id: 2, Path: "y", Width: 9},
	}, bld.Registers)
	assert.Equal([]awig.Memory{{Id: 0, Path: "ram.mem", Width: 64}}, bld.Memories)
}

func TestLoadDefaults(t *testing.T) {
	assert := assert.New(t)

	bld, err := Load("empty.star", "")
	assert.NoError(err)
	assert.Equal("clock", bld.Clock)
	assert.Equal("reset", bld.Reset)
	assert.Empty(bld.Top)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Script string
		Err    string
	}{
		{`register(-1, "a", 8)`, "value negative"},
		{`memory(0, "a", -8)`, "value negative"},
		{`register(4294967296, "a", 8)`, "value out of range"},
		{`memory(0, "m", 4294967304)`, "value out of range"},
		{`memory(id = 4294967297, path = "m", width = 8)`, "id 4294967297"},
		{`register("a", "b", 1)`, "register"},
		{`register(0, "a")`, "register"},
		{`top_module()`, "top_module"},
		{`unknown(1)`, "unknown"},
		{`register(0, "a", 8`, "bad.star"},
	}

	for _, entry := range table {
		bld, err := Load("bad.star", entry.Script)
		assert.Error(err, entry.Script)
		assert.ErrorContains(err, entry.Err, entry.Script)
		assert.ErrorContains(err, "bad.star", entry.Script)
		assert.Nil(bld, entry.Script)
	}
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	desc := filepath.Join(dir, "adder.star")
	script := []string{
		`top_module("adder")`,
		`register(0, "a", 8)`,
		`register(1, "y", 9)`,
		`memory(0, "ram", 40)`,
	}
	assert.NoError(os.WriteFile(desc, []byte(strings.Join(script, "\n")), 0o644))

	bld, err := Load(desc, nil)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	bld.OutDir = filepath.Join(dir, "out")
	path, err := bld.GenerateAccessors()
	assert.NoError(err)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Contains(string(data), "function int lastlayer_adder_ram_read;")

	_, err = Load(filepath.Join(dir, "missing.star"), nil)
	assert.ErrorContains(err, "missing.star")
}

func TestLoadExample(t *testing.T) {
	assert := assert.New(t)

	bld, err := Load(filepath.Join("..", "examples", "adder.star"), nil)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal("adder", bld.Top)
	assert.Equal("build", bld.OutDir)
	assert.Equal([]awig.Register{
		{Id: 0, Path: "adder.a", Width: 8},
		{Id: 1, Path: "adder.b", Width: 8},
		{Id: 2, Path: "adder.y", Width: 8},
	}, bld.Registers)
	assert.NoError(bld.Request().Validate())
}
