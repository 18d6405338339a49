package build

import (
	"errors"

	"github.com/ezrec/awig/translate"
)

var f = translate.From

var (
	ErrTopMissing    = errors.New(f("top module name not set"))
	ErrOutDirMissing = errors.New(f("output directory not set"))
)
