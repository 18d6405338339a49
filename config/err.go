package config

import (
	"github.com/pkg/errors"

	"github.com/ezrec/awig/translate"
)

var f = translate.From

var (
	ErrNegative = errors.New(f("value negative"))
	ErrRange    = errors.New(f("value out of range"))
)
