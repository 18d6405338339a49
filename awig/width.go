package awig

import (
	"math"
)

const (
	WORD_WIDTH = 32                                 // Bits moved per DPI-C call.
	MAX_WIDTH  = math.MaxUint32 &^ (WORD_WIDTH - 1) // Widest element with a representable buffer.
	MAX_ID     = math.MaxInt32                      // Largest id a DPI-C int argument can carry.
)

// RoundWidth returns the width of the accessor buffer for a width-bit
// element: the smallest multiple of WORD_WIDTH not below width.
func RoundWidth(width uint32) uint32 {
	if width%WORD_WIDTH == 0 {
		return width
	}
	return (width/WORD_WIDTH + 1) * WORD_WIDTH
}

// MaxSel returns the number of words covering a width-bit element. A
// selector must be strictly below it.
func MaxSel(width uint32) uint32 {
	if width%WORD_WIDTH == 0 {
		return width / WORD_WIDTH
	}
	return width/WORD_WIDTH + 1
}
