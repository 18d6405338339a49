// Package awig generates the accessor wrapper interface of a simulated
// circuit.
//
// The generated SystemVerilog module holds a read and a write function for
// every named register and memory, four dispatch functions that select an
// accessor by hardware id, and the DPI-C exports of those dispatch
// functions. Values move through the DPI-C boundary in 32-bit words; wider
// elements are addressed one word at a time through a selector.
package awig
