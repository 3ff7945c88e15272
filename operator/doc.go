// Package operator implements the binc operator table.
//
// A Command pairs a left operand (always a bit range of the register) with
// an operator Kind and an optional right operand, which may be another bit
// range of the same register, an immediate literal, or nothing at all.
// Apply dispatches a Kind to its handler, which mutates the register and
// reports an Effect telling the caller whether the new state belongs in the
// undo history.
package operator
