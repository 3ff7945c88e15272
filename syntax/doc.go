// Package syntax parses binc command text.
//
// A command is an optional bit-range accessor, an optional operator and an
// optional right operand, for example '[7:0]=0xff', '>>2' or '[15:8]<>[7:0]'.
// Operators are matched against operator.Tokens, longest first, and binary
// operators accept a trailing '=' ('+=', '>>=').
//
// Right operands may be literals in radix 2, 8, 10, 16 or any radix up to
// 37 ('0(36)zz'), quoted characters, other accessors, or '$(...)' Starlark
// expressions evaluated at parse time.
package syntax
