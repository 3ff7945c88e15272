// Package word implements the binc register: a fixed-width, bit-addressable
// integer whose bit sub-ranges can be read, written and operated upon
// independently.
//
// A Word keeps its value in an unsigned backing integer together with an
// effective width (a power of two between 8 and 512 bits), a signedness flag
// and the carry-out of the last addition or subtraction. Only the low 'width'
// bits of the backing integer are ever non-zero.
//
// Bit ranges are symbolic (see Index and Range) and are resolved against the
// width of the Word at the moment of use. Every range-scoped operation
// extracts the sub-range, computes with wrapping semantics sized to the
// sub-range, and writes the result back without disturbing neighbouring bits.
package word
