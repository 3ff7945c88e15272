package word

import (
	"math/big"
	"strings"
)

// prefixes are the radix notations accepted by Format.
var prefixes = map[int]string{
	2:  "0b",
	8:  "0o",
	10: "0d",
	16: "0x",
}

// Digits returns the number of digits needed to write any unsigned value of
// the register's width in the given radix.
func (w *Word) Digits(radix int) int {
	if _, ok := prefixes[radix]; !ok {
		return 0
	}

	return len(mask(w.width).Text(radix))
}

// Format renders the register in radix 2, 8, 10 or 16.
//
// Negative values are written as a minus sign followed by their magnitude.
// With prefix set the radix notation (0b, 0o, 0d, 0x) precedes the digits,
// and with pad set the digits are zero filled to Digits(radix).
func (w *Word) Format(radix int, prefix bool, pad bool) (text string, err error) {
	notation, ok := prefixes[radix]
	if !ok {
		err = ErrRadix
		return
	}

	value := w.mag
	negative := w.Negative()
	if negative {
		value = new(big.Int).Sub(pow2(w.width), w.mag)
	}

	digits := value.Text(radix)
	if pad {
		if n := w.Digits(radix) - len(digits); n > 0 {
			digits = strings.Repeat("0", n) + digits
		}
	}

	if prefix {
		digits = notation + digits
	}

	if negative {
		digits = "-" + digits
	}

	text = digits
	return
}

// MustFormat is Format for radixes known to be valid.
func (w *Word) MustFormat(radix int, prefix bool) string {
	text, err := w.Format(radix, prefix, false)
	if err != nil {
		panic(err)
	}

	return text
}
