package arrayinput

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is a single array element: an integer of arbitrary size or a float
type Number struct {
	integer *big.Int
	float   float64
	isFloat bool
}

// Int returns an integer Number
func Int(v int64) Number {
	return Number{integer: big.NewInt(v)}
}

// Float returns a float Number
func Float(f float64) Number {
	return Number{float: f, isFloat: true}
}

// IsFloat reports whether n was written as a float literal
func (n Number) IsFloat() bool {
	return n.isFloat
}

// Float64 returns n converted to float64 (large integers lose precision)
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.float
	}
	if n.integer == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(n.integer).Float64()
	return f
}

// Cmp compares n and o and returns -1, 0 or +1
func (n Number) Cmp(o Number) int {
	if !n.isFloat && !o.isFloat {
		return n.bigInt().Cmp(o.bigInt())
	}
	return n.bigFloat().Cmp(o.bigFloat())
}

// Less reports whether n < o
func (n Number) Less(o Number) bool {
	return n.Cmp(o) < 0
}

// Equal reports whether n and o have the same value and kind
func (n Number) Equal(o Number) bool {
	return n.isFloat == o.isFloat && n.Cmp(o) == 0
}

// String formats n the way the renderer's literal syntax prints it:
// integers in decimal, floats with a mandatory fraction or exponent.
func (n Number) String() string {
	if !n.isFloat {
		return n.bigInt().String()
	}
	return formatFloat(n.float)
}

// MarshalJSON encodes n as a bare JSON number
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n Number) bigInt() *big.Int {
	if n.integer == nil {
		return new(big.Int)
	}
	return n.integer
}

func (n Number) bigFloat() *big.Float {
	if n.isFloat {
		return big.NewFloat(n.float)
	}
	return new(big.Float).SetInt(n.bigInt())
}

// formatFloat mirrors the shortest round-trip repr: fixed notation for
// decimal exponents in [-4, 16), scientific otherwise.
func formatFloat(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	_, expStr, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(expStr)
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}
