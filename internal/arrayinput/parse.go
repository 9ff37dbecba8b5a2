package arrayinput

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidArray is matched by every validation error returned by Parse
var ErrInvalidArray = errors.New("invalid array literal")

// SyntaxError describes why the input could not be read as a list of numbers
type SyntaxError struct {
	Element int    // 1-based element position, 0 when the error is structural
	Token   string // offending text, if any
	Reason  string
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Element > 0 && e.Token != "":
		return fmt.Sprintf("%s: element %d %q: %s", ErrInvalidArray, e.Element, e.Token, e.Reason)
	case e.Element > 0:
		return fmt.Sprintf("%s: element %d: %s", ErrInvalidArray, e.Element, e.Reason)
	default:
		return fmt.Sprintf("%s: %s", ErrInvalidArray, e.Reason)
	}
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidArray
}

// Array is an ordered sequence of numbers
type Array []Number

// Literal returns the list literal form, e.g. "[2, 3, 1]"
func (a Array) Literal() string {
	parts := make([]string, len(a))
	for i, n := range a {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// String implements fmt.Stringer
func (a Array) String() string {
	return a.Literal()
}

// Clone returns an independent copy of a
func (a Array) Clone() Array {
	if a == nil {
		return nil
	}
	out := make(Array, len(a))
	copy(out, a)
	return out
}

// Number literal grammar. Underscores may only separate digits.
var (
	decIntRe = regexp.MustCompile(`^(?:[1-9](?:_?[0-9])*|0+(?:_?0)*)$`)
	hexIntRe = regexp.MustCompile(`^0[xX](?:_?[0-9a-fA-F])+$`)
	octIntRe = regexp.MustCompile(`^0[oO](?:_?[0-7])+$`)
	binIntRe = regexp.MustCompile(`^0[bB](?:_?[01])+$`)
	floatRe  = regexp.MustCompile(`^(?:(?:[0-9](?:_?[0-9])*)?\.[0-9](?:_?[0-9])*|[0-9](?:_?[0-9])*\.?)(?:[eE][+-]?[0-9](?:_?[0-9])*)?$`)
)

// Parse reads user-typed text as a list of numbers. The trimmed text is
// wrapped in brackets unless it already is bracketed. Empty input yields an
// empty array.
func Parse(raw string) (Array, error) {
	text := strings.TrimSpace(raw)
	if !(strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]")) {
		text = "[" + text + "]"
	}
	body := text[1 : len(text)-1]
	if strings.ContainsAny(body, "[]") {
		return nil, &SyntaxError{Reason: "nested or unbalanced brackets are not supported"}
	}

	if strings.TrimSpace(body) == "" {
		return Array{}, nil
	}

	parts := strings.Split(body, ",")
	// A single trailing comma is allowed: "[1, 2,]"
	if len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	array := make(Array, 0, len(parts))
	for i, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			return nil, &SyntaxError{Element: i + 1, Reason: "empty element"}
		}
		n, err := parseNumber(token)
		if err != nil {
			return nil, &SyntaxError{Element: i + 1, Token: token, Reason: err.Error()}
		}
		array = append(array, n)
	}

	return array, nil
}

// parseNumber parses one signed numeric literal
func parseNumber(token string) (Number, error) {
	negative := false
	literal := token
	if literal[0] == '+' || literal[0] == '-' {
		negative = literal[0] == '-'
		literal = strings.TrimSpace(literal[1:])
	}
	if literal == "" {
		return Number{}, errors.New("sign without a number")
	}

	if n, ok := parseInteger(literal); ok {
		if negative {
			n.Neg(n)
		}
		return Number{integer: n}, nil
	}

	if !strings.ContainsAny(literal, ".eE") {
		if literal[0] == '0' {
			return Number{}, errors.New("leading zeros are not permitted")
		}
		return Number{}, errors.New("not a number")
	}

	if floatRe.MatchString(literal) {
		f, err := strconv.ParseFloat(strings.ReplaceAll(literal, "_", ""), 64)
		if err != nil || math.IsInf(f, 0) {
			return Number{}, errors.New("float out of range")
		}
		if negative {
			f = -f
		}
		return Float(f), nil
	}

	return Number{}, errors.New("not a number")
}

// parseInteger accepts decimal, hex, octal and binary integer literals
func parseInteger(literal string) (*big.Int, bool) {
	digits := strings.ReplaceAll(literal, "_", "")
	base := 0
	switch {
	case hexIntRe.MatchString(literal), octIntRe.MatchString(literal), binIntRe.MatchString(literal):
		base = 0
	case decIntRe.MatchString(literal):
		base = 10
	default:
		return nil, false
	}

	n, ok := new(big.Int).SetString(digits, base)
	return n, ok
}
