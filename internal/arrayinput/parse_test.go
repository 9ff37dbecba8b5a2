package arrayinput

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "5,3,1", "[5, 3, 1]"},
		{"bracketed", "[5,3,1]", "[5, 3, 1]"},
		{"spaces", "  5 , 3 ,1  ", "[5, 3, 1]"},
		{"empty", "", "[]"},
		{"whitespace only", "   ", "[]"},
		{"empty brackets", "[]", "[]"},
		{"single element", "5", "[5]"},
		{"trailing comma", "1, 2,", "[1, 2]"},
		{"negative", "-4, +2, - 7", "[-4, 2, -7]"},
		{"floats", "1.5, .5, 2., 1e3, 1.5e-5", "[1.5, 0.5, 2.0, 1000.0, 1.5e-05]"},
		{"large float", "1e16", "[1e+16]"},
		{"negative zero", "-0.0", "[-0.0]"},
		{"underscores", "1_000, 0x_ff", "[1000, 255]"},
		{"prefixed integers", "0x1F, 0o17, 0b101", "[31, 15, 5]"},
		{"zeros", "0, 00, 0_0", "[0, 0, 0]"},
		{"big integer", "123456789012345678901234567890", "[123456789012345678901234567890]"},
		{"sample", "2, 3, 1, 4, 7, 6, 5, 9, 8", "[2, 3, 1, 4, 7, 6, 5, 9, 8]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got.Literal() != tt.expected {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got.Literal(), tt.expected)
			}
		})
	}
}

func TestParseWrappingIsTransparent(t *testing.T) {
	inputs := []string{"5,3,1", "1, 2, 3", "-1,0.5", "42", "", "7,"}

	for _, input := range inputs {
		wrapped, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		bracketed, err := Parse("[" + input + "]")
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", "["+input+"]", err)
		}
		if diff := cmp.Diff(bracketed, wrapped); diff != "" {
			t.Errorf("wrapped and bracketed parse differ for %q (-bracketed +wrapped):\n%s", input, diff)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		element int
	}{
		{"double comma", "1,,2", 2},
		{"leading comma", ",1", 1},
		{"only comma", ",", 1},
		{"identifier", "1, x", 2},
		{"code", "__import__('os').system('ls')", 0},
		{"string", "'a', 1", 1},
		{"nested", "[[1, 2]]", 0},
		{"unbalanced", "[1, 2", 0},
		{"closing only", "1, 2]", 0},
		{"leading zero", "007", 1},
		{"bad underscore", "1__0", 1},
		{"trailing underscore", "1_", 1},
		{"double sign", "--5", 1},
		{"bare sign", "-", 1},
		{"missing comma", "1 2", 1},
		{"infinity", "inf", 1},
		{"overflow", "1e400", 1},
		{"complex", "1j", 1},
		{"tuple", "(1, 2)", 1},
		{"dangling exponent", "1e", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if !errors.Is(err, ErrInvalidArray) {
				t.Errorf("error should match ErrInvalidArray, got %v", err)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("error should be a *SyntaxError, got %T", err)
			}
			if tt.element != 0 && syntaxErr.Element != tt.element {
				t.Errorf("Element = %d, want %d", syntaxErr.Element, tt.element)
			}
		})
	}
}

func TestNumberCmp(t *testing.T) {
	tests := []struct {
		a, b     Number
		expected int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Int(2), 0},
		{Int(3), Float(2.5), 1},
		{Float(2.0), Int(2), 0},
		{Float(-1.5), Float(-1.25), -1},
	}

	for _, tt := range tests {
		if got := tt.a.Cmp(tt.b); got != tt.expected {
			t.Errorf("%s.Cmp(%s) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}

	if Float(2.0).Equal(Int(2)) {
		t.Error("float and integer with the same value should not be Equal")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		1:        "1.0",
		0.1:      "0.1",
		0.0001:   "0.0001",
		0.00001:  "1e-05",
		123.456:  "123.456",
		1e15:     "1000000000000000.0",
		1e16:     "1e+16",
		-2.5e-10: "-2.5e-10",
	}

	for input, expected := range tests {
		if got := formatFloat(input); got != expected {
			t.Errorf("formatFloat(%v) = %s, want %s", input, got, expected)
		}
	}
}
