package formula

import (
	"testing"

	"github.com/aliace-game/screenlayout/pkg/errors"
)

func TestCompileAndEval(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		height int
		want   int
	}{
		{"constant", "20", 600, 20},
		{"plain height", "h", 600, 600},
		{"half", "h/2", 600, 300},
		{"quarter minus offset", "h/4 - 40", 600, 110},
		{"half minus offset", "h/2 - 80", 600, 220},
		{"half plus offset", "h/2 + 100", 600, 400},
		{"height minus offset", "h - 270", 600, 330},
		{"height alias", "height/2 + 5", 600, 305},
		{"leading negative", "-40 + h/4", 600, 110},
		{"no spaces", "h/2-40", 600, 260},
		{"zero height", "h/2 - 80", 0, -80},
		{"zero height constant", "20", 0, 20},
		{"odd division floors", "h/4", 601, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.src)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.src, err)
			}
			if got := f.Eval(tt.height); got != tt.want {
				t.Errorf("Eval(%d) = %d, want %d", tt.height, got, tt.want)
			}
			if f.String() != tt.src {
				t.Errorf("String() = %q, want %q", f.String(), tt.src)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"undefined variable", "w/2 - 40"},
		{"undefined long variable", "width - 40"},
		{"division by zero", "h/0"},
		{"literal division", "40/2"},
		{"trailing operator", "h/2 -"},
		{"missing divisor", "h/ - 40"},
		{"unexpected character", "h * 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.src)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", tt.src)
			}
			if !errors.Is(err, errors.ErrCodeInvalidFormula) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormula)
			}
		})
	}
}

// Anchor expressions only ever see non-negative heights, where floor and
// truncating division agree. The evaluator still promises floor semantics,
// so pin the behavior for negative operands directly.
func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{600, 2, 300},
		{601, 4, 150},
		{0, 4, 0},
		{-1, 2, -1},
		{-5, 2, -3},
		{-4, 2, -2},
		{5, -2, -3},
	}

	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var f Formula
	if !f.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if got := f.Eval(600); got != 0 {
		t.Errorf("zero value Eval = %d, want 0", got)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile should panic on invalid input")
		}
	}()
	MustCompile("q/2")
}
