package uncertain

import (
	"errors"
	"testing"
)

func TestRationalNormalisation(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		wantNum  int64
		wantDen  int64
	}{
		{name: "LowestTerms", num: 2, den: 4, wantNum: 1, wantDen: 2},
		{name: "NegativeDenominator", num: 1, den: -2, wantNum: -1, wantDen: 2},
		{name: "BothNegative", num: -3, den: -6, wantNum: 1, wantDen: 2},
		{name: "Zero", num: 0, den: 5, wantNum: 0, wantDen: 1},
		{name: "AlreadyNormal", num: 7, den: 3, wantNum: 7, wantDen: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRational(tt.num, tt.den)
			if err != nil {
				t.Fatalf("NewRational(%d, %d) = %v", tt.num, tt.den, err)
			}
			if r.Num() != tt.wantNum || r.Den() != tt.wantDen {
				t.Errorf("NewRational(%d, %d) = %v/%v, want %v/%v", tt.num, tt.den, r.Num(), r.Den(), tt.wantNum, tt.wantDen)
			}
		})
	}
}

func TestRationalZeroDenominator(t *testing.T) {
	_, err := NewRational(1, 0)
	if !errors.Is(err, ErrFractionalDimension) {
		t.Errorf("NewRational(1, 0) error = %v, want ErrFractionalDimension", err)
	}
}

func TestMustRationalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRational(1, 0) did not panic")
		}
	}()
	MustRational(1, 0)
}

func TestRationalArithmetic(t *testing.T) {
	half := MustRational(1, 2)
	third := MustRational(1, 3)

	if got, want := half.Add(third), MustRational(5, 6); got != want {
		t.Errorf("1/2 + 1/3 = %v, want %v", got, want)
	}
	if got, want := half.Sub(third), MustRational(1, 6); got != want {
		t.Errorf("1/2 - 1/3 = %v, want %v", got, want)
	}
	if got, want := half.Mul(third), MustRational(1, 6); got != want {
		t.Errorf("1/2 * 1/3 = %v, want %v", got, want)
	}
	if got, want := half.Neg(), MustRational(-1, 2); got != want {
		t.Errorf("-(1/2) = %v, want %v", got, want)
	}
	if got, want := half.Add(half), Integer(1); got != want {
		t.Errorf("1/2 + 1/2 = %v, want %v", got, want)
	}
	if !Integer(0).IsZero() || half.IsZero() {
		t.Error("IsZero misreports")
	}
	if got := half.Float(); got != 0.5 {
		t.Errorf("Float(1/2) = %v, want 0.5", got)
	}
}

// The zero value of Rational must behave as 0/1 without going through the
// constructor, because units carry arrays of zero-valued exponents.
func TestRationalZeroValue(t *testing.T) {
	var zero Rational
	if !zero.IsZero() {
		t.Error("zero value is not zero")
	}
	if got, want := zero.Add(Integer(2)), Integer(2); got != want {
		t.Errorf("0 + 2 = %v, want %v", got, want)
	}
	if got := zero.Den(); got != 1 {
		t.Errorf("Den() of zero value = %v, want 1", got)
	}
}

func TestRationalString(t *testing.T) {
	tests := []struct {
		r    Rational
		want string
	}{
		{Integer(3), "3"},
		{MustRational(1, 2), "1/2"},
		{MustRational(-2, 4), "-1/2"},
		{Rational{}, "0"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String(%#v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
