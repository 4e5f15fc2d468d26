package si_test

import (
	"testing"

	"github.com/go-uncertain/go-uncertain"
	"github.com/go-uncertain/go-uncertain/si"
)

// The catalogue is defined by exponent arithmetic, so the classical unit
// identities must hold as exact value equality, scales included.
func TestDerivedUnitIdentities(t *testing.T) {
	tests := []struct {
		name string
		got  uncertain.Unit
		want uncertain.Unit
	}{
		{name: "VoltIsJoulePerCoulomb", got: si.Volt, want: si.Joule.Div(si.Coulomb)},
		{name: "OhmIsVoltPerAmpere", got: si.Ohm, want: si.Volt.Div(si.Ampere)},
		{name: "SiemensIsReciprocalOhm", got: si.Siemens, want: uncertain.Dimensionless.Div(si.Ohm)},
		{name: "WattIsVoltAmpere", got: si.Watt, want: si.Volt.Mul(si.Ampere)},
		{name: "PascalIsNewtonPerSquareMeter", got: si.Pascal, want: si.Newton.Div(si.Meter.Mul(si.Meter))},
		{name: "FaradTimesVoltIsCoulomb", got: si.Farad.Mul(si.Volt), want: si.Coulomb},
		{name: "HenryIsOhmSecond", got: si.Henry, want: si.Ohm.Mul(si.Second)},
		{name: "TeslaIsWeberPerSquareMeter", got: si.Tesla, want: si.Weber.Div(si.Meter.Mul(si.Meter))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNewtonExponents(t *testing.T) {
	tests := []struct {
		dimension uncertain.Dimension
		want      uncertain.Rational
	}{
		{uncertain.Mass, uncertain.Integer(1)},
		{uncertain.Length, uncertain.Integer(1)},
		{uncertain.Time, uncertain.Integer(-2)},
		{uncertain.Current, uncertain.Integer(0)},
	}
	for _, tt := range tests {
		if got := si.Newton.Exponent(tt.dimension); got != tt.want {
			t.Errorf("Newton exponent of %v = %v, want %v", tt.dimension, got, tt.want)
		}
	}
	if got := si.Newton.Scale(); got != 1 {
		t.Errorf("Newton scale = %v, want 1 (coherent)", got)
	}
}

func TestAcceptedUnits(t *testing.T) {
	if !si.Gram.Compatible(si.Kilogram) {
		t.Error("gram is not compatible with kilogram")
	}
	if si.Gram == si.Kilogram {
		t.Error("gram equals kilogram")
	}
	factor, err := si.Gram.ConversionFactorTo(si.Kilogram)
	if err != nil {
		t.Fatalf("ConversionFactorTo() = %v", err)
	}
	if factor != 1e-3 {
		t.Errorf("g -> kg factor = %v, want 1e-3", factor)
	}

	if got := si.Hour.Scale(); got != 3600 {
		t.Errorf("hour scale = %v, want 3600", got)
	}
	if got := si.Litre.Exponent(uncertain.Length); got != uncertain.Integer(3) {
		t.Errorf("litre length exponent = %v, want 3", got)
	}
	if got := si.Litre.Scale(); got != 1e-3 {
		t.Errorf("litre scale = %v, want 1e-3", got)
	}
}

func TestPrefixes(t *testing.T) {
	tests := []struct {
		name string
		unit uncertain.Unit
		want float64
	}{
		{name: "KiloMeter", unit: si.Kilo(si.Meter), want: 1e3},
		{name: "MegaHertz", unit: si.Mega(si.Hertz), want: 1e6},
		{name: "MilliVolt", unit: si.Milli(si.Volt), want: 1e-3},
		{name: "MicroSecond", unit: si.Micro(si.Second), want: 1e-6},
		{name: "NanoFarad", unit: si.Nano(si.Farad), want: 1e-9},
		{name: "CentiMeter", unit: si.Centi(si.Meter), want: 1e-2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Scale(); got != tt.want {
				t.Errorf("scale = %v, want %v", got, tt.want)
			}
		})
	}

	// Prefixing never touches the dimension vector.
	if !si.Kilo(si.Watt).Compatible(si.Watt) {
		t.Error("kW is not compatible with W")
	}
}

// A prefixed unit participates in quantity arithmetic like any other unit.
func TestPrefixedQuantity(t *testing.T) {
	pressure, err := uncertain.NewQuantity(101.3, 0.2, si.Kilo(si.Pascal))
	if err != nil {
		t.Fatal(err)
	}
	pascals, err := pressure.ConvertTo(si.Pascal)
	if err != nil {
		t.Fatal(err)
	}
	if got := pascals.Nominal(); got != 101300 {
		t.Errorf("nominal = %v, want 101300", got)
	}
}
