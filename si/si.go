/*
Package si provides the catalogue of SI units: the seven base units, the
coherent derived units with special names, the metric prefixes, and a handful
of accepted non-SI units.

The catalogue is a process-wide constant table: every unit below is an
immutable [uncertain.Unit] value constructed once at package initialisation
through the core's public constructors and operators. Nothing here ever
changes after initialisation, so the variables may be shared freely and must
be treated as constants.

Prefixes are plain functions over units, so prefixed and derived forms
compose naturally:

	pressure, err := uncertain.NewQuantity(101.3, 0.2, si.Kilo(si.Pascal))
*/
package si

import "github.com/go-uncertain/go-uncertain"

// The seven SI base units, one per base dimension.
var (
	Meter    = uncertain.BaseUnit(uncertain.Length)
	Kilogram = uncertain.BaseUnit(uncertain.Mass)
	Second   = uncertain.BaseUnit(uncertain.Time)
	Ampere   = uncertain.BaseUnit(uncertain.Current)
	Kelvin   = uncertain.BaseUnit(uncertain.Temperature)
	Mole     = uncertain.BaseUnit(uncertain.Amount)
	Candela  = uncertain.BaseUnit(uncertain.LuminousIntensity)
)

// Coherent derived units with special names. Each is defined by the same
// exponent arithmetic that defines it on paper, so the catalogue cannot drift
// from the algebra.
var (
	// Radian and Steradian are dimensionless in the SI sense: plane and solid
	// angle carry no base-dimension exponents.
	Radian    = uncertain.Dimensionless
	Steradian = uncertain.Dimensionless

	Hertz   = uncertain.Dimensionless.Div(Second)
	Newton  = Kilogram.Mul(Meter).Div(Second.Pow(uncertain.Integer(2)))
	Pascal  = Newton.Div(Meter.Pow(uncertain.Integer(2)))
	Joule   = Newton.Mul(Meter)
	Watt    = Joule.Div(Second)
	Coulomb = Ampere.Mul(Second)
	Volt    = Watt.Div(Ampere)
	Farad   = Coulomb.Div(Volt)
	Ohm     = Volt.Div(Ampere)
	Siemens = Ampere.Div(Volt)
	Weber   = Volt.Mul(Second)
	Tesla   = Weber.Div(Meter.Pow(uncertain.Integer(2)))
	Henry   = Weber.Div(Ampere)
)

// Accepted non-SI units, expressed by their exact scale relative to the
// coherent unit of the same dimension vector.
var (
	Gram   = Kilogram.Scaled(1e-3)
	Tonne  = Kilogram.Scaled(1e3)
	Minute = Second.Scaled(60)
	Hour   = Second.Scaled(3600)
	Day    = Second.Scaled(86400)
	Litre  = Meter.Pow(uncertain.Integer(3)).Scaled(1e-3)
)

// Metric prefixes. Each returns the given unit scaled by the prefix's exact
// power of ten.

func Tera(u uncertain.Unit) uncertain.Unit  { return u.Scaled(1e12) }
func Giga(u uncertain.Unit) uncertain.Unit  { return u.Scaled(1e9) }
func Mega(u uncertain.Unit) uncertain.Unit  { return u.Scaled(1e6) }
func Kilo(u uncertain.Unit) uncertain.Unit  { return u.Scaled(1e3) }
func Hecto(u uncertain.Unit) uncertain.Unit { return u.Scaled(1e2) }
func Deca(u uncertain.Unit) uncertain.Unit  { return u.Scaled(1e1) }
func Deci(u uncertain.Unit) uncertain.Unit  { return u.Scaled(1e-1) }
func Centi(u uncertain.Unit) uncertain.Unit { return u.Scaled(1e-2) }
func Milli(u uncertain.Unit) uncertain.Unit { return u.Scaled(1e-3) }
func Micro(u uncertain.Unit) uncertain.Unit { return u.Scaled(1e-6) }
func Nano(u uncertain.Unit) uncertain.Unit  { return u.Scaled(1e-9) }
func Pico(u uncertain.Unit) uncertain.Unit  { return u.Scaled(1e-12) }
func Femto(u uncertain.Unit) uncertain.Unit { return u.Scaled(1e-15) }
