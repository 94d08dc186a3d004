// Package length implements a length-measurement value type: parsing,
// conversion between metric, imperial, and astronomic units, arithmetic,
// and normalization to the most readable unit for a magnitude.
package length

import (
	"fmt"
	"math"
)

// System identifies which of the three measurement systems a unit belongs to.
type System int

const (
	Metric System = iota
	Imperial
	Astronomic
)

func (s System) String() string {
	switch s {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	case Astronomic:
		return "astronomic"
	}
	return "unknown"
}

// Unit is one of the 34 supported length units. Units are declared in
// ascending magnitude order within each system, so ladder neighbors are
// adjacent enum values.
type Unit int

const (
	// Metric, yoctometer through yottameter, one decimal order apart.
	Yoctometer Unit = iota
	Zeptometer
	Attometer
	Femtometer
	Picometer
	Nanometer
	Micrometer
	Millimeter
	Centimeter
	Decimeter
	Meter
	Decameter
	Hectometer
	Kilometer
	Megameter
	Gigameter
	Terameter
	Petameter
	Exameter
	Zettameter
	Yottameter

	// Imperial, factors expressed in inches.
	Inch
	Foot
	Yard
	Mile

	// Astronomic, factors expressed in lightyears.
	AstronomicalUnit
	Lightsecond
	Lightminute
	Lighthour
	Lightday
	Lightyear
	Parsec
	Kiloparsec
	Megaparsec

	unitCount
)

// Cross-system bridge constants. The lightyear is derived from the Julian
// year (365.25 days) and the defined speed of light; the astronomical unit
// and parsec follow the IAU definitions.
const (
	yardToMeter      = 0.9144
	lightyearToMeter = 9_460_730_472_580_800.0

	auToLightyear        = 149_597_870_700.0 / lightyearToMeter
	lightdayToLightyear  = 1.0 / 365.25
	lighthourToLightyear = 1.0 / (365.25 * 24.0)
	lightminToLightyear  = 1.0 / (365.25 * 24.0 * 60.0)
	lightsecToLightyear  = 1.0 / (365.25 * 24.0 * 60.0 * 60.0)
	parsecToAU           = 648_000.0 / math.Pi
	parsecToLightyear    = auToLightyear * parsecToAU
)

// unitTable holds the per-unit metadata: canonical symbol, full name,
// owning system, and multiplicative factor relative to the system's
// reference unit (meter, inch, lightyear).
var unitTable = [unitCount]struct {
	symbol string
	name   string
	system System
	factor float64
}{
	Yoctometer: {"ym", "yoctometer", Metric, 1e-24},
	Zeptometer: {"zm", "zeptometer", Metric, 1e-21},
	Attometer:  {"am", "attometer", Metric, 1e-18},
	Femtometer: {"fm", "femtometer", Metric, 1e-15},
	Picometer:  {"pm", "picometer", Metric, 1e-12},
	Nanometer:  {"nm", "nanometer", Metric, 1e-9},
	Micrometer: {"µm", "micrometer", Metric, 1e-6},
	Millimeter: {"mm", "millimeter", Metric, 1e-3},
	Centimeter: {"cm", "centimeter", Metric, 1e-2},
	Decimeter:  {"dm", "decimeter", Metric, 1e-1},
	Meter:      {"m", "meter", Metric, 1},
	Decameter:  {"dam", "decameter", Metric, 1e1},
	Hectometer: {"hm", "hectometer", Metric, 1e2},
	Kilometer:  {"km", "kilometer", Metric, 1e3},
	Megameter:  {"Mm", "megameter", Metric, 1e6},
	Gigameter:  {"Gm", "gigameter", Metric, 1e9},
	Terameter:  {"Tm", "terameter", Metric, 1e12},
	Petameter:  {"Pm", "petameter", Metric, 1e15},
	Exameter:   {"Em", "exameter", Metric, 1e18},
	Zettameter: {"Zm", "zettameter", Metric, 1e21},
	Yottameter: {"Ym", "yottameter", Metric, 1e24},

	Inch: {"in", "inch", Imperial, 1},
	Foot: {"ft", "foot", Imperial, 12},
	Yard: {"yd", "yard", Imperial, 36},
	Mile: {"mi", "mile", Imperial, 63360},

	AstronomicalUnit: {"au", "astronomical unit", Astronomic, auToLightyear},
	Lightsecond:      {"ls", "lightsecond", Astronomic, lightsecToLightyear},
	Lightminute:      {"lm", "lightminute", Astronomic, lightminToLightyear},
	Lighthour:        {"lh", "lighthour", Astronomic, lighthourToLightyear},
	Lightday:         {"ld", "lightday", Astronomic, lightdayToLightyear},
	Lightyear:        {"ly", "lightyear", Astronomic, 1},
	Parsec:           {"pc", "parsec", Astronomic, parsecToLightyear},
	Kiloparsec:       {"kpc", "kiloparsec", Astronomic, parsecToLightyear * 1_000},
	Megaparsec:       {"Mpc", "megaparsec", Astronomic, parsecToLightyear * 1_000_000},
}

// symbolTable is the inverse of the symbol column, built once at startup.
// Symbols are case-sensitive and unique across all three systems.
var symbolTable = make(map[string]Unit, unitCount)

func init() {
	for u := 0; u < int(unitCount); u++ {
		symbolTable[unitTable[u].symbol] = Unit(u)
	}
}

// Factor returns the unit's multiplicative factor relative to its own
// system's reference unit.
func (u Unit) Factor() float64 {
	return unitTable[u].factor
}

// System returns the measurement system the unit belongs to.
func (u Unit) System() System {
	return unitTable[u].system
}

// Symbol returns the canonical short textual symbol, e.g. "km", "mi", "ly".
func (u Unit) Symbol() string {
	return unitTable[u].symbol
}

// Name returns the unit's full name, e.g. "kilometer", "mile", "lightyear".
func (u Unit) Name() string {
	return unitTable[u].name
}

func (u Unit) String() string {
	return u.Symbol()
}

// ParseSymbol is the inverse of Symbol. It fails with ErrUnknownSymbol when
// the string matches no known unit symbol.
func ParseSymbol(s string) (Unit, error) {
	u, ok := symbolTable[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
	}
	return u, nil
}

// Smaller returns the next-smaller unit within the same system, or ok=false
// at the lower end of the system's ladder.
func (u Unit) Smaller() (Unit, bool) {
	switch u {
	case Yoctometer, Inch, AstronomicalUnit:
		return 0, false
	}
	return u - 1, true
}

// Greater returns the next-greater unit within the same system, or ok=false
// at the upper end of the system's ladder.
func (u Unit) Greater() (Unit, bool) {
	switch u {
	case Yottameter, Mile, Megaparsec:
		return 0, false
	}
	return u + 1, true
}

// Units returns all units belonging to the given system, smallest first.
func Units(s System) []Unit {
	units := make([]Unit, 0, 21)
	for u := 0; u < int(unitCount); u++ {
		if Unit(u).System() == s {
			units = append(units, Unit(u))
		}
	}
	return units
}
