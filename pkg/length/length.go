package length

import "strconv"

// Length is a magnitude together with a unit. The zero value is 0 meters
// only when constructed via New; prefer the constructors. A Length is a
// plain value: copying never aliases, and every transform returns a new
// value unless the explicit *InPlace variant is used.
type Length struct {
	Value float64
	Unit  Unit

	// original holds the verbatim matched substring when the Length was
	// built by Parse; empty otherwise. Results of transforms do not carry
	// it over.
	original string
}

// New returns a Length representing 0 meters.
func New() Length {
	return Length{Unit: Meter}
}

// NewValueUnit returns a Length with the given value and unit.
func NewValueUnit(value float64, unit Unit) Length {
	return Length{Value: value, Unit: unit}
}

// OriginalString returns the text the Length was parsed from, if it was
// built by Parse, and "" otherwise.
func (l Length) OriginalString() string {
	return l.original
}

// String renders the Length as "<value> <symbol>", with the value in its
// shortest round-trip decimal form.
func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + " " + l.Unit.Symbol()
}

// To converts the Length into the destination unit and returns the result.
//
// Same-unit conversion returns the input unchanged, with no floating-point
// operation performed. Same-system conversion is a single scaling through
// the system's factor table. Cross-system conversion stages through one
// fixed pivot unit per system (meter, yard, lightyear) and then scales
// within the destination system. Conversion never fails; extreme values
// degrade to IEEE-754 infinities.
func (l Length) To(destination Unit) Length {
	if l.Unit == destination {
		return l
	}

	value, unit := l.Value, l.Unit
	if unit.System() != destination.System() {
		switch destination.System() {
		case Astronomic:
			// Imperial sources are expressed in meters first as well, so
			// the lightyear division always happens from the metric pivot.
			meters := l.To(Meter)
			value, unit = meters.Value/lightyearToMeter, Lightyear
		case Imperial:
			switch unit.System() {
			case Astronomic:
				lightyears := l.To(Lightyear)
				value, unit = lightyears.Value*lightyearToMeter/yardToMeter, Yard
			case Metric:
				meters := l.To(Meter)
				value, unit = meters.Value/yardToMeter, Yard
			}
		case Metric:
			switch unit.System() {
			case Astronomic:
				lightyears := l.To(Lightyear)
				value, unit = lightyears.Value*lightyearToMeter, Meter
			case Imperial:
				yards := l.To(Yard)
				value, unit = yards.Value*yardToMeter, Meter
			}
		}
	}

	factor := unit.Factor() * (1.0 / destination.Factor())
	return Length{Value: value * factor, Unit: destination}
}

// ToInPlace converts the Length into the destination unit, mutating the
// receiver. It agrees with To on value and unit.
func (l *Length) ToInPlace(destination Unit) *Length {
	converted := l.To(destination)
	l.Value = converted.Value
	l.Unit = converted.Unit
	return l
}

// Add converts the other Length into the receiver's unit and adds it. The
// result carries the receiver's unit.
func (l Length) Add(other Length) Length {
	rhs := other.To(l.Unit)
	return Length{Value: l.Value + rhs.Value, Unit: l.Unit}
}

// AddInPlace adds the other Length, mutating the receiver.
func (l *Length) AddInPlace(other Length) *Length {
	rhs := other.To(l.Unit)
	l.Value += rhs.Value
	return l
}

// Subtract converts the other Length into the receiver's unit and subtracts
// it. The result carries the receiver's unit.
func (l Length) Subtract(other Length) Length {
	rhs := other.To(l.Unit)
	return Length{Value: l.Value - rhs.Value, Unit: l.Unit}
}

// SubtractInPlace subtracts the other Length, mutating the receiver.
func (l *Length) SubtractInPlace(other Length) *Length {
	rhs := other.To(l.Unit)
	l.Value -= rhs.Value
	return l
}

// MultiplyBy scales the value by a plain numeric factor; the unit is
// unchanged.
func (l Length) MultiplyBy(factor float64) Length {
	return Length{Value: l.Value * factor, Unit: l.Unit}
}

// MultiplyByInPlace scales the value, mutating the receiver.
func (l *Length) MultiplyByInPlace(factor float64) *Length {
	l.Value *= factor
	return l
}

// DivideBy scales the value by the reciprocal of a plain numeric factor;
// the unit is unchanged. Division by zero yields an infinity per IEEE-754,
// not an error.
func (l Length) DivideBy(factor float64) Length {
	return Length{Value: l.Value / factor, Unit: l.Unit}
}

// DivideByInPlace divides the value, mutating the receiver.
func (l *Length) DivideByInPlace(factor float64) *Length {
	l.Value /= factor
	return l
}
