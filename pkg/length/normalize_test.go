package length

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		value    float64
		unit     Unit
		expected float64
		expUnit  Unit
	}{
		// Steps up while the converted value stays >= 1.
		{5000, Meter, 5, Kilometer},
		{1500, Meter, 1.5, Kilometer},
		{63360, Inch, 1, Mile},
		{365.25, Lightday, 1, Lightyear},

		// Already readable: no-op.
		{5, Kilometer, 5, Kilometer},
		{500, Kilometer, 500, Kilometer}, // 0.5 Mm would drop below 1
		{1, Meter, 1, Meter},
		{999, Yard, 999, Yard}, // 0.57 mi would drop below 1

		// Steps down while the value is below 1.
		{0.5, Meter, 5, Decimeter},
		{0.003, Kilometer, 3, Meter},
		{0.5, Foot, 6, Inch},
		{0.5, Lightminute, 30, Lightsecond},

		// Ladder ends: stays put even when still outside [1, ...).
		{0.5, Yoctometer, 0.5, Yoctometer},
		{0.25, Inch, 0.25, Inch},
		{0.1, AstronomicalUnit, 0.1, AstronomicalUnit},
	}
	for _, tt := range tests {
		got := NewValueUnit(tt.value, tt.unit).Normalize()
		if got.Unit != tt.expUnit {
			t.Errorf("Normalize(%v %v): unit = %v, want %v", tt.value, tt.unit, got.Unit, tt.expUnit)
			continue
		}
		if !approxEqual(got.Value, tt.expected, 1e-12) {
			t.Errorf("Normalize(%v %v): value = %v, want ~%v", tt.value, tt.unit, got.Value, tt.expected)
		}
	}
}

func TestNormalizeExactVectors(t *testing.T) {
	got := NewValueUnit(5000, Meter).Normalize()
	if got.Value != 5.0 || got.Unit != Kilometer {
		t.Errorf("Normalize(5000 m) = %v, want 5 km", got)
	}
}

func TestNormalizeLargeUpperEnd(t *testing.T) {
	// A huge magnitude walks to the top of the ladder and stops there.
	got := NewValueUnit(2.5e3, Yottameter).Normalize()
	if got.Unit != Yottameter {
		t.Errorf("Normalize stopped at %v, want Ym", got.Unit)
	}
	if got.Value != 2.5e3 {
		t.Errorf("Normalize changed value at ladder end: %v", got.Value)
	}
}

func TestNormalizeIterationCap(t *testing.T) {
	// Needs more than ten down-steps to reach a value >= 1; the cap stops
	// the walk after ten, which happens to land exactly on yoctometers.
	got := NewValueUnit(1e-30, Meter).Normalize()
	if got.Unit != Yoctometer {
		t.Errorf("Normalize(1e-30 m): unit = %v, want ym", got.Unit)
	}
	if got.Value >= 1.0 {
		t.Errorf("Normalize(1e-30 m): value = %v, want < 1", got.Value)
	}
}

func TestNormalizeTentativeStepDiscarded(t *testing.T) {
	// 999 m converts to 0.999 km, which drops below 1: the tentative step
	// is discarded and 999 m kept, even though a greater unit exists.
	got := NewValueUnit(999, Meter).Normalize()
	if got.Unit != Hectometer || !approxEqual(got.Value, 9.99, 1e-12) {
		// 999 m -> 99.9 dam -> 9.99 hm -> 0.999 km (discarded)
		t.Errorf("Normalize(999 m) = %v %v, want ~9.99 hm", got.Value, got.Unit)
	}
}

func TestNormalizeInPlace(t *testing.T) {
	l, err := Parse("5000m")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	result := l.NormalizeInPlace()
	if result != &l {
		t.Error("NormalizeInPlace did not return the receiver")
	}
	if l.Value != 5.0 || l.Unit != Kilometer {
		t.Errorf("NormalizeInPlace: got %v %v, want 5 km", l.Value, l.Unit)
	}
	// In-place transforms keep the original string.
	if l.OriginalString() != "5000m" {
		t.Errorf("NormalizeInPlace dropped original string: %q", l.OriginalString())
	}
}

func TestNormalizeAgreement(t *testing.T) {
	values := []Length{
		NewValueUnit(5000, Meter),
		NewValueUnit(0.5, Meter),
		NewValueUnit(720, Inch),
		NewValueUnit(0.25, Lightyear),
	}
	for _, l := range values {
		byValue := l.Normalize()
		inPlace := l
		inPlace.NormalizeInPlace()
		if byValue.Value != inPlace.Value || byValue.Unit != inPlace.Unit {
			t.Errorf("Normalize(%v): value form %v, in-place form %v", l, byValue, inPlace)
		}
	}
}
