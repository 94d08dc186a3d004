package length

// normalizeMaxSteps bounds the ladder walk. The longest ladder has 21
// units, but a malformed neighbor table must not loop forever.
const normalizeMaxSteps = 10

// Normalize picks the most readable unit for the magnitude by walking the
// same-system ladder: while the value is below 1 it steps down to smaller
// units as long as one exists, and while it is at least 1 it steps up to
// greater units, keeping a step only if the converted value is still at
// least 1. The walk never crosses systems and stops after at most ten
// steps or at either end of the ladder.
//
// The down and up branches are deliberately asymmetric: stepping down is
// unconditional while the value is below 1, but a tentative step up is
// discarded if it would drop the value below 1.
func (l Length) Normalize() Length {
	normalized := l

	done := false
	for iterations := 0; !done && iterations < normalizeMaxSteps; iterations++ {
		if normalized.Value < 1.0 {
			smaller, ok := normalized.Unit.Smaller()
			if !ok {
				done = true
				continue
			}
			normalized.ToInPlace(smaller)
		} else {
			greater, ok := normalized.Unit.Greater()
			if !ok {
				done = true
				continue
			}
			stepped := normalized.To(greater)
			if stepped.Value >= 1.0 {
				normalized = stepped
			} else {
				done = true
			}
		}
	}

	return normalized
}

// NormalizeInPlace normalizes the Length, mutating the receiver. It agrees
// with Normalize on value and unit.
func (l *Length) NormalizeInPlace() *Length {
	normalized := l.Normalize()
	l.Value = normalized.Value
	l.Unit = normalized.Unit
	return l
}
