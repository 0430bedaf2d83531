package vmath

// Q16.16 Fixed Point constants
// Used by the DDA line walker to accumulate the minor-axis offset
const (
	Shift = 16
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
	// RoundBias is added before truncating back to integer; just under one half
	RoundBias = Half - 1
)

// --- Arithmetic ---

func FromInt(i int) int { return i << Shift }

// ToInt truncates toward negative infinity
func ToInt(f int) int { return f >> Shift }

// ToIntRound rounds to nearest with ties toward negative infinity
func ToIntRound(f int) int { return (f + RoundBias) >> Shift }

// Ratio returns num/den as a Q16.16 value, truncated; 0 if den is 0
func Ratio(num, den int) int {
	if den == 0 {
		return 0
	}
	return (num << Shift) / den
}

// Abs returns absolute value
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
