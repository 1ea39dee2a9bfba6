package grade

// LetterGrade is the categorical grade derived from an average.
type LetterGrade string

const (
	LetterA LetterGrade = "A"
	LetterB LetterGrade = "B"
	LetterC LetterGrade = "C"
	LetterD LetterGrade = "D"
	LetterF LetterGrade = "F"
)

// Lower bounds of the letter bands, inclusive.
const (
	ThresholdA = 90.0
	ThresholdB = 80.0
	ThresholdC = 70.0
	ThresholdD = 60.0

	// PassingAverage is the minimum average that passes.
	PassingAverage = ThresholdD
	// HonorRollAverage is the minimum average for the honor roll.
	HonorRollAverage = ThresholdA
)

// IsValid checks that the letter is on the A-F scale.
func (l LetterGrade) IsValid() bool {
	switch l {
	case LetterA, LetterB, LetterC, LetterD, LetterF:
		return true
	default:
		return false
	}
}

// String returns the letter.
func (l LetterGrade) String() string {
	return string(l)
}

// LetterFor maps an average onto a letter. Comparisons are exact, no rounding.
func LetterFor(average float64) LetterGrade {
	switch {
	case average >= ThresholdA:
		return LetterA
	case average >= ThresholdB:
		return LetterB
	case average >= ThresholdC:
		return LetterC
	case average >= ThresholdD:
		return LetterD
	default:
		return LetterF
	}
}

// IsPassing reports whether an average passes.
func IsPassing(average float64) bool {
	return average >= PassingAverage
}

// IsHonorRoll reports whether an average qualifies for the honor roll.
func IsHonorRoll(average float64) bool {
	return average >= HonorRollAverage
}
