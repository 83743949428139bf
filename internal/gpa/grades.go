// Package gpa implements the grade-point arithmetic: the letter-grade scale,
// quality points, semester GPA, cumulative CGPA and category breakdowns.
// Every function is pure; records are inputs, never mutated. Sums run on
// fixed-precision decimals and results are rounded to two places only at the
// output boundary.
package gpa

// MaxGradePoint is the top of the grade-point scale.
const MaxGradePoint = 4.0

// gradePoints maps letter grades to grade points. W (withdrawal) and
// I (incomplete) carry zero points and are excluded from all averages.
var gradePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "F": 0.0,
	"W": 0.0, "I": 0.0,
}

// Letters lists the accepted letter grades in scale order.
var Letters = []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "F", "W", "I"}

// PointsForLetter converts a letter grade to grade points. The second return
// is false for letters outside the scale.
func PointsForLetter(letter string) (float64, bool) {
	points, ok := gradePoints[letter]
	return points, ok
}

// LetterForPoints converts grade points back to the letter awarded at that
// level.
func LetterForPoints(points float64) string {
	switch {
	case points >= 4.0:
		return "A+"
	case points >= 3.7:
		return "A-"
	case points >= 3.3:
		return "B+"
	case points >= 3.0:
		return "B"
	case points >= 2.7:
		return "B-"
	case points >= 2.3:
		return "C+"
	case points >= 2.0:
		return "C"
	case points >= 1.7:
		return "C-"
	case points >= 1.3:
		return "D+"
	case points >= 1.0:
		return "D"
	default:
		return "F"
	}
}

// ValidLetter reports whether the letter is on the grade scale.
func ValidLetter(letter string) bool {
	_, ok := gradePoints[letter]
	return ok
}

// Countable reports whether an attempt with this letter contributes to
// averages. An empty letter counts: planned entries carry grade points
// without a letter. W and I never count.
func Countable(letter string) bool {
	return letter != "W" && letter != "I"
}
