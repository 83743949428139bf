package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Course code pattern - department letters plus a three digit number
	CourseCodePattern = `^[A-Z]{2,4}\d{3}$`

	// Semester label max length
	SemesterLabelMaxLength = 40
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// NormalizeCourseCode uppercases and trims a course code.
func NormalizeCourseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCourseCode reports whether a normalized code looks like a course code.
// Exempt or unlisted courses still follow the code shape.
func ValidCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(code)
}

// ValidSemesterLabel bounds free-form semester labels.
func ValidSemesterLabel(label string) bool {
	return len(label) <= SemesterLabelMaxLength
}
