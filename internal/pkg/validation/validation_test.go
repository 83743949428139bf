package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCourseCode(t *testing.T) {
	assert.Equal(t, "CSE110", NormalizeCourseCode(" cse110 "))
	assert.Equal(t, "ENG101", NormalizeCourseCode("ENG101"))
}

func TestValidCourseCode(t *testing.T) {
	assert.True(t, ValidCourseCode("CSE110"))
	assert.True(t, ValidCourseCode("HUM101"))
	assert.True(t, ValidCourseCode("XYZB999"))

	assert.False(t, ValidCourseCode("cse110"))
	assert.False(t, ValidCourseCode("C110"))
	assert.False(t, ValidCourseCode("CSE1100"))
	assert.False(t, ValidCourseCode(""))
}

func TestValidSemesterLabel(t *testing.T) {
	assert.True(t, ValidSemesterLabel("Spring 2024"))
	assert.True(t, ValidSemesterLabel(""))
	assert.False(t, ValidSemesterLabel(strings.Repeat("x", SemesterLabelMaxLength+1)))
}
