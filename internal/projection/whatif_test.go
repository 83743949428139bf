package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahir/gradeplan/internal/app/models"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

func testRecord() *models.AcademicRecord {
	return &models.AcademicRecord{
		Program: "CSE",
		Entries: []models.RecordEntry{
			{CourseCode: "CSE110", Grade: "A", GradePoint: 4.0, CreditHours: 3, Semester: "Spring 2023"},
			{CourseCode: "CSE111", Grade: "C", GradePoint: 2.0, CreditHours: 3, Semester: "Fall 2023"},
		},
	}
}

func TestWhatIfAddImprovesCGPA(t *testing.T) {
	record := testRecord()

	result, err := WhatIf(record, Edit{
		Op:          EditAdd,
		CourseCode:  "CSE220",
		Grade:       "A",
		CreditHours: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, result.CurrentCGPA)
	assert.Equal(t, 3.33, result.ProjectedCGPA)
	assert.InDelta(t, 0.33, result.Delta, 1e-9)
}

func TestWhatIfDoesNotMutateInput(t *testing.T) {
	record := testRecord()

	_, err := WhatIf(record, Edit{Op: EditAdd, CourseCode: "CSE220", Grade: "A", CreditHours: 3})
	require.NoError(t, err)

	assert.Len(t, record.Entries, 2)
}

func TestWhatIfAddDuplicate(t *testing.T) {
	_, err := WhatIf(testRecord(), Edit{Op: EditAdd, CourseCode: "CSE110", Grade: "A", CreditHours: 3})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEntry)
}

func TestWhatIfRetake(t *testing.T) {
	record := testRecord()

	result, err := WhatIf(record, Edit{Op: EditRetake, CourseCode: "CSE111", Grade: "A"})
	require.NoError(t, err)

	// Retake replaces the counted attempt: (12 + 12) / 6 = 4.0
	assert.Equal(t, 4.0, result.ProjectedCGPA)
	require.Len(t, result.Record.Entries, 3)
	retake := result.Record.Entries[2]
	assert.True(t, retake.Retake)
	assert.Equal(t, PlannedSemester, retake.Semester)
	// Credits inherited from the earlier attempt.
	assert.Equal(t, 3.0, retake.CreditHours)
}

func TestWhatIfRetakeOfUnknownCourse(t *testing.T) {
	_, err := WhatIf(testRecord(), Edit{Op: EditRetake, CourseCode: "CSE999", Grade: "A"})
	assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
}

func TestWhatIfRemove(t *testing.T) {
	result, err := WhatIf(testRecord(), Edit{Op: EditRemove, CourseCode: "CSE111"})
	require.NoError(t, err)

	assert.Equal(t, 4.0, result.ProjectedCGPA)
	assert.Len(t, result.Record.Entries, 1)
}

func TestWhatIfRemoveMissing(t *testing.T) {
	_, err := WhatIf(testRecord(), Edit{Op: EditRemove, CourseCode: "CSE999"})
	assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
}

func TestWhatIfUpdateGrade(t *testing.T) {
	result, err := WhatIf(testRecord(), Edit{Op: EditUpdateGrade, CourseCode: "CSE111", Grade: "B+"})
	require.NoError(t, err)

	// (12 + 9.9) / 6 = 3.65
	assert.Equal(t, 3.65, result.ProjectedCGPA)
}

func TestWhatIfNoOpDeltaIsZero(t *testing.T) {
	result, err := WhatIf(testRecord(), Edit{Op: EditUpdateGrade, CourseCode: "CSE111", Grade: "C"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Delta)
}

func TestWhatIfRequiresGradeInput(t *testing.T) {
	_, err := WhatIf(testRecord(), Edit{Op: EditUpdateGrade, CourseCode: "CSE110"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = WhatIf(testRecord(), Edit{Op: EditAdd, CourseCode: "CSE220", CreditHours: 3})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = WhatIf(testRecord(), Edit{Op: EditRetake, CourseCode: "CSE111"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestWhatIfExplicitZeroPoints(t *testing.T) {
	zero := 0.0
	result, err := WhatIf(testRecord(), Edit{Op: EditUpdateGrade, CourseCode: "CSE110", GradePoint: &zero})
	require.NoError(t, err)

	// (0 + 6) / 6 = 1.0
	assert.Equal(t, "F", result.Record.Entries[0].Grade)
	assert.Equal(t, 1.0, result.ProjectedCGPA)
}

func TestWhatIfInvalidGrade(t *testing.T) {
	_, err := WhatIf(testRecord(), Edit{Op: EditAdd, CourseCode: "CSE220", Grade: "Z", CreditHours: 3})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)
}

func TestWhatIfUnknownOp(t *testing.T) {
	_, err := WhatIf(testRecord(), Edit{Op: "replace", CourseCode: "CSE110"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSimulateRetakes(t *testing.T) {
	record := testRecord()

	result, err := SimulateRetakes(record, map[string]float64{"CSE111": 4.0})
	require.NoError(t, err)

	assert.Equal(t, 4.0, result.SimulatedCGPA)
	assert.InDelta(t, 1.0, result.Improvement, 1e-9)
}

func TestSimulateRetakesIgnoresUnknownCodes(t *testing.T) {
	result, err := SimulateRetakes(testRecord(), map[string]float64{"CSE999": 4.0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.SimulatedCGPA)
	assert.Equal(t, 0.0, result.Improvement)
}

func TestSimulateRetakesRejectsOffScalePoints(t *testing.T) {
	_, err := SimulateRetakes(testRecord(), map[string]float64{"CSE111": 4.5})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)
}

func TestSimulateRetakesEmptyRecord(t *testing.T) {
	record := &models.AcademicRecord{Program: "CSE"}
	_, err := SimulateRetakes(record, map[string]float64{"CSE111": 4.0})
	assert.ErrorIs(t, err, apperrors.ErrEmptyInput)
}
