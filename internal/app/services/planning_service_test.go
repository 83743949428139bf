package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
	"github.com/mahir/gradeplan/internal/projection"
)

func TestTargetDefaultsToDegreeRemaining(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A", Semester: "Fall 2023"})

	resp, err := planSvc.Target(id, &dto.TargetRequest{TargetCGPA: fptr(3.0)})
	require.NoError(t, err)

	// 3 of 136 credits done, so 133 remain by default.
	assert.Equal(t, 133.0, resp.RemainingCredits)
	assert.Equal(t, 4.0, resp.CurrentCGPA)
	// required = (3.0*136 - 12) / 133 = 2.977...
	assert.Equal(t, 2.98, resp.RequiredAverage)
	assert.Equal(t, "B-", resp.RequiredGrade)
	assert.Equal(t, 4.0, resp.MaxPossibleCGPA)
}

func TestTargetExplicitRemainingCredits(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C", Semester: "Fall 2023"})

	resp, err := planSvc.Target(id, &dto.TargetRequest{
		TargetCGPA:       fptr(3.0),
		RemainingCredits: fptr(3),
	})
	require.NoError(t, err)

	// (3.0*6 - 6) / 3 = 4.0, just on the scale.
	assert.Equal(t, 3.0, resp.RemainingCredits)
	assert.Equal(t, 4.0, resp.RequiredAverage)
	assert.Equal(t, "A+", resp.RequiredGrade)
}

func TestTargetInfeasible(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "F", Semester: "Fall 2023"})

	_, err := planSvc.Target(id, &dto.TargetRequest{
		TargetCGPA:       fptr(3.9),
		RemainingCredits: fptr(3),
	})
	assert.ErrorIs(t, err, apperrors.ErrInfeasibleTarget)
}

func TestCeiling(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C", Semester: "Fall 2023"})

	resp, err := planSvc.Ceiling(id, &dto.CeilingRequest{RemainingCredits: fptr(3)})
	require.NoError(t, err)

	// (6 + 12) / 6 = 3.0
	assert.Equal(t, 2.0, resp.CurrentCGPA)
	assert.Equal(t, 3.0, resp.MaxPossibleCGPA)
}

func TestCeilingCappedGradePoint(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C", Semester: "Fall 2023"})

	resp, err := planSvc.Ceiling(id, &dto.CeilingRequest{
		RemainingCredits: fptr(3),
		MaxGradePoint:    fptr(3.0),
	})
	require.NoError(t, err)

	// (6 + 9) / 6 = 2.5
	assert.Equal(t, 2.5, resp.MaxPossibleCGPA)
}

func TestWhatIfNormalizesCourseCode(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C", Semester: "Fall 2023"})

	result, err := planSvc.WhatIf(id, &dto.WhatIfRequest{Op: "update_grade", CourseCode: "cse110", Grade: "A"})
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.ProjectedCGPA)
	assert.Equal(t, 2.0, result.CurrentCGPA)
}

func TestWhatIfAddUsesCatalogCredits(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A", Semester: "Fall 2023"})

	result, err := planSvc.WhatIf(id, &dto.WhatIfRequest{Op: "add", CourseCode: "CSE400", Grade: "B"})
	require.NoError(t, err)

	// (12 + 4*3.0) / 7 = 3.43
	assert.Equal(t, 3.43, result.ProjectedCGPA)
}

func TestWhatIfWithoutGradeInput(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A", Semester: "Fall 2023"})

	_, err := planSvc.WhatIf(id, &dto.WhatIfRequest{Op: "update_grade", CourseCode: "CSE110"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestWhatIfExplicitGradePoint(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C", Semester: "Fall 2023"})

	result, err := planSvc.WhatIf(id, &dto.WhatIfRequest{Op: "update_grade", CourseCode: "CSE110", GradePoint: fptr(3.7)})
	require.NoError(t, err)
	assert.Equal(t, 3.7, result.ProjectedCGPA)
}

func TestRetakesSimulation(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C", Semester: "Fall 2023"})
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE111", Grade: "A", Semester: "Fall 2023"})

	result, err := planSvc.Retakes(id, &dto.RetakesRequest{Retakes: map[string]float64{"cse110": 4.0}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.SimulatedCGPA)
	assert.Equal(t, 1.0, result.Improvement)
}

func TestPlanUsesDegreeTotal(t *testing.T) {
	recordSvc, planSvc, id := newTestEnv(t)
	addEntry(t, recordSvc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "B", Semester: "Fall 2023"})

	result, err := planSvc.Plan(id, &dto.PlanRequest{Semesters: 2, CoursesPerSemester: 4})
	require.NoError(t, err)

	assert.Equal(t, 8, result.PlannedCourses)
	assert.Equal(t, 24, result.PlannedCredits)
	assert.True(t, result.Achievable)
}

func TestPlanningUnknownSession(t *testing.T) {
	_, planSvc, _ := newTestEnv(t)

	_, err := planSvc.Target("missing", &dto.TargetRequest{TargetCGPA: fptr(3.0)})
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	_, err = planSvc.WhatIf("missing", &dto.WhatIfRequest{Op: string(projection.EditAdd), CourseCode: "CSE110", Grade: "A"})
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
