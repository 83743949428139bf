package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

func TestRequiredAverageGradePoint(t *testing.T) {
	// 60 credits at CGPA 3.0 (180 quality points), target 3.25 over 40 more.
	// x = (3.25*100 - 180) / 40 = 3.625
	required, err := RequiredAverageGradePoint(180, 60, 3.25, 40)
	require.NoError(t, err)
	assert.InDelta(t, 3.625, required, 1e-9)
}

func TestRequiredAverageRoundTrip(t *testing.T) {
	// Earning exactly the required average must land on the target.
	currentQP, currentCredits := 150.6, 48.0
	target, remaining := 3.4, 30.0

	required, err := RequiredAverageGradePoint(currentQP, currentCredits, target, remaining)
	require.NoError(t, err)

	achieved := (currentQP + required*remaining) / (currentCredits + remaining)
	assert.InDelta(t, target, achieved, 1e-6)
}

func TestRequiredAverageTargetAlreadyExceeded(t *testing.T) {
	// CGPA 3.9, target 2.0: nothing more is needed.
	required, err := RequiredAverageGradePoint(117, 30, 2.0, 30)
	require.NoError(t, err)
	assert.Equal(t, 0.0, required)
}

func TestRequiredAverageInvalidTarget(t *testing.T) {
	_, err := RequiredAverageGradePoint(90, 30, 4.5, 30)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTarget)

	_, err = RequiredAverageGradePoint(90, 30, -0.1, 30)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTarget)
}

func TestRequiredAverageInfeasible(t *testing.T) {
	// CGPA 2.0 over 100 credits, target 3.9 with 10 credits left.
	_, err := RequiredAverageGradePoint(200, 100, 3.9, 10)
	assert.ErrorIs(t, err, apperrors.ErrInfeasibleTarget)
}

func TestRequiredAverageNoRemainingCredits(t *testing.T) {
	// Target met: fine. Target unmet: infeasible.
	required, err := RequiredAverageGradePoint(105, 30, 3.5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, required)

	_, err = RequiredAverageGradePoint(90, 30, 3.5, 0)
	assert.ErrorIs(t, err, apperrors.ErrInfeasibleTarget)
}

func TestRequiredAverageNegativeCredits(t *testing.T) {
	_, err := RequiredAverageGradePoint(90, 30, 3.0, -5)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = RequiredAverageGradePoint(90, -30, 3.0, 5)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMaximumAchievableCGPA(t *testing.T) {
	// 180 QP over 60 credits, 40 credits of straight A+ left:
	// (180 + 160) / 100 = 3.4
	ceiling, err := MaximumAchievableCGPA(180, 60, 40, 4.0)
	require.NoError(t, err)
	assert.Equal(t, 3.4, ceiling)
}

func TestMaximumAchievableCGPANoRemainingCredits(t *testing.T) {
	// Nothing left means the CGPA is frozen.
	ceiling, err := MaximumAchievableCGPA(180, 60, 0, 4.0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, ceiling)
}

func TestMaximumAchievableCGPAValidation(t *testing.T) {
	_, err := MaximumAchievableCGPA(180, 60, -1, 4.0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = MaximumAchievableCGPA(180, 60, 10, 4.5)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
