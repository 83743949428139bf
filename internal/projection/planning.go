package projection

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mahir/gradeplan/internal/gpa"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

// CreditsPerPlannedCourse is the credit value assumed for planned courses.
const CreditsPerPlannedCourse = 3

// PlanResult describes a plan of future semesters against a target CGPA.
type PlanResult struct {
	PlannedCourses  int      `json:"plannedCourses"`
	PlannedCredits  int      `json:"plannedCredits"`
	MaxCGPA         float64  `json:"maxCgpa"`
	RequiredAverage *float64 `json:"requiredAverage,omitempty"`
	Achievable      bool     `json:"achievable"`
}

// PlanSemesters sizes a plan of numSemesters semesters with coursesPerSemester
// courses each (3 credits apiece), capped by the credits left in the degree,
// and reports the ceiling CGPA under the plan. With a target it also reports
// the average grade points the planned courses must reach; Achievable is
// false when that average exceeds the scale.
func PlanSemesters(currentQP, currentCredits float64, targetCGPA *float64, numSemesters, coursesPerSemester, totalRequiredCredits int) (PlanResult, error) {
	if numSemesters < 0 || coursesPerSemester < 0 {
		return PlanResult{}, apperrors.NewValidationError("semester and course counts must be non-negative")
	}
	if totalRequiredCredits <= 0 {
		return PlanResult{}, apperrors.NewValidationError("total required credits must be positive")
	}
	if targetCGPA != nil && (*targetCGPA < 0 || *targetCGPA > gpa.MaxGradePoint) {
		return PlanResult{}, fmt.Errorf("%w: %.2f", apperrors.ErrInvalidTarget, *targetCGPA)
	}

	remaining := totalRequiredCredits - int(currentCredits)
	if remaining < 0 {
		remaining = 0
	}

	planned := numSemesters * coursesPerSemester
	if maxCourses := (remaining + CreditsPerPlannedCourse - 1) / CreditsPerPlannedCourse; planned > maxCourses {
		planned = maxCourses
	}
	plannedCredits := planned * CreditsPerPlannedCourse
	if plannedCredits > remaining {
		plannedCredits = remaining
	}

	result := PlanResult{PlannedCourses: planned, PlannedCredits: plannedCredits, Achievable: true}

	qp := decimal.NewFromFloat(currentQP)
	credits := decimal.NewFromFloat(currentCredits)
	plannedDec := decimal.NewFromInt(int64(plannedCredits))
	total := credits.Add(plannedDec)

	maxQP := qp.Add(plannedDec.Mul(decimal.NewFromFloat(gpa.MaxGradePoint)))
	if maxAvg, err := gpa.WeightedAverage(maxQP, total); err == nil {
		result.MaxCGPA = gpa.Round2(maxAvg)
	}

	if targetCGPA == nil || plannedCredits == 0 {
		return result, nil
	}

	needed := decimal.NewFromFloat(*targetCGPA).Mul(total).Sub(qp)
	required := needed.DivRound(plannedDec, 6)
	if required.IsNegative() {
		required = decimal.Zero
	}
	if required.GreaterThan(decimal.NewFromFloat(gpa.MaxGradePoint)) {
		result.Achievable = false
	}

	avg := gpa.Round2(required)
	result.RequiredAverage = &avg
	return result, nil
}
