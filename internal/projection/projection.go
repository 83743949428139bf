// Package projection answers planning queries over an academic record:
// required averages for a target CGPA, achievable ceilings, hypothetical
// edits and multi-semester plans. Like the gpa package it is pure; every
// function copies before it modifies.
package projection

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mahir/gradeplan/internal/gpa"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

// RequiredAverageGradePoint solves
//
//	target = (currentQP + remainingCredits*x) / (currentCredits + remainingCredits)
//
// for x, the average grade points needed over the remaining credit hours.
// The result is unrounded; callers round at the output boundary. A target
// outside [0, 4] is invalid; a required average above the scale, or zero
// remaining credits with the target unmet, is infeasible. A target already
// exceeded needs 0.
func RequiredAverageGradePoint(currentQP, currentCredits, targetCGPA, remainingCredits float64) (float64, error) {
	if targetCGPA < 0 || targetCGPA > gpa.MaxGradePoint {
		return 0, fmt.Errorf("%w: %.2f", apperrors.ErrInvalidTarget, targetCGPA)
	}
	if currentCredits < 0 {
		return 0, apperrors.NewValidationError("current credit hours must be non-negative")
	}
	if remainingCredits < 0 {
		return 0, apperrors.NewValidationError("remaining credit hours must be non-negative")
	}

	qp := decimal.NewFromFloat(currentQP)
	credits := decimal.NewFromFloat(currentCredits)
	remaining := decimal.NewFromFloat(remainingCredits)
	target := decimal.NewFromFloat(targetCGPA)

	if remaining.IsZero() {
		current, err := gpa.WeightedAverage(qp, credits)
		if err != nil {
			return 0, err
		}
		if current.GreaterThanOrEqual(target) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: no remaining credit hours", apperrors.ErrInfeasibleTarget)
	}

	// x = (target*(credits+remaining) - qp) / remaining
	needed := target.Mul(credits.Add(remaining)).Sub(qp)
	required := needed.DivRound(remaining, 6)

	if required.GreaterThan(decimal.NewFromFloat(gpa.MaxGradePoint)) {
		return 0, fmt.Errorf("%w: would need %.2f average", apperrors.ErrInfeasibleTarget, required.InexactFloat64())
	}
	if required.IsNegative() {
		return 0, nil
	}
	f, _ := required.Float64()
	return f, nil
}

// MaximumAchievableCGPA is the ceiling CGPA assuming every remaining credit
// hour earns maxGradePoint. With zero remaining credit hours it is the
// current CGPA unchanged. The result is rounded to two places, being a
// published CGPA value.
func MaximumAchievableCGPA(currentQP, currentCredits, remainingCredits, maxGradePoint float64) (float64, error) {
	if remainingCredits < 0 {
		return 0, apperrors.NewValidationError("remaining credit hours must be non-negative")
	}
	if maxGradePoint < 0 || maxGradePoint > gpa.MaxGradePoint {
		return 0, apperrors.NewValidationError("max grade point must be on the grade scale")
	}

	qp := decimal.NewFromFloat(currentQP)
	credits := decimal.NewFromFloat(currentCredits)
	remaining := decimal.NewFromFloat(remainingCredits)

	total := credits.Add(remaining)
	ceiling := qp.Add(remaining.Mul(decimal.NewFromFloat(maxGradePoint)))
	avg, err := gpa.WeightedAverage(ceiling, total)
	if err != nil {
		return 0, err
	}
	return gpa.Round2(avg), nil
}
