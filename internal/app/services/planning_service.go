package services

import (
	"github.com/shopspring/decimal"

	"github.com/mahir/gradeplan/internal/app/models"
	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/catalog"
	"github.com/mahir/gradeplan/internal/gpa"
	"github.com/mahir/gradeplan/internal/pkg/validation"
	"github.com/mahir/gradeplan/internal/projection"
	"github.com/mahir/gradeplan/internal/session"
)

// PlanningService answers projection queries against a session's record
type PlanningService struct {
	store   *session.Store
	catalog *catalog.Catalog
}

// NewPlanningService creates a new planning service instance
func NewPlanningService(store *session.Store, cat *catalog.Catalog) *PlanningService {
	return &PlanningService{
		store:   store,
		catalog: cat,
	}
}

// standing is the record's current totals as plain floats for the projection
// math, plus the rounded CGPA for display.
type standing struct {
	qualityPoints float64
	creditHours   float64
	cgpa          float64
}

func (s *PlanningService) standingFor(sessionID string) (*models.AcademicRecord, standing, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, standing{}, err
	}

	qp, credits := gpa.RecordTotals(record)
	st := standing{
		qualityPoints: qp.InexactFloat64(),
		creditHours:   credits.InexactFloat64(),
	}
	if cgpa, err := gpa.CumulativeCGPA(record); err == nil {
		st.cgpa = cgpa
	}
	return record, st, nil
}

// remainingCredits resolves the remaining credit hours for a projection:
// the explicit request value when given, otherwise the credits left in the
// session's degree program.
func (s *PlanningService) remainingCredits(record *models.AcademicRecord, requested *float64, completed float64) (float64, error) {
	if requested != nil {
		return *requested, nil
	}
	program, err := s.catalog.Requirements(record.Program)
	if err != nil {
		return 0, err
	}
	remaining := float64(program.TotalCredits) - completed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Target reports the average grade points the remaining credit hours must
// earn to reach the target CGPA, with the letter grade at that level and the
// ceiling still reachable.
func (s *PlanningService) Target(sessionID string, req *dto.TargetRequest) (*dto.TargetResponse, error) {
	record, st, err := s.standingFor(sessionID)
	if err != nil {
		return nil, err
	}

	remaining, err := s.remainingCredits(record, req.RemainingCredits, st.creditHours)
	if err != nil {
		return nil, err
	}

	required, err := projection.RequiredAverageGradePoint(st.qualityPoints, st.creditHours, *req.TargetCGPA, remaining)
	if err != nil {
		return nil, err
	}
	ceiling, err := projection.MaximumAchievableCGPA(st.qualityPoints, st.creditHours, remaining, gpa.MaxGradePoint)
	if err != nil {
		return nil, err
	}

	resp := &dto.TargetResponse{
		CurrentCGPA:      st.cgpa,
		CurrentCredits:   st.creditHours,
		RemainingCredits: remaining,
		RequiredAverage:  roundGradePoint(required),
		RequiredGrade:    gpa.LetterForPoints(required),
		MaxPossibleCGPA:  ceiling,
	}
	return resp, nil
}

// Ceiling reports the best CGPA still reachable over the remaining credit
// hours, assuming every one of them earns MaxGradePoint unless capped lower.
func (s *PlanningService) Ceiling(sessionID string, req *dto.CeilingRequest) (*dto.CeilingResponse, error) {
	record, st, err := s.standingFor(sessionID)
	if err != nil {
		return nil, err
	}

	remaining, err := s.remainingCredits(record, req.RemainingCredits, st.creditHours)
	if err != nil {
		return nil, err
	}
	maxPoint := gpa.MaxGradePoint
	if req.MaxGradePoint != nil {
		maxPoint = *req.MaxGradePoint
	}

	ceiling, err := projection.MaximumAchievableCGPA(st.qualityPoints, st.creditHours, remaining, maxPoint)
	if err != nil {
		return nil, err
	}

	return &dto.CeilingResponse{
		CurrentCGPA:      st.cgpa,
		CurrentCredits:   st.creditHours,
		RemainingCredits: remaining,
		MaxPossibleCGPA:  ceiling,
	}, nil
}

// WhatIf applies a hypothetical edit to a copy of the record and reports the
// CGPA movement. The stored record is never modified.
func (s *PlanningService) WhatIf(sessionID string, req *dto.WhatIfRequest) (*projection.WhatIfResult, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}

	edit := projection.Edit{
		Op:          projection.EditOp(req.Op),
		CourseCode:  validation.NormalizeCourseCode(req.CourseCode),
		CourseName:  req.CourseName,
		Grade:       req.Grade,
		GradePoint:  req.GradePoint,
		CreditHours: req.CreditHours,
		Semester:    req.Semester,
	}
	if edit.CreditHours == 0 && edit.Op == projection.EditAdd {
		edit.CreditHours = float64(s.catalog.Credits(edit.CourseCode))
	}

	result, err := projection.WhatIf(record, edit)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Retakes simulates re-grading a set of courses and reports the CGPA with
// the improvement over the current value.
func (s *PlanningService) Retakes(sessionID string, req *dto.RetakesRequest) (*projection.RetakeSimulation, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}

	retakes := make(map[string]float64, len(req.Retakes))
	for code, points := range req.Retakes {
		retakes[validation.NormalizeCourseCode(code)] = points
	}

	result, err := projection.SimulateRetakes(record, retakes)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Plan sizes a plan of future semesters against the degree requirement and,
// with a target CGPA, reports the average the planned courses must reach.
func (s *PlanningService) Plan(sessionID string, req *dto.PlanRequest) (*projection.PlanResult, error) {
	record, st, err := s.standingFor(sessionID)
	if err != nil {
		return nil, err
	}
	program, err := s.catalog.Requirements(record.Program)
	if err != nil {
		return nil, err
	}

	result, err := projection.PlanSemesters(st.qualityPoints, st.creditHours,
		req.TargetCGPA, req.Semesters, req.CoursesPerSemester, program.TotalCredits)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// roundGradePoint rounds a grade-point value to two places for display.
func roundGradePoint(points float64) float64 {
	return gpa.Round2(decimal.NewFromFloat(points))
}
