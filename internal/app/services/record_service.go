package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mahir/gradeplan/internal/app/models"
	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/catalog"
	"github.com/mahir/gradeplan/internal/gpa"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
	"github.com/mahir/gradeplan/internal/pkg/validation"
	"github.com/mahir/gradeplan/internal/projection"
	"github.com/mahir/gradeplan/internal/session"
	"github.com/mahir/gradeplan/internal/transcript"
)

// RecordService handles academic record operations for a session
type RecordService struct {
	store   *session.Store
	catalog *catalog.Catalog
}

// NewRecordService creates a new record service instance
func NewRecordService(store *session.Store, cat *catalog.Catalog) *RecordService {
	return &RecordService{
		store:   store,
		catalog: cat,
	}
}

// resolveGradeInput reconciles a letter grade with explicit grade points.
// Explicit points win; a bare letter implies its points; bare points imply
// the letter awarded at that level.
func resolveGradeInput(grade string, gradePoint *float64) (string, float64, error) {
	if grade != "" && !gpa.ValidLetter(grade) {
		return "", 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidGrade, grade)
	}

	if gradePoint != nil {
		points := *gradePoint
		if points < 0 || points > gpa.MaxGradePoint {
			return "", 0, fmt.Errorf("%w: grade point %.2f", apperrors.ErrInvalidGrade, points)
		}
		if grade == "" {
			grade = gpa.LetterForPoints(points)
		}
		return grade, points, nil
	}

	if grade == "" {
		return "", 0, apperrors.NewValidationError("a letter grade or grade points are required")
	}
	points, _ := gpa.PointsForLetter(grade)
	return grade, points, nil
}

// validateEntryRequest checks the course code and semester label shape.
func (s *RecordService) validateEntryRequest(code, semester string) error {
	if !validation.ValidCourseCode(code) {
		return apperrors.NewValidationError(fmt.Sprintf("malformed course code: %s", code))
	}
	if !validation.ValidSemesterLabel(semester) {
		return apperrors.NewValidationError("semester label too long")
	}
	return nil
}

// AddEntry appends a course attempt to the session's record. A code already
// present must come in flagged as a retake; a retake of a course never taken
// is rejected.
func (s *RecordService) AddEntry(sessionID string, req *dto.AddEntryRequest) (*models.RecordEntry, error) {
	code := validation.NormalizeCourseCode(req.CourseCode)
	if err := s.validateEntryRequest(code, req.Semester); err != nil {
		return nil, err
	}

	grade, points, err := resolveGradeInput(req.Grade, req.GradePoint)
	if err != nil {
		return nil, err
	}

	credits := req.CreditHours
	if credits == 0 {
		credits = float64(s.catalog.Credits(code))
	}
	semester := req.Semester
	if semester == "" {
		semester = models.PlannedSemester
	}

	entry := models.RecordEntry{
		CourseCode:  code,
		Grade:       grade,
		GradePoint:  points,
		CreditHours: credits,
		Semester:    semester,
		Retake:      req.Retake,
	}
	if course, ok := s.catalog.Course(code); ok {
		entry.CourseName = course.Name
	}

	err = s.store.Update(sessionID, func(record *models.AcademicRecord) error {
		exists := record.Find(code) >= 0
		if exists && !req.Retake {
			return fmt.Errorf("%w: %s (flag the attempt as a retake)", apperrors.ErrDuplicateEntry, code)
		}
		if !exists && req.Retake {
			return fmt.Errorf("%w: %s has no earlier attempt", apperrors.ErrEntryNotFound, code)
		}
		record.Entries = append(record.Entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateGrade changes the grade of the most recent attempt of a course.
func (s *RecordService) UpdateGrade(sessionID, courseCode string, req *dto.UpdateGradeRequest) (*models.RecordEntry, error) {
	code := validation.NormalizeCourseCode(courseCode)
	grade, points, err := resolveGradeInput(req.Grade, req.GradePoint)
	if err != nil {
		return nil, err
	}

	var updated models.RecordEntry
	err = s.store.Update(sessionID, func(record *models.AcademicRecord) error {
		i := record.Find(code)
		if i < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrEntryNotFound, code)
		}
		record.Entries[i].Grade = grade
		record.Entries[i].GradePoint = points
		updated = record.Entries[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveEntry deletes every attempt of a course from the record.
func (s *RecordService) RemoveEntry(sessionID, courseCode string) error {
	code := validation.NormalizeCourseCode(courseCode)
	return s.store.Update(sessionID, func(record *models.AcademicRecord) error {
		kept := record.Entries[:0]
		removed := false
		for _, e := range record.Entries {
			if e.CourseCode == code {
				removed = true
				continue
			}
			kept = append(kept, e)
		}
		if !removed {
			return fmt.Errorf("%w: %s", apperrors.ErrEntryNotFound, code)
		}
		record.Entries = kept
		return nil
	})
}

// Record returns a snapshot of the session's record.
func (s *RecordService) Record(sessionID string) (*models.AcademicRecord, error) {
	return s.store.Snapshot(sessionID)
}

// Summary aggregates the record: CGPA, totals, per-semester GPAs, category
// breakdown and degree progress.
func (s *RecordService) Summary(sessionID string) (*dto.RecordSummaryResponse, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}

	qp, credits := gpa.RecordTotals(record)
	summary := &dto.RecordSummaryResponse{
		CreditHours:   gpa.Round2(credits),
		QualityPoints: gpa.Round2(qp),
		Categories:    gpa.CategoryBreakdown(record, s.catalog),
	}
	if cgpa, err := gpa.CumulativeCGPA(record); err == nil {
		summary.CGPA = cgpa
	}

	bySemester := make(map[string][]models.RecordEntry)
	var labels []string
	for _, e := range record.Entries {
		if _, seen := bySemester[e.Semester]; !seen {
			labels = append(labels, e.Semester)
		}
		bySemester[e.Semester] = append(bySemester[e.Semester], e)
	}
	projection.SortSemesters(labels)
	for _, label := range labels {
		entries := bySemester[label]
		data := dto.SemesterGPAData{Semester: label}
		if semGPA, err := gpa.SemesterGPA(entries); err == nil {
			data.GPA = semGPA
		}
		_, semCredits := gpa.Totals(entries)
		data.CreditHours = gpa.Round2(semCredits)
		summary.Semesters = append(summary.Semesters, data)
	}

	progress, err := s.degreeProgress(record, credits)
	if err != nil {
		return nil, err
	}
	summary.Progress = progress

	return summary, nil
}

// degreeProgress measures counted credit hours against the program total.
func (s *RecordService) degreeProgress(record *models.AcademicRecord, creditHours decimal.Decimal) (dto.DegreeProgress, error) {
	program, err := s.catalog.Requirements(record.Program)
	if err != nil {
		return dto.DegreeProgress{}, err
	}

	total := decimal.NewFromInt(int64(program.TotalCredits))
	remaining := total.Sub(creditHours)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	progress := dto.DegreeProgress{
		Program:          program.Code,
		CreditsCompleted: gpa.Round2(creditHours),
		TotalRequired:    program.TotalCredits,
		RemainingCredits: gpa.Round2(remaining),
	}
	if !total.IsZero() {
		percent := creditHours.Mul(decimal.NewFromInt(100)).DivRound(total, 6)
		progress.PercentComplete = gpa.Round2(percent)
	}
	return progress, nil
}

// Trends returns the per-semester GPA and running CGPA history.
func (s *RecordService) Trends(sessionID string) ([]projection.SemesterTrend, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	return projection.Trends(record), nil
}

// Stats returns performance statistics over the record.
func (s *RecordService) Stats(sessionID string) (*projection.PerformanceStats, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	stats := projection.Stats(record)
	return &stats, nil
}

// Distribution counts letter grades across the record, history included.
func (s *RecordService) Distribution(sessionID string) (map[string]int, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	return projection.GradeDistribution(record), nil
}

// Unlocked lists the catalog courses whose prerequisites the record
// satisfies. Exempt or unlisted codes in the record are ignored.
func (s *RecordService) Unlocked(sessionID string) ([]catalog.Course, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	completed := s.catalog.Known(record.CompletedCodes())
	return s.catalog.UnlockedCourses(completed)
}

// GenEdPlan proposes general-education courses for the uncovered streams.
func (s *RecordService) GenEdPlan(sessionID string) (*catalog.GenEdPlan, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	program, err := s.catalog.Requirements(record.Program)
	if err != nil {
		return nil, err
	}

	slots := program.GeneralEdCredits / catalog.DefaultCredits
	plan := s.catalog.PlanGeneralEducation(record.CompletedCodes(), slots)
	return &plan, nil
}

// Export serializes the record as a transcript.
func (s *RecordService) Export(sessionID string) (*transcript.Transcript, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	return transcript.FromRecord(record), nil
}

// Import replaces the session's record with the one a transcript describes
// and returns the number of imported attempts.
func (s *RecordService) Import(sessionID string, t *transcript.Transcript) (int, error) {
	if _, err := s.catalog.Requirements(t.Program); err != nil {
		return 0, err
	}
	if len(t.Courses) == 0 {
		return 0, apperrors.NewBadRequestError("transcript has no courses")
	}
	imported, err := t.ToRecord()
	if err != nil {
		return 0, err
	}
	for i := range imported.Entries {
		e := &imported.Entries[i]
		e.CourseCode = validation.NormalizeCourseCode(e.CourseCode)
		if e.CreditHours == 0 {
			e.CreditHours = float64(s.catalog.Credits(e.CourseCode))
		}
	}

	err = s.store.Update(sessionID, func(record *models.AcademicRecord) error {
		*record = *imported
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(imported.Entries), nil
}
