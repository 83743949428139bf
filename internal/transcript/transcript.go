// Package transcript implements the interchange format for academic records.
// It is the contract external collaborators target: gradesheet extractors
// hand parsed courses to the API in this shape, and exports round-trip back
// into an identical record.
package transcript

import (
	"fmt"

	"github.com/mahir/gradeplan/internal/app/models"
	"github.com/mahir/gradeplan/internal/gpa"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

// Course is one course line of a transcript.
type Course struct {
	CourseCode string  `json:"course_code" binding:"required"`
	Grade      string  `json:"grade"`
	GPA        float64 `json:"gpa" binding:"gte=0,lte=4"`
	Credits    float64 `json:"credits" binding:"gte=0"`
	Semester   string  `json:"semester"`
}

// Transcript is the serialized form of an academic record.
type Transcript struct {
	StudentName string   `json:"student_name"`
	StudentID   string   `json:"student_id"`
	Program     string   `json:"program" binding:"required"`
	Courses     []Course `json:"courses" binding:"dive"`
}

// FromRecord serializes a record, retakes and history included, preserving
// entry order so ToRecord reconstructs an equivalent record.
func FromRecord(record *models.AcademicRecord) *Transcript {
	t := &Transcript{
		StudentName: record.StudentName,
		StudentID:   record.StudentID,
		Program:     record.Program,
		Courses:     make([]Course, 0, len(record.Entries)),
	}
	for _, e := range record.Entries {
		t.Courses = append(t.Courses, Course{
			CourseCode: e.CourseCode,
			Grade:      e.Grade,
			GPA:        e.GradePoint,
			Credits:    e.CreditHours,
			Semester:   e.Semester,
		})
	}
	return t
}

// ToRecord validates a transcript and builds the record it describes. A
// repeated course code becomes a retake attempt. A course with a letter grade
// but no grade points gets the points of the letter. Missing credits stay
// zero; the importer resolves them against its catalog.
func (t *Transcript) ToRecord() (*models.AcademicRecord, error) {
	record := &models.AcademicRecord{
		StudentName: t.StudentName,
		StudentID:   t.StudentID,
		Program:     t.Program,
		Entries:     make([]models.RecordEntry, 0, len(t.Courses)),
	}

	seen := make(map[string]bool, len(t.Courses))
	for i, c := range t.Courses {
		if c.CourseCode == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("course %d has no code", i))
		}
		if c.GPA < 0 || c.GPA > gpa.MaxGradePoint {
			return nil, fmt.Errorf("%w: %s has grade point %.2f", apperrors.ErrInvalidGrade, c.CourseCode, c.GPA)
		}
		points := c.GPA
		if c.Grade != "" {
			letterPoints, ok := gpa.PointsForLetter(c.Grade)
			if !ok {
				return nil, fmt.Errorf("%w: %s graded %q", apperrors.ErrInvalidGrade, c.CourseCode, c.Grade)
			}
			if points == 0 {
				points = letterPoints
			}
		}
		semester := c.Semester
		if semester == "" {
			semester = models.PlannedSemester
		}

		record.Entries = append(record.Entries, models.RecordEntry{
			CourseCode:  c.CourseCode,
			Grade:       c.Grade,
			GradePoint:  points,
			CreditHours: c.Credits,
			Semester:    semester,
			Retake:      seen[c.CourseCode],
		})
		seen[c.CourseCode] = true
	}

	return record, nil
}
