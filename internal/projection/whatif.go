package projection

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mahir/gradeplan/internal/app/models"
	"github.com/mahir/gradeplan/internal/gpa"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

// PlannedSemester labels hypothetical entries that do not belong to a real
// semester yet.
const PlannedSemester = models.PlannedSemester

// EditOp identifies a hypothetical record edit.
type EditOp string

const (
	EditAdd         EditOp = "add"
	EditRemove      EditOp = "remove"
	EditUpdateGrade EditOp = "update_grade"
	EditRetake      EditOp = "retake"
)

// Edit is one hypothetical change to a record. Add, retake and grade-update
// edits need a letter grade or explicit grade points; a nil GradePoint means
// none were given.
type Edit struct {
	Op          EditOp
	CourseCode  string
	CourseName  string
	Grade       string
	GradePoint  *float64
	CreditHours float64
	Semester    string
}

// WhatIfResult compares the CGPA before and after a hypothetical edit.
type WhatIfResult struct {
	CurrentCGPA   float64               `json:"currentCgpa"`
	ProjectedCGPA float64               `json:"projectedCgpa"`
	Delta         float64               `json:"delta"`
	Record        *models.AcademicRecord `json:"record,omitempty"`
}

// WhatIf applies an edit to a copy of the record, recomputes the CGPA and
// returns the projected value with its delta. The caller's record is never
// touched; the hypothetical record is returned for display.
func WhatIf(record *models.AcademicRecord, edit Edit) (WhatIfResult, error) {
	hyp := record.Clone()
	if err := apply(hyp, edit); err != nil {
		return WhatIfResult{}, err
	}

	current := cgpaOrZero(record)
	projected := cgpaOrZero(hyp)

	// Subtract through decimal so a no-op edit yields an exact zero.
	delta, _ := decimal.NewFromFloat(projected).Sub(decimal.NewFromFloat(current)).Float64()

	return WhatIfResult{
		CurrentCGPA:   current,
		ProjectedCGPA: projected,
		Delta:         delta,
		Record:        hyp,
	}, nil
}

func apply(record *models.AcademicRecord, edit Edit) error {
	switch edit.Op {
	case EditAdd:
		if record.Find(edit.CourseCode) >= 0 {
			return fmt.Errorf("%w: %s (use a retake edit)", apperrors.ErrDuplicateEntry, edit.CourseCode)
		}
		entry, err := newEntry(edit, false)
		if err != nil {
			return err
		}
		record.Entries = append(record.Entries, entry)
		return nil

	case EditRetake:
		if record.Find(edit.CourseCode) < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrEntryNotFound, edit.CourseCode)
		}
		entry, err := newEntry(edit, true)
		if err != nil {
			return err
		}
		if entry.CreditHours == 0 {
			entry.CreditHours = record.Entries[record.Find(edit.CourseCode)].CreditHours
		}
		record.Entries = append(record.Entries, entry)
		return nil

	case EditRemove:
		kept := record.Entries[:0]
		removed := false
		for _, e := range record.Entries {
			if e.CourseCode == edit.CourseCode {
				removed = true
				continue
			}
			kept = append(kept, e)
		}
		if !removed {
			return fmt.Errorf("%w: %s", apperrors.ErrEntryNotFound, edit.CourseCode)
		}
		record.Entries = kept
		return nil

	case EditUpdateGrade:
		i := record.Find(edit.CourseCode)
		if i < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrEntryNotFound, edit.CourseCode)
		}
		grade, points, err := resolveGrade(edit)
		if err != nil {
			return err
		}
		record.Entries[i].Grade = grade
		record.Entries[i].GradePoint = points
		return nil

	default:
		return apperrors.NewValidationError("unknown edit operation")
	}
}

// newEntry builds the hypothetical entry for add and retake edits.
func newEntry(edit Edit, retake bool) (models.RecordEntry, error) {
	grade, points, err := resolveGrade(edit)
	if err != nil {
		return models.RecordEntry{}, err
	}
	if edit.CreditHours < 0 {
		return models.RecordEntry{}, apperrors.NewValidationError("credit hours must be non-negative")
	}
	semester := edit.Semester
	if semester == "" {
		semester = PlannedSemester
	}
	return models.RecordEntry{
		CourseCode:  edit.CourseCode,
		CourseName:  edit.CourseName,
		Grade:       grade,
		GradePoint:  points,
		CreditHours: edit.CreditHours,
		Semester:    semester,
		Retake:      retake,
	}, nil
}

// resolveGrade reconciles the edit's letter and grade points. Explicit points
// win and a bare letter implies its points; an edit carrying neither is
// rejected rather than silently graded at zero.
func resolveGrade(edit Edit) (string, float64, error) {
	if edit.Grade != "" && !gpa.ValidLetter(edit.Grade) {
		return "", 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidGrade, edit.Grade)
	}

	if edit.GradePoint != nil {
		points := *edit.GradePoint
		if points < 0 || points > gpa.MaxGradePoint {
			return "", 0, fmt.Errorf("%w: grade point %.2f", apperrors.ErrInvalidGrade, points)
		}
		if edit.Grade == "" {
			return gpa.LetterForPoints(points), points, nil
		}
		return edit.Grade, points, nil
	}

	if edit.Grade == "" {
		return "", 0, apperrors.NewValidationError("a letter grade or grade points are required")
	}
	points, _ := gpa.PointsForLetter(edit.Grade)
	return edit.Grade, points, nil
}

// cgpaOrZero treats an empty record as CGPA 0 so deltas against an empty
// baseline stay defined.
func cgpaOrZero(record *models.AcademicRecord) float64 {
	value, err := gpa.CumulativeCGPA(record)
	if err != nil {
		return 0
	}
	return value
}

// RetakeSimulation is the outcome of re-grading a set of counted attempts.
type RetakeSimulation struct {
	SimulatedCGPA float64 `json:"simulatedCgpa"`
	Improvement   float64 `json:"improvement"`
}

// SimulateRetakes recomputes the CGPA with the counted attempt of each listed
// course re-graded to the given grade points. Codes absent from the record
// are ignored, matching a planner exploring partial retake sets.
func SimulateRetakes(record *models.AcademicRecord, retakes map[string]float64) (RetakeSimulation, error) {
	for code, points := range retakes {
		if points < 0 || points > gpa.MaxGradePoint {
			return RetakeSimulation{}, fmt.Errorf("%w: %s at %.2f", apperrors.ErrInvalidGrade, code, points)
		}
	}

	counted := gpa.CountedEntries(record.Entries)
	var qp, credits decimal.Decimal
	for _, e := range counted {
		points := e.GradePoint
		if simulated, ok := retakes[e.CourseCode]; ok {
			points = simulated
		}
		qp = qp.Add(decimal.NewFromFloat(points).Mul(decimal.NewFromFloat(e.CreditHours)))
		credits = credits.Add(decimal.NewFromFloat(e.CreditHours))
	}

	avg, err := gpa.WeightedAverage(qp, credits)
	if err != nil {
		return RetakeSimulation{}, err
	}

	simulated := gpa.Round2(avg)
	current := cgpaOrZero(record)
	improvement, _ := decimal.NewFromFloat(simulated).Sub(decimal.NewFromFloat(current)).Float64()
	return RetakeSimulation{SimulatedCGPA: simulated, Improvement: improvement}, nil
}
