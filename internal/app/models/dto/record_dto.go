package dto

import "github.com/mahir/gradeplan/internal/gpa"

// AddEntryRequest adds a completed or planned course to the record. Either a
// letter grade or explicit grade points must be given; the other is derived.
type AddEntryRequest struct {
	CourseCode  string   `json:"courseCode" binding:"required"`
	Grade       string   `json:"grade" binding:"omitempty,lettergrade"`
	GradePoint  *float64 `json:"gradePoint" binding:"omitempty,gte=0,lte=4"`
	CreditHours float64  `json:"creditHours" binding:"omitempty,gt=0"`
	Semester    string   `json:"semester"`
	Retake      bool     `json:"retake"`
}

// UpdateGradeRequest changes the grade of the most recent attempt of a course.
type UpdateGradeRequest struct {
	Grade      string   `json:"grade" binding:"omitempty,lettergrade"`
	GradePoint *float64 `json:"gradePoint" binding:"omitempty,gte=0,lte=4"`
}

// SemesterGPAData is one semester's GPA in the record summary.
type SemesterGPAData struct {
	Semester    string  `json:"semester"`
	GPA         float64 `json:"gpa"`
	CreditHours float64 `json:"creditHours"`
}

// DegreeProgress reports credits completed against the program requirement.
type DegreeProgress struct {
	Program          string  `json:"program" example:"CSE"`
	CreditsCompleted float64 `json:"creditsCompleted" example:"51"`
	TotalRequired    int     `json:"totalRequired" example:"136"`
	RemainingCredits float64 `json:"remainingCredits" example:"85"`
	PercentComplete  float64 `json:"percentComplete" example:"37.5"`
}

// RecordSummaryResponse is the aggregate view of a record.
type RecordSummaryResponse struct {
	CGPA          float64               `json:"cgpa"`
	CreditHours   float64               `json:"creditHours"`
	QualityPoints float64               `json:"qualityPoints"`
	Semesters     []SemesterGPAData     `json:"semesters"`
	Categories    []gpa.CategorySummary `json:"categories"`
	Progress      DegreeProgress        `json:"progress"`
}
