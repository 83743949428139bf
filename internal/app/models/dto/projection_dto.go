package dto

// TargetRequest asks what average grade points the remaining credit hours
// must earn to reach the target CGPA. Without RemainingCredits the credits
// left in the degree program are used.
type TargetRequest struct {
	TargetCGPA       *float64 `json:"targetCgpa" binding:"required,gte=0,lte=4"`
	RemainingCredits *float64 `json:"remainingCredits" binding:"omitempty,gte=0"`
}

// TargetResponse answers a target query.
type TargetResponse struct {
	CurrentCGPA      float64 `json:"currentCgpa"`
	CurrentCredits   float64 `json:"currentCredits"`
	RemainingCredits float64 `json:"remainingCredits"`
	RequiredAverage  float64 `json:"requiredAverage"`
	RequiredGrade    string  `json:"requiredGrade" example:"B+"`
	MaxPossibleCGPA  float64 `json:"maxPossibleCgpa"`
}

// CeilingRequest asks for the best CGPA still reachable.
type CeilingRequest struct {
	RemainingCredits *float64 `json:"remainingCredits" binding:"omitempty,gte=0"`
	MaxGradePoint    *float64 `json:"maxGradePoint" binding:"omitempty,gte=0,lte=4"`
}

// CeilingResponse answers a ceiling query.
type CeilingResponse struct {
	CurrentCGPA      float64 `json:"currentCgpa"`
	CurrentCredits   float64 `json:"currentCredits"`
	RemainingCredits float64 `json:"remainingCredits"`
	MaxPossibleCGPA  float64 `json:"maxPossibleCgpa"`
}

// WhatIfRequest describes one hypothetical record edit.
type WhatIfRequest struct {
	Op          string   `json:"op" binding:"required,oneof=add remove update_grade retake"`
	CourseCode  string   `json:"courseCode" binding:"required"`
	CourseName  string   `json:"courseName"`
	Grade       string   `json:"grade" binding:"omitempty,lettergrade"`
	GradePoint  *float64 `json:"gradePoint" binding:"omitempty,gte=0,lte=4"`
	CreditHours float64  `json:"creditHours" binding:"omitempty,gt=0"`
	Semester    string   `json:"semester"`
}

// RetakesRequest simulates retaking a set of courses at new grade points.
type RetakesRequest struct {
	Retakes map[string]float64 `json:"retakes" binding:"required,min=1"`
}

// PlanRequest sizes a plan of future semesters.
type PlanRequest struct {
	Semesters          int      `json:"semesters" binding:"required,gte=1"`
	CoursesPerSemester int      `json:"coursesPerSemester" binding:"required,gte=1"`
	TargetCGPA         *float64 `json:"targetCgpa" binding:"omitempty,gte=0,lte=4"`
}
