package models

// PlannedSemester labels entries that do not belong to a real semester yet:
// hypothetical additions and retakes from the planning tools.
const PlannedSemester = "PLANNED"

// RecordEntry is a single completed or planned course attempt in an academic
// record. Multiple entries may share a course code (retakes); which attempt
// counts toward the CGPA is decided by the gpa package, not stored here.
type RecordEntry struct {
	CourseCode  string  `json:"courseCode"`
	CourseName  string  `json:"courseName,omitempty"`
	Grade       string  `json:"grade"`
	GradePoint  float64 `json:"gradePoint"`
	CreditHours float64 `json:"creditHours"`
	Semester    string  `json:"semester"`
	Retake      bool    `json:"retake,omitempty"`
}

// AcademicRecord is the ordered sequence of entries for one session.
// It is a plain value: engines receive it as input and never mutate it;
// mutation happens only through the session store.
type AcademicRecord struct {
	StudentName string        `json:"studentName,omitempty"`
	StudentID   string        `json:"studentId,omitempty"`
	Program     string        `json:"program"`
	Entries     []RecordEntry `json:"entries"`
}

// Clone returns a deep copy of the record.
func (r *AcademicRecord) Clone() *AcademicRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.Entries = make([]RecordEntry, len(r.Entries))
	copy(c.Entries, r.Entries)
	return &c
}

// Find returns the index of the most recent entry for the given course code,
// or -1 when the code never appears.
func (r *AcademicRecord) Find(courseCode string) int {
	for i := len(r.Entries) - 1; i >= 0; i-- {
		if r.Entries[i].CourseCode == courseCode {
			return i
		}
	}
	return -1
}

// CompletedCodes returns the distinct course codes present in the record,
// in first-seen order.
func (r *AcademicRecord) CompletedCodes() []string {
	seen := make(map[string]struct{}, len(r.Entries))
	codes := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		if _, ok := seen[e.CourseCode]; ok {
			continue
		}
		seen[e.CourseCode] = struct{}{}
		codes = append(codes, e.CourseCode)
	}
	return codes
}
