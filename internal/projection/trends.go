package projection

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mahir/gradeplan/internal/app/models"
	"github.com/mahir/gradeplan/internal/gpa"
)

// SemesterTrend is one semester's slice of the GPA/CGPA history.
type SemesterTrend struct {
	Semester    string  `json:"semester"`
	GPA         float64 `json:"gpa"`
	CGPA        float64 `json:"cgpa"`
	CreditHours float64 `json:"creditHours"`
	Courses     int     `json:"courses"`
}

var seasonOrder = map[string]int{"SPRING": 1, "SUMMER": 2, "FALL": 3}

// semesterSortKey orders labels like "Spring 2023" by year then season;
// unparseable labels and the planned semester sort last.
func semesterSortKey(label string) (int, int) {
	upper := strings.ToUpper(strings.TrimSpace(label))
	if upper == PlannedSemester {
		return 9999, 99
	}
	parts := strings.Fields(upper)
	if len(parts) < 2 {
		return 9999, 99
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 9999, 99
	}
	season, ok := seasonOrder[parts[0]]
	if !ok {
		season = 99
	}
	return year, season
}

// SortSemesters orders semester labels chronologically.
func SortSemesters(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		yi, si := semesterSortKey(labels[i])
		yj, sj := semesterSortKey(labels[j])
		if yi != yj {
			return yi < yj
		}
		return si < sj
	})
}

// Trends returns the per-semester GPA and running CGPA history in semester
// order. The running CGPA at each semester applies the retake policy to
// everything taken up to and including it.
func Trends(record *models.AcademicRecord) []SemesterTrend {
	bySemester := make(map[string][]models.RecordEntry)
	var labels []string
	for _, e := range record.Entries {
		if _, seen := bySemester[e.Semester]; !seen {
			labels = append(labels, e.Semester)
		}
		bySemester[e.Semester] = append(bySemester[e.Semester], e)
	}
	SortSemesters(labels)

	trends := make([]SemesterTrend, 0, len(labels))
	var taken []models.RecordEntry
	for _, label := range labels {
		entries := bySemester[label]
		taken = append(taken, entries...)

		trend := SemesterTrend{Semester: label, Courses: len(entries)}
		if semGPA, err := gpa.SemesterGPA(entries); err == nil {
			trend.GPA = semGPA
		}
		_, credits := gpa.Totals(entries)
		trend.CreditHours = gpa.Round2(credits)

		counted := gpa.CountedEntries(taken)
		qp, total := gpa.Totals(counted)
		if running, err := gpa.WeightedAverage(qp, total); err == nil {
			trend.CGPA = gpa.Round2(running)
		}

		trends = append(trends, trend)
	}
	return trends
}

// PerformanceStats summarizes a record for the stats panel.
type PerformanceStats struct {
	TotalCourses   int     `json:"totalCourses"`
	TotalCredits   float64 `json:"totalCredits"`
	CurrentCGPA    float64 `json:"currentCgpa"`
	HighestGPA     float64 `json:"highestGpa"`
	LowestGPA      float64 `json:"lowestGpa"`
	AverageGPA     float64 `json:"averageGpa"`
	CoursesAbove35 int     `json:"coursesAbove35"`
	CoursesBelow20 int     `json:"coursesBelow20"`
}

// Stats computes performance statistics over the counted record. The
// highest/lowest/average figures consider only attempts with positive grade
// points, as zero marks planned courses without grades yet.
func Stats(record *models.AcademicRecord) PerformanceStats {
	counted := gpa.CountedEntries(record.Entries)
	_, credits := gpa.Totals(counted)

	stats := PerformanceStats{
		TotalCourses: len(counted),
		TotalCredits: gpa.Round2(credits),
		CurrentCGPA:  cgpaOrZero(record),
	}

	var sum decimal.Decimal
	graded := 0
	for _, e := range counted {
		if e.GradePoint <= 0 {
			continue
		}
		graded++
		sum = sum.Add(decimal.NewFromFloat(e.GradePoint))
		if e.GradePoint > stats.HighestGPA {
			stats.HighestGPA = e.GradePoint
		}
		if stats.LowestGPA == 0 || e.GradePoint < stats.LowestGPA {
			stats.LowestGPA = e.GradePoint
		}
		if e.GradePoint >= 3.5 {
			stats.CoursesAbove35++
		}
		if e.GradePoint < 2.0 {
			stats.CoursesBelow20++
		}
	}
	if graded > 0 {
		stats.AverageGPA = gpa.Round2(sum.DivRound(decimal.NewFromInt(int64(graded)), 6))
	}
	return stats
}

// GradeDistribution counts letter grades across the whole record, history
// included, so retaken attempts remain visible.
func GradeDistribution(record *models.AcademicRecord) map[string]int {
	dist := make(map[string]int)
	for _, e := range record.Entries {
		if e.Grade == "" {
			continue
		}
		dist[e.Grade]++
	}
	return dist
}
