package gpa

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mahir/gradeplan/internal/app/models"
	"github.com/mahir/gradeplan/internal/catalog"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

// CountedEntries applies the retake policy to a full record: for every course
// code, the most recent countable attempt is the one that contributes to the
// CGPA. Earlier attempts and W/I attempts are dropped, so credit hours are
// never double-counted. Order of the surviving attempts follows the record.
func CountedEntries(entries []models.RecordEntry) []models.RecordEntry {
	winner := make(map[string]int, len(entries))
	for i, e := range entries {
		if !Countable(e.Grade) {
			continue
		}
		winner[e.CourseCode] = i
	}

	idx := make([]int, 0, len(winner))
	for _, i := range winner {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	counted := make([]models.RecordEntry, 0, len(idx))
	for _, i := range idx {
		counted = append(counted, entries[i])
	}
	return counted
}

// QualityPoints returns grade points times credit hours for one entry.
func QualityPoints(e models.RecordEntry) decimal.Decimal {
	return decimal.NewFromFloat(e.GradePoint).Mul(decimal.NewFromFloat(e.CreditHours))
}

// Totals sums quality points and credit hours over the given entries. W/I
// attempts are skipped; no retake deduplication is applied here.
func Totals(entries []models.RecordEntry) (qualityPoints, creditHours decimal.Decimal) {
	for _, e := range entries {
		if !Countable(e.Grade) {
			continue
		}
		qualityPoints = qualityPoints.Add(QualityPoints(e))
		creditHours = creditHours.Add(decimal.NewFromFloat(e.CreditHours))
	}
	return qualityPoints, creditHours
}

// RecordTotals sums quality points and credit hours over the counted record.
func RecordTotals(record *models.AcademicRecord) (qualityPoints, creditHours decimal.Decimal) {
	return Totals(CountedEntries(record.Entries))
}

// WeightedAverage divides quality points by credit hours without rounding.
func WeightedAverage(qualityPoints, creditHours decimal.Decimal) (decimal.Decimal, error) {
	if creditHours.IsZero() {
		return decimal.Zero, apperrors.ErrEmptyInput
	}
	// 6 digits keeps the division exact enough for any later 2-place rounding.
	return qualityPoints.DivRound(creditHours, 6), nil
}

// SemesterGPA computes the credit-weighted grade-point average of the given
// entries, which are expected to belong to a single semester.
func SemesterGPA(entries []models.RecordEntry) (float64, error) {
	qp, credits := Totals(entries)
	avg, err := WeightedAverage(qp, credits)
	if err != nil {
		return 0, err
	}
	return Round2(avg), nil
}

// CumulativeCGPA computes the credit-weighted mean over the counted record.
func CumulativeCGPA(record *models.AcademicRecord) (float64, error) {
	qp, credits := RecordTotals(record)
	avg, err := WeightedAverage(qp, credits)
	if err != nil {
		return 0, err
	}
	return Round2(avg), nil
}

// CategorySummary is the per-category slice of a record.
type CategorySummary struct {
	Category      catalog.Category `json:"category"`
	Courses       int              `json:"courses"`
	CreditHours   float64          `json:"creditHours"`
	QualityPoints float64          `json:"qualityPoints"`
	AverageGPA    float64          `json:"averageGpa"`
}

// CategoryBreakdown groups the counted record by catalog category and reports
// credit hours, quality points and the weighted average per category.
func CategoryBreakdown(record *models.AcademicRecord, cat *catalog.Catalog) []CategorySummary {
	type bucket struct {
		courses int
		qp      decimal.Decimal
		credits decimal.Decimal
	}

	buckets := make(map[catalog.Category]*bucket)
	var order []catalog.Category
	for _, e := range CountedEntries(record.Entries) {
		category := cat.Categorize(e.CourseCode, record.Program)
		b, ok := buckets[category]
		if !ok {
			b = &bucket{}
			buckets[category] = b
			order = append(order, category)
		}
		b.courses++
		b.qp = b.qp.Add(QualityPoints(e))
		b.credits = b.credits.Add(decimal.NewFromFloat(e.CreditHours))
	}

	summaries := make([]CategorySummary, 0, len(order))
	for _, category := range order {
		b := buckets[category]
		s := CategorySummary{
			Category:      category,
			Courses:       b.courses,
			CreditHours:   Round2(b.credits),
			QualityPoints: Round2(b.qp),
		}
		if avg, err := WeightedAverage(b.qp, b.credits); err == nil {
			s.AverageGPA = Round2(avg)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// Round2 rounds a decimal to two places and returns it as a float for the
// output boundary. Intermediate math must never pass through here.
func Round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
