package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/catalog"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
	"github.com/mahir/gradeplan/internal/session"
	"github.com/mahir/gradeplan/internal/transcript"
)

func newTestEnv(t *testing.T) (*RecordService, *PlanningService, string) {
	t.Helper()
	cat, err := catalog.Load("")
	require.NoError(t, err)

	store := session.NewStore(time.Hour, zerolog.Nop())
	id := store.Create("CSE")
	return NewRecordService(store, cat), NewPlanningService(store, cat), id
}

func addEntry(t *testing.T, svc *RecordService, id string, req dto.AddEntryRequest) {
	t.Helper()
	_, err := svc.AddEntry(id, &req)
	require.NoError(t, err)
}

func fptr(v float64) *float64 { return &v }

func TestAddEntryFillsCatalogDefaults(t *testing.T) {
	svc, _, id := newTestEnv(t)

	entry, err := svc.AddEntry(id, &dto.AddEntryRequest{CourseCode: "CSE400", Grade: "A"})
	require.NoError(t, err)

	assert.Equal(t, "CSE400", entry.CourseCode)
	assert.Equal(t, "Project/Thesis", entry.CourseName)
	assert.Equal(t, 4.0, entry.GradePoint)
	assert.Equal(t, 4.0, entry.CreditHours)
	assert.Equal(t, "PLANNED", entry.Semester)
}

func TestAddEntryNormalizesCourseCode(t *testing.T) {
	svc, _, id := newTestEnv(t)

	entry, err := svc.AddEntry(id, &dto.AddEntryRequest{CourseCode: " cse110 ", Grade: "A"})
	require.NoError(t, err)
	assert.Equal(t, "CSE110", entry.CourseCode)
}

func TestAddEntryDerivesLetterFromPoints(t *testing.T) {
	svc, _, id := newTestEnv(t)

	entry, err := svc.AddEntry(id, &dto.AddEntryRequest{CourseCode: "CSE110", GradePoint: fptr(3.3)})
	require.NoError(t, err)
	assert.Equal(t, "B+", entry.Grade)
}

func TestAddEntryRequiresAGrade(t *testing.T) {
	svc, _, id := newTestEnv(t)

	_, err := svc.AddEntry(id, &dto.AddEntryRequest{CourseCode: "CSE110"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAddEntryRejectsMalformedCode(t *testing.T) {
	svc, _, id := newTestEnv(t)

	_, err := svc.AddEntry(id, &dto.AddEntryRequest{CourseCode: "C1", Grade: "A"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAddEntryDuplicate(t *testing.T) {
	svc, _, id := newTestEnv(t)
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C"})

	_, err := svc.AddEntry(id, &dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEntry)
}

func TestAddEntryRetakeFlow(t *testing.T) {
	svc, _, id := newTestEnv(t)
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C", Semester: "Spring 2023"})

	entry, err := svc.AddEntry(id, &dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A", Retake: true, Semester: "Fall 2023"})
	require.NoError(t, err)
	assert.True(t, entry.Retake)

	// A retake needs an earlier attempt.
	_, err = svc.AddEntry(id, &dto.AddEntryRequest{CourseCode: "CSE111", Grade: "A", Retake: true})
	assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
}

func TestAddEntryUnknownSession(t *testing.T) {
	svc, _, _ := newTestEnv(t)

	_, err := svc.AddEntry("missing", &dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A"})
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestUpdateGrade(t *testing.T) {
	svc, _, id := newTestEnv(t)
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C"})

	entry, err := svc.UpdateGrade(id, "cse110", &dto.UpdateGradeRequest{Grade: "A"})
	require.NoError(t, err)
	assert.Equal(t, "A", entry.Grade)
	assert.Equal(t, 4.0, entry.GradePoint)

	_, err = svc.UpdateGrade(id, "CSE999", &dto.UpdateGradeRequest{Grade: "A"})
	assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
}

func TestRemoveEntryDropsAllAttempts(t *testing.T) {
	svc, _, id := newTestEnv(t)
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C"})
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A", Retake: true})

	require.NoError(t, svc.RemoveEntry(id, "CSE110"))

	record, err := svc.Record(id)
	require.NoError(t, err)
	assert.Empty(t, record.Entries)

	assert.ErrorIs(t, svc.RemoveEntry(id, "CSE110"), apperrors.ErrEntryNotFound)
}

func TestSummary(t *testing.T) {
	svc, _, id := newTestEnv(t)
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A", Semester: "Fall 2023"})
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE111", Grade: "B", Semester: "Spring 2024"})
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "ENG101", Grade: "A-", Semester: "Spring 2024"})

	summary, err := svc.Summary(id)
	require.NoError(t, err)

	// (12 + 9 + 11.1) / 9 = 3.57 after rounding
	assert.Equal(t, 3.57, summary.CGPA)
	assert.Equal(t, 9.0, summary.CreditHours)
	assert.Equal(t, 32.1, summary.QualityPoints)

	require.Len(t, summary.Semesters, 2)
	assert.Equal(t, "Fall 2023", summary.Semesters[0].Semester)
	assert.Equal(t, "Spring 2024", summary.Semesters[1].Semester)

	assert.Equal(t, "CSE", summary.Progress.Program)
	assert.Equal(t, 136, summary.Progress.TotalRequired)
	assert.Equal(t, 9.0, summary.Progress.CreditsCompleted)
	assert.Equal(t, 127.0, summary.Progress.RemainingCredits)
	assert.Equal(t, 6.62, summary.Progress.PercentComplete)
}

func TestSummaryEmptyRecord(t *testing.T) {
	svc, _, id := newTestEnv(t)

	summary, err := svc.Summary(id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.CGPA)
	assert.Empty(t, summary.Semesters)
}

func TestUnlockedIgnoresUnlistedCodes(t *testing.T) {
	svc, _, id := newTestEnv(t)
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A"})
	// Exempt course outside the catalog must not break the resolver.
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "XYZ999", Grade: "A"})

	unlocked, err := svc.Unlocked(id)
	require.NoError(t, err)

	codes := make(map[string]bool, len(unlocked))
	for _, c := range unlocked {
		codes[c.Code] = true
	}
	assert.True(t, codes["CSE111"])
	assert.False(t, codes["CSE110"])
}

func TestGenEdPlan(t *testing.T) {
	svc, _, id := newTestEnv(t)
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "HUM101", Grade: "A"})

	plan, err := svc.GenEdPlan(id)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.TotalCompleted)
	assert.NotEmpty(t, plan.Suggestions)
}

func TestImportReplacesRecord(t *testing.T) {
	svc, _, id := newTestEnv(t)
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "C"})

	count, err := svc.Import(id, &transcript.Transcript{
		Program: "CS",
		Courses: []transcript.Course{
			{CourseCode: "cse220", Grade: "A", Credits: 3, Semester: "Fall 2023"},
			{CourseCode: "CSE221", Grade: "B+", Credits: 3, Semester: "Spring 2024"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	record, err := svc.Record(id)
	require.NoError(t, err)
	assert.Equal(t, "CS", record.Program)
	require.Len(t, record.Entries, 2)
	assert.Equal(t, "CSE220", record.Entries[0].CourseCode)
}

func TestImportResolvesCreditsFromCatalog(t *testing.T) {
	svc, _, id := newTestEnv(t)

	count, err := svc.Import(id, &transcript.Transcript{
		Program: "CSE",
		Courses: []transcript.Course{
			{CourseCode: "CSE400", Grade: "A", Semester: "Fall 2023"},
			{CourseCode: "CSE110", Grade: "B", Semester: "Fall 2023"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	record, err := svc.Record(id)
	require.NoError(t, err)
	assert.Equal(t, 4.0, record.Entries[0].CreditHours)
	assert.Equal(t, 3.0, record.Entries[1].CreditHours)
}

func TestImportRejectsEmptyTranscript(t *testing.T) {
	svc, _, id := newTestEnv(t)

	_, err := svc.Import(id, &transcript.Transcript{Program: "CSE"})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestImportRejectsUnknownProgram(t *testing.T) {
	svc, _, id := newTestEnv(t)

	_, err := svc.Import(id, &transcript.Transcript{Program: "EEE"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownProgram)
}

func TestExportRoundTrip(t *testing.T) {
	svc, _, id := newTestEnv(t)
	addEntry(t, svc, id, dto.AddEntryRequest{CourseCode: "CSE110", Grade: "A", Semester: "Fall 2023"})

	exported, err := svc.Export(id)
	require.NoError(t, err)
	require.Len(t, exported.Courses, 1)
	assert.Equal(t, "CSE110", exported.Courses[0].CourseCode)
	assert.Equal(t, 4.0, exported.Courses[0].GPA)
}
