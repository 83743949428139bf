package catalog

import (
	"fmt"
	"sort"

	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

// UnlockedCourses returns every catalog course not yet completed whose full
// prerequisite set is contained in completedCodes. Prerequisite sets are
// conjunctive: the catalog schema has no alternative groups, so all listed
// prerequisites must be satisfied. Results are sorted by course code.
//
// A completed code that does not exist in the catalog is an error; callers
// holding records with exempt or unlisted courses must filter those out
// first (see Known).
func (c *Catalog) UnlockedCourses(completedCodes []string) ([]Course, error) {
	completed := make(map[string]struct{}, len(completedCodes))
	for _, code := range completedCodes {
		if _, ok := c.courses[code]; !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCourse, code)
		}
		completed[code] = struct{}{}
	}

	var unlocked []Course
	for _, course := range c.courses {
		if _, done := completed[course.Code]; done {
			continue
		}
		satisfied := true
		for _, prereq := range course.Prerequisites {
			if _, done := completed[prereq]; !done {
				satisfied = false
				break
			}
		}
		if satisfied {
			unlocked = append(unlocked, course)
		}
	}

	sort.Slice(unlocked, func(i, j int) bool { return unlocked[i].Code < unlocked[j].Code })
	return unlocked, nil
}

// Known filters a code list down to codes present in the catalog.
func (c *Catalog) Known(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := c.courses[code]; ok {
			out = append(out, code)
		}
	}
	return out
}

// GenEdSuggestion is one planned general-education course.
type GenEdSuggestion struct {
	Stream Stream `json:"stream"`
	Course string `json:"course"`
}

// GenEdPlan summarizes general-education stream coverage and suggests one
// course per uncovered stream.
type GenEdPlan struct {
	Suggestions    []GenEdSuggestion `json:"suggestions"`
	CompletedBy    map[Stream]int    `json:"completedByStream"`
	TotalCompleted int               `json:"totalCompleted"`
	RemainingSlots int               `json:"remainingSlots"`
}

// PlanGeneralEducation proposes up to maxCourses general-education courses:
// each stream with no completed course gets the first available suggestion,
// in the order arts, social science, CST, science.
func (c *Catalog) PlanGeneralEducation(completedCodes []string, maxCourses int) GenEdPlan {
	completed := make(map[string]struct{}, len(completedCodes))
	for _, code := range completedCodes {
		completed[code] = struct{}{}
	}

	plan := GenEdPlan{CompletedBy: make(map[Stream]int)}
	order := []Stream{StreamArts, StreamSocialScience, StreamCST, StreamScience}
	for _, stream := range order {
		for _, code := range c.StreamCourses(stream) {
			if _, done := completed[code]; done {
				plan.CompletedBy[stream]++
			}
		}
		plan.TotalCompleted += plan.CompletedBy[stream]
	}

	remaining := maxCourses - plan.TotalCompleted
	for _, stream := range order {
		if remaining <= 0 {
			break
		}
		if plan.CompletedBy[stream] > 0 {
			continue
		}
		for _, code := range c.StreamCourses(stream) {
			if _, done := completed[code]; !done {
				plan.Suggestions = append(plan.Suggestions, GenEdSuggestion{Stream: stream, Course: code})
				remaining--
				break
			}
		}
	}

	plan.RemainingSlots = remaining
	return plan
}
