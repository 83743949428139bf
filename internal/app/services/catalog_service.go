package services

import (
	"github.com/mahir/gradeplan/internal/catalog"
)

// CatalogCourse is a catalog entry annotated with its program category.
type CatalogCourse struct {
	catalog.Course
	Category catalog.Category `json:"category"`
}

// CatalogService exposes the static course catalog.
type CatalogService struct {
	catalog *catalog.Catalog
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(cat *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: cat}
}

// Programs lists the supported degree programs.
func (s *CatalogService) Programs() []string {
	return s.catalog.Programs()
}

// Requirements returns the credit requirements of a program.
func (s *CatalogService) Requirements(program string) (catalog.Program, error) {
	return s.catalog.Requirements(program)
}

// Courses lists the catalog for a program with category annotations.
func (s *CatalogService) Courses(program string) ([]CatalogCourse, error) {
	if _, err := s.catalog.Requirements(program); err != nil {
		return nil, err
	}

	courses := s.catalog.Courses()
	out := make([]CatalogCourse, 0, len(courses))
	for _, course := range courses {
		out = append(out, CatalogCourse{
			Course:   course,
			Category: s.catalog.Categorize(course.Code, program),
		})
	}
	return out, nil
}
