// Package catalog holds the static course catalog for the supported degree
// programs: course metadata, program requirements, general-education streams
// and the prerequisite resolver. The catalog is read-only after Load.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// Category classifies a course within a program.
type Category string

const (
	CategoryCore          Category = "Core"
	CategoryElective      Category = "CSE Elective"
	CategoryGeneralEd     Category = "Compulsory General Education"
	CategoryScience       Category = "Science Stream"
	CategoryArts          Category = "Arts Stream"
	CategorySocialScience Category = "Social Science Stream"
	CategoryCST           Category = "CST Stream"
	CategoryOther         Category = "Other"
)

// Stream identifies a general-education stream.
type Stream string

const (
	StreamScience       Stream = "science"
	StreamArts          Stream = "arts"
	StreamSocialScience Stream = "social_science"
	StreamCST           Stream = "cst"
)

// DefaultCredits is the credit value assumed for courses the catalog does not
// override.
const DefaultCredits = 3

// Course is one immutable catalog entry.
type Course struct {
	Code          string   `yaml:"code" json:"code"`
	Name          string   `yaml:"name" json:"name"`
	Credits       int      `yaml:"credits" json:"credits"`
	Prerequisites []string `yaml:"prerequisites" json:"prerequisites,omitempty"`
}

// Program describes the credit requirements of one degree program.
type Program struct {
	Code             string   `yaml:"-" json:"code"`
	TotalCredits     int      `yaml:"total_credits" json:"totalCredits"`
	CoreCredits      int      `yaml:"-" json:"coreCredits"`
	GeneralEdCredits int      `yaml:"general_ed_credits" json:"generalEdCredits"`
	ElectiveCredits  int      `yaml:"elective_credits" json:"electiveCredits"`
	Core             []string `yaml:"core" json:"core"`
}

type catalogFile struct {
	Version          int                `yaml:"version"`
	Programs         map[string]Program `yaml:"programs"`
	Courses          []Course           `yaml:"courses"`
	GeneralEducation []string           `yaml:"general_education"`
	Electives        []string           `yaml:"electives"`
	Streams          map[Stream][]string `yaml:"streams"`
}

// Catalog is the loaded, immutable course catalog.
type Catalog struct {
	version   int
	courses   map[string]Course
	order     []string
	programs  map[string]Program
	generalEd map[string]struct{}
	electives map[string]struct{}
	streams   map[Stream][]string
	streamOf  map[string]Stream
}

// Load reads a catalog from the given YAML file. An empty path loads the
// embedded default catalog.
func Load(path string) (*Catalog, error) {
	raw := defaultCatalogYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		raw = b
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return build(&file)
}

func build(file *catalogFile) (*Catalog, error) {
	c := &Catalog{
		version:   file.Version,
		courses:   make(map[string]Course, len(file.Courses)),
		programs:  make(map[string]Program, len(file.Programs)),
		generalEd: make(map[string]struct{}, len(file.GeneralEducation)),
		electives: make(map[string]struct{}, len(file.Electives)),
		streams:   file.Streams,
		streamOf:  make(map[string]Stream),
	}

	for _, course := range file.Courses {
		if course.Code == "" {
			return nil, fmt.Errorf("catalog course with empty code")
		}
		if course.Credits == 0 {
			course.Credits = DefaultCredits
		}
		if course.Credits < 0 {
			return nil, fmt.Errorf("catalog course %s has negative credits", course.Code)
		}
		if course.Name == "" {
			course.Name = course.Code
		}
		if _, dup := c.courses[course.Code]; dup {
			return nil, fmt.Errorf("catalog course %s listed twice", course.Code)
		}
		c.courses[course.Code] = course
		c.order = append(c.order, course.Code)
	}

	// Prerequisites must reference listed courses.
	for _, course := range c.courses {
		for _, prereq := range course.Prerequisites {
			if _, ok := c.courses[prereq]; !ok {
				return nil, fmt.Errorf("course %s requires unknown course %s", course.Code, prereq)
			}
		}
	}

	for code, program := range file.Programs {
		program.Code = code
		program.CoreCredits = c.coreCredits(program.Core)
		c.programs[code] = program
	}

	for _, code := range file.GeneralEducation {
		c.generalEd[code] = struct{}{}
	}
	for _, code := range file.Electives {
		c.electives[code] = struct{}{}
	}
	for stream, codes := range file.Streams {
		sort.Strings(codes)
		for _, code := range codes {
			c.streamOf[code] = stream
		}
	}

	return c, nil
}

// coreCredits sums the credits of the core list plus the thesis course, which
// every program requires without listing it as core.
func (c *Catalog) coreCredits(core []string) int {
	total := 0
	for _, code := range core {
		if course, ok := c.courses[code]; ok {
			total += course.Credits
		} else {
			total += DefaultCredits
		}
	}
	if thesis, ok := c.courses["CSE400"]; ok {
		total += thesis.Credits
	}
	return total
}

// Version reports the catalog data version.
func (c *Catalog) Version() int { return c.version }

// Course returns the catalog entry for a code.
func (c *Catalog) Course(code string) (Course, bool) {
	course, ok := c.courses[code]
	return course, ok
}

// Credits returns the credit hours for a code, or the default for courses the
// catalog does not know (exempt or unlisted record entries).
func (c *Catalog) Credits(code string) int {
	if course, ok := c.courses[code]; ok {
		return course.Credits
	}
	return DefaultCredits
}

// Courses lists every catalog entry in catalog order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.courses[code])
	}
	return out
}

// Programs lists the supported program codes, sorted.
func (c *Catalog) Programs() []string {
	codes := make([]string, 0, len(c.programs))
	for code := range c.programs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Requirements returns the credit requirements for a program.
func (c *Catalog) Requirements(program string) (Program, error) {
	p, ok := c.programs[program]
	if !ok {
		return Program{}, fmt.Errorf("%w: program %s", apperrors.ErrUnknownProgram, program)
	}
	return p, nil
}

// Categorize classifies a course code within a program. Codes the catalog
// does not know are CategoryOther.
func (c *Catalog) Categorize(code, program string) Category {
	if p, ok := c.programs[program]; ok {
		for _, core := range p.Core {
			if core == code {
				return CategoryCore
			}
		}
	}
	if _, ok := c.generalEd[code]; ok {
		return CategoryGeneralEd
	}
	if _, ok := c.electives[code]; ok {
		return CategoryElective
	}
	switch c.streamOf[code] {
	case StreamScience:
		return CategoryScience
	case StreamArts:
		return CategoryArts
	case StreamSocialScience:
		return CategorySocialScience
	case StreamCST:
		return CategoryCST
	}
	return CategoryOther
}

// StreamCourses returns the course codes of one stream in catalog order.
func (c *Catalog) StreamCourses(stream Stream) []string {
	codes := make([]string, len(c.streams[stream]))
	copy(codes, c.streams[stream])
	return codes
}
