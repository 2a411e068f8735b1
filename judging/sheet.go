// Package judging reads the judges' score sheets of
// a dance event and feeds them into a core.Event.
package judging

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ezBadminton/goskating/core"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateCompetitor = errors.New("competitor is listed more than once")
	ErrDuplicateJudge      = errors.New("judge is listed more than once in a dance")
	ErrMarkCount           = errors.New("judge does not have one mark per competitor")
)

var validate = validator.New()

// A Sheet lists the competitors of an event and
// the marks that every judge gave in every dance.
type Sheet struct {
	// Name of the event
	Event string `yaml:"event" validate:"max=255"`

	// The competitor IDs in entry order
	Competitors []string `yaml:"competitors" validate:"required,min=1,dive,required"`

	Dances []Dance `yaml:"dances" validate:"required,min=1,dive"`
}

// The marks of one dance
type Dance struct {
	Name string `yaml:"name" validate:"required"`

	Judges []JudgeMarks `yaml:"judges" validate:"required,min=1,dive"`
}

// The column of marks of a single judge in a dance.
// Marks[i] is the place the judge gave the ith competitor.
type JudgeMarks struct {
	Judge string `yaml:"judge" validate:"required"`

	Marks []int `yaml:"marks" validate:"required,dive,min=1"`
}

// A SheetError locates a problem on a score sheet.
type SheetError struct {
	// Name of the dance or empty if the problem is not in a dance
	Dance string

	// Name of the judge or empty if the problem is not with a judge
	Judge string

	Err error
}

func (e *SheetError) Error() string {
	switch {
	case e.Dance != "" && e.Judge != "":
		return fmt.Sprintf("sheet error: dance=%s, judge=%s, err=%v", e.Dance, e.Judge, e.Err)
	case e.Dance != "":
		return fmt.Sprintf("sheet error: dance=%s, err=%v", e.Dance, e.Err)
	default:
		return fmt.Sprintf("sheet error: %v", e.Err)
	}
}

func (e *SheetError) Unwrap() error { return e.Err }

// Reads and validates a YAML score sheet.
//
// Unknown fields are rejected. Every judge needs exactly one mark per
// competitor. The marks are not checked for being a proper ranking
// of the competitors.
func Load(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	var sheet Sheet
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sheet); err != nil {
		return nil, fmt.Errorf("failed to decode sheet: %w", err)
	}

	if err := validate.Struct(&sheet); err != nil {
		return nil, fmt.Errorf("invalid sheet: %w", err)
	}

	if err := sheet.checkShape(); err != nil {
		return nil, err
	}

	return &sheet, nil
}

// Reads a YAML score sheet from a file. See Load.
func LoadFile(path string) (*Sheet, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet: %w", err)
	}
	defer file.Close()

	return Load(file)
}

func (s *Sheet) checkShape() error {
	seen := make(map[string]bool, len(s.Competitors))
	for _, c := range s.Competitors {
		if seen[c] {
			return &SheetError{Err: fmt.Errorf("%w: %s", ErrDuplicateCompetitor, c)}
		}
		seen[c] = true
	}

	for _, d := range s.Dances {
		judges := make(map[string]bool, len(d.Judges))
		for _, j := range d.Judges {
			if judges[j.Judge] {
				return &SheetError{Dance: d.Name, Judge: j.Judge, Err: ErrDuplicateJudge}
			}
			judges[j.Judge] = true

			if len(j.Marks) != len(s.Competitors) {
				err := fmt.Errorf("%w: %d marks for %d competitors", ErrMarkCount, len(j.Marks), len(s.Competitors))
				return &SheetError{Dance: d.Name, Judge: j.Judge, Err: err}
			}
		}
	}

	return nil
}

// Returns the marks of the ith dance with one row per
// competitor and one column per judge
func (s *Sheet) Matrix(i int) core.JudgeMatrix {
	dance := s.Dances[i]
	matrix := make(core.JudgeMatrix, len(s.Competitors))
	for c := range matrix {
		row := make([]int, len(dance.Judges))
		for j, judge := range dance.Judges {
			row[j] = judge.Marks[c]
		}
		matrix[c] = row
	}
	return matrix
}

// Returns the marks of all dances
func (s *Sheet) AllDances() core.AllDancesMatrix {
	allDances := make(core.AllDancesMatrix, len(s.Dances))
	for i := range s.Dances {
		allDances[i] = s.Matrix(i)
	}
	return allDances
}

// A Competitor that is only known by its ID
type Competitor string

func (c Competitor) Id() string {
	return string(c)
}

// Creates an event from the sheet and sets the marks of every dance
func (s *Sheet) NewEvent(opts ...core.EventOption) (*core.Event, error) {
	competitors := make([]core.Competitor, len(s.Competitors))
	for i, c := range s.Competitors {
		competitors[i] = Competitor(c)
	}

	names := make([]string, len(s.Dances))
	for i, d := range s.Dances {
		names[i] = d.Name
	}

	event, err := core.NewEvent(competitors, names, opts...)
	if err != nil {
		return nil, err
	}

	for i := range s.Dances {
		if err := event.SetMarks(i, s.Matrix(i)); err != nil {
			return nil, &SheetError{Dance: s.Dances[i].Name, Err: err}
		}
	}

	return event, nil
}
