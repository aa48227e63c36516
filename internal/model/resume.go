package model

import (
	"encoding/json"
	"fmt"
)

// SectionType discriminates the closed set of resume section variants.
type SectionType string

const (
	SectionPersonalDetails   SectionType = "personalDetails"
	SectionSkills            SectionType = "skills"
	SectionEducations        SectionType = "educations"
	SectionEmploymentHistory SectionType = "employmentHistory"
	SectionLanguages         SectionType = "languages"
)

// DefaultTitle is the per-type heading used when a parsed section carries
// no title of its own.
func DefaultTitle(t SectionType) string {
	switch t {
	case SectionPersonalDetails:
		return "Personal Details"
	case SectionSkills:
		return "Skills"
	case SectionEducations:
		return "Education"
	case SectionEmploymentHistory:
		return "Employment History"
	case SectionLanguages:
		return "Languages"
	}
	return ""
}

// Section is one tagged block of a resume. The unexported method keeps the
// variant set closed to this package.
type Section interface {
	SectionType() SectionType
	Heading() string
	normalize()
}

// SkillLevel is an ordinal proficiency scale. Each level implies all lower
// levels are filled when highlighted.
type SkillLevel string

const (
	LevelNovice       SkillLevel = "novice"
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// Rank returns the 1-based ordinal of the level, or 0 when unknown.
func (l SkillLevel) Rank() int {
	switch l {
	case LevelNovice:
		return 1
	case LevelBeginner:
		return 2
	case LevelIntermediate:
		return 3
	case LevelAdvanced:
		return 4
	case LevelExpert:
		return 5
	}
	return 0
}

func (l SkillLevel) Known() bool { return l.Rank() > 0 }

type PersonalDetails struct {
	Type           SectionType `json:"type"`
	Title          string      `json:"title"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Country        string      `json:"country"`
	City           string      `json:"city"`
	Address        string      `json:"address"`
	PostalCode     string      `json:"postalCode"`
	DrivingLicense string      `json:"drivingLicense"`
	Nationality    string      `json:"nationality"`
	PlaceOfBirth   string      `json:"placeOfBirth"`
	DateOfBirth    Date        `json:"dateOfBirth"`
	Summary        string      `json:"summary"`
	WantedJobTitle string      `json:"wantedJobTitle"`
}

func (s *PersonalDetails) SectionType() SectionType { return SectionPersonalDetails }
func (s *PersonalDetails) Heading() string          { return s.Title }
func (s *PersonalDetails) normalize() {
	s.Type = SectionPersonalDetails
	if s.Title == "" {
		s.Title = DefaultTitle(s.Type)
	}
}

type SkillItem struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

type Skills struct {
	Type   SectionType `json:"type"`
	Title  string      `json:"title"`
	Skills []SkillItem `json:"skills"`
}

func (s *Skills) SectionType() SectionType { return SectionSkills }
func (s *Skills) Heading() string          { return s.Title }
func (s *Skills) normalize() {
	s.Type = SectionSkills
	if s.Title == "" {
		s.Title = DefaultTitle(s.Type)
	}
	if s.Skills == nil {
		s.Skills = []SkillItem{}
	}
}

type EducationItem struct {
	School      string `json:"school"`
	Degree      string `json:"degree"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
	Description string `json:"description"`
}

type Educations struct {
	Type       SectionType     `json:"type"`
	Title      string          `json:"title"`
	Educations []EducationItem `json:"educations"`
}

func (s *Educations) SectionType() SectionType { return SectionEducations }
func (s *Educations) Heading() string          { return s.Title }
func (s *Educations) normalize() {
	s.Type = SectionEducations
	if s.Title == "" {
		s.Title = DefaultTitle(s.Type)
	}
	if s.Educations == nil {
		s.Educations = []EducationItem{}
	}
}

type EmploymentItem struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
	Description string `json:"description"`
}

type EmploymentHistory struct {
	Type        SectionType      `json:"type"`
	Title       string           `json:"title"`
	Employments []EmploymentItem `json:"employments"`
}

func (s *EmploymentHistory) SectionType() SectionType { return SectionEmploymentHistory }
func (s *EmploymentHistory) Heading() string          { return s.Title }
func (s *EmploymentHistory) normalize() {
	s.Type = SectionEmploymentHistory
	if s.Title == "" {
		s.Title = DefaultTitle(s.Type)
	}
	if s.Employments == nil {
		s.Employments = []EmploymentItem{}
	}
}

type LanguageItem struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Languages struct {
	Type      SectionType    `json:"type"`
	Title     string         `json:"title"`
	Languages []LanguageItem `json:"languages"`
}

func (s *Languages) SectionType() SectionType { return SectionLanguages }
func (s *Languages) Heading() string          { return s.Title }
func (s *Languages) normalize() {
	s.Type = SectionLanguages
	if s.Title == "" {
		s.Title = DefaultTitle(s.Type)
	}
	if s.Languages == nil {
		s.Languages = []LanguageItem{}
	}
}

// ParseSection validates one raw section, dispatching strictly on the type
// tag. path names the element for error reporting, e.g. "sections.2".
func ParseSection(data []byte, path string) (Section, error) {
	var head struct {
		Type SectionType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, &ValidationError{Path: path, Message: "expected a section object"}
	}
	switch head.Type {
	case SectionPersonalDetails:
		return parsePersonalDetails(data, path)
	case SectionSkills:
		return parseSkills(data, path)
	case SectionEducations:
		return parseEducations(data, path)
	case SectionEmploymentHistory:
		return parseEmploymentHistory(data, path)
	case SectionLanguages:
		return parseLanguages(data, path)
	case "":
		return nil, &ValidationError{Path: path + ".type", Message: "missing section type"}
	}
	return nil, &ValidationError{Path: path + ".type", Message: fmt.Sprintf("unknown section type %q", head.Type)}
}

func parsePersonalDetails(data []byte, path string) (Section, error) {
	// The raw date shadows the embedded field so a bad value reports its
	// exact path instead of a bare decode error.
	var wire struct {
		PersonalDetails
		DateOfBirth json.RawMessage `json:"dateOfBirth"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &ValidationError{Path: path, Message: err.Error()}
	}
	s := wire.PersonalDetails
	dob, err := parseDateField(wire.DateOfBirth, path+".dateOfBirth")
	if err != nil {
		return nil, err
	}
	s.DateOfBirth = dob
	s.normalize()
	return &s, nil
}

func parseSkills(data []byte, path string) (Section, error) {
	var s Skills
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &ValidationError{Path: path, Message: err.Error()}
	}
	for i, item := range s.Skills {
		if !item.Level.Known() {
			return nil, &ValidationError{
				Path:    fmt.Sprintf("%s.skills.%d.level", path, i),
				Message: fmt.Sprintf("unknown skill level %q, expected novice|beginner|intermediate|advanced|expert", item.Level),
			}
		}
	}
	s.normalize()
	return &s, nil
}

func parseEducations(data []byte, path string) (Section, error) {
	var wire struct {
		Title      string `json:"title"`
		Educations []struct {
			EducationItem
			StartDate json.RawMessage `json:"startDate"`
			EndDate   json.RawMessage `json:"endDate"`
		} `json:"educations"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &ValidationError{Path: path, Message: err.Error()}
	}
	s := Educations{Title: wire.Title}
	for i, e := range wire.Educations {
		item := e.EducationItem
		var err error
		if item.StartDate, err = parseDateField(e.StartDate, fmt.Sprintf("%s.educations.%d.startDate", path, i)); err != nil {
			return nil, err
		}
		if item.EndDate, err = parseDateField(e.EndDate, fmt.Sprintf("%s.educations.%d.endDate", path, i)); err != nil {
			return nil, err
		}
		s.Educations = append(s.Educations, item)
	}
	s.normalize()
	return &s, nil
}

func parseEmploymentHistory(data []byte, path string) (Section, error) {
	var wire struct {
		Title       string `json:"title"`
		Employments []struct {
			EmploymentItem
			StartDate json.RawMessage `json:"startDate"`
			EndDate   json.RawMessage `json:"endDate"`
		} `json:"employments"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &ValidationError{Path: path, Message: err.Error()}
	}
	s := EmploymentHistory{Title: wire.Title}
	for i, e := range wire.Employments {
		item := e.EmploymentItem
		var err error
		if item.StartDate, err = parseDateField(e.StartDate, fmt.Sprintf("%s.employments.%d.startDate", path, i)); err != nil {
			return nil, err
		}
		if item.EndDate, err = parseDateField(e.EndDate, fmt.Sprintf("%s.employments.%d.endDate", path, i)); err != nil {
			return nil, err
		}
		s.Employments = append(s.Employments, item)
	}
	s.normalize()
	return &s, nil
}

func parseLanguages(data []byte, path string) (Section, error) {
	var s Languages
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &ValidationError{Path: path, Message: err.Error()}
	}
	s.normalize()
	return &s, nil
}

func parseDateField(raw json.RawMessage, path string) (Date, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return Date{}, nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return Date{}, &ValidationError{Path: path, Message: "expected a date string or null"}
	}
	d, err := ParseDate(str)
	if err != nil {
		return Date{}, &ValidationError{Path: path, Message: err.Error()}
	}
	return d, nil
}
