package model

import (
	"encoding/json"
	"strconv"
)

// Document is the full resume: an ordered sequence of sections. Order is
// display order, nothing here sorts or dedupes.
type Document struct {
	Sections []Section `json:"sections"`
}

// DefaultDocument is the fixed starting point: one empty personal details
// block plus empty skills, education and employment sections.
func DefaultDocument() *Document {
	d := &Document{Sections: []Section{
		&PersonalDetails{},
		&Skills{},
		&Educations{},
		&EmploymentHistory{},
	}}
	for _, s := range d.Sections {
		s.normalize()
	}
	return d
}

// ParseDocument validates a serialized resume atomically: a structural pass
// against the JSON schema, then a typed parse of every section. One invalid
// section fails the whole document.
func ParseDocument(data []byte) (*Document, error) {
	if err := ValidateRaw(data); err != nil {
		return nil, err
	}
	var wire struct {
		Sections []json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &ValidationError{Path: "", Message: "document must be a JSON object"}
	}
	doc := &Document{Sections: make([]Section, 0, len(wire.Sections))}
	for i, raw := range wire.Sections {
		section, err := ParseSection(raw, sectionPath(i))
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc, nil
}

// Serialize produces the canonical persisted form. ParseDocument of the
// output yields an equal document. Sections are normalized at construction
// (ParseDocument, DefaultDocument), so this is a pure read and is safe to
// call while other readers walk the sections.
func (d *Document) Serialize() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// FirstPersonalDetails returns the first personal details section, or nil.
// Only the first one is meaningful for sidebar rendering.
func (d *Document) FirstPersonalDetails() *PersonalDetails {
	for _, s := range d.Sections {
		if pd, ok := s.(*PersonalDetails); ok {
			return pd
		}
	}
	return nil
}

func sectionPath(i int) string {
	return "sections." + strconv.Itoa(i)
}
