package render

import (
	"strings"
	"sync"
	"testing"
	"time"

	"resume-builder/internal/model"
)

func skillsSection(items ...model.SkillItem) *model.Skills {
	return &model.Skills{Type: model.SectionSkills, Title: "Skills", Skills: items}
}

func sidebarLines(tree *LayoutTree) []string {
	var lines []string
	for _, b := range tree.Sidebar {
		if b.Kind == BlockLine {
			lines = append(lines, b.Text)
		}
	}
	return lines
}

func TestRender_DefaultDocument(t *testing.T) {
	tree := Render(model.DefaultDocument())

	if len(tree.Sidebar) == 0 {
		t.Fatalf("expected sidebar blocks")
	}
	if tree.Sidebar[0].Kind != BlockName {
		t.Fatalf("expected name block first, got %s", tree.Sidebar[0].Kind)
	}
	// Empty fields still occupy their lines.
	lines := sidebarLines(tree)
	if len(lines) != 10 {
		t.Fatalf("expected 10 identity lines, got %d", len(lines))
	}
	var headings []string
	for _, b := range append(tree.Sidebar, tree.Main...) {
		if b.Kind == BlockHeading {
			headings = append(headings, b.Text)
		}
	}
	want := []string{"Skills", "Education", "Employment History"}
	if len(headings) != len(want) {
		t.Fatalf("expected headings %v, got %v", want, headings)
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Fatalf("expected headings %v, got %v", want, headings)
		}
	}
}

func TestRender_SkillLines(t *testing.T) {
	doc := &model.Document{Sections: []model.Section{
		skillsSection(
			model.SkillItem{Name: "Go", Level: model.LevelExpert},
			model.SkillItem{Name: "SQL", Level: model.LevelNovice},
		),
	}}
	tree := Render(doc)
	lines := sidebarLines(tree)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "Go (expert)" || lines[1] != "SQL (novice)" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestRender_EducationDateRange(t *testing.T) {
	doc := &model.Document{Sections: []model.Section{
		&model.Educations{Type: model.SectionEducations, Title: "Education", Educations: []model.EducationItem{
			{School: "MIT", StartDate: model.NewDate(2020, time.September, 1)},
		}},
	}}
	tree := Render(doc)
	var got string
	for _, b := range tree.Main {
		if b.Kind == BlockDateRange {
			got = b.Text
		}
	}
	if got != "September 2020 - Present" {
		t.Fatalf("unexpected range %q", got)
	}
}

func TestRender_NullStartDate(t *testing.T) {
	if got := formatRange(model.Date{}, model.NewDate(2021, time.March, 1)); got != "N/A - March 2021" {
		t.Fatalf("unexpected range %q", got)
	}
}

func TestRender_PersonalFieldOrder(t *testing.T) {
	doc := &model.Document{Sections: []model.Section{
		&model.PersonalDetails{
			Type: model.SectionPersonalDetails, Title: "Personal Details",
			FirstName: "Ada", LastName: "Lovelace", WantedJobTitle: "Analyst",
			Email: "ada@example.com", Phone: "+44", Country: "UK", City: "London",
			PlaceOfBirth: "London", DateOfBirth: model.NewDate(1815, time.December, 10),
			Address: "12 St James Sq", PostalCode: "SW1", DrivingLicense: "B",
			Nationality: "British",
		},
	}}
	tree := Render(doc)
	if tree.Sidebar[0].Text != "Ada Lovelace" {
		t.Fatalf("unexpected name %q", tree.Sidebar[0].Text)
	}
	lines := sidebarLines(tree)
	want := []string{
		"Analyst",
		"ada@example.com",
		"+44",
		"UK, London",
		"London",
		"December 10, 1815",
		"12 St James Sq",
		"SW1",
		"License: B",
		"British",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestRender_SummaryRichText(t *testing.T) {
	doc := &model.Document{Sections: []model.Section{
		&model.PersonalDetails{
			Type:    model.SectionPersonalDetails,
			Summary: `<p>Hello <strong>big</strong> <em>world</em></p><ul><li>stripped</li></ul>`,
		},
	}}
	tree := Render(doc)
	if len(tree.Main) != 1 || tree.Main[0].Kind != BlockRichText {
		t.Fatalf("expected one rich text block, got %+v", tree.Main)
	}
	paragraphs := tree.Main[0].Paragraphs
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paragraphs))
	}
	var text string
	var sawBold, sawItalic bool
	for _, s := range paragraphs[0].Spans {
		text += s.Text
		if s.Bold && s.Text == "big" {
			sawBold = true
		}
		if s.Italic && s.Text == "world" {
			sawItalic = true
		}
	}
	if text != "Hello big world" {
		t.Fatalf("unexpected text %q", text)
	}
	if !sawBold || !sawItalic {
		t.Fatalf("styles lost: bold=%v italic=%v", sawBold, sawItalic)
	}
	// Unsupported markup keeps its text, drops its structure.
	if len(paragraphs[1].Spans) != 1 || paragraphs[1].Spans[0].Text != "stripped" {
		t.Fatalf("unexpected second paragraph: %+v", paragraphs[1])
	}
}

func TestRender_SecondPersonalDetailsIgnored(t *testing.T) {
	doc := &model.Document{Sections: []model.Section{
		&model.PersonalDetails{Type: model.SectionPersonalDetails, FirstName: "First"},
		&model.PersonalDetails{Type: model.SectionPersonalDetails, FirstName: "Second"},
	}}
	tree := Render(doc)
	var names []string
	for _, b := range tree.Sidebar {
		if b.Kind == BlockName {
			names = append(names, b.Text)
		}
	}
	if len(names) != 1 || !strings.HasPrefix(names[0], "First") {
		t.Fatalf("only the first personal details block should render: %v", names)
	}
}

func TestEncodeHTML_Idempotent(t *testing.T) {
	doc, err := model.ParseDocument([]byte(`{"sections": [
		{"type": "personalDetails", "firstName": "Ada", "summary": "<p>Hi <strong>there</strong></p>"},
		{"type": "skills", "skills": [{"name": "Go", "level": "expert"}]}
	]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	first, err := EncodeHTML(Render(doc))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := EncodeHTML(Render(doc))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if first != second {
		t.Fatalf("encoding is not deterministic")
	}
	for _, want := range []string{"Ada", "Go (expert)", "<strong>there</strong>"} {
		if !strings.Contains(first, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

// Autosave serializes the same document snapshot a render cycle may be
// reading. Both sides must be pure reads; run under -race.
func TestRender_ConcurrentWithSerialize(t *testing.T) {
	doc, err := model.ParseDocument([]byte(`{"sections": [
		{"type": "personalDetails", "firstName": "Ada", "summary": "<p>Hi <strong>there</strong></p>"},
		{"type": "skills", "skills": [{"name": "Go", "level": "expert"}]},
		{"type": "educations", "educations": [{"school": "MIT", "startDate": "2018-09-01"}]}
	]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := doc.Serialize(); err != nil {
					t.Errorf("serialize: %v", err)
					return
				}
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if tree := Render(doc); len(tree.Sidebar) == 0 {
					t.Errorf("empty render")
					return
				}
			}
		}()
	}
	wg.Wait()
}
