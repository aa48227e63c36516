package render

import (
	"resume-builder/internal/model"
	"resume-builder/pkg/pdfs"
)

// Date display formats. Personal details show the full day, ranges only
// month and year.
const (
	fullDateLayout  = "January 2, 2006"
	monthYearLayout = "January 2006"
)

// Render partitions the document into the fixed sidebar/main layout and
// produces the layout tree for one A4 page. It is pure and deterministic:
// equal documents yield equal trees.
//
// Routing policy (not configurable per section): the first personal details
// section plus every skills and languages section fill the sidebar; the
// summary rich text, education and employment sections fill the main column.
func Render(doc *model.Document) *LayoutTree {
	tree := &LayoutTree{Paper: pdfs.A4Size}

	first := doc.FirstPersonalDetails()
	if first != nil {
		tree.Sidebar = append(tree.Sidebar, personalBlocks(first)...)
		if paragraphs := parseRichText(first.Summary); len(paragraphs) > 0 {
			tree.Main = append(tree.Main, Block{Kind: BlockRichText, Paragraphs: paragraphs})
		}
	}

	for _, section := range doc.Sections {
		switch s := section.(type) {
		case *model.PersonalDetails:
			// Only the first one is meaningful, handled above.
		case *model.Skills:
			blocks := []Block{
				textBlock(BlockHeading, s.Heading()),
				{Kind: BlockDivider},
			}
			for _, skill := range s.Skills {
				blocks = append(blocks, textBlock(BlockLine, skill.Name+" ("+string(skill.Level)+")"))
			}
			tree.Sidebar = append(tree.Sidebar, blocks...)
		case *model.Languages:
			blocks := []Block{
				textBlock(BlockHeading, s.Heading()),
				{Kind: BlockDivider},
			}
			for _, lang := range s.Languages {
				blocks = append(blocks, textBlock(BlockLine, lang.Name+" ("+lang.Level+")"))
			}
			tree.Sidebar = append(tree.Sidebar, blocks...)
		case *model.Educations:
			blocks := []Block{
				textBlock(BlockHeading, s.Heading()),
				{Kind: BlockDivider},
			}
			for _, e := range s.Educations {
				blocks = append(blocks, entryBlocks(e.School, e.StartDate, e.EndDate, e.Description)...)
			}
			tree.Main = append(tree.Main, blocks...)
		case *model.EmploymentHistory:
			blocks := []Block{
				textBlock(BlockHeading, s.Heading()),
				{Kind: BlockDivider},
			}
			for _, e := range s.Employments {
				blocks = append(blocks, entryBlocks(e.JobTitle, e.StartDate, e.EndDate, e.Description)...)
			}
			tree.Main = append(tree.Main, blocks...)
		}
	}
	return tree
}

// personalBlocks renders identity fields as plain lines in a fixed order.
// Empty fields still occupy their line; only null dates render blank.
func personalBlocks(pd *model.PersonalDetails) []Block {
	dateOfBirth := ""
	if pd.DateOfBirth.Valid {
		dateOfBirth = pd.DateOfBirth.Time.Format(fullDateLayout)
	}
	return []Block{
		textBlock(BlockName, pd.FirstName+" "+pd.LastName),
		textBlock(BlockLine, pd.WantedJobTitle),
		textBlock(BlockLine, pd.Email),
		textBlock(BlockLine, pd.Phone),
		textBlock(BlockLine, pd.Country+", "+pd.City),
		textBlock(BlockLine, pd.PlaceOfBirth),
		textBlock(BlockLine, dateOfBirth),
		textBlock(BlockLine, pd.Address),
		textBlock(BlockLine, pd.PostalCode),
		textBlock(BlockLine, "License: "+pd.DrivingLicense),
		textBlock(BlockLine, pd.Nationality),
	}
}

func entryBlocks(subheading string, start, end model.Date, description string) []Block {
	blocks := []Block{
		textBlock(BlockSubHeading, subheading),
		textBlock(BlockDateRange, formatRange(start, end)),
	}
	if paragraphs := parseRichText(description); len(paragraphs) > 0 {
		blocks = append(blocks, Block{Kind: BlockRichText, Paragraphs: paragraphs})
	}
	return blocks
}

// formatRange renders "month year - month year" with placeholders for null
// dates: "N/A" for the start, "Present" for the end.
func formatRange(start, end model.Date) string {
	from := "N/A"
	if start.Valid {
		from = start.Time.Format(monthYearLayout)
	}
	to := "Present"
	if end.Valid {
		to = end.Time.Format(monthYearLayout)
	}
	return from + " - " + to
}
