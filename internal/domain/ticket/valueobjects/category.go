package valueobjects

import "fmt"

type Category string

const (
	CategoryGeneral          Category = "General"
	CategoryBugReport        Category = "Bug Report"
	CategoryFunctionalChange Category = "Functional Change Request"
	CategoryNewDevelopment   Category = "New Development Request"
	CategoryTechnicalChange  Category = "Technical Change Require"
	CategoryMeetingSchedule  Category = "Meeting Schedule"
	CategoryTour             Category = "Tour"
)

var validCategories = map[Category]bool{
	CategoryGeneral:          true,
	CategoryBugReport:        true,
	CategoryFunctionalChange: true,
	CategoryNewDevelopment:   true,
	CategoryTechnicalChange:  true,
	CategoryMeetingSchedule:  true,
	CategoryTour:             true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// DefaultCategory is applied when a ticket is created without one.
func DefaultCategory() Category {
	return CategoryGeneral
}
