package valueobjects

import "fmt"

type Category string

const (
	CategoryPolice         Category = "Police"
	CategoryCourt          Category = "Court"
	CategoryCivicBody      Category = "Civic Body"
	CategoryCorruption     Category = "Corruption"
	CategoryPublicServices Category = "Public Services"
	CategoryOther          Category = "Other"
)

var validCategories = map[Category]bool{
	CategoryPolice:         true,
	CategoryCourt:          true,
	CategoryCivicBody:      true,
	CategoryCorruption:     true,
	CategoryPublicServices: true,
	CategoryOther:          true,
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
