package valueobjects

import "fmt"

type Department string

const (
	DepartmentPolice         Department = "Police Department"
	DepartmentCourtServices  Department = "Court Services"
	DepartmentCivicServices  Department = "Civic Services"
	DepartmentAntiCorruption Department = "Anti-Corruption Bureau"
)

var validDepartments = map[Department]bool{
	DepartmentPolice:         true,
	DepartmentCourtServices:  true,
	DepartmentCivicServices:  true,
	DepartmentAntiCorruption: true,
}

func (d Department) String() string {
	return string(d)
}

func (d Department) IsValid() bool {
	return validDepartments[d]
}

func NewDepartment(s string) (Department, error) {
	d := Department(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid department: %s", s)
	}
	return d, nil
}
