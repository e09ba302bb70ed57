package complaint

import (
	"fmt"
	"time"

	vo "ecomplaint/internal/domain/complaint/valueobjects"
	"ecomplaint/internal/shared/authorization"
)

// Complaint is the aggregate root for a filed grievance. It is created once
// by its owner and afterwards mutated only through UpdateByAdmin; ids are
// assigned by the persistence layer and never reused.
type Complaint struct {
	id           int
	ownerEmail   string
	ownerName    string
	title        string
	category     vo.Category
	description  string
	location     string
	incidentDate time.Time
	evidenceFile *string
	status       vo.Status
	department   *vo.Department
	adminNotes   *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewComplaint(
	ownerEmail string,
	ownerName string,
	title string,
	category vo.Category,
	description string,
	location string,
	incidentDate time.Time,
) (*Complaint, error) {
	if len(ownerEmail) == 0 {
		return nil, fmt.Errorf("owner email is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if len(location) == 0 {
		return nil, fmt.Errorf("location is required")
	}
	if incidentDate.IsZero() {
		return nil, fmt.Errorf("incident date is required")
	}
	if incidentDate.After(time.Now()) {
		return nil, fmt.Errorf("incident date cannot be in the future")
	}

	now := time.Now()
	return &Complaint{
		ownerEmail:   ownerEmail,
		ownerName:    ownerName,
		title:        title,
		category:     category,
		description:  description,
		location:     location,
		incidentDate: incidentDate,
		status:       vo.StatusFiled,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructComplaint(
	id int,
	ownerEmail string,
	ownerName string,
	title string,
	category vo.Category,
	description string,
	location string,
	incidentDate time.Time,
	evidenceFile *string,
	status vo.Status,
	department *vo.Department,
	adminNotes *string,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if len(ownerEmail) == 0 {
		return nil, fmt.Errorf("owner email is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Complaint{
		id:           id,
		ownerEmail:   ownerEmail,
		ownerName:    ownerName,
		title:        title,
		category:     category,
		description:  description,
		location:     location,
		incidentDate: incidentDate,
		evidenceFile: evidenceFile,
		status:       status,
		department:   department,
		adminNotes:   adminNotes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Complaint) ID() int {
	return c.id
}

func (c *Complaint) OwnerEmail() string {
	return c.ownerEmail
}

// OwnerName is the owner's display name as it was at filing time. It is a
// denormalized snapshot, not a live reference.
func (c *Complaint) OwnerName() string {
	return c.ownerName
}

func (c *Complaint) Title() string {
	return c.title
}

func (c *Complaint) Category() vo.Category {
	return c.category
}

func (c *Complaint) Description() string {
	return c.description
}

func (c *Complaint) Location() string {
	return c.location
}

func (c *Complaint) IncidentDate() time.Time {
	return c.incidentDate
}

func (c *Complaint) EvidenceFile() *string {
	return c.evidenceFile
}

func (c *Complaint) Status() vo.Status {
	return c.status
}

func (c *Complaint) Department() *vo.Department {
	return c.department
}

func (c *Complaint) AdminNotes() *string {
	return c.adminNotes
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) UpdatedAt() time.Time {
	return c.updatedAt
}

// SetID sets the complaint ID (only for persistence layer use)
func (c *Complaint) SetID(id int) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// AttachEvidence records the stored evidence file name. Evidence is attached
// once during filing and never replaced.
func (c *Complaint) AttachEvidence(storedName string) error {
	if c.evidenceFile != nil {
		return fmt.Errorf("evidence file is already attached")
	}
	if len(storedName) == 0 {
		return fmt.Errorf("evidence file name cannot be empty")
	}
	c.evidenceFile = &storedName
	return nil
}

// UpdateByAdmin replaces the three administrator-mutable fields and
// refreshes the update timestamp. When strictTransitions is set, the status
// change must follow the linear workflow order.
func (c *Complaint) UpdateByAdmin(newStatus vo.Status, department *vo.Department, notes *string, strictTransitions bool) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if department != nil && !department.IsValid() {
		return fmt.Errorf("invalid department: %s", *department)
	}

	if strictTransitions && newStatus != c.status && !c.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", c.status, newStatus)
	}

	c.status = newStatus
	c.department = department
	c.adminNotes = notes
	c.updatedAt = time.Now()

	return nil
}

// CanBeViewedBy reports whether the given identity may see this complaint.
// Only the owner and administrators have access to the detail view.
func (c *Complaint) CanBeViewedBy(userEmail string, userRole authorization.UserRole) bool {
	return authorization.CanAccessResourceByOwner(userEmail, userRole, c.ownerEmail)
}
