package dto

import (
	"time"

	"ecomplaint/internal/domain/complaint"
)

// ComplaintDTO is the transport shape of a complaint
type ComplaintDTO struct {
	ID           int       `json:"id"`
	OwnerEmail   string    `json:"user_email"`
	OwnerName    string    `json:"user_name"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	IncidentDate string    `json:"incident_date"`
	EvidenceFile *string   `json:"evidence_file,omitempty"`
	Status       string    `json:"status"`
	Department   *string   `json:"department,omitempty"`
	AdminNotes   *string   `json:"admin_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromComplaint(c *complaint.Complaint) *ComplaintDTO {
	var department *string
	if c.Department() != nil {
		d := c.Department().String()
		department = &d
	}

	return &ComplaintDTO{
		ID:           c.ID(),
		OwnerEmail:   c.OwnerEmail(),
		OwnerName:    c.OwnerName(),
		Title:        c.Title(),
		Category:     c.Category().String(),
		Description:  c.Description(),
		Location:     c.Location(),
		IncidentDate: c.IncidentDate().Format("2006-01-02"),
		EvidenceFile: c.EvidenceFile(),
		Status:       c.Status().String(),
		Department:   department,
		AdminNotes:   c.AdminNotes(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func FromComplaints(complaints []*complaint.Complaint) []*ComplaintDTO {
	result := make([]*ComplaintDTO, 0, len(complaints))
	for _, c := range complaints {
		result = append(result, FromComplaint(c))
	}
	return result
}
