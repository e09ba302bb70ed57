package complaint

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"ecomplaint/internal/application/complaint/usecases"
	"ecomplaint/internal/shared/errors"
)

// maxEvidenceSize caps uploaded evidence files at 10 MiB.
const maxEvidenceSize = 10 << 20

type FileComplaintForm struct {
	Title        string `form:"title" binding:"required,max=200"`
	Category     string `form:"category" binding:"required"`
	Description  string `form:"description" binding:"required,max=5000"`
	Location     string `form:"location" binding:"required"`
	IncidentDate string `form:"incident_date" binding:"required"`
}

func (r *FileComplaintForm) ToCommand(ownerEmail string, evidence *multipart.FileHeader) (usecases.FileComplaintCommand, error) {
	cmd := usecases.FileComplaintCommand{
		OwnerEmail:   ownerEmail,
		Title:        r.Title,
		Category:     r.Category,
		Description:  r.Description,
		Location:     r.Location,
		IncidentDate: r.IncidentDate,
	}

	if evidence != nil {
		if evidence.Size > maxEvidenceSize {
			return cmd, errors.NewValidationError("evidence file exceeds the 10MB limit")
		}

		f, err := evidence.Open()
		if err != nil {
			return cmd, errors.NewInternalError("failed to read evidence file")
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxEvidenceSize+1))
		if err != nil {
			return cmd, errors.NewInternalError("failed to read evidence file")
		}
		if len(data) > maxEvidenceSize {
			return cmd, errors.NewValidationError("evidence file exceeds the 10MB limit")
		}

		cmd.EvidenceFilename = evidence.Filename
		cmd.Evidence = data
	}

	return cmd, nil
}

type UpdateComplaintRequest struct {
	Status     string `json:"status" binding:"required"`
	Department string `json:"department,omitempty"`
	AdminNotes string `json:"admin_notes,omitempty"`
}

func (r *UpdateComplaintRequest) ToCommand(complaintID int, updatedBy string) usecases.UpdateComplaintCommand {
	return usecases.UpdateComplaintCommand{
		ComplaintID: complaintID,
		Status:      r.Status,
		Department:  r.Department,
		AdminNotes:  r.AdminNotes,
		UpdatedBy:   updatedBy,
	}
}

type DashboardResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
	// Breakdown counts only administrators receive.
	Filed      *int `json:"filed,omitempty"`
	InProgress *int `json:"in_progress,omitempty"`
}

// evidenceFileHeader extracts the optional evidence part of the form.
func evidenceFileHeader(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("evidence")
	if err != nil {
		return nil
	}
	return file
}
