package usecases

import (
	"context"
	"fmt"
	"time"

	"ecomplaint/internal/domain/complaint"
	vo "ecomplaint/internal/domain/complaint/valueobjects"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
)

type UpdateComplaintCommand struct {
	ComplaintID int
	Status      string
	Department  string
	AdminNotes  string
	UpdatedBy   string
}

type UpdateComplaintResult struct {
	ComplaintID int
	OldStatus   string
	NewStatus   string
	UpdatedAt   time.Time
}

// UpdateComplaintUseCase applies an administrator's status, department and
// notes update. Only reachable through administrator-gated routes.
type UpdateComplaintUseCase struct {
	complaintRepo     complaint.Repository
	strictTransitions bool
	logger            logger.Interface
}

func NewUpdateComplaintUseCase(
	complaintRepo complaint.Repository,
	strictTransitions bool,
	logger logger.Interface,
) *UpdateComplaintUseCase {
	return &UpdateComplaintUseCase{
		complaintRepo:     complaintRepo,
		strictTransitions: strictTransitions,
		logger:            logger,
	}
}

func (uc *UpdateComplaintUseCase) Execute(ctx context.Context, cmd UpdateComplaintCommand) (*UpdateComplaintResult, error) {
	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	newStatus, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var department *vo.Department
	if len(cmd.Department) > 0 {
		d, err := vo.NewDepartment(cmd.Department)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		department = &d
	}

	var notes *string
	if len(cmd.AdminNotes) > 0 {
		notes = &cmd.AdminNotes
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to get complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %d not found", cmd.ComplaintID))
	}

	oldStatus := c.Status()

	if err := c.UpdateByAdmin(newStatus, department, notes, uc.strictTransitions); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, err
	}

	uc.logger.Infow("complaint updated successfully",
		"complaint_id", cmd.ComplaintID,
		"old_status", oldStatus,
		"new_status", newStatus,
		"updated_by", cmd.UpdatedBy)

	return &UpdateComplaintResult{
		ComplaintID: c.ID(),
		OldStatus:   oldStatus.String(),
		NewStatus:   c.Status().String(),
		UpdatedAt:   c.UpdatedAt(),
	}, nil
}
