package usecases

import (
	"context"
	"fmt"

	"ecomplaint/internal/application/complaint/dto"
	"ecomplaint/internal/domain/complaint"
	"ecomplaint/internal/shared/authorization"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID int
	UserEmail   string
	UserRole    authorization.UserRole
}

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error) {
	c, err := uc.complaintRepo.GetByID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to get complaint", "complaint_id", query.ComplaintID, "error", err)
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %d not found", query.ComplaintID))
	}

	if !c.CanBeViewedBy(query.UserEmail, query.UserRole) {
		return nil, errors.NewForbiddenError("access to this complaint is not allowed")
	}

	return dto.FromComplaint(c), nil
}
