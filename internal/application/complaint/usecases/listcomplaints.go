package usecases

import (
	"context"

	"ecomplaint/internal/application/complaint/dto"
	"ecomplaint/internal/domain/complaint"
	"ecomplaint/internal/shared/logger"
)

type ListMyComplaintsQuery struct {
	OwnerEmail string
}

type ListComplaintsResult struct {
	Complaints []*dto.ComplaintDTO
	Total      int
}

// ListMyComplaintsUseCase returns the caller's complaints, newest first.
type ListMyComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListMyComplaintsUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *ListMyComplaintsUseCase {
	return &ListMyComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListMyComplaintsUseCase) Execute(ctx context.Context, query ListMyComplaintsQuery) (*ListComplaintsResult, error) {
	complaints, err := uc.complaintRepo.ListByOwner(ctx, query.OwnerEmail)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "owner", query.OwnerEmail, "error", err)
		return nil, err
	}

	return &ListComplaintsResult{
		Complaints: dto.FromComplaints(complaints),
		Total:      len(complaints),
	}, nil
}

// ListAllComplaintsUseCase returns every complaint in the system, newest
// first. Reachable only through administrator-gated routes.
type ListAllComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListAllComplaintsUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *ListAllComplaintsUseCase {
	return &ListAllComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListAllComplaintsUseCase) Execute(ctx context.Context) (*ListComplaintsResult, error) {
	complaints, err := uc.complaintRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list all complaints", "error", err)
		return nil, err
	}

	return &ListComplaintsResult{
		Complaints: dto.FromComplaints(complaints),
		Total:      len(complaints),
	}, nil
}
