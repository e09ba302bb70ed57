package usecases

import (
	"context"

	"ecomplaint/internal/domain/complaint"
	"ecomplaint/internal/shared/authorization"
	"ecomplaint/internal/shared/logger"
)

type GetDashboardQuery struct {
	UserEmail string
	UserRole  authorization.UserRole
}

// DashboardResult holds complaint totals over the set visible to the
// caller: all complaints for administrators, their own otherwise.
type DashboardResult struct {
	Total      int
	Pending    int
	Resolved   int
	Filed      int
	InProgress int
}

type GetDashboardUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewGetDashboardUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error) {
	var (
		complaints []*complaint.Complaint
		err        error
	)

	if query.UserRole.IsAdmin() {
		complaints, err = uc.complaintRepo.ListAll(ctx)
	} else {
		complaints, err = uc.complaintRepo.ListByOwner(ctx, query.UserEmail)
	}
	if err != nil {
		uc.logger.Errorw("failed to load complaints for dashboard", "error", err)
		return nil, err
	}

	result := &DashboardResult{Total: len(complaints)}
	for _, c := range complaints {
		status := c.Status()
		if status.IsPending() {
			result.Pending++
		}
		if status.IsResolved() {
			result.Resolved++
		}
		if status.IsFiled() {
			result.Filed++
		}
		if status.IsInProgress() {
			result.InProgress++
		}
	}

	return result, nil
}
