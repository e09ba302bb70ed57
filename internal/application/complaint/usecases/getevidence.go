package usecases

import (
	"context"
	"fmt"

	"ecomplaint/internal/domain/complaint"
	"ecomplaint/internal/shared/authorization"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
)

type GetEvidenceQuery struct {
	ComplaintID int
	UserEmail   string
	UserRole    authorization.UserRole
}

type GetEvidenceResult struct {
	Path     string
	Filename string
}

// GetEvidenceUseCase resolves the stored evidence file of a complaint,
// applying the same owner-or-admin visibility rule as the detail view.
type GetEvidenceUseCase struct {
	complaintRepo complaint.Repository
	evidenceStore complaint.EvidenceStore
	logger        logger.Interface
}

func NewGetEvidenceUseCase(
	complaintRepo complaint.Repository,
	evidenceStore complaint.EvidenceStore,
	logger logger.Interface,
) *GetEvidenceUseCase {
	return &GetEvidenceUseCase{
		complaintRepo: complaintRepo,
		evidenceStore: evidenceStore,
		logger:        logger,
	}
}

func (uc *GetEvidenceUseCase) Execute(ctx context.Context, query GetEvidenceQuery) (*GetEvidenceResult, error) {
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

	if c.EvidenceFile() == nil {
		return nil, errors.NewNotFoundError("complaint has no evidence file")
	}

	path, err := uc.evidenceStore.Path(*c.EvidenceFile())
	if err != nil {
		return nil, err
	}

	return &GetEvidenceResult{
		Path:     path,
		Filename: *c.EvidenceFile(),
	}, nil
}
