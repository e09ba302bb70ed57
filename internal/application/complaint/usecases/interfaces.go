package usecases

import (
	"context"

	"ecomplaint/internal/application/complaint/dto"
)

// Executor interfaces let the HTTP layer depend on behavior rather than
// concrete use case types, keeping handlers testable with lightweight mocks.

type FileComplaintExecutor interface {
	Execute(ctx context.Context, cmd FileComplaintCommand) (*FileComplaintResult, error)
}

type ListMyComplaintsExecutor interface {
	Execute(ctx context.Context, query ListMyComplaintsQuery) (*ListComplaintsResult, error)
}

type ListAllComplaintsExecutor interface {
	Execute(ctx context.Context) (*ListComplaintsResult, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error)
}

type GetEvidenceExecutor interface {
	Execute(ctx context.Context, query GetEvidenceQuery) (*GetEvidenceResult, error)
}

type UpdateComplaintExecutor interface {
	Execute(ctx context.Context, cmd UpdateComplaintCommand) (*UpdateComplaintResult, error)
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error)
}
