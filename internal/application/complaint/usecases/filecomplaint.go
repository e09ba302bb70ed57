package usecases

import (
	"context"
	"time"

	"ecomplaint/internal/domain/complaint"
	vo "ecomplaint/internal/domain/complaint/valueobjects"
	"ecomplaint/internal/domain/user"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
)

const incidentDateLayout = "2006-01-02"

type FileComplaintCommand struct {
	OwnerEmail       string
	Title            string
	Category         string
	Description      string
	Location         string
	IncidentDate     string
	EvidenceFilename string
	Evidence         []byte
}

type FileComplaintResult struct {
	ComplaintID  int
	Status       string
	EvidenceFile *string
	CreatedAt    time.Time
}

type FileComplaintUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	evidenceStore complaint.EvidenceStore
	logger        logger.Interface
}

func NewFileComplaintUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	evidenceStore complaint.EvidenceStore,
	logger logger.Interface,
) *FileComplaintUseCase {
	return &FileComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		evidenceStore: evidenceStore,
		logger:        logger,
	}
}

func (uc *FileComplaintUseCase) Execute(ctx context.Context, cmd FileComplaintCommand) (*FileComplaintResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid file complaint command", "error", err)
		return nil, err
	}

	incidentDate, err := time.Parse(incidentDateLayout, cmd.IncidentDate)
	if err != nil {
		return nil, errors.NewValidationError("incident date must be in YYYY-MM-DD format")
	}

	// The owner must exist at filing time; the complaint keeps a snapshot
	// of the owner's display name.
	owner, err := uc.userRepo.GetByEmail(ctx, cmd.OwnerEmail)
	if err != nil {
		uc.logger.Errorw("failed to get complaint owner", "error", err)
		return nil, errors.NewInternalError("failed to get complaint owner")
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("owner account not found")
	}

	category := vo.Category(cmd.Category)

	newComplaint, err := complaint.NewComplaint(
		owner.Email().String(),
		owner.Name(),
		cmd.Title,
		category,
		cmd.Description,
		cmd.Location,
		incidentDate,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Save(ctx, newComplaint); err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err)
		return nil, err
	}

	if len(cmd.Evidence) > 0 {
		storedName, err := uc.evidenceStore.Save(newComplaint.ID(), cmd.EvidenceFilename, cmd.Evidence)
		if err != nil {
			uc.logger.Errorw("failed to store evidence file", "complaint_id", newComplaint.ID(), "error", err)
			return nil, errors.NewInternalError("failed to store evidence file")
		}
		if err := newComplaint.AttachEvidence(storedName); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
		if err := uc.complaintRepo.Update(ctx, newComplaint); err != nil {
			uc.logger.Errorw("failed to record evidence file", "complaint_id", newComplaint.ID(), "error", err)
			return nil, err
		}
	}

	uc.logger.Infow("complaint filed successfully", "complaint_id", newComplaint.ID(), "owner", newComplaint.OwnerEmail())

	return &FileComplaintResult{
		ComplaintID:  newComplaint.ID(),
		Status:       newComplaint.Status().String(),
		EvidenceFile: newComplaint.EvidenceFile(),
		CreatedAt:    newComplaint.CreatedAt(),
	}, nil
}

func (uc *FileComplaintUseCase) validateCommand(cmd FileComplaintCommand) error {
	if len(cmd.OwnerEmail) == 0 {
		return errors.NewValidationError("owner email is required")
	}

	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Location) == 0 {
		return errors.NewValidationError("location is required")
	}

	if len(cmd.IncidentDate) == 0 {
		return errors.NewValidationError("incident date is required")
	}

	category := vo.Category(cmd.Category)
	if !category.IsValid() {
		return errors.NewValidationError("invalid category")
	}

	if len(cmd.Evidence) > 0 && len(cmd.EvidenceFilename) == 0 {
		return errors.NewValidationError("evidence file name is required")
	}

	return nil
}
