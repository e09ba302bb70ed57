package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"ecomplaint/internal/domain/complaint"
	vo "ecomplaint/internal/domain/complaint/valueobjects"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
)

const (
	complaintsFileName = "complaints.json"
	incidentDateLayout = "2006-01-02"
)

// complaintRecord is the persisted shape of a complaint, matching the
// legacy complaints.json document field for field.
type complaintRecord struct {
	ID           int       `json:"id"`
	UserEmail    string    `json:"user_email"`
	UserName     string    `json:"user_name"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	IncidentDate string    `json:"incident_date"`
	EvidenceFile *string   `json:"evidence_file"`
	Status       string    `json:"status"`
	Department   *string   `json:"department"`
	AdminNotes   *string   `json:"admin_notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ComplaintStore persists the complaint list as an ordered JSON array.
// Ids are assigned as len(list)+1 under the store mutex; records are never
// deleted, which keeps the count-based assignment collision-free.
type ComplaintStore struct {
	path   string
	mu     sync.Mutex
	logger logger.Interface
}

func NewComplaintStore(dataDir string, log logger.Interface) (*ComplaintStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &ComplaintStore{
		path:   filepath.Join(dataDir, complaintsFileName),
		logger: log,
	}, nil
}

func (s *ComplaintStore) Save(ctx context.Context, c *complaint.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	if err := c.SetID(len(records) + 1); err != nil {
		return err
	}

	records = append(records, complaintToRecord(c))
	return s.save(records)
}

func (s *ComplaintStore) Update(ctx context.Context, c *complaint.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == c.ID() {
			records[i] = complaintToRecord(c)
			return s.save(records)
		}
	}

	return errors.NewNotFoundError(fmt.Sprintf("complaint %d not found", c.ID()))
}

func (s *ComplaintStore) GetByID(ctx context.Context, id int) (*complaint.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id {
			return recordToComplaint(records[i])
		}
	}

	return nil, nil
}

func (s *ComplaintStore) ListByOwner(ctx context.Context, ownerEmail string) ([]*complaint.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	result := make([]*complaint.Complaint, 0)
	for i := range records {
		if records[i].UserEmail != ownerEmail {
			continue
		}
		c, err := recordToComplaint(records[i])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	sortByCreatedAtDesc(result)
	return result, nil
}

func (s *ComplaintStore) ListAll(ctx context.Context) ([]*complaint.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	result := make([]*complaint.Complaint, 0, len(records))
	for i := range records {
		c, err := recordToComplaint(records[i])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	sortByCreatedAtDesc(result)
	return result, nil
}

func (s *ComplaintStore) load() ([]complaintRecord, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []complaintRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read complaint list: %w", err)
	}

	var records []complaintRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal complaint list: %w", err)
	}
	return records, nil
}

func (s *ComplaintStore) save(records []complaintRecord) error {
	bytes, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal complaint list: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write complaint list: %w", err)
	}
	return os.Rename(tempPath, s.path)
}

func sortByCreatedAtDesc(complaints []*complaint.Complaint) {
	sort.SliceStable(complaints, func(i, j int) bool {
		return complaints[i].CreatedAt().After(complaints[j].CreatedAt())
	})
}

func complaintToRecord(c *complaint.Complaint) complaintRecord {
	var department *string
	if c.Department() != nil {
		d := c.Department().String()
		department = &d
	}

	return complaintRecord{
		ID:           c.ID(),
		UserEmail:    c.OwnerEmail(),
		UserName:     c.OwnerName(),
		Title:        c.Title(),
		Category:     c.Category().String(),
		Description:  c.Description(),
		Location:     c.Location(),
		IncidentDate: c.IncidentDate().Format(incidentDateLayout),
		EvidenceFile: c.EvidenceFile(),
		Status:       c.Status().String(),
		Department:   department,
		AdminNotes:   c.AdminNotes(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func recordToComplaint(record complaintRecord) (*complaint.Complaint, error) {
	category, err := vo.NewCategory(record.Category)
	if err != nil {
		return nil, fmt.Errorf("corrupt complaint record %d: %w", record.ID, err)
	}

	status, err := vo.NewStatus(record.Status)
	if err != nil {
		return nil, fmt.Errorf("corrupt complaint record %d: %w", record.ID, err)
	}

	var department *vo.Department
	if record.Department != nil {
		d, err := vo.NewDepartment(*record.Department)
		if err != nil {
			return nil, fmt.Errorf("corrupt complaint record %d: %w", record.ID, err)
		}
		department = &d
	}

	incidentDate, err := time.Parse(incidentDateLayout, record.IncidentDate)
	if err != nil {
		return nil, fmt.Errorf("corrupt complaint record %d: %w", record.ID, err)
	}

	return complaint.ReconstructComplaint(
		record.ID,
		record.UserEmail,
		record.UserName,
		record.Title,
		category,
		record.Description,
		record.Location,
		incidentDate,
		record.EvidenceFile,
		status,
		department,
		record.AdminNotes,
		record.CreatedAt,
		record.UpdatedAt,
	)
}
