package complaint

import "context"

// Repository persists the complaint list. Save assigns the next sequential
// id to the aggregate before persisting; ids are count-based and safe only
// under the append-only discipline (complaints are never deleted).
// GetByID returns (nil, nil) when no record exists for the id. List results
// are ordered by creation time, most recent first.
type Repository interface {
	Save(ctx context.Context, complaint *Complaint) error
	Update(ctx context.Context, complaint *Complaint) error
	GetByID(ctx context.Context, id int) (*Complaint, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*Complaint, error)
	ListAll(ctx context.Context) ([]*Complaint, error)
}

// EvidenceStore persists uploaded evidence files. Save stores the data under
// a name derived from the complaint id and the original file name and
// returns the stored name; Path resolves a stored name back to a file path.
type EvidenceStore interface {
	Save(complaintID int, filename string, data []byte) (string, error)
	Path(storedName string) (string, error)
}
