package complaint

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "ecomplaint/internal/domain/complaint/valueobjects"
	"ecomplaint/internal/shared/authorization"
)

// newValidComplaint creates a complaint with sensible defaults for testing.
func newValidComplaint(t *testing.T) *Complaint {
	t.Helper()
	c, err := NewComplaint(
		"citizen@example.com",
		"Test Citizen",
		"Pothole on the highway",
		vo.CategoryCivicBody,
		"Large pothole causing accidents near the toll booth.",
		"NH-48 km 12",
		time.Now().AddDate(0, 0, -7),
	)
	require.NoError(t, err)
	return c
}

// reconstructed builds a persisted-style complaint via ReconstructComplaint.
func reconstructed(t *testing.T, status vo.Status) *Complaint {
	t.Helper()
	now := time.Now().UTC()
	c, err := ReconstructComplaint(
		1,
		"citizen@example.com",
		"Test Citizen",
		"Persisted complaint",
		vo.CategoryPolice,
		"desc",
		"Central Station",
		now.AddDate(0, -1, 0),
		nil,
		status,
		nil,
		nil,
		now, now,
	)
	require.NoError(t, err)
	return c
}

func TestNewComplaint_ValidInput(t *testing.T) {
	c := newValidComplaint(t)

	assert.Equal(t, 0, c.ID(), "id is assigned by persistence")
	assert.Equal(t, "citizen@example.com", c.OwnerEmail())
	assert.Equal(t, "Test Citizen", c.OwnerName())
	assert.Equal(t, vo.StatusFiled, c.Status())
	assert.Nil(t, c.EvidenceFile())
	assert.Nil(t, c.Department())
	assert.Nil(t, c.AdminNotes())
	assert.False(t, c.CreatedAt().IsZero())
	assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
}

func TestNewComplaint_Validation(t *testing.T) {
	incidentDate := time.Now().AddDate(0, 0, -1)

	tests := []struct {
		name          string
		ownerEmail    string
		title         string
		category      vo.Category
		description   string
		location      string
		incidentDate  time.Time
		expectedError string
	}{
		{
			name:          "missing owner email",
			title:         "Title",
			category:      vo.CategoryOther,
			description:   "desc",
			location:      "loc",
			incidentDate:  incidentDate,
			expectedError: "owner email is required",
		},
		{
			name:          "missing title",
			ownerEmail:    "a@b.co",
			category:      vo.CategoryOther,
			description:   "desc",
			location:      "loc",
			incidentDate:  incidentDate,
			expectedError: "title is required",
		},
		{
			name:          "title too long",
			ownerEmail:    "a@b.co",
			title:         strings.Repeat("x", 201),
			category:      vo.CategoryOther,
			description:   "desc",
			location:      "loc",
			incidentDate:  incidentDate,
			expectedError: "title exceeds maximum length",
		},
		{
			name:          "invalid category",
			ownerEmail:    "a@b.co",
			title:         "Title",
			category:      vo.Category("Weather"),
			description:   "desc",
			location:      "loc",
			incidentDate:  incidentDate,
			expectedError: "invalid category",
		},
		{
			name:          "missing description",
			ownerEmail:    "a@b.co",
			title:         "Title",
			category:      vo.CategoryOther,
			location:      "loc",
			incidentDate:  incidentDate,
			expectedError: "description is required",
		},
		{
			name:          "description too long",
			ownerEmail:    "a@b.co",
			title:         "Title",
			category:      vo.CategoryOther,
			description:   strings.Repeat("x", 5001),
			location:      "loc",
			incidentDate:  incidentDate,
			expectedError: "description exceeds maximum length",
		},
		{
			name:          "missing location",
			ownerEmail:    "a@b.co",
			title:         "Title",
			category:      vo.CategoryOther,
			description:   "desc",
			incidentDate:  incidentDate,
			expectedError: "location is required",
		},
		{
			name:          "zero incident date",
			ownerEmail:    "a@b.co",
			title:         "Title",
			category:      vo.CategoryOther,
			description:   "desc",
			location:      "loc",
			expectedError: "incident date is required",
		},
		{
			name:          "future incident date",
			ownerEmail:    "a@b.co",
			title:         "Title",
			category:      vo.CategoryOther,
			description:   "desc",
			location:      "loc",
			incidentDate:  time.Now().AddDate(1, 0, 0),
			expectedError: "incident date cannot be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComplaint(tt.ownerEmail, "Name", tt.title, tt.category, tt.description, tt.location, tt.incidentDate)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestComplaint_SetID(t *testing.T) {
	c := newValidComplaint(t)

	require.NoError(t, c.SetID(42))
	assert.Equal(t, 42, c.ID())

	assert.Error(t, c.SetID(43), "id can only be set once")
	assert.Equal(t, 42, c.ID())

	fresh := newValidComplaint(t)
	assert.Error(t, fresh.SetID(0))
}

func TestComplaint_AttachEvidence(t *testing.T) {
	c := newValidComplaint(t)

	require.NoError(t, c.AttachEvidence("1_photo.jpg"))
	require.NotNil(t, c.EvidenceFile())
	assert.Equal(t, "1_photo.jpg", *c.EvidenceFile())

	assert.Error(t, c.AttachEvidence("1_other.jpg"), "evidence is attached once")

	fresh := newValidComplaint(t)
	assert.Error(t, fresh.AttachEvidence(""))
}

func TestComplaint_UpdateByAdmin_Permissive(t *testing.T) {
	tests := []struct {
		name    string
		initial vo.Status
		target  vo.Status
	}{
		{"filed to resolved skips the middle states", vo.StatusFiled, vo.StatusResolved},
		{"rejected back to under review", vo.StatusRejected, vo.StatusUnderReview},
		{"resolved to filed", vo.StatusResolved, vo.StatusFiled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := reconstructed(t, tt.initial)
			before := c.UpdatedAt()

			dept := vo.DepartmentPolice
			notes := "Handled."
			err := c.UpdateByAdmin(tt.target, &dept, &notes, false)

			require.NoError(t, err)
			assert.Equal(t, tt.target, c.Status())
			require.NotNil(t, c.Department())
			assert.Equal(t, vo.DepartmentPolice, *c.Department())
			require.NotNil(t, c.AdminNotes())
			assert.Equal(t, "Handled.", *c.AdminNotes())
			assert.False(t, c.UpdatedAt().Before(before))
		})
	}
}

func TestComplaint_UpdateByAdmin_Strict(t *testing.T) {
	tests := []struct {
		name    string
		initial vo.Status
		target  vo.Status
		wantErr bool
	}{
		{"filed to under review", vo.StatusFiled, vo.StatusUnderReview, false},
		{"under review to in progress", vo.StatusUnderReview, vo.StatusInProgress, false},
		{"in progress to resolved", vo.StatusInProgress, vo.StatusResolved, false},
		{"in progress to rejected", vo.StatusInProgress, vo.StatusRejected, false},
		{"filed to resolved", vo.StatusFiled, vo.StatusResolved, true},
		{"under review to rejected", vo.StatusUnderReview, vo.StatusRejected, true},
		{"resolved to anything", vo.StatusResolved, vo.StatusFiled, true},
		{"same status always allowed", vo.StatusInProgress, vo.StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := reconstructed(t, tt.initial)
			err := c.UpdateByAdmin(tt.target, nil, nil, true)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "cannot transition")
				assert.Equal(t, tt.initial, c.Status(), "status unchanged on rejected transition")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.target, c.Status())
			}
		})
	}
}

func TestComplaint_UpdateByAdmin_InvalidInputs(t *testing.T) {
	c := reconstructed(t, vo.StatusFiled)

	err := c.UpdateByAdmin(vo.Status("Closed"), nil, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")

	badDept := vo.Department("Ministry of Magic")
	err = c.UpdateByAdmin(vo.StatusUnderReview, &badDept, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid department")
}

func TestComplaint_UpdateByAdmin_ClearsFields(t *testing.T) {
	c := reconstructed(t, vo.StatusUnderReview)

	dept := vo.DepartmentCourtServices
	notes := "First pass."
	require.NoError(t, c.UpdateByAdmin(vo.StatusInProgress, &dept, &notes, false))

	// A later update without department or notes clears them.
	require.NoError(t, c.UpdateByAdmin(vo.StatusResolved, nil, nil, false))
	assert.Nil(t, c.Department())
	assert.Nil(t, c.AdminNotes())
}

func TestComplaint_CanBeViewedBy(t *testing.T) {
	c := reconstructed(t, vo.StatusFiled)

	assert.True(t, c.CanBeViewedBy("citizen@example.com", authorization.RoleUser))
	assert.True(t, c.CanBeViewedBy("admin@justice.gov", authorization.RoleAdmin))
	assert.False(t, c.CanBeViewedBy("other@example.com", authorization.RoleUser))
}

func TestReconstructComplaint_Validation(t *testing.T) {
	now := time.Now()

	_, err := ReconstructComplaint(0, "a@b.co", "n", "t", vo.CategoryOther, "d", "l", now, nil, vo.StatusFiled, nil, nil, now, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "complaint ID cannot be zero")

	_, err = ReconstructComplaint(1, "a@b.co", "n", "t", vo.CategoryOther, "d", "l", now, nil, vo.Status("bogus"), nil, nil, now, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}
