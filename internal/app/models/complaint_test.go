package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComplaintStatus(t *testing.T) {
	for _, raw := range []string{"SUBMITTED", "IN_PROGRESS", "RESOLVED", "CLOSED", "REJECTED"} {
		status, err := ParseComplaintStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(status))
	}

	_, err := ParseComplaintStatus("PENDING")
	assert.Error(t, err)
	_, err = ParseComplaintStatus("submitted")
	assert.Error(t, err)
}

func TestComplaintStatusPredicates(t *testing.T) {
	assert.True(t, ComplaintStatusSubmitted.IsOpen())
	assert.True(t, ComplaintStatusInProgress.IsOpen())
	assert.False(t, ComplaintStatusResolved.IsOpen())
	assert.False(t, ComplaintStatusClosed.IsOpen())
	assert.False(t, ComplaintStatusRejected.IsOpen())

	assert.True(t, ComplaintStatusClosed.IsClosed())
	assert.True(t, ComplaintStatusRejected.IsClosed())
	assert.False(t, ComplaintStatusResolved.IsClosed())
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityUrgent.Rank(), PriorityHigh.Rank())
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())

	assert.True(t, PriorityUrgent.IsHighPriority())
	assert.True(t, PriorityHigh.IsHighPriority())
	assert.False(t, PriorityMedium.IsHighPriority())
}

func TestComplaintResolve(t *testing.T) {
	complaint := &Complaint{Status: ComplaintStatusInProgress}
	require.True(t, complaint.CanBeResolved())

	notes := "fixed the cooler"
	resolvedBy := "warden.office"
	complaint.Resolve(&notes, &resolvedBy)
	assert.Equal(t, ComplaintStatusResolved, complaint.Status)
	require.NotNil(t, complaint.ResolutionNotes)
	assert.Equal(t, "fixed the cooler", *complaint.ResolutionNotes)
	require.NotNil(t, complaint.ResolvedBy)
	assert.Equal(t, "warden.office", *complaint.ResolvedBy)

	assert.False(t, complaint.CanBeResolved())
}

func TestComplaintResolve_WithoutNotes(t *testing.T) {
	complaint := &Complaint{Status: ComplaintStatusSubmitted}
	require.True(t, complaint.CanBeResolved())

	complaint.Resolve(nil, nil)
	assert.Equal(t, ComplaintStatusResolved, complaint.Status)
	assert.Nil(t, complaint.ResolutionNotes)
	assert.Nil(t, complaint.ResolvedBy)
}

func TestComplaintClose(t *testing.T) {
	complaint := &Complaint{Status: ComplaintStatusSubmitted}
	assert.False(t, complaint.Close())
	assert.Equal(t, ComplaintStatusSubmitted, complaint.Status)

	complaint.Status = ComplaintStatusResolved
	assert.True(t, complaint.Close())
	assert.Equal(t, ComplaintStatusClosed, complaint.Status)

	assert.False(t, complaint.Close())
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "In Progress", ComplaintStatusInProgress.DisplayName())
	assert.Equal(t, "Food Quality", CategoryFoodQuality.DisplayName())
	assert.Equal(t, "Urgent", PriorityUrgent.DisplayName())
}
