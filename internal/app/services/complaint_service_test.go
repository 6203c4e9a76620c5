package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
)

func newComplaintServiceForTest() (*ComplaintService, *fakeComplaintStore, *fakeStudentStore) {
	complaints := newFakeComplaintStore()
	students := newFakeStudentStore()
	service := NewComplaintService(complaints, students, fakeTxRunner{})
	return service, complaints, students
}

func activeStudent(students *fakeStudentStore) *models.Student {
	return students.addStudent(&models.Student{
		StudentID: "HM2024001",
		Name:      "Priya Sharma",
		Email:     "priya.sharma@example.edu",
		IsActive:  true,
	})
}

func TestSubmitComplaint_StartsSubmitted(t *testing.T) {
	service, _, students := newComplaintServiceForTest()
	student := activeStudent(students)

	notes := "should be cleared"
	complaint := &models.Complaint{
		StudentID:       student.ID,
		Title:           "Food served cold at dinner",
		Description:     "Dinner has been served cold for the last three days.",
		Category:        models.CategoryFoodQuality,
		Status:          models.ComplaintStatusResolved, // caller cannot pick a state
		Priority:        models.PriorityHigh,
		ResolutionNotes: &notes,
	}

	created, err := service.SubmitComplaint(context.Background(), complaint)
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintStatusSubmitted, created.Status)
	assert.Nil(t, created.ResolutionNotes)
	assert.Nil(t, created.ResolvedBy)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.Student)
	assert.Equal(t, "Priya Sharma", created.Student.Name)
}

func TestSubmitComplaint_InactiveStudent(t *testing.T) {
	service, _, students := newComplaintServiceForTest()
	student := students.addStudent(&models.Student{
		StudentID: "HM2024002",
		Name:      "Arjun Verma",
		Email:     "arjun.verma@example.edu",
		IsActive:  false,
	})

	_, err := service.SubmitComplaint(context.Background(), &models.Complaint{
		StudentID:   student.ID,
		Title:       "Water cooler broken",
		Description: "The cooler near the dining hall stopped working.",
		Category:    models.CategoryInfrastructure,
		Priority:    models.PriorityMedium,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStudentInactive)
}

func TestSubmitComplaint_UnknownStudent(t *testing.T) {
	service, _, _ := newComplaintServiceForTest()

	_, err := service.SubmitComplaint(context.Background(), &models.Complaint{
		StudentID:   42,
		Title:       "Anything at all here",
		Description: "This student does not exist in the registry.",
	})

	// A bad student reference on submission is the caller's mistake, not
	// a missing resource.
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.NotErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestUpdateComplaintStatus_InProgressFromAnyState(t *testing.T) {
	for _, from := range []models.ComplaintStatus{
		models.ComplaintStatusSubmitted,
		models.ComplaintStatusInProgress,
		models.ComplaintStatusResolved,
		models.ComplaintStatusClosed,
		models.ComplaintStatusRejected,
	} {
		t.Run(string(from), func(t *testing.T) {
			service, complaints, students := newComplaintServiceForTest()
			student := activeStudent(students)
			ticket := complaints.addComplaint(&models.Complaint{
				StudentID:   student.ID,
				Title:       "Dinner late again",
				Description: "Dinner started 40 minutes late.",
				Status:      from,
				Priority:    models.PriorityMedium,
			})

			updated, err := service.UpdateComplaintStatus(context.Background(), ticket.ID, models.ComplaintStatusInProgress, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, models.ComplaintStatusInProgress, updated.Status)
		})
	}
}

func TestUpdateComplaintStatus_ResolveStoresNotes(t *testing.T) {
	service, complaints, students := newComplaintServiceForTest()
	student := activeStudent(students)
	ticket := complaints.addComplaint(&models.Complaint{
		StudentID:   student.ID,
		Title:       "Stale rice at dinner",
		Description: "The rice smelled sour on June 1st.",
		Status:      models.ComplaintStatusInProgress,
		Priority:    models.PriorityUrgent,
	})

	notes := "Vendor replaced, stock rotation enforced"
	resolvedBy := "warden.office"
	updated, err := service.UpdateComplaintStatus(context.Background(), ticket.ID, models.ComplaintStatusResolved, &notes, &resolvedBy)
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintStatusResolved, updated.Status)
	require.NotNil(t, updated.ResolutionNotes)
	assert.Equal(t, notes, *updated.ResolutionNotes)
	require.NotNil(t, updated.ResolvedBy)
	assert.Equal(t, resolvedBy, *updated.ResolvedBy)
}

func TestUpdateComplaintStatus_ResolveWithoutNotes(t *testing.T) {
	service, complaints, students := newComplaintServiceForTest()
	student := activeStudent(students)
	ticket := complaints.addComplaint(&models.Complaint{
		StudentID:   student.ID,
		Title:       "Water cooler leaking",
		Description: "The first-floor cooler has been leaking for days.",
		Status:      models.ComplaintStatusSubmitted,
		Priority:    models.PriorityLow,
	})

	updated, err := service.UpdateComplaintStatus(context.Background(), ticket.ID, models.ComplaintStatusResolved, nil, nil)
	require.NoError(t, err)

	// Omitted notes and resolver stay unset rather than becoming ""
	assert.Equal(t, models.ComplaintStatusResolved, updated.Status)
	assert.Nil(t, updated.ResolutionNotes)
	assert.Nil(t, updated.ResolvedBy)
}

func TestUpdateComplaintStatus_ResolveGuards(t *testing.T) {
	tests := []struct {
		from    models.ComplaintStatus
		wantErr bool
	}{
		{models.ComplaintStatusSubmitted, false},
		{models.ComplaintStatusInProgress, false},
		{models.ComplaintStatusResolved, true},
		{models.ComplaintStatusClosed, true},
		{models.ComplaintStatusRejected, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			service, complaints, students := newComplaintServiceForTest()
			student := activeStudent(students)
			ticket := complaints.addComplaint(&models.Complaint{
				StudentID:   student.ID,
				Title:       "Hygiene issue in kitchen",
				Description: "Found the prep counters dirty during a visit.",
				Status:      tt.from,
				Priority:    models.PriorityHigh,
			})

			notes := "done"
			by := "staff"
			_, err := service.UpdateComplaintStatus(context.Background(), ticket.ID, models.ComplaintStatusResolved, &notes, &by)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidState)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateComplaintStatus_CloseOnlyFromResolved(t *testing.T) {
	service, complaints, students := newComplaintServiceForTest()
	student := activeStudent(students)
	ticket := complaints.addComplaint(&models.Complaint{
		StudentID:   student.ID,
		Title:       "Billing discrepancy",
		Description: "Charged twice for the same month.",
		Status:      models.ComplaintStatusResolved,
		Priority:    models.PriorityLow,
	})

	updated, err := service.UpdateComplaintStatus(context.Background(), ticket.ID, models.ComplaintStatusClosed, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusClosed, updated.Status)

	// Closing again must fail and leave the ticket untouched
	_, err = service.UpdateComplaintStatus(context.Background(), ticket.ID, models.ComplaintStatusClosed, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	stored, err := complaints.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusClosed, stored.Status)
}

func TestUpdateComplaintStatus_CloseFromOpenFails(t *testing.T) {
	service, complaints, students := newComplaintServiceForTest()
	student := activeStudent(students)
	ticket := complaints.addComplaint(&models.Complaint{
		StudentID:   student.ID,
		Title:       "Portion sizes shrinking",
		Description: "Lunch portions have halved over the last month.",
		Status:      models.ComplaintStatusSubmitted,
		Priority:    models.PriorityMedium,
	})

	_, err := service.UpdateComplaintStatus(context.Background(), ticket.ID, models.ComplaintStatusClosed, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestUpdateComplaintStatus_InvalidTargets(t *testing.T) {
	for _, target := range []models.ComplaintStatus{
		models.ComplaintStatusSubmitted,
		models.ComplaintStatusRejected,
	} {
		t.Run(string(target), func(t *testing.T) {
			service, complaints, students := newComplaintServiceForTest()
			student := activeStudent(students)
			ticket := complaints.addComplaint(&models.Complaint{
				StudentID:   student.ID,
				Title:       "Noise from kitchen at night",
				Description: "Utensil washing goes on past midnight.",
				Status:      models.ComplaintStatusInProgress,
				Priority:    models.PriorityLow,
			})

			_, err := service.UpdateComplaintStatus(context.Background(), ticket.ID, target, nil, nil)
			assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

			stored, getErr := complaints.GetByID(context.Background(), ticket.ID)
			require.NoError(t, getErr)
			assert.Equal(t, models.ComplaintStatusInProgress, stored.Status)
		})
	}
}

func TestUpdateComplaintStatus_UnknownComplaint(t *testing.T) {
	service, _, _ := newComplaintServiceForTest()

	_, err := service.UpdateComplaintStatus(context.Background(), 99, models.ComplaintStatusInProgress, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}

func TestGetOpenComplaints_TriageOrder(t *testing.T) {
	service, complaints, students := newComplaintServiceForTest()
	student := activeStudent(students)

	base := time.Now()
	complaints.addComplaint(&models.Complaint{
		EntityMeta:  models.EntityMeta{CreatedAt: base},
		StudentID:   student.ID,
		Title:       "Low priority, oldest",
		Description: "Minor issue reported first.",
		Status:      models.ComplaintStatusSubmitted,
		Priority:    models.PriorityLow,
	})
	complaints.addComplaint(&models.Complaint{
		EntityMeta:  models.EntityMeta{CreatedAt: base.Add(time.Minute)},
		StudentID:   student.ID,
		Title:       "Urgent, newer",
		Description: "Gas leak smell near the kitchen.",
		Status:      models.ComplaintStatusInProgress,
		Priority:    models.PriorityUrgent,
	})
	complaints.addComplaint(&models.Complaint{
		EntityMeta:  models.EntityMeta{CreatedAt: base.Add(2 * time.Minute)},
		StudentID:   student.ID,
		Title:       "Closed urgent, excluded",
		Description: "Already handled, should not appear.",
		Status:      models.ComplaintStatusClosed,
		Priority:    models.PriorityUrgent,
	})
	complaints.addComplaint(&models.Complaint{
		EntityMeta:  models.EntityMeta{CreatedAt: base.Add(3 * time.Minute)},
		StudentID:   student.ID,
		Title:       "High priority",
		Description: "Serious but not urgent issue.",
		Status:      models.ComplaintStatusSubmitted,
		Priority:    models.PriorityHigh,
	})

	open, err := service.GetOpenComplaints(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 3)

	assert.Equal(t, "Urgent, newer", open[0].Title)
	assert.Equal(t, "High priority", open[1].Title)
	assert.Equal(t, "Low priority, oldest", open[2].Title)
}

func TestGetComplaintStats(t *testing.T) {
	service, complaints, students := newComplaintServiceForTest()
	student := activeStudent(students)

	add := func(status models.ComplaintStatus, priority models.Priority) {
		complaints.addComplaint(&models.Complaint{
			StudentID:   student.ID,
			Title:       "stats fixture",
			Description: "complaint used for counter checks",
			Status:      status,
			Priority:    priority,
		})
	}

	add(models.ComplaintStatusSubmitted, models.PriorityUrgent)
	add(models.ComplaintStatusSubmitted, models.PriorityLow)
	add(models.ComplaintStatusInProgress, models.PriorityUrgent)
	add(models.ComplaintStatusResolved, models.PriorityUrgent) // resolved urgent no longer counts
	add(models.ComplaintStatusClosed, models.PriorityLow)

	pending, inProgress, urgentOpen, err := service.GetComplaintStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), pending)
	assert.Equal(t, int64(1), inProgress)
	assert.Equal(t, int64(2), urgentOpen)
}

func TestGetComplaintsByStudent_UnknownStudent(t *testing.T) {
	service, _, _ := newComplaintServiceForTest()

	_, err := service.GetComplaintsByStudent(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
