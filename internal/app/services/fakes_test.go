package services

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/app/repositories"
	"github.com/deepam/hostelmess/internal/db"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
)

// fakeTxRunner runs the transaction body directly; the fakes ignore
// the tx handle entirely.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) WithTx(tx pgx.Tx) repositories.StudentStore { return f }

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	student.ID = f.nextID
	f.nextID++
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	for _, student := range f.students {
		if student.StudentID == studentID {
			copied := *student
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetAllActive(ctx context.Context) ([]*models.Student, error) {
	var active []*models.Student
	for _, student := range f.students {
		if student.IsActive {
			copied := *student
			active = append(active, &copied)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}

func (f *fakeStudentStore) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	_, err := f.GetByStudentID(ctx, studentID)
	return err == nil, nil
}

func (f *fakeStudentStore) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, student := range f.students {
		if student.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	student.UpdatedAt = time.Now()
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

// addStudent seeds a student directly, bypassing service rules.
func (f *fakeStudentStore) addStudent(student *models.Student) *models.Student {
	if student.ID == 0 {
		student.ID = f.nextID
		f.nextID++
	} else if student.ID >= f.nextID {
		f.nextID = student.ID + 1
	}
	f.students[student.ID] = student
	return student
}

type fakeComplaintStore struct {
	complaints map[int64]*models.Complaint
	nextID     int64
}

func newFakeComplaintStore() *fakeComplaintStore {
	return &fakeComplaintStore{complaints: make(map[int64]*models.Complaint), nextID: 1}
}

func (f *fakeComplaintStore) WithTx(tx pgx.Tx) repositories.ComplaintStore { return f }

func (f *fakeComplaintStore) Create(ctx context.Context, complaint *models.Complaint) error {
	complaint.ID = f.nextID
	f.nextID++
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = complaint.CreatedAt
	copied := *complaint
	f.complaints[complaint.ID] = &copied
	return nil
}

func (f *fakeComplaintStore) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	complaint, ok := f.complaints[id]
	if !ok {
		return nil, apperrors.ErrComplaintNotFound
	}
	copied := *complaint
	return &copied, nil
}

func (f *fakeComplaintStore) GetByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	var result []*models.Complaint
	for _, complaint := range f.complaints {
		if complaint.StudentID == studentID {
			copied := *complaint
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeComplaintStore) GetByStatuses(ctx context.Context, statuses []models.ComplaintStatus) ([]*models.Complaint, error) {
	wanted := make(map[models.ComplaintStatus]bool, len(statuses))
	for _, status := range statuses {
		wanted[status] = true
	}
	var result []*models.Complaint
	for _, complaint := range f.complaints {
		if wanted[complaint.Status] {
			copied := *complaint
			result = append(result, &copied)
		}
	}
	// Triage order: highest priority first, oldest first within a priority
	sort.Slice(result, func(i, j int) bool {
		if result[i].Priority.Rank() != result[j].Priority.Rank() {
			return result[i].Priority.Rank() > result[j].Priority.Rank()
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeComplaintStore) GetAll(ctx context.Context) ([]*models.Complaint, error) {
	var result []*models.Complaint
	for _, complaint := range f.complaints {
		copied := *complaint
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeComplaintStore) CountByStatus(ctx context.Context, status models.ComplaintStatus) (int64, error) {
	var count int64
	for _, complaint := range f.complaints {
		if complaint.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeComplaintStore) CountUrgentOpen(ctx context.Context) (int64, error) {
	var count int64
	for _, complaint := range f.complaints {
		if complaint.Priority == models.PriorityUrgent && complaint.Status.IsOpen() {
			count++
		}
	}
	return count, nil
}

func (f *fakeComplaintStore) Update(ctx context.Context, complaint *models.Complaint) error {
	if _, ok := f.complaints[complaint.ID]; !ok {
		return apperrors.ErrComplaintNotFound
	}
	complaint.UpdatedAt = time.Now()
	copied := *complaint
	f.complaints[complaint.ID] = &copied
	return nil
}

func (f *fakeComplaintStore) addComplaint(complaint *models.Complaint) *models.Complaint {
	if complaint.ID == 0 {
		complaint.ID = f.nextID
		f.nextID++
	} else if complaint.ID >= f.nextID {
		f.nextID = complaint.ID + 1
	}
	f.complaints[complaint.ID] = complaint
	return complaint
}

type fakeMenuStore struct {
	menus  map[int64]*models.Menu
	nextID int64
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{menus: make(map[int64]*models.Menu), nextID: 1}
}

func (f *fakeMenuStore) WithTx(tx pgx.Tx) repositories.MenuStore { return f }

func (f *fakeMenuStore) Create(ctx context.Context, menu *models.Menu) error {
	menu.ID = f.nextID
	f.nextID++
	menu.CreatedAt = time.Now()
	menu.UpdatedAt = menu.CreatedAt
	for i := range menu.MenuItems {
		menu.MenuItems[i].ID = int64(i + 1)
		menu.MenuItems[i].MenuID = menu.ID
	}
	copied := *menu
	f.menus[menu.ID] = &copied
	return nil
}

func (f *fakeMenuStore) GetByID(ctx context.Context, id int64) (*models.Menu, error) {
	menu, ok := f.menus[id]
	if !ok {
		return nil, apperrors.ErrMenuNotFound
	}
	copied := *menu
	return &copied, nil
}

func (f *fakeMenuStore) GetByDate(ctx context.Context, date time.Time) ([]*models.Menu, error) {
	var result []*models.Menu
	for _, menu := range f.menus {
		if sameDay(menu.MenuDate, date) {
			copied := *menu
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeMenuStore) GetActiveByDateAndMealType(ctx context.Context, date time.Time, mealType models.MealType) (*models.Menu, error) {
	for _, menu := range f.menus {
		if menu.IsActive && menu.MealType == mealType && sameDay(menu.MenuDate, date) {
			copied := *menu
			return &copied, nil
		}
	}
	return nil, apperrors.ErrMenuNotFound
}

func (f *fakeMenuStore) GetUpcoming(ctx context.Context, from time.Time) ([]*models.Menu, error) {
	return f.GetForDateRange(ctx, from, from.AddDate(0, 0, 7))
}

func (f *fakeMenuStore) GetForDateRange(ctx context.Context, start, end time.Time) ([]*models.Menu, error) {
	var result []*models.Menu
	for _, menu := range f.menus {
		if !menu.MenuDate.Before(startOfDay(start)) && !menu.MenuDate.After(end) {
			copied := *menu
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeMenuStore) ExistsActiveByDateAndMealType(ctx context.Context, date time.Time, mealType models.MealType) (bool, error) {
	_, err := f.GetActiveByDateAndMealType(ctx, date, mealType)
	return err == nil, nil
}

func (f *fakeMenuStore) addMenu(menu *models.Menu) *models.Menu {
	if menu.ID == 0 {
		menu.ID = f.nextID
		f.nextID++
	} else if menu.ID >= f.nextID {
		f.nextID = menu.ID + 1
	}
	f.menus[menu.ID] = menu
	return menu
}

type fakeFeedbackStore struct {
	feedbacks map[int64]*models.Feedback
	nextID    int64
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{feedbacks: make(map[int64]*models.Feedback), nextID: 1}
}

func (f *fakeFeedbackStore) WithTx(tx pgx.Tx) repositories.FeedbackStore { return f }

func (f *fakeFeedbackStore) Create(ctx context.Context, feedback *models.Feedback) error {
	for _, existing := range f.feedbacks {
		if existing.StudentID == feedback.StudentID && existing.MenuID == feedback.MenuID {
			return apperrors.ErrDuplicateFeedback
		}
	}
	feedback.ID = f.nextID
	f.nextID++
	feedback.CreatedAt = time.Now()
	feedback.UpdatedAt = feedback.CreatedAt
	copied := *feedback
	f.feedbacks[feedback.ID] = &copied
	return nil
}

func (f *fakeFeedbackStore) addFeedback(feedback *models.Feedback) *models.Feedback {
	if feedback.ID == 0 {
		feedback.ID = f.nextID
		f.nextID++
	} else if feedback.ID >= f.nextID {
		f.nextID = feedback.ID + 1
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
		feedback.UpdatedAt = feedback.CreatedAt
	}
	f.feedbacks[feedback.ID] = feedback
	return feedback
}

func (f *fakeFeedbackStore) ExistsByStudentAndMenu(ctx context.Context, studentID, menuID int64) (bool, error) {
	for _, feedback := range f.feedbacks {
		if feedback.StudentID == studentID && feedback.MenuID == menuID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFeedbackStore) GetByMenu(ctx context.Context, menuID int64) ([]*models.Feedback, error) {
	var result []*models.Feedback
	for _, feedback := range f.feedbacks {
		if feedback.MenuID == menuID {
			copied := *feedback
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeFeedbackStore) GetByStudent(ctx context.Context, studentID int64) ([]*models.Feedback, error) {
	var result []*models.Feedback
	for _, feedback := range f.feedbacks {
		if feedback.StudentID == studentID {
			copied := *feedback
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeFeedbackStore) AverageRatingForMenu(ctx context.Context, menuID int64) (*float64, error) {
	var sum, count int
	for _, feedback := range f.feedbacks {
		if feedback.MenuID == menuID {
			sum += feedback.Rating
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	average := float64(sum) / float64(count)
	return &average, nil
}

func (f *fakeFeedbackStore) CountForMenu(ctx context.Context, menuID int64) (int64, error) {
	var count int64
	for _, feedback := range f.feedbacks {
		if feedback.MenuID == menuID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFeedbackStore) GetNegative(ctx context.Context) ([]*models.Feedback, error) {
	var result []*models.Feedback
	for _, feedback := range f.feedbacks {
		if feedback.Rating <= models.NegativeRatingCeil {
			copied := *feedback
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeFeedbackStore) GetPositive(ctx context.Context) ([]*models.Feedback, error) {
	var result []*models.Feedback
	for _, feedback := range f.feedbacks {
		if feedback.Rating >= models.PositiveRatingFloor {
			copied := *feedback
			result = append(result, &copied)
		}
	}
	return result, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
