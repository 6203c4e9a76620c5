package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/app/services"
	"github.com/deepam/hostelmess/internal/pkg/logger"
)

// Seeder loads sample data for local development. It goes through the
// services so seeded rows obey the same rules as API traffic.
type Seeder struct {
	studentService   *services.StudentService
	menuService      *services.MenuService
	feedbackService  *services.FeedbackService
	complaintService *services.ComplaintService
	logger           zerolog.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(studentService *services.StudentService, menuService *services.MenuService, feedbackService *services.FeedbackService, complaintService *services.ComplaintService) *Seeder {
	return &Seeder{
		studentService:   studentService,
		menuService:      menuService,
		feedbackService:  feedbackService,
		complaintService: complaintService,
		logger:           logger.WithFields(map[string]interface{}{"component": "seeder"}),
	}
}

// Run populates sample data when the database is empty. Failures are
// logged and skipped; seeding must never block startup.
func (s *Seeder) Run(ctx context.Context) {
	existing, err := s.studentService.GetActiveStudents(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Could not check for existing data, skipping seed")
		return
	}
	if len(existing) > 0 {
		s.logger.Debug().Msg("Database already has data, skipping seed")
		return
	}

	students := s.seedStudents(ctx)
	menus := s.seedMenus(ctx)
	s.seedFeedback(ctx, students, menus)
	s.seedComplaints(ctx, students)
	s.logger.Info().Msg("Sample data loaded")
}

func (s *Seeder) seedStudents(ctx context.Context) []*models.Student {
	room := func(r string) *string { return &r }
	samples := []*models.Student{
		{StudentID: "HM2024001", Name: "Priya Sharma", Email: "priya.sharma@example.edu", RoomNumber: room("A-101")},
		{StudentID: "HM2024002", Name: "Arjun Verma", Email: "arjun.verma@example.edu", RoomNumber: room("A-102")},
		{StudentID: "HM2024003", Name: "Sneha Patel", Email: "sneha.patel@example.edu", RoomNumber: room("B-210")},
		{StudentID: "HM2024004", Name: "Rahul Nair", Email: "rahul.nair@example.edu", RoomNumber: room("C-305")},
	}

	var created []*models.Student
	for _, sample := range samples {
		student, err := s.studentService.RegisterStudent(ctx, sample)
		if err != nil {
			s.logger.Warn().Err(err).Str("studentId", sample.StudentID).Msg("Could not seed student")
			continue
		}
		created = append(created, student)
	}
	return created
}

func (s *Seeder) seedMenus(ctx context.Context) []*models.Menu {
	today := time.Now()
	notes := "Seeded sample menu"

	samples := []*models.Menu{
		{
			MenuDate:     today,
			MealType:     models.MealTypeBreakfast,
			SpecialNotes: &notes,
			MenuItems: []models.MenuItem{
				{ItemName: "Masala Dosa", IsVegetarian: true, IsAvailable: true},
				{ItemName: "Sambar", IsVegetarian: true, IsAvailable: true},
				{ItemName: "Filter Coffee", IsVegetarian: true, IsAvailable: true},
			},
		},
		{
			MenuDate:     today,
			MealType:     models.MealTypeLunch,
			SpecialNotes: &notes,
			MenuItems: []models.MenuItem{
				{ItemName: "Dal Tadka", IsVegetarian: true, IsAvailable: true},
				{ItemName: "Jeera Rice", IsVegetarian: true, IsAvailable: true},
				{ItemName: "Chicken Curry", IsVegetarian: false, IsAvailable: true},
			},
		},
		{
			MenuDate:     today.AddDate(0, 0, 1),
			MealType:     models.MealTypeDinner,
			SpecialNotes: &notes,
			MenuItems: []models.MenuItem{
				{ItemName: "Chapati", IsVegetarian: true, IsAvailable: true},
				{ItemName: "Paneer Butter Masala", IsVegetarian: true, IsAvailable: true},
			},
		},
	}

	var created []*models.Menu
	for _, sample := range samples {
		menu, err := s.menuService.PublishMenu(ctx, sample)
		if err != nil {
			s.logger.Warn().Err(err).Str("mealType", string(sample.MealType)).Msg("Could not seed menu")
			continue
		}
		created = append(created, menu)
	}
	return created
}

func (s *Seeder) seedFeedback(ctx context.Context, students []*models.Student, menus []*models.Menu) {
	if len(students) < 2 || len(menus) < 1 {
		return
	}
	comment := "Fresh and tasty"
	samples := []*models.Feedback{
		{StudentID: students[0].ID, MenuID: menus[0].ID, Rating: 5, Comments: &comment, FeedbackType: models.FeedbackTypeTaste},
		{StudentID: students[1].ID, MenuID: menus[0].ID, Rating: 2, FeedbackType: models.FeedbackTypeHygiene},
	}
	for _, sample := range samples {
		if _, err := s.feedbackService.SubmitFeedback(ctx, sample); err != nil {
			s.logger.Warn().Err(err).Int64("menuId", sample.MenuID).Msg("Could not seed feedback")
		}
	}
}

func (s *Seeder) seedComplaints(ctx context.Context, students []*models.Student) {
	if len(students) < 2 {
		return
	}
	samples := []*models.Complaint{
		{
			StudentID:   students[0].ID,
			Title:       "Water cooler leaking near dining hall",
			Description: "The cooler next to the east entrance has been leaking for two days and the floor is slippery.",
			Category:    models.CategoryInfrastructure,
			Priority:    models.PriorityHigh,
		},
		{
			StudentID:   students[1].ID,
			Title:       "Dinner served late on weekends",
			Description: "Dinner has started 40 minutes late on the last three weekends.",
			Category:    models.CategoryTiming,
			Priority:    models.PriorityMedium,
		},
	}
	for _, sample := range samples {
		if _, err := s.complaintService.SubmitComplaint(ctx, sample); err != nil {
			s.logger.Warn().Err(err).Str("title", sample.Title).Msg("Could not seed complaint")
		}
	}
}
