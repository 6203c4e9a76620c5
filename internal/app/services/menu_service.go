package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/app/repositories"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
	"github.com/deepam/hostelmess/internal/pkg/logger"
)

// defaultUpcomingDays bounds the look-ahead window for upcoming menus.
const defaultUpcomingDays = 7

// MenuService handles meal menu publishing and lookup
type MenuService struct {
	menuStore repositories.MenuStore
	txRunner  TxRunner
	logger    zerolog.Logger
	now       func() time.Time
}

// NewMenuService creates a new menu service instance
func NewMenuService(menuStore repositories.MenuStore, txRunner TxRunner) *MenuService {
	return &MenuService{
		menuStore: menuStore,
		txRunner:  txRunner,
		logger:    logger.WithFields(map[string]interface{}{"component": "menu_service"}),
		now:       time.Now,
	}
}

// PublishMenu creates a menu with its items. Only one active menu may
// exist for a given date and meal type.
func (s *MenuService) PublishMenu(ctx context.Context, menu *models.Menu) (*models.Menu, error) {
	if len(menu.MenuItems) == 0 {
		return nil, apperrors.NewBadRequestError("menu must contain at least one item")
	}
	if menu.MenuDate.Before(startOfDay(s.now())) {
		return nil, apperrors.NewBadRequestError("menu date cannot be in the past")
	}
	menu.IsActive = true

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.menuStore.WithTx(tx)

		exists, err := store.ExistsActiveByDateAndMealType(ctx, menu.MenuDate, menu.MealType)
		if err != nil {
			return fmt.Errorf("error checking existing menu: %w", err)
		}
		if exists {
			return apperrors.NewCustomError(apperrors.ErrMenuAlreadyExists,
				fmt.Sprintf("an active %s menu already exists for %s",
					menu.MealType, menu.MenuDate.Format("2006-01-02")))
		}

		return store.Create(ctx, menu)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("menuId", menu.ID).
		Str("mealType", string(menu.MealType)).
		Str("date", menu.MenuDate.Format("2006-01-02")).
		Int("items", len(menu.MenuItems)).
		Msg("Menu published")
	return menu, nil
}

// GetMenuByID retrieves a menu with its items
func (s *MenuService) GetMenuByID(ctx context.Context, id int64) (*models.Menu, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("menu ID must be positive")
	}
	return s.menuStore.GetByID(ctx, id)
}

// GetMenusForDate lists all menus published for a calendar date
func (s *MenuService) GetMenusForDate(ctx context.Context, date time.Time) ([]*models.Menu, error) {
	return s.menuStore.GetByDate(ctx, date)
}

// GetTodaysMenus lists the menus for the current date
func (s *MenuService) GetTodaysMenus(ctx context.Context) ([]*models.Menu, error) {
	return s.menuStore.GetByDate(ctx, s.now())
}

// GetCurrentMenu finds the active menu for a date and meal type
func (s *MenuService) GetCurrentMenu(ctx context.Context, date time.Time, mealType models.MealType) (*models.Menu, error) {
	return s.menuStore.GetActiveByDateAndMealType(ctx, date, mealType)
}

// GetUpcomingMenus lists menus from today through the look-ahead window
func (s *MenuService) GetUpcomingMenus(ctx context.Context) ([]*models.Menu, error) {
	start := s.now()
	end := start.AddDate(0, 0, defaultUpcomingDays)
	return s.menuStore.GetForDateRange(ctx, start, end)
}

// GetWeekMenus lists active menus for the seven days starting at start
func (s *MenuService) GetWeekMenus(ctx context.Context, start time.Time) ([]*models.Menu, error) {
	return s.menuStore.GetForDateRange(ctx, start, start.AddDate(0, 0, 6))
}

// CountTodaysMenus counts menus published for the current date
func (s *MenuService) CountTodaysMenus(ctx context.Context) (int64, error) {
	menus, err := s.menuStore.GetByDate(ctx, s.now())
	if err != nil {
		return 0, err
	}
	return int64(len(menus)), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
