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

func newMenuServiceForTest() (*MenuService, *fakeMenuStore) {
	menus := newFakeMenuStore()
	return NewMenuService(menus, fakeTxRunner{}), menus
}

func TestPublishMenu(t *testing.T) {
	service, _ := newMenuServiceForTest()
	service.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }

	menu, err := service.PublishMenu(context.Background(), &models.Menu{
		MenuDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		MealType: models.MealTypeLunch,
		MenuItems: []models.MenuItem{
			{ItemName: "Dal Tadka", IsVegetarian: true},
			{ItemName: "Jeera Rice", IsVegetarian: true},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, menu.ID)
	assert.True(t, menu.IsActive)
	assert.Len(t, menu.MenuItems, 2)
}

func TestPublishMenu_NoItems(t *testing.T) {
	service, _ := newMenuServiceForTest()

	_, err := service.PublishMenu(context.Background(), &models.Menu{
		MenuDate: time.Now(),
		MealType: models.MealTypeDinner,
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestPublishMenu_PastDate(t *testing.T) {
	service, _ := newMenuServiceForTest()
	service.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }

	_, err := service.PublishMenu(context.Background(), &models.Menu{
		MenuDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		MealType:  models.MealTypeLunch,
		MenuItems: []models.MenuItem{{ItemName: "Kadhi"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestPublishMenu_DuplicateActive(t *testing.T) {
	service, _ := newMenuServiceForTest()
	service.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	_, err := service.PublishMenu(context.Background(), &models.Menu{
		MenuDate:  date,
		MealType:  models.MealTypeBreakfast,
		MenuItems: []models.MenuItem{{ItemName: "Poha"}},
	})
	require.NoError(t, err)

	_, err = service.PublishMenu(context.Background(), &models.Menu{
		MenuDate:  date,
		MealType:  models.MealTypeBreakfast,
		MenuItems: []models.MenuItem{{ItemName: "Upma"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrMenuAlreadyExists)

	// A different meal type on the same date is fine
	_, err = service.PublishMenu(context.Background(), &models.Menu{
		MenuDate:  date,
		MealType:  models.MealTypeDinner,
		MenuItems: []models.MenuItem{{ItemName: "Chapati"}},
	})
	assert.NoError(t, err)
}

func TestGetTodaysMenus(t *testing.T) {
	service, menus := newMenuServiceForTest()
	fixed := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	menus.addMenu(&models.Menu{
		MenuDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		MealType: models.MealTypeBreakfast,
		IsActive: true,
	})
	menus.addMenu(&models.Menu{
		MenuDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		MealType: models.MealTypeBreakfast,
		IsActive: true,
	})

	today, err := service.GetTodaysMenus(context.Background())
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, models.MealTypeBreakfast, today[0].MealType)

	count, err := service.CountTodaysMenus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetUpcomingMenus(t *testing.T) {
	service, menus := newMenuServiceForTest()
	fixed := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	menus.addMenu(&models.Menu{
		MenuDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), // past
		MealType: models.MealTypeLunch,
		IsActive: true,
	})
	menus.addMenu(&models.Menu{
		MenuDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), // within window
		MealType: models.MealTypeLunch,
		IsActive: true,
	})
	menus.addMenu(&models.Menu{
		MenuDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), // beyond window
		MealType: models.MealTypeLunch,
		IsActive: true,
	})

	upcoming, err := service.GetUpcomingMenus(context.Background())
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), upcoming[0].MenuDate)
}

func TestGetWeekMenus(t *testing.T) {
	service, menus := newMenuServiceForTest()
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	menus.addMenu(&models.Menu{
		MenuDate: start,
		MealType: models.MealTypeBreakfast,
		IsActive: true,
	})
	menus.addMenu(&models.Menu{
		MenuDate: start.AddDate(0, 0, 6), // last day of the window
		MealType: models.MealTypeDinner,
		IsActive: true,
	})
	menus.addMenu(&models.Menu{
		MenuDate: start.AddDate(0, 0, 7), // next week
		MealType: models.MealTypeLunch,
		IsActive: true,
	})

	week, err := service.GetWeekMenus(context.Background(), start)
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, start, week[0].MenuDate)
	assert.Equal(t, start.AddDate(0, 0, 6), week[1].MenuDate)
}

func TestGetCurrentMenu_NotFound(t *testing.T) {
	service, _ := newMenuServiceForTest()

	_, err := service.GetCurrentMenu(context.Background(), time.Now(), models.MealTypeSnacks)
	assert.ErrorIs(t, err, apperrors.ErrMenuNotFound)
}
