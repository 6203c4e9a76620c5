package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
)

// MenuStore is the query surface the menu service consumes.
type MenuStore interface {
	WithTx(tx pgx.Tx) MenuStore
	Create(ctx context.Context, menu *models.Menu) error
	GetByID(ctx context.Context, id int64) (*models.Menu, error)
	GetByDate(ctx context.Context, date time.Time) ([]*models.Menu, error)
	GetActiveByDateAndMealType(ctx context.Context, date time.Time, mealType models.MealType) (*models.Menu, error)
	GetUpcoming(ctx context.Context, from time.Time) ([]*models.Menu, error)
	GetForDateRange(ctx context.Context, start, end time.Time) ([]*models.Menu, error)
	ExistsActiveByDateAndMealType(ctx context.Context, date time.Time, mealType models.MealType) (bool, error)
}

// MenuRepository handles menu and menu item database operations. Menus
// own their items; every read loads the items alongside the menu.
type MenuRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db DBTX) *MenuRepository {
	return &MenuRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to an open transaction
func (r *MenuRepository) WithTx(tx pgx.Tx) MenuStore {
	return &MenuRepository{db: tx, sb: r.sb}
}

var menuColumns = []string{"id", "menu_date", "meal_type", "is_active", "special_notes", "created_at", "updated_at"}

func scanMenu(row pgx.Row) (*models.Menu, error) {
	var menu models.Menu
	err := row.Scan(
		&menu.ID,
		&menu.MenuDate,
		&menu.MealType,
		&menu.IsActive,
		&menu.SpecialNotes,
		&menu.CreatedAt,
		&menu.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	menu.MenuItems = []models.MenuItem{}
	return &menu, nil
}

// Create inserts a menu together with its items in one go. Callers run
// this inside a transaction so the menu never appears without its items.
func (r *MenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	sql, args, err := r.sb.Insert("menus").
		Columns("menu_date", "meal_type", "is_active", "special_notes").
		Values(menu.MenuDate, menu.MealType, menu.IsActive, menu.SpecialNotes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create menu query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&menu.ID, &menu.CreatedAt, &menu.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating menu: %w", err)
	}

	for i := range menu.MenuItems {
		item := &menu.MenuItems[i]
		item.MenuID = menu.ID

		sql, args, err := r.sb.Insert("menu_items").
			Columns("menu_id", "item_name", "description", "is_vegetarian", "is_available", "price").
			Values(item.MenuID, item.ItemName, item.Description, item.IsVegetarian, item.IsAvailable, item.Price).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create menu item query: %w", err)
		}

		if err := r.db.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return fmt.Errorf("error creating menu item: %w", err)
		}
	}

	return nil
}

// GetByID retrieves a menu with its items
func (r *MenuRepository) GetByID(ctx context.Context, id int64) (*models.Menu, error) {
	sql, args, err := r.sb.Select(menuColumns...).
		From("menus").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get menu query: %w", err)
	}

	menu, err := scanMenu(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMenuNotFound
		}
		return nil, fmt.Errorf("error retrieving menu: %w", err)
	}

	if err := r.loadItems(ctx, []*models.Menu{menu}); err != nil {
		return nil, err
	}

	return menu, nil
}

// GetByDate retrieves all menus published for a date
func (r *MenuRepository) GetByDate(ctx context.Context, date time.Time) ([]*models.Menu, error) {
	return r.queryMenus(ctx, r.sb.Select(menuColumns...).
		From("menus").
		Where(squirrel.Eq{"menu_date": date}).
		OrderBy("meal_type ASC"))
}

// GetActiveByDateAndMealType retrieves the single active menu for a
// date and meal type.
func (r *MenuRepository) GetActiveByDateAndMealType(ctx context.Context, date time.Time, mealType models.MealType) (*models.Menu, error) {
	sql, args, err := r.sb.Select(menuColumns...).
		From("menus").
		Where(squirrel.Eq{"menu_date": date, "meal_type": mealType, "is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get menu by date and meal type query: %w", err)
	}

	menu, err := scanMenu(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMenuNotFound
		}
		return nil, fmt.Errorf("error retrieving menu: %w", err)
	}

	if err := r.loadItems(ctx, []*models.Menu{menu}); err != nil {
		return nil, err
	}

	return menu, nil
}

// GetUpcoming retrieves active menus from the given date onward
func (r *MenuRepository) GetUpcoming(ctx context.Context, from time.Time) ([]*models.Menu, error) {
	return r.queryMenus(ctx, r.sb.Select(menuColumns...).
		From("menus").
		Where(squirrel.GtOrEq{"menu_date": from}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("menu_date ASC", "meal_type ASC"))
}

// GetForDateRange retrieves active menus between start and end inclusive
func (r *MenuRepository) GetForDateRange(ctx context.Context, start, end time.Time) ([]*models.Menu, error) {
	return r.queryMenus(ctx, r.sb.Select(menuColumns...).
		From("menus").
		Where(squirrel.GtOrEq{"menu_date": start}).
		Where(squirrel.LtOrEq{"menu_date": end}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("menu_date ASC", "meal_type ASC"))
}

// ExistsActiveByDateAndMealType checks for an active menu clash
func (r *MenuRepository) ExistsActiveByDateAndMealType(ctx context.Context, date time.Time, mealType models.MealType) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("menus").
		Where(squirrel.Eq{"menu_date": date, "meal_type": mealType, "is_active": true}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build menu exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking menu existence: %w", err)
	}

	return exists, nil
}

func (r *MenuRepository) queryMenus(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Menu, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build menu list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*models.Menu
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, menus); err != nil {
		return nil, err
	}

	return menus, nil
}

// loadItems fetches the items for a batch of menus in one query
func (r *MenuRepository) loadItems(ctx context.Context, menus []*models.Menu) error {
	if len(menus) == 0 {
		return nil
	}

	ids := make([]int64, len(menus))
	byID := make(map[int64]*models.Menu, len(menus))
	for i, menu := range menus {
		ids[i] = menu.ID
		byID[menu.ID] = menu
	}

	sql, args, err := r.sb.Select("id", "menu_id", "item_name", "description", "is_vegetarian", "is_available", "price", "created_at", "updated_at").
		From("menu_items").
		Where(squirrel.Eq{"menu_id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build menu items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.MenuID,
			&item.ItemName,
			&item.Description,
			&item.IsVegetarian,
			&item.IsAvailable,
			&item.Price,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return err
		}

		if menu, ok := byID[item.MenuID]; ok {
			menu.MenuItems = append(menu.MenuItems, item)
		}
	}

	return rows.Err()
}
