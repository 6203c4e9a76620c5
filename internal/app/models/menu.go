package models

import (
	"fmt"
	"time"
)

// MealType identifies which meal of the day a menu covers.
type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeSnacks    MealType = "SNACKS"
	MealTypeDinner    MealType = "DINNER"
)

var mealTypeNames = map[MealType]string{
	MealTypeBreakfast: "Breakfast",
	MealTypeLunch:     "Lunch",
	MealTypeSnacks:    "Snacks",
	MealTypeDinner:    "Dinner",
}

// MealTypes lists all meal types in serving order.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeSnacks, MealTypeDinner}

// ParseMealType validates a wire value against the known meal types.
func ParseMealType(raw string) (MealType, error) {
	mealType := MealType(raw)
	if _, ok := mealTypeNames[mealType]; !ok {
		return "", fmt.Errorf("unknown meal type %q", raw)
	}
	return mealType, nil
}

// DisplayName returns the human-readable label for the meal type.
func (m MealType) DisplayName() string {
	return mealTypeNames[m]
}

// Menu defines a published mess menu based on the 'menus' table. A menu
// owns its items; items are loaded with the menu and share its lifecycle.
type Menu struct {
	EntityMeta
	MenuDate     time.Time  `json:"menuDate" db:"menu_date" example:"2025-06-01T00:00:00Z"`
	MealType     MealType   `json:"mealType" db:"meal_type" example:"LUNCH"`
	IsActive     bool       `json:"isActive" db:"is_active" example:"true"`
	SpecialNotes *string    `json:"specialNotes,omitempty" db:"special_notes"`
	MenuItems    []MenuItem `json:"menuItems"`
}

// IsCurrentMenu reports whether the menu is today's active menu.
func (m *Menu) IsCurrentMenu(now time.Time) bool {
	y1, m1, d1 := m.MenuDate.Date()
	y2, m2, d2 := now.Date()
	return m.IsActive && y1 == y2 && m1 == m2 && d1 == d2
}

// MenuItem is a single dish on a menu, based on the 'menu_items' table.
type MenuItem struct {
	EntityMeta
	MenuID       int64    `json:"menuId" db:"menu_id" example:"1"`
	ItemName     string   `json:"itemName" db:"item_name" example:"Dal Tadka"`
	Description  *string  `json:"description,omitempty" db:"description"`
	IsVegetarian bool     `json:"isVegetarian" db:"is_vegetarian" example:"true"`
	IsAvailable  bool     `json:"isAvailable" db:"is_available" example:"true"`
	Price        *float64 `json:"price,omitempty" db:"price" example:"45.50"`
}

// CanBeOrdered reports whether the item is currently servable.
func (i *MenuItem) CanBeOrdered(menu *Menu) bool {
	return i.IsAvailable && menu != nil && menu.IsActive
}
