package dto

import (
	"time"

	"github.com/deepam/hostelmess/internal/app/models"
)

// CreateMenuItemRequest describes a single dish inside a menu payload
type CreateMenuItemRequest struct {
	ItemName     string   `json:"itemName" binding:"required,min=2,max=100" example:"Masala Dosa"`
	Description  *string  `json:"description,omitempty" binding:"omitempty,max=500" example:"Crispy dosa with potato filling"`
	IsVegetarian bool     `json:"isVegetarian" example:"true"`
	Price        *float64 `json:"price,omitempty" binding:"omitempty,gt=0" example:"45.50"`
}

// CreateMenuRequest is the payload for publishing a menu
type CreateMenuRequest struct {
	MenuDate     string                  `json:"menuDate" binding:"required" example:"2025-06-02"`
	MealType     string                  `json:"mealType" binding:"required,oneof=BREAKFAST LUNCH SNACKS DINNER" example:"BREAKFAST"`
	SpecialNotes *string                 `json:"specialNotes,omitempty" binding:"omitempty,max=500" example:"Festival special"`
	Items        []CreateMenuItemRequest `json:"items" binding:"required,min=1,dive"`
}

// MenuItemResponse is the outbound representation of a dish
type MenuItemResponse struct {
	ID           int64    `json:"id" example:"10"`
	ItemName     string   `json:"itemName" example:"Masala Dosa"`
	Description  *string  `json:"description,omitempty" example:"Crispy dosa with potato filling"`
	IsVegetarian bool     `json:"isVegetarian" example:"true"`
	IsAvailable  bool     `json:"isAvailable" example:"true"`
	Price        *float64 `json:"price,omitempty" example:"45.50"`
}

// MenuResponse is the outbound representation of a menu with its items
type MenuResponse struct {
	ID            int64              `json:"id" example:"1"`
	MenuDate      string             `json:"menuDate" example:"2025-06-02"`
	MealType      string             `json:"mealType" example:"BREAKFAST"`
	MealTypeLabel string             `json:"mealTypeLabel" example:"Breakfast"`
	IsActive      bool               `json:"isActive" example:"true"`
	SpecialNotes  *string            `json:"specialNotes,omitempty" example:"Festival special"`
	Items         []MenuItemResponse `json:"items"`

	// Aggregated from feedback on listing endpoints; nil average means
	// no feedback has been filed yet.
	AverageRating  *float64 `json:"averageRating,omitempty" example:"4.2"`
	TotalFeedbacks int64    `json:"totalFeedbacks" example:"12"`

	CreatedAt time.Time `json:"createdAt" example:"2025-06-01T12:01:05.123Z"`
}

// MealTypeResponse pairs a meal type wire value with its display label
type MealTypeResponse struct {
	Value string `json:"value" example:"BREAKFAST"`
	Label string `json:"label" example:"Breakfast"`
}

// NewMealTypeResponses maps the meal type list to its response form
func NewMealTypeResponses(mealTypes []models.MealType) []MealTypeResponse {
	responses := make([]MealTypeResponse, 0, len(mealTypes))
	for _, m := range mealTypes {
		responses = append(responses, MealTypeResponse{Value: string(m), Label: m.DisplayName()})
	}
	return responses
}

// MenuDateLayout is the wire format for menu dates
const MenuDateLayout = "2006-01-02"

// ToModel converts the request into a menu model. Date parsing is left
// to the service so the failure maps to a validation error.
func (r *CreateMenuRequest) ToModel(menuDate time.Time, mealType models.MealType) *models.Menu {
	menu := &models.Menu{
		MenuDate:     menuDate,
		MealType:     mealType,
		IsActive:     true,
		SpecialNotes: r.SpecialNotes,
		MenuItems:    make([]models.MenuItem, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		menu.MenuItems = append(menu.MenuItems, models.MenuItem{
			ItemName:     item.ItemName,
			Description:  item.Description,
			IsVegetarian: item.IsVegetarian,
			IsAvailable:  true,
			Price:        item.Price,
		})
	}
	return menu
}

// NewMenuResponse maps a menu model to its response form
func NewMenuResponse(menu *models.Menu) MenuResponse {
	items := make([]MenuItemResponse, 0, len(menu.MenuItems))
	for _, item := range menu.MenuItems {
		items = append(items, MenuItemResponse{
			ID:           item.ID,
			ItemName:     item.ItemName,
			Description:  item.Description,
			IsVegetarian: item.IsVegetarian,
			IsAvailable:  item.IsAvailable,
			Price:        item.Price,
		})
	}
	return MenuResponse{
		ID:            menu.ID,
		MenuDate:      menu.MenuDate.Format(MenuDateLayout),
		MealType:      string(menu.MealType),
		MealTypeLabel: menu.MealType.DisplayName(),
		IsActive:      menu.IsActive,
		SpecialNotes:  menu.SpecialNotes,
		Items:         items,
		CreatedAt:     menu.CreatedAt,
	}
}

// NewMenuResponses maps a slice of menu models
func NewMenuResponses(menus []*models.Menu) []MenuResponse {
	responses := make([]MenuResponse, 0, len(menus))
	for _, m := range menus {
		responses = append(responses, NewMenuResponse(m))
	}
	return responses
}
