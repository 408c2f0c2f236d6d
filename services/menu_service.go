package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/utils"
	"gorm.io/gorm"
)

type MenuInput struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required,oneof=Appetizer 'Main Course' Dessert Beverage"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// MenuUpdate -> field nil tidak diubah
type MenuUpdate struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,oneof=Appetizer 'Main Course' Dessert Beverage"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

type MenuRatingInput struct {
	MenuID       uint   `json:"menu_id" validate:"gt=0"`
	CustomerName string `json:"customer_name" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment"`
	OrderID      *uint  `json:"order_id"`
}

// MenuItemWithRating -> item menu + agregat rating (0, 0 jika belum ada rating)
type MenuItemWithRating struct {
	models.Menu
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

// RatingSummary -> agregat rating per menu id
type RatingSummary struct {
	MenuID        uint    `json:"menu_id"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// ListMenu -> urut kategori lalu nama
func (s *MenuService) ListMenu(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.WithContext(ctx).Order("category ASC").Order("name ASC").Find(&menus).Error; err != nil {
		return nil, unavailable("failed to list menu", err)
	}
	return menus, nil
}

func (s *MenuService) CreateMenu(ctx context.Context, input MenuInput) (*models.Menu, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	menu := models.Menu{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Description: input.Description,
	}
	if menu.Image == "" {
		menu.Image = models.DefaultMenuImage
	}

	if err := s.db.WithContext(ctx).Create(&menu).Error; err != nil {
		return nil, unavailable("failed to create menu", err)
	}

	utils.InfoLogger.Printf("Menu created: %s (%s)", menu.Name, utils.FormatPrice(menu.Price))
	return &menu, nil
}

func (s *MenuService) UpdateMenu(ctx context.Context, id uint, input MenuUpdate) (*models.Menu, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, invalid("name is required")
		}
		input.Name = &name
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	menu, err := s.findMenu(db, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		menu.Name = *input.Name
	}
	if input.Price != nil {
		menu.Price = *input.Price
	}
	if input.Category != nil {
		menu.Category = *input.Category
	}
	if input.Image != nil {
		menu.Image = *input.Image
	}
	if input.Description != nil {
		menu.Description = *input.Description
	}

	if err := db.Save(menu).Error; err != nil {
		return nil, unavailable("failed to update menu", err)
	}
	return menu, nil
}

func (s *MenuService) DeleteMenu(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)
	menu, err := s.findMenu(db, id)
	if err != nil {
		return err
	}
	if err := db.Delete(menu).Error; err != nil {
		return unavailable("failed to delete menu", err)
	}
	utils.InfoLogger.Printf("Menu deleted: %s", menu.Name)
	return nil
}

// MenuWithRatings menggabungkan setiap item menu (urut id) dengan agregat rating
// yang dikelompokkan berdasarkan menu_item_name, bukan menu_id.
func (s *MenuService) MenuWithRatings(ctx context.Context) ([]MenuItemWithRating, error) {
	db := s.db.WithContext(ctx)

	var menus []models.Menu
	if err := db.Order("id ASC").Find(&menus).Error; err != nil {
		return nil, unavailable("failed to list menu", err)
	}

	var rows []struct {
		MenuItemName  string
		AverageRating float64
		RatingCount   int64
	}
	if err := db.Model(&models.MenuRating{}).
		Select("menu_item_name, AVG(rating) AS average_rating, COUNT(*) AS rating_count").
		Group("menu_item_name").
		Scan(&rows).Error; err != nil {
		return nil, unavailable("failed to aggregate ratings", err)
	}

	byName := make(map[string]int, len(rows))
	for i, r := range rows {
		byName[r.MenuItemName] = i
	}

	items := make([]MenuItemWithRating, 0, len(menus))
	for _, m := range menus {
		item := MenuItemWithRating{Menu: m}
		if i, ok := byName[m.Name]; ok {
			item.AverageRating = rows[i].AverageRating
			item.RatingCount = rows[i].RatingCount
		}
		items = append(items, item)
	}
	return items, nil
}

// SubmitRating -> item menu harus ada; namanya disalin ke rating
func (s *MenuService) SubmitRating(ctx context.Context, input MenuRatingInput) (*models.MenuRating, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	menu, err := s.findMenu(db, input.MenuID)
	if err != nil {
		return nil, err
	}

	rating := models.MenuRating{
		MenuID:       menu.ID,
		MenuItemName: menu.Name,
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		OrderID:      input.OrderID,
	}
	if err := db.Create(&rating).Error; err != nil {
		return nil, unavailable("failed to save rating", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"menu_id": rating.MenuID,
		"rating":  rating.Rating,
	}).Info("menu rating received")
	return &rating, nil
}

func (s *MenuService) RatingsForItem(ctx context.Context, menuID uint) ([]models.MenuRating, error) {
	var ratings []models.MenuRating
	if err := s.db.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, unavailable("failed to list ratings", err)
	}
	return ratings, nil
}

// RatingSummaries -> agregat per menu_id (untuk endpoint menu-with-ratings)
func (s *MenuService) RatingSummaries(ctx context.Context) ([]RatingSummary, error) {
	var summaries []RatingSummary
	if err := s.db.WithContext(ctx).Model(&models.MenuRating{}).
		Select("menu_id, AVG(rating) AS average_rating, COUNT(*) AS rating_count").
		Group("menu_id").
		Order("menu_id ASC").
		Scan(&summaries).Error; err != nil {
		return nil, unavailable("failed to aggregate ratings", err)
	}
	return summaries, nil
}

func (s *MenuService) findMenu(db *gorm.DB, id uint) (*models.Menu, error) {
	var menu models.Menu
	if err := db.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("menu item %d not found", id)
		}
		return nil, unavailable("failed to load menu", err)
	}
	return &menu, nil
}
