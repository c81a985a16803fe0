package repositories

import (
	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	GetCategories(page, limit int) ([]entities.Category, int64, error)
	CreateCategory(category *entities.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db}
}

func (r *categoryRepository) GetCategories(page, limit int) ([]entities.Category, int64, error) {
	var categories []entities.Category
	var total int64

	if err := r.db.Model(&entities.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	result := r.db.Order("id").
		Offset(offset).
		Limit(limit).
		Find(&categories)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return categories, total, nil
}

func (r *categoryRepository) CreateCategory(category *entities.Category) error {
	return r.db.Create(category).Error
}
