package usecases

import (
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/atlascrm/profiling-api/internal/domain/repositories"
)

type CategoryUseCase interface {
	GetCategories(page, limit int) ([]entities.Category, int64, error)
	CreateCategory(category *entities.Category) error
}

type categoryUseCase struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repositories.CategoryRepository) CategoryUseCase {
	return &categoryUseCase{categoryRepo}
}

func (uc *categoryUseCase) GetCategories(page, limit int) ([]entities.Category, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return uc.categoryRepo.GetCategories(page, limit)
}

func (uc *categoryUseCase) CreateCategory(category *entities.Category) error {
	if category.Name == "" {
		return fmt.Errorf("category name is required")
	}
	return uc.categoryRepo.CreateCategory(category)
}
