package repositories

import (
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"gorm.io/gorm"
)

type SegmentationRepository interface {
	GetSegmentations(page, limit int, orderBy string) ([]entities.Segmentation, int64, error)
	GetSegmentation(id uint) (entities.Segmentation, error)
	GetSegmentationTree(parentID *uint) ([]entities.Segmentation, error)
	CreateSegmentation(segmentation *entities.Segmentation, yesIDs, noIDs []uint) error
	UpdateSegmentation(segmentation *entities.Segmentation) error
	ReplaceRuleAnswers(id uint, yesIDs, noIDs []uint) error
	UpdateStatus(id uint, status string) error
	DeleteSegmentation(id uint) error
}

type segmentationRepository struct {
	db *gorm.DB
}

func NewSegmentationRepository(db *gorm.DB) SegmentationRepository {
	return &segmentationRepository{db}
}

func (r *segmentationRepository) GetSegmentations(page, limit int, orderBy string) ([]entities.Segmentation, int64, error) {
	var segmentations []entities.Segmentation
	var total int64

	if err := r.db.Model(&entities.Segmentation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	query := r.db.Model(&entities.Segmentation{})
	if orderBy != "" {
		query = query.Order(orderBy)
	}

	result := query.Offset(offset).
		Limit(limit).
		Preload("Category").
		Find(&segmentations)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return segmentations, total, nil
}

func (r *segmentationRepository) GetSegmentation(id uint) (entities.Segmentation, error) {
	var segmentation entities.Segmentation
	err := r.db.Preload("Category").
		Preload("Children").
		Preload("AnswersYes").
		Preload("AnswersNo").
		First(&segmentation, id).Error
	if err != nil {
		return entities.Segmentation{}, err
	}
	return segmentation, nil
}

// GetSegmentationTree lists the direct children of parentID, or the root
// segmentations when parentID is nil.
func (r *segmentationRepository) GetSegmentationTree(parentID *uint) ([]entities.Segmentation, error) {
	var segmentations []entities.Segmentation

	query := r.db.Order("id").Preload("Category")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	if err := query.Find(&segmentations).Error; err != nil {
		return nil, err
	}
	return segmentations, nil
}

func (r *segmentationRepository) CreateSegmentation(segmentation *entities.Segmentation, yesIDs, noIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if segmentation.Status == "" {
			segmentation.Status = entities.SegmentationNotRunning
		}
		if err := tx.Create(segmentation).Error; err != nil {
			return err
		}
		return replaceRuleAnswers(tx, segmentation, yesIDs, noIDs)
	})
}

func (r *segmentationRepository) UpdateSegmentation(segmentation *entities.Segmentation) error {
	result := r.db.Model(&entities.Segmentation{ID: segmentation.ID}).
		Updates(map[string]interface{}{
			"name":        segmentation.Name,
			"description": segmentation.Description,
			"exclusive":   segmentation.Exclusive,
			"category_id": segmentation.CategoryID,
			"parent_id":   segmentation.ParentID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceRuleAnswers swaps both answer sets of the rule atomically.
func (r *segmentationRepository) ReplaceRuleAnswers(id uint, yesIDs, noIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var segmentation entities.Segmentation
		if err := tx.First(&segmentation, id).Error; err != nil {
			return err
		}
		return replaceRuleAnswers(tx, &segmentation, yesIDs, noIDs)
	})
}

func replaceRuleAnswers(tx *gorm.DB, segmentation *entities.Segmentation, yesIDs, noIDs []uint) error {
	yes, err := findAnswers(tx, yesIDs)
	if err != nil {
		return err
	}
	no, err := findAnswers(tx, noIDs)
	if err != nil {
		return err
	}

	if err := tx.Model(segmentation).Association("AnswersYes").Replace(&yes); err != nil {
		return err
	}
	return tx.Model(segmentation).Association("AnswersNo").Replace(&no)
}

func findAnswers(tx *gorm.DB, ids []uint) ([]entities.Answer, error) {
	if len(ids) == 0 {
		return []entities.Answer{}, nil
	}
	var answers []entities.Answer
	if err := tx.Where("id IN ?", ids).Find(&answers).Error; err != nil {
		return nil, err
	}
	if len(answers) != len(ids) {
		return nil, fmt.Errorf("some answers do not exist: requested %d, found %d", len(ids), len(answers))
	}
	return answers, nil
}

func (r *segmentationRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&entities.Segmentation{ID: id}).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *segmentationRepository) DeleteSegmentation(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		segmentation := entities.Segmentation{ID: id}
		if err := tx.Model(&segmentation).Association("AnswersYes").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&segmentation).Association("AnswersNo").Clear(); err != nil {
			return err
		}
		// Re-parent children to the deleted node's parent.
		var current entities.Segmentation
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		err := tx.Model(&entities.Segmentation{}).
			Where("parent_id = ?", id).
			Update("parent_id", current.ParentID).Error
		if err != nil {
			return err
		}
		return tx.Delete(&segmentation).Error
	})
}
