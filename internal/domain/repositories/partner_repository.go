package repositories

import (
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartnerRepository interface {
	GetPartners(page, limit int, orderBy string) ([]entities.Partner, int64, error)
	GetPartnersWithAnswers(page, limit int) ([]entities.Partner, error)
	GetPartner(id string) (entities.Partner, error)
	CreatePartner(partner *entities.Partner) error
	UpdatePartner(partner *entities.Partner) error
	DeletePartner(id string) error
	GetPartnerAnswerIDs(id string) ([]uint, error)
	ReplaceAnswersForQuestions(partnerID string, questionIDs []uint, answerIDs []uint) error
	AddCategory(partnerID string, categoryID uint) error
	RemoveCategory(partnerID string, categoryID uint) error
}

type partnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepository{db}
}

func (r *partnerRepository) GetPartners(page, limit int, orderBy string) ([]entities.Partner, int64, error) {
	var partners []entities.Partner
	var total int64

	if err := r.db.Model(&entities.Partner{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	query := r.db.Model(&entities.Partner{})
	if orderBy != "" {
		query = query.Order(orderBy)
	}

	result := query.Offset(offset).
		Limit(limit).
		Preload("Categories").
		Find(&partners)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return partners, total, nil
}

// GetPartnersWithAnswers pages through partners with their answer sets
// preloaded. Used by segmentation runs to scan the whole partner base.
func (r *partnerRepository) GetPartnersWithAnswers(page, limit int) ([]entities.Partner, error) {
	var partners []entities.Partner

	offset := (page - 1) * limit
	err := r.db.Order("partner_id").
		Offset(offset).
		Limit(limit).
		Preload("Answers").
		Find(&partners).Error
	if err != nil {
		return nil, err
	}

	return partners, nil
}

func (r *partnerRepository) GetPartner(id string) (entities.Partner, error) {
	var partner entities.Partner
	err := r.db.Preload("Answers").
		Preload("Categories").
		First(&partner, "partner_id = ?", id).Error
	if err != nil {
		return entities.Partner{}, err
	}
	return partner, nil
}

func (r *partnerRepository) CreatePartner(partner *entities.Partner) error {
	if partner.PartnerID == "" {
		partner.PartnerID = uuid.NewString()
	}
	return r.db.Create(partner).Error
}

func (r *partnerRepository) UpdatePartner(partner *entities.Partner) error {
	result := r.db.Model(&entities.Partner{PartnerID: partner.PartnerID}).
		Updates(map[string]interface{}{
			"name":  partner.Name,
			"email": partner.Email,
			"phone": partner.Phone,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *partnerRepository) DeletePartner(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		partner := entities.Partner{PartnerID: id}
		if err := tx.Model(&partner).Association("Answers").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&partner).Association("Categories").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&partner)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *partnerRepository) GetPartnerAnswerIDs(id string) ([]uint, error) {
	if err := r.db.First(&entities.Partner{}, "partner_id = ?", id).Error; err != nil {
		return nil, err
	}

	var ids []uint
	err := r.db.Table("partner_answers").
		Where("partner_id = ?", id).
		Pluck("answer_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceAnswersForQuestions swaps the partner's picks for the given
// questions: previous selections scoped to those questions are dropped,
// selections for unrelated questions are untouched.
func (r *partnerRepository) ReplaceAnswersForQuestions(partnerID string, questionIDs []uint, answerIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var partner entities.Partner
		if err := tx.First(&partner, "partner_id = ?", partnerID).Error; err != nil {
			return err
		}

		if len(questionIDs) > 0 {
			err := tx.Exec(
				"DELETE FROM partner_answers WHERE partner_id = ? AND answer_id IN (SELECT id FROM answers WHERE question_id IN ?)",
				partnerID, questionIDs,
			).Error
			if err != nil {
				return err
			}
		}

		if len(answerIDs) == 0 {
			return nil
		}

		var answers []entities.Answer
		if err := tx.Where("id IN ?", answerIDs).Find(&answers).Error; err != nil {
			return err
		}
		if len(answers) != len(answerIDs) {
			return fmt.Errorf("some answers do not exist: requested %d, found %d", len(answerIDs), len(answers))
		}

		return tx.Model(&partner).Association("Answers").Append(&answers)
	})
}

func (r *partnerRepository) AddCategory(partnerID string, categoryID uint) error {
	partner := entities.Partner{PartnerID: partnerID}
	return r.db.Model(&partner).Association("Categories").Append(&entities.Category{ID: categoryID})
}

func (r *partnerRepository) RemoveCategory(partnerID string, categoryID uint) error {
	partner := entities.Partner{PartnerID: partnerID}
	return r.db.Model(&partner).Association("Categories").Delete(&entities.Category{ID: categoryID})
}
