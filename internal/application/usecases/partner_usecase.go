package usecases

import (
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/atlascrm/profiling-api/internal/domain/repositories"
)

type PartnerUseCase interface {
	GetPartners(page, limit int, orderBy string) ([]entities.Partner, int64, error)
	GetPartner(id string) (entities.Partner, error)
	CreatePartner(partner *entities.Partner) error
	UpdatePartner(partner *entities.Partner) error
	DeletePartner(id string) error
}

type partnerUseCase struct {
	partnerRepo repositories.PartnerRepository
}

func NewPartnerUseCase(partnerRepo repositories.PartnerRepository) PartnerUseCase {
	return &partnerUseCase{partnerRepo}
}

func (uc *partnerUseCase) GetPartners(page, limit int, orderBy string) ([]entities.Partner, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	return uc.partnerRepo.GetPartners(page, limit, orderBy)
}

func (uc *partnerUseCase) GetPartner(id string) (entities.Partner, error) {
	return uc.partnerRepo.GetPartner(id)
}

func (uc *partnerUseCase) CreatePartner(partner *entities.Partner) error {
	if partner.Name == "" {
		return fmt.Errorf("partner name is required")
	}
	return uc.partnerRepo.CreatePartner(partner)
}

func (uc *partnerUseCase) UpdatePartner(partner *entities.Partner) error {
	if partner.Name == "" {
		return fmt.Errorf("partner name is required")
	}
	return uc.partnerRepo.UpdatePartner(partner)
}

func (uc *partnerUseCase) DeletePartner(id string) error {
	return uc.partnerRepo.DeletePartner(id)
}
