package usecases

import (
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/atlascrm/profiling-api/internal/domain/repositories"
)

// runBatchSize is how many partners a segmentation run loads per page.
const runBatchSize = 200

// RunResult summarizes one segmentation run.
type RunResult struct {
	Scanned  int `json:"scanned"`
	Matched  int `json:"matched"`
	Assigned int `json:"assigned"`
	Removed  int `json:"removed"`
}

type SegmentationUseCase interface {
	GetSegmentations(page, limit int, orderBy string) ([]entities.Segmentation, int64, error)
	GetSegmentation(id uint) (entities.Segmentation, error)
	GetSegmentationTree(parentID *uint) ([]entities.Segmentation, error)
	CreateSegmentation(segmentation *entities.Segmentation, yesIDs, noIDs []uint) error
	UpdateSegmentation(segmentation *entities.Segmentation) error
	ReplaceRuleAnswers(id uint, yesIDs, noIDs []uint) error
	DeleteSegmentation(id uint) error
	CheckPartner(partnerID string, segmentationID uint) (entities.MatchResult, error)
	MatchedPartners(segmentationID uint) ([]entities.Partner, error)
	Run(segmentationID uint) (RunResult, error)
}

type segmentationUseCase struct {
	segmentationRepo repositories.SegmentationRepository
	partnerRepo      repositories.PartnerRepository
}

func NewSegmentationUseCase(segmentationRepo repositories.SegmentationRepository, partnerRepo repositories.PartnerRepository) SegmentationUseCase {
	return &segmentationUseCase{segmentationRepo, partnerRepo}
}

func (uc *segmentationUseCase) GetSegmentations(page, limit int, orderBy string) ([]entities.Segmentation, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	return uc.segmentationRepo.GetSegmentations(page, limit, orderBy)
}

func (uc *segmentationUseCase) GetSegmentation(id uint) (entities.Segmentation, error) {
	return uc.segmentationRepo.GetSegmentation(id)
}

func (uc *segmentationUseCase) GetSegmentationTree(parentID *uint) ([]entities.Segmentation, error) {
	return uc.segmentationRepo.GetSegmentationTree(parentID)
}

func (uc *segmentationUseCase) CreateSegmentation(segmentation *entities.Segmentation, yesIDs, noIDs []uint) error {
	if segmentation.Name == "" {
		return fmt.Errorf("segmentation name is required")
	}
	if segmentation.CategoryID == 0 {
		return fmt.Errorf("segmentation category_id is required")
	}
	return uc.segmentationRepo.CreateSegmentation(segmentation, yesIDs, noIDs)
}

func (uc *segmentationUseCase) UpdateSegmentation(segmentation *entities.Segmentation) error {
	if segmentation.Name == "" {
		return fmt.Errorf("segmentation name is required")
	}
	if segmentation.CategoryID == 0 {
		return fmt.Errorf("segmentation category_id is required")
	}
	if segmentation.ParentID != nil && *segmentation.ParentID == segmentation.ID {
		return fmt.Errorf("segmentation cannot be its own parent")
	}
	return uc.segmentationRepo.UpdateSegmentation(segmentation)
}

func (uc *segmentationUseCase) ReplaceRuleAnswers(id uint, yesIDs, noIDs []uint) error {
	return uc.segmentationRepo.ReplaceRuleAnswers(id, yesIDs, noIDs)
}

func (uc *segmentationUseCase) DeleteSegmentation(id uint) error {
	return uc.segmentationRepo.DeleteSegmentation(id)
}

// CheckPartner reports whether one partner matches the segmentation, with
// the answer ids that decided it.
func (uc *segmentationUseCase) CheckPartner(partnerID string, segmentationID uint) (entities.MatchResult, error) {
	segmentation, err := uc.segmentationRepo.GetSegmentation(segmentationID)
	if err != nil {
		return entities.MatchResult{}, err
	}

	answerIDs, err := uc.partnerRepo.GetPartnerAnswerIDs(partnerID)
	if err != nil {
		return entities.MatchResult{}, err
	}

	return segmentation.Evaluate(answerIDs), nil
}

// MatchedPartners computes the segmentation's membership live, without
// touching stored categories.
func (uc *segmentationUseCase) MatchedPartners(segmentationID uint) ([]entities.Partner, error) {
	segmentation, err := uc.segmentationRepo.GetSegmentation(segmentationID)
	if err != nil {
		return nil, err
	}

	matched := []entities.Partner{}
	err = uc.scanPartners(func(partner entities.Partner) error {
		if segmentation.Matches(partner.AnswerIDs()) {
			partner.Answers = nil
			matched = append(matched, partner)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}

// Run recomputes category membership for the segmentation. Every matching
// partner gets the segmentation's category; when the segmentation is
// exclusive, partners that no longer match lose it. A non-exclusive run
// never removes a category.
func (uc *segmentationUseCase) Run(segmentationID uint) (RunResult, error) {
	segmentation, err := uc.segmentationRepo.GetSegmentation(segmentationID)
	if err != nil {
		return RunResult{}, err
	}

	if segmentation.Status == entities.SegmentationRunning {
		return RunResult{}, fmt.Errorf("segmentation %d is already running", segmentationID)
	}
	if err := uc.segmentationRepo.UpdateStatus(segmentationID, entities.SegmentationRunning); err != nil {
		return RunResult{}, err
	}

	var result RunResult
	err = uc.scanPartners(func(partner entities.Partner) error {
		result.Scanned++
		if segmentation.Matches(partner.AnswerIDs()) {
			result.Matched++
			if err := uc.partnerRepo.AddCategory(partner.PartnerID, segmentation.CategoryID); err != nil {
				return err
			}
			result.Assigned++
			return nil
		}
		if segmentation.Exclusive {
			if err := uc.partnerRepo.RemoveCategory(partner.PartnerID, segmentation.CategoryID); err != nil {
				return err
			}
			result.Removed++
		}
		return nil
	})
	if err != nil {
		// Leave the segmentation re-runnable after a failed scan.
		_ = uc.segmentationRepo.UpdateStatus(segmentationID, entities.SegmentationNotRunning)
		return RunResult{}, err
	}

	if err := uc.segmentationRepo.UpdateStatus(segmentationID, entities.SegmentationDone); err != nil {
		return RunResult{}, err
	}
	return result, nil
}

func (uc *segmentationUseCase) scanPartners(fn func(entities.Partner) error) error {
	for page := 1; ; page++ {
		partners, err := uc.partnerRepo.GetPartnersWithAnswers(page, runBatchSize)
		if err != nil {
			return err
		}
		if len(partners) == 0 {
			return nil
		}
		for _, partner := range partners {
			if err := fn(partner); err != nil {
				return err
			}
		}
		if len(partners) < runBatchSize {
			return nil
		}
	}
}
