package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Answers are read by owning question on every questionnaire load
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers (question_id)").Error; err != nil {
		return err
	}

	// Partner answer sets drive the segmentation predicate
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_partner_answers_partner_id ON partner_answers (partner_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_partner_answers_answer_id ON partner_answers (answer_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_partner_categories_category_id ON partner_categories (category_id)").Error; err != nil {
		return err
	}

	// Rule sets are checked on answer/question deletes
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_segmentation_answers_yes_answer_id ON segmentation_answers_yes (answer_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_segmentation_answers_no_answer_id ON segmentation_answers_no (answer_id)").Error; err != nil {
		return err
	}

	// Segmentation listing and tree traversal
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_segmentations_category_id ON segmentations (category_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_segmentations_parent_id ON segmentations (parent_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_segmentations_status ON segmentations (status)").Error; err != nil {
		return err
	}

	// Questionnaire membership lookups
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_questionnaire_questions_question_id ON questionnaire_questions (question_id)").Error; err != nil {
		return err
	}

	return nil
}
