package repositories

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/atlascrm/profiling-api/internal/infrastructure/database/migrations"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives every test its own named in-memory database so the
// connection pool always sees the same schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.Migrate(db))
	return db
}

// seedQuestion creates a question with one answer per name.
func seedQuestion(t *testing.T, db *gorm.DB, name string, answerNames ...string) entities.Question {
	t.Helper()

	question := entities.Question{Name: name}
	for _, answerName := range answerNames {
		question.Answers = append(question.Answers, entities.Answer{Name: answerName})
	}
	require.NoError(t, db.Create(&question).Error)
	return question
}

func seedPartner(t *testing.T, db *gorm.DB, name string, answers ...entities.Answer) entities.Partner {
	t.Helper()

	repo := NewPartnerRepository(db)
	partner := entities.Partner{Name: name}
	require.NoError(t, repo.CreatePartner(&partner))
	if len(answers) > 0 {
		require.NoError(t, db.Model(&partner).Association("Answers").Append(&answers))
	}
	return partner
}

func TestQuestionDeleteCascadesToAnswers(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuestionRepository(db)

	question := seedQuestion(t, db, "Industry", "Retail", "Manufacturing")
	partner := seedPartner(t, db, "Acme", question.Answers[0])

	require.NoError(t, repo.DeleteQuestion(question.ID))

	var answerCount int64
	require.NoError(t, db.Model(&entities.Answer{}).Where("question_id = ?", question.ID).Count(&answerCount).Error)
	require.Zero(t, answerCount)

	// The partner's selection of the deleted answer is detached too.
	var selections int64
	require.NoError(t, db.Table("partner_answers").Where("partner_id = ?", partner.PartnerID).Count(&selections).Error)
	require.Zero(t, selections)
}

func TestQuestionDeleteBlockedBySegmentationRule(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuestionRepository(db)

	question := seedQuestion(t, db, "Industry", "Retail")

	category := entities.Category{Name: "Retailers"}
	require.NoError(t, db.Create(&category).Error)

	segRepo := NewSegmentationRepository(db)
	segmentation := entities.Segmentation{Name: "Retail partners", CategoryID: category.ID}
	require.NoError(t, segRepo.CreateSegmentation(&segmentation, []uint{question.Answers[0].ID}, nil))

	err := repo.DeleteQuestion(question.ID)
	require.ErrorIs(t, err, ErrAnswerInUse)

	// Nothing was deleted.
	var count int64
	require.NoError(t, db.Model(&entities.Answer{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAnswerDeleteBlockedAndDetached(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnswerRepository(db)

	question := seedQuestion(t, db, "Industry", "Retail", "Services")
	blocked := question.Answers[0]
	free := question.Answers[1]

	category := entities.Category{Name: "Retailers"}
	require.NoError(t, db.Create(&category).Error)

	segRepo := NewSegmentationRepository(db)
	segmentation := entities.Segmentation{Name: "No retail", CategoryID: category.ID}
	require.NoError(t, segRepo.CreateSegmentation(&segmentation, nil, []uint{blocked.ID}))

	partner := seedPartner(t, db, "Acme", blocked, free)

	require.ErrorIs(t, repo.DeleteAnswer(blocked.ID), ErrAnswerInUse)
	require.NoError(t, repo.DeleteAnswer(free.ID))

	// Free answer is gone from the partner's set, blocked answer remains.
	partnerRepo := NewPartnerRepository(db)
	ids, err := partnerRepo.GetPartnerAnswerIDs(partner.PartnerID)
	require.NoError(t, err)
	require.Equal(t, []uint{blocked.ID}, ids)
}

func TestReplaceAnswersForQuestionsScopesToQuestionnaire(t *testing.T) {
	db := openTestDB(t)
	repo := NewPartnerRepository(db)

	inScope := seedQuestion(t, db, "Industry", "Retail", "Services")
	outOfScope := seedQuestion(t, db, "Size", "Small", "Large")

	partner := seedPartner(t, db, "Acme", inScope.Answers[0], outOfScope.Answers[1])

	// Re-answer the in-scope question only.
	err := repo.ReplaceAnswersForQuestions(
		partner.PartnerID,
		[]uint{inScope.ID},
		[]uint{inScope.Answers[1].ID},
	)
	require.NoError(t, err)

	ids, err := repo.GetPartnerAnswerIDs(partner.PartnerID)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint{inScope.Answers[1].ID, outOfScope.Answers[1].ID}, ids)

	// Submitting nothing clears the in-scope picks, keeps the rest.
	require.NoError(t, repo.ReplaceAnswersForQuestions(partner.PartnerID, []uint{inScope.ID}, nil))
	ids, err = repo.GetPartnerAnswerIDs(partner.PartnerID)
	require.NoError(t, err)
	require.Equal(t, []uint{outOfScope.Answers[1].ID}, ids)
}

func TestReplaceAnswersUnknownAnswerFails(t *testing.T) {
	db := openTestDB(t)
	repo := NewPartnerRepository(db)

	question := seedQuestion(t, db, "Industry", "Retail")
	partner := seedPartner(t, db, "Acme")

	err := repo.ReplaceAnswersForQuestions(partner.PartnerID, []uint{question.ID}, []uint{9999})
	require.Error(t, err)
}

func TestQuestionnaireAddAndRemoveQuestions(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuestionnaireRepository(db)

	first := seedQuestion(t, db, "Industry", "Retail")
	second := seedQuestion(t, db, "Size", "Small")

	questionnaire := entities.Questionnaire{Name: "Onboarding"}
	require.NoError(t, repo.CreateQuestionnaire(&questionnaire))

	require.NoError(t, repo.AddQuestions(questionnaire.ID, []uint{first.ID, second.ID}))

	loaded, err := repo.GetQuestionnaire(questionnaire.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 2)
	require.Len(t, loaded.Questions[0].Answers, 1)

	require.NoError(t, repo.RemoveQuestion(questionnaire.ID, first.ID))
	loaded, err = repo.GetQuestionnaire(questionnaire.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 1)
	require.Equal(t, second.ID, loaded.Questions[0].ID)

	// The removed question itself survives.
	var count int64
	require.NoError(t, db.Model(&entities.Question{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestQuestionnaireAddUnknownQuestionFails(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuestionnaireRepository(db)

	questionnaire := entities.Questionnaire{Name: "Onboarding"}
	require.NoError(t, repo.CreateQuestionnaire(&questionnaire))

	require.Error(t, repo.AddQuestions(questionnaire.ID, []uint{12345}))
}

func TestSegmentationDeleteReparentsChildren(t *testing.T) {
	db := openTestDB(t)
	repo := NewSegmentationRepository(db)

	category := entities.Category{Name: "Any"}
	require.NoError(t, db.Create(&category).Error)

	root := entities.Segmentation{Name: "root", CategoryID: category.ID}
	require.NoError(t, repo.CreateSegmentation(&root, nil, nil))
	middle := entities.Segmentation{Name: "middle", CategoryID: category.ID, ParentID: &root.ID}
	require.NoError(t, repo.CreateSegmentation(&middle, nil, nil))
	leaf := entities.Segmentation{Name: "leaf", CategoryID: category.ID, ParentID: &middle.ID}
	require.NoError(t, repo.CreateSegmentation(&leaf, nil, nil))

	require.NoError(t, repo.DeleteSegmentation(middle.ID))

	children, err := repo.GetSegmentationTree(&root.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	require.Equal(t, "leaf", children[0].Name)
}

func TestPartnerDeleteClearsAssociations(t *testing.T) {
	db := openTestDB(t)
	repo := NewPartnerRepository(db)

	question := seedQuestion(t, db, "Industry", "Retail")
	partner := seedPartner(t, db, "Acme", question.Answers[0])

	category := entities.Category{Name: "Retailers"}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, repo.AddCategory(partner.PartnerID, category.ID))

	require.NoError(t, repo.DeletePartner(partner.PartnerID))

	var selections, memberships int64
	require.NoError(t, db.Table("partner_answers").Count(&selections).Error)
	require.NoError(t, db.Table("partner_categories").Count(&memberships).Error)
	require.Zero(t, selections)
	require.Zero(t, memberships)

	// The answer and category themselves survive.
	var answers int64
	require.NoError(t, db.Model(&entities.Answer{}).Count(&answers).Error)
	require.EqualValues(t, 1, answers)
}

func TestAddCategoryIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewPartnerRepository(db)

	partner := seedPartner(t, db, "Acme")
	category := entities.Category{Name: "Retailers"}
	require.NoError(t, db.Create(&category).Error)

	require.NoError(t, repo.AddCategory(partner.PartnerID, category.ID))
	require.NoError(t, repo.AddCategory(partner.PartnerID, category.ID))

	var memberships int64
	require.NoError(t, db.Table("partner_categories").Where("partner_id = ?", partner.PartnerID).Count(&memberships).Error)
	require.EqualValues(t, 1, memberships)
}
