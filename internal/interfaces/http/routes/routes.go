package routes

import (
	"os"
	"time"

	"github.com/atlascrm/profiling-api/internal/application/usecases"
	"github.com/atlascrm/profiling-api/internal/domain/repositories"
	"github.com/atlascrm/profiling-api/internal/interfaces/http/handlers"
	"github.com/atlascrm/profiling-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Shared questionnaire read cache
	formCache := gocache.New(5*time.Minute, 10*time.Minute)

	// Repositories
	questionnaireRepo := repositories.NewQuestionnaireRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)
	partnerRepo := repositories.NewPartnerRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	segmentationRepo := repositories.NewSegmentationRepository(db)

	// Use Cases
	questionnaireUseCase := usecases.NewQuestionnaireUseCase(questionnaireRepo, formCache)
	questionUseCase := usecases.NewQuestionUseCase(questionRepo, formCache)
	answerUseCase := usecases.NewAnswerUseCase(answerRepo, formCache)
	partnerUseCase := usecases.NewPartnerUseCase(partnerRepo)
	categoryUseCase := usecases.NewCategoryUseCase(categoryRepo)
	profilingUseCase := usecases.NewProfilingUseCase(questionnaireUseCase, partnerRepo)
	segmentationUseCase := usecases.NewSegmentationUseCase(segmentationRepo, partnerRepo)

	// Handlers
	questionnaireHandler := handlers.NewQuestionnaireHandler(questionnaireUseCase)
	questionHandler := handlers.NewQuestionHandler(questionUseCase)
	answerHandler := handlers.NewAnswerHandler(answerUseCase)
	partnerHandler := handlers.NewPartnerHandler(partnerUseCase, categoryUseCase)
	profilingHandler := handlers.NewProfilingHandler(profilingUseCase)
	segmentationHandler := handlers.NewSegmentationHandler(segmentationUseCase)
	viewsHandler := handlers.NewViewsHandler()

	// Routes
	authMiddleware := middleware.JWTAuth(os.Getenv("JWT_SECRET"))
	groups := middleware.SetupRouteGroups(app, authMiddleware)

	// Questionnaire routes
	groups.Public.Get("/questionnaires", questionnaireHandler.GetQuestionnaires)
	groups.Public.Get("/questionnaires/:id", questionnaireHandler.GetQuestionnaire)
	groups.Admin.Post("/questionnaires", questionnaireHandler.CreateQuestionnaire)
	groups.Admin.Put("/questionnaires/:id", questionnaireHandler.UpdateQuestionnaire)
	groups.Admin.Delete("/questionnaires/:id", questionnaireHandler.DeleteQuestionnaire)
	groups.Admin.Post("/questionnaires/:id/questions", questionnaireHandler.AddQuestions)
	groups.Admin.Delete("/questionnaires/:id/questions/:question_id", questionnaireHandler.RemoveQuestion)

	// Question routes
	groups.Public.Get("/questions", questionHandler.GetQuestions)
	groups.Public.Get("/questions/:id", questionHandler.GetQuestion)
	groups.Admin.Post("/questions", questionHandler.CreateQuestion)
	groups.Admin.Put("/questions/:id", questionHandler.UpdateQuestion)
	groups.Admin.Delete("/questions/:id", questionHandler.DeleteQuestion)

	// Answer routes
	groups.Public.Get("/answers", answerHandler.GetAnswers)
	groups.Public.Get("/answers/:id", answerHandler.GetAnswer)
	groups.Admin.Post("/answers", answerHandler.CreateAnswer)
	groups.Admin.Put("/answers/:id", answerHandler.UpdateAnswer)
	groups.Admin.Delete("/answers/:id", answerHandler.DeleteAnswer)

	// Partner routes
	groups.Public.Get("/partners", partnerHandler.GetPartners)
	groups.Public.Get("/partners/:id", partnerHandler.GetPartner)
	groups.Admin.Post("/partners", partnerHandler.CreatePartner)
	groups.Admin.Put("/partners/:id", partnerHandler.UpdatePartner)
	groups.Admin.Delete("/partners/:id", partnerHandler.DeletePartner)

	// Category routes
	groups.Public.Get("/categories", partnerHandler.GetCategories)
	groups.Admin.Post("/categories", partnerHandler.CreateCategory)

	// Questionnaire flow
	groups.Public.Get("/partners/:id/questionnaires/:questionnaire_id", profilingHandler.OpenQuestionnaire)
	groups.Admin.Post("/partners/:id/questionnaires/:questionnaire_id/answers", profilingHandler.SubmitAnswers)

	// Segmentation routes
	groups.Public.Get("/segmentations", segmentationHandler.GetSegmentations)
	groups.Public.Get("/segmentations/tree", segmentationHandler.GetSegmentationTree)
	groups.Public.Get("/segmentations/:id", segmentationHandler.GetSegmentation)
	groups.Public.Get("/segmentations/:id/partners", segmentationHandler.GetMatchedPartners)
	groups.Public.Get("/segmentations/:id/partners/:partner_id/check", segmentationHandler.CheckPartner)
	groups.Admin.Post("/segmentations", segmentationHandler.CreateSegmentation)
	groups.Admin.Put("/segmentations/:id", segmentationHandler.UpdateSegmentation)
	groups.Admin.Put("/segmentations/:id/rule", segmentationHandler.ReplaceRuleAnswers)
	groups.Admin.Delete("/segmentations/:id", segmentationHandler.DeleteSegmentation)
	groups.Admin.Post("/segmentations/:id/run", segmentationHandler.Run)

	// Patched form documents
	groups.Public.Get("/views/partner-form", viewsHandler.GetPartnerForm)
	groups.Public.Get("/views/segmentation-form", viewsHandler.GetSegmentationForm)
}
