package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"cupid/internal/services"
	"cupid/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetQuestions godoc
// @Summary List quiz questions
// @Description Validated question catalog in display order, with scale and batching info.
// @Description With page set, only that batch of questions is returned.
// @Tags Quiz
// @Produce json
// @Param page query int false "Batch number, starting at 1"
// @Success 200 {object} utils.APIResponse{data=response_models.QuestionCatalogResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /quiz/questions [get]
func (cc *CatalogController) GetQuestions(c *gin.Context) {
	if raw, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			utils.HandleServiceError(c, utils.ErrInvalidPage)
			return
		}
		batch, err := cc.catalogService.QuestionBatch(c.Request.Context(), page)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, batch, "Questions fetched successfully")
		return
	}

	questions, err := cc.catalogService.Questions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Questions fetched successfully")
}

// GetArchetypes godoc
// @Summary List archetypes
// @Tags Quiz
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.ArchetypeResponse}
// @Failure 503 {object} utils.APIResponse
// @Router /quiz/archetypes [get]
func (cc *CatalogController) GetArchetypes(c *gin.Context) {
	archetypes, err := cc.catalogService.Archetypes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, archetypes, "Archetypes fetched successfully")
}

// SeedCatalog godoc
// @Summary Seed the catalog
// @Description Upserts the built-in questions and archetypes
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.SeedResponse}
// @Router /admin/catalog/seed [post]
func (cc *CatalogController) SeedCatalog(c *gin.Context) {
	resp, err := cc.catalogService.Seed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Catalog seeded successfully")
}
