package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cupid/internal/models/request_models"
	"cupid/internal/services"
	"cupid/pkg/utils"
)

type QuizController struct {
	quizService    services.QuizServiceInterface
	insightService services.InsightServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface, insightService services.InsightServiceInterface) *QuizController {
	return &QuizController{
		quizService:    quizService,
		insightService: insightService,
	}
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Scores the answers, ranks archetypes and stores the result
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.SubmitQuizRequest true "Answers"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizResultResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /quiz/submit [post]
func (q *QuizController) SubmitQuiz(c *gin.Context) {
	var req request_models.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := q.quizService.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Quiz submitted successfully")
}

// GetResult godoc
// @Summary Get a quiz result
// @Tags Quiz
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizResultResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/results/{id} [get]
func (q *QuizController) GetResult(c *gin.Context) {
	id, ok := resultIDParam(c)
	if !ok {
		return
	}

	result, err := q.quizService.GetResult(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Result fetched successfully")
}

// CreateInsight godoc
// @Summary Narrate a quiz result
// @Tags Quiz
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} utils.APIResponse{data=response_models.InsightResponse}
// @Failure 503 {object} utils.APIResponse
// @Router /quiz/results/{id}/insight [post]
func (q *QuizController) CreateInsight(c *gin.Context) {
	id, ok := resultIDParam(c)
	if !ok {
		return
	}

	insight, err := q.insightService.CreateInsight(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, insight, "Insight created successfully")
}

// ListResults godoc
// @Summary List quiz results
// @Tags Admin
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /admin/results [get]
func (q *QuizController) ListResults(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	results, total, err := q.quizService.ListResults(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"results":   results,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	}, "Results fetched successfully")
}

func resultIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidResultID)
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return 0, 0, false
	}
	return page, pageSize, true
}
