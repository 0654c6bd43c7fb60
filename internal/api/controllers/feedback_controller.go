package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cupid/internal/models/request_models"
	"cupid/internal/services"
	"cupid/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// RecordFeedback godoc
// @Summary Rate a result's accuracy
// @Description Sets the 1..5 accuracy rating of a stored result; repeated calls overwrite
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Result ID"
// @Param request body request_models.FeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse{data=response_models.FeedbackResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/results/{id}/feedback [put]
func (f *FeedbackController) RecordFeedback(c *gin.Context) {
	id, ok := resultIDParam(c)
	if !ok {
		return
	}

	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidFeedback.Error())
		return
	}

	resp, err := f.feedbackService.RecordFeedback(c.Request.Context(), id, req.Feedback)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Feedback recorded successfully")
}

// ListFeedback godoc
// @Summary List rated results
// @Tags Admin
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=[]response_models.QuizResultSummary}
// @Router /admin/feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	feedbacks, err := f.feedbackService.GetFeedback(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}
