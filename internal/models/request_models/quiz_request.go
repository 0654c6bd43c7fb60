package request_models

type SubmitQuizRequest struct {
	UserID   string        `json:"user_id,omitempty"`
	UserName string        `json:"user_name,omitempty"`
	Answers  []AnswerInput `json:"answers" binding:"required,min=1,dive"`
	Consent  *bool         `json:"consent,omitempty"` // share a snapshot with the main app
}

type AnswerInput struct {
	QuestionID int  `json:"question_id" binding:"required,gt=0"`
	Value      *int `json:"value" binding:"required"`
}

type FeedbackRequest struct {
	Feedback int `json:"feedback" binding:"required,min=1,max=5"`
}
