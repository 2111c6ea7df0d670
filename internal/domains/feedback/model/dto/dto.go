package dto

import (
	"casatente/internal/domains/feedback/model"
	"casatente/shared"
	gModel "casatente/shared/model"
	"casatente/shared/timezone"

	"github.com/google/uuid"
)

type CreateFeedbackRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid4"`
	Comment string `json:"comment" validate:"required,max=2000"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
}

func (c *CreateFeedbackRequest) ToModel(user string) model.Feedback {
	return model.Feedback{
		ID:      uuid.NewString(),
		UserID:  c.UserID,
		Comment: c.Comment,
		Rating:  c.Rating,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type FeedbackResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Comment  string `json:"comment"`
	Rating   int    `json:"rating"`
}

func (r *FeedbackResponse) FromModel(model model.Feedback) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.Comment = model.Comment
	r.Rating = model.Rating
}

type GetFeedbacksResponse struct {
	Feedbacks []FeedbackResponse `json:"feedbacks"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetFeedbacksResponse) FromModels(models []model.Feedback, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Feedbacks = make([]FeedbackResponse, len(models))
	for i, mod := range models {
		r.Feedbacks[i].FromModel(mod)
	}
}
