package model

import "casatente/shared/model"

const (
	TableName  = "feedbacks"
	EntityName = "feedback"

	FieldID      = "id"
	FieldUserID  = "user_id"
	FieldComment = "comment"
	FieldRating  = "rating"
)

type Feedback struct {
	ID       string `db:"id"`
	UserID   string `db:"user_id"`
	Comment  string `db:"comment"`
	Rating   int    `db:"rating"`
	UserName string `db:"user_name" table:"users" column:"fullname"`
	model.Metadata
}

func (f Feedback) GetJoinQuery() string {
	return "JOIN users ON users.id = feedbacks.user_id"
}
