package model

import "casatente/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldFullname = "fullname"
	FieldEmail    = "email"
	FieldContact  = "contact"
	FieldRole     = "role"
	FieldVerified = "verified"
)

type User struct {
	ID       string `db:"id"`
	Fullname string `db:"fullname"`
	Email    string `db:"email"`
	Contact  string `db:"contact"`
	Role     string `db:"role"`
	Verified bool   `db:"verified"`
	model.Metadata
}
