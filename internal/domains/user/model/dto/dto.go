package dto

import (
	"casatente/internal/domains/user/model"
	"casatente/shared"
	gDto "casatente/shared/dto"
)

type UserResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Fullname = model.Fullname
	r.Email = model.Email
	r.Contact = model.Contact
	r.Role = model.Role
	r.Verified = model.Verified
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
