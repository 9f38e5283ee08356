package api

import "workshop-genie/internal/model"

// MaxPasswordBytes 是 bcrypt 可處理的密碼長度上限
const MaxPasswordBytes = 72

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,maxbytes=72" example:"Secret123!"`
	Name     string `json:"name" validate:"required" example:"Alice Chen"`
}

func (r CreateUserRequest) ToInsert() model.InsertUser {
	return model.InsertUser{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
	}
}
