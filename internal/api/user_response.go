package api

import "workshop-genie/internal/model"

// UserResponse 使用者資訊，不含密碼
// swagger:model api.UserResponse
type UserResponse struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Name     string `json:"name" example:"Alice Chen"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
	}
}
