package api

import "workshop-genie/internal/validation"

// ErrorResponse 全域錯誤回應；details 只在驗證失敗時出現
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error   string             `json:"error" example:"Workshop not found"`
	Details []validation.Issue `json:"details,omitempty"`
}
