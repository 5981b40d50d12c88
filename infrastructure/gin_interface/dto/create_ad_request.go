package dto

import "generate-ad-video/domain"

type CreateAdRequest struct {
	Description string `json:"description" binding:"required"`
}

type CreateAdResponse struct {
	RunID    string               `json:"run_id"`
	FinalKey string               `json:"final_key"`
	StageLog []domain.StageRecord `json:"stage_log"`
}

type PipelineErrorResponse struct {
	RunID   string `json:"run_id"`
	Stage   string `json:"stage"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
