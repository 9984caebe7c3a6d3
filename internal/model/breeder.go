package model

import "time"

type Breeder struct {
	ID          int64     `json:"id"`
	BreederCode string    `json:"breeder_code"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BreederCreateRequest struct {
	BreederCode string `json:"breeder_code" binding:"required,max=80"`
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
}

type BreederUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type BreederStatsResponse struct {
	TotalBreeders int64 `json:"total_breeders"`
}
