package model

import "time"

type Bird struct {
	ID        int64      `json:"id"`
	BandID    string     `json:"band_id"`
	Name      *string    `json:"name"`
	DOB       *time.Time `json:"dob"`
	Sex       *string    `json:"sex"`
	FatherID  *int64     `json:"father_id"`
	MotherID  *int64     `json:"mother_id"`
	BreederID *int64     `json:"breeder_id"`
	OwnerID   *int64     `json:"owner_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BirdCreateRequest carries either an explicit band_id or the parts needed to
// generate one (breeder_id + bird_year + bird_number).
type BirdCreateRequest struct {
	BandID       string     `json:"band_id"`
	Name         *string    `json:"name"`
	DOB          *time.Time `json:"dob"`
	Sex          *string    `json:"sex"`
	FatherBandID string     `json:"father_band_id"`
	MotherBandID string     `json:"mother_band_id"`
	BreederID    *int64     `json:"breeder_id"`
	OwnerID      *int64     `json:"owner_id"`
	BirdYear     *int       `json:"bird_year"`
	BirdNumber   *int       `json:"bird_number"`
}

type BirdUpdateRequest struct {
	Name      *string    `json:"name"`
	DOB       *time.Time `json:"dob"`
	Sex       *string    `json:"sex"`
	BreederID *int64     `json:"breeder_id"`
	OwnerID   *int64     `json:"owner_id"`
}

type BirdStatsResponse struct {
	TotalBirds int64 `json:"total_birds"`
	Males      int64 `json:"males"`
	Females    int64 `json:"females"`
}
