package model

import "time"

// Pair tracks a cock/hen pairing for one season and round. The combination
// (cock, hen, season, round) is unique.
type Pair struct {
	ID                int64      `json:"id"`
	Season            int        `json:"season"`
	Round             int        `json:"round"`
	Cock              int64      `json:"cock"`
	Hen               int64      `json:"hen"`
	DatePaired        time.Time  `json:"date_paired"`
	NumberEggs        *int       `json:"number_eggs"`
	NumberFertileEggs *int       `json:"number_fertile_eggs"`
	IncubationStart   *time.Time `json:"incubation_start"`
	IncubationEnd     *time.Time `json:"incubation_end"`
	BandDate          *time.Time `json:"band_date"`
	NumberOfOffspring *int       `json:"number_of_offspring"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type PairCreateRequest struct {
	Season            int        `json:"season" binding:"required"`
	Round             int        `json:"round" binding:"required"`
	Cock              int64      `json:"cock" binding:"required"`
	Hen               int64      `json:"hen" binding:"required"`
	DatePaired        *time.Time `json:"date_paired"`
	NumberEggs        *int       `json:"number_eggs"`
	NumberFertileEggs *int       `json:"number_fertile_eggs"`
	IncubationStart   *time.Time `json:"incubation_start"`
	IncubationEnd     *time.Time `json:"incubation_end"`
	BandDate          *time.Time `json:"band_date"`
	NumberOfOffspring *int       `json:"number_of_offspring"`
}

type PairUpdateRequest struct {
	NumberEggs        *int       `json:"number_eggs"`
	NumberFertileEggs *int       `json:"number_fertile_eggs"`
	IncubationStart   *time.Time `json:"incubation_start"`
	IncubationEnd     *time.Time `json:"incubation_end"`
	BandDate          *time.Time `json:"band_date"`
	NumberOfOffspring *int       `json:"number_of_offspring"`
}

type PairStatsResponse struct {
	TotalPairs int64 `json:"total_pairs"`
}
