package model

import "time"

type Organization struct {
	ID                int64     `json:"id"`
	OrganizationCode  string    `json:"organization_code"`
	OrganizationName  string    `json:"organization_name"`
	OrganizationAlias *string   `json:"organization_alias"`
	Address           *string   `json:"address"`
	CountryCode       *string   `json:"country_code"`
	CountryName       *string   `json:"country_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type OrganizationCreateRequest struct {
	OrganizationCode  string  `json:"organization_code" binding:"required,max=100"`
	OrganizationName  string  `json:"organization_name" binding:"required,max=100"`
	OrganizationAlias *string `json:"organization_alias"`
	Address           *string `json:"address"`
	CountryCode       *string `json:"country_code"`
	CountryName       *string `json:"country_name"`
}

type OrganizationUpdateRequest struct {
	OrganizationName  *string `json:"organization_name"`
	OrganizationAlias *string `json:"organization_alias"`
	Address           *string `json:"address"`
	CountryCode       *string `json:"country_code"`
	CountryName       *string `json:"country_name"`
}
