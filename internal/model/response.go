package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Message string `json:"message,omitempty"`
}

type HealthAllResponse struct {
	Status   string         `json:"status"`
	Database HealthResponse `json:"database"`
	Redis    HealthResponse `json:"redis"`
}
