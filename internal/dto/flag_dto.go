package dto

type CreateFlagRequest struct {
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

type UpdateFlagRequest struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

type ReadyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
