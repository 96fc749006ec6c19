package api

// GenerateQAParams carries the validated query parameters of the
// generation endpoints. ChunkSize and Overlap are only honored on the
// chunked endpoint; zero means "use the configured default".
type GenerateQAParams struct {
	Questions int `validate:"required,min=1,max=20"`
	ChunkSize int `validate:"omitempty,min=1000,max=16000"`
	Overlap   int `validate:"min=0"`
}

// HealthResponse is the payload of the health endpoint.
type HealthResponse struct {
	Status         string `json:"status"`
	DocumentLoaded bool   `json:"document_loaded"`
}
