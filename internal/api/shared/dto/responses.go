package dto

import "time"

// DeployTokenResponse represents the response of a successful deployment
type DeployTokenResponse struct {
	Success         bool   `json:"success"`
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
