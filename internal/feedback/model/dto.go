// Package model contains feedback DTOs and errors.
package model

// MaxMessageLength is the longest accepted message, in characters.
const MaxMessageLength = 2000

// SubmitRequest is the body of POST /feedback.
type SubmitRequest struct {
	Message string `json:"message"`
}

// SubmitResponse acknowledges a recorded message.
type SubmitResponse struct {
	Message string `json:"message"`
}
