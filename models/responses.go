package models

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned by POST /api/auth/register. No token is
// issued; the caller logs in separately.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// UploadResponse is returned by POST /api/upload.
type UploadResponse struct {
	Message string `json:"message"`
	FileID  string `json:"file_id"`
}

// ErrorResponse is written for every non-2xx response produced by handlers.
type ErrorResponse struct {
	// Detail is a short human readable message.
	Detail string `json:"detail"`

	// Reason is a machine-stable identifier of the failure kind.
	Reason string `json:"reason"`
}
