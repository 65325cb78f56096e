package handlers

const (
	maxBodyBytes = 1 << 16

	ErrInvalidJSON         = "Invalid JSON body"
	ErrUnauthorized        = "Unauthorized"
	ErrParentOnly          = "Parent access required"
	ErrTooManyRequests     = "Too many requests"
	ErrInternalServerError = "Internal server error"
)
