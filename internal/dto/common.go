package dto

// IDResponse is returned by endpoints that create a resource.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is returned by commands that only report success.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
