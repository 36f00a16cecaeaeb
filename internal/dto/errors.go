package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConfirmationRequiredResponse is returned with 428 when a destructive action needs more
// confirmations. The client repeats the request with ?confirm=Required.
type ConfirmationRequiredResponse struct {
	Error    string `json:"error"`
	Required int    `json:"required"`
	Given    int    `json:"given"`
}
