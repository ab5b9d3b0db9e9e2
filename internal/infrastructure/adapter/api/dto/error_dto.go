package dto

// ErrorResponse is the body of every non-2xx answer. Message is safe to show
// a client; it never carries driver or gateway text.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
