package dto

import "time"

// TimestampLayout is the ISO local date-time used in error bodies.
const TimestampLayout = "2006-01-02T15:04:05"

// Error titles.
const (
	ErrorBadRequest     = "Bad Request"
	ErrorPriceNotFound  = "Price Not Found"
	ErrorInternalServer = "Internal Server Error"
)

// ErrorResponse is the body of every non-2xx pricing response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewErrorResponse stamps the response with now.
func NewErrorResponse(title, message string, now time.Time) ErrorResponse {
	return ErrorResponse{
		Error:     title,
		Message:   message,
		Timestamp: now.Format(TimestampLayout),
	}
}
