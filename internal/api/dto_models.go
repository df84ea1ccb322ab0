package api

// ErrorResponse is the standard error payload for all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ChatResponse is the assistant chat reply payload.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// AggregationResponse is the weekly ingredient aggregation payload.
type AggregationResponse struct {
	WeekRange   string   `json:"weekRange"`
	Ingredients []string `json:"ingredients"`
}
