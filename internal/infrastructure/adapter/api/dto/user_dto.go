package dto

// CreditBalanceResponse represents the API response for a user's credit counters
type CreditBalanceResponse struct {
	UserID           string `json:"userId"`
	PhoneNumber      string `json:"phoneNumber"`
	FreeCredits      int64  `json:"freeCredits"`
	PaidCredits      int64  `json:"paidCredits"`
	UsedCredits      int64  `json:"usedCredits"`
	AvailableCredits int64  `json:"availableCredits"`
}

// HealthResponse reports service liveness and its dependencies
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
