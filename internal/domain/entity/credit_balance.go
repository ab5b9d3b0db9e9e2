package entity

// CreditBalance is the read model of a user's credit counters
type CreditBalance struct {
	UserID           string `json:"userId"`
	PhoneNumber      string `json:"phoneNumber"`
	FreeCredits      int64  `json:"freeCredits"`
	PaidCredits      int64  `json:"paidCredits"`
	UsedCredits      int64  `json:"usedCredits"`
	AvailableCredits int64  `json:"availableCredits"`
}

// UserToCreditBalance converts a User entity to a CreditBalance
func UserToCreditBalance(user *User) CreditBalance {
	return CreditBalance{
		UserID:           user.ID,
		PhoneNumber:      user.PhoneNumber,
		FreeCredits:      user.FreeCredits,
		PaidCredits:      user.PaidCredits,
		UsedCredits:      user.UsedCredits,
		AvailableCredits: user.AvailableCredits(),
	}
}
