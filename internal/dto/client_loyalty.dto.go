package dto

type ClientLoyalty struct {
	ClientID      string `json:"client_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	LoyaltyPoints int    `json:"loyalty_points"`
}
