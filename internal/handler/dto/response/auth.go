package response

import "github.com/google/uuid"

type LoginResponse struct {
	MerchantID uuid.UUID `json:"merchantId"`
	Email      string    `json:"email"`
	Token      string    `json:"token"`
}

type MerchantResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
