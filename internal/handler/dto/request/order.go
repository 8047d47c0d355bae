package request

import "github.com/google/uuid"

type PlaceOrderRequest struct {
	DesignID   uuid.UUID `json:"designId" binding:"required"`
	Size       string    `json:"size" binding:"required"`
	FrameColor *string   `json:"frameColor,omitempty"`
	Quantity   int32     `json:"quantity" binding:"required,min=1,max=20"`
}

type PurchaseCreditsRequest struct {
	Credits    int32 `json:"credits" binding:"required,gt=0"`
	PriceCents int32 `json:"priceCents" binding:"gte=0"`
}
