package response

import (
	"time"

	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PlaceOrderResponse struct {
	OrderID           uuid.UUID `json:"orderId"`
	PriceCents        int32     `json:"priceCents"`
	ShippingCents     int32     `json:"shippingCents"`
	CreditRefundCents int32     `json:"creditRefundCents"`
	TotalCents        int32     `json:"totalCents"`
	Status            string    `json:"status"`
}

func FromPlaceOrderResult(result *commands.PlaceOrderResult) *PlaceOrderResponse {
	var resp PlaceOrderResponse
	_ = copier.Copy(&resp, result)
	return &resp
}

type OrderResponse struct {
	ID                uuid.UUID `json:"id"`
	DesignID          uuid.UUID `json:"designId"`
	ProductTypeID     string    `json:"productTypeId"`
	Size              string    `json:"size"`
	FrameColor        *string   `json:"frameColor,omitempty"`
	Quantity          int32     `json:"quantity"`
	PriceCents        int64     `json:"priceCents"`
	ShippingCents     int64     `json:"shippingCents"`
	CreditRefundCents int64     `json:"creditRefundCents"`
	TotalCents        int64     `json:"totalCents"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

type OrderListResponse struct {
	Orders  []*OrderResponse `json:"orders"`
	Total   int64            `json:"total"`
	HasMore bool             `json:"hasMore"`
}

func FromOrderViews(rms []*queries.OrderView, total int64, hasMore bool) *OrderListResponse {
	items := make([]*OrderResponse, len(rms))
	for i, rm := range rms {
		items[i] = FromOrderView(rm)
	}
	return &OrderListResponse{Orders: items, Total: total, HasMore: hasMore}
}
