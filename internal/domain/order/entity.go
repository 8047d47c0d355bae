package order

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 20")
	ErrRefundExceeds   = errors.New("credit refund cannot exceed order total")
)

const MaxQuantity = 20

type Order struct {
	id            uuid.UUID
	designID      uuid.UUID
	customerID    uuid.UUID
	productTypeID string
	size          string
	frameColor    *string
	quantity      int32
	totals        Totals
	status        Status
}

func NewOrder(
	designID uuid.UUID,
	customerID uuid.UUID,
	productTypeID string,
	size string,
	frameColor *string,
	quantity int32,
	totals Totals,
) (*Order, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}
	if totals.CreditRefundCents > totals.TotalCents() {
		return nil, ErrRefundExceeds
	}

	return &Order{
		id:            uuid.New(),
		designID:      designID,
		customerID:    customerID,
		productTypeID: productTypeID,
		size:          size,
		frameColor:    frameColor,
		quantity:      quantity,
		totals:        totals,
		status:        StatusPending,
	}, nil
}

func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) DesignID() uuid.UUID   { return o.designID }
func (o *Order) CustomerID() uuid.UUID { return o.customerID }
func (o *Order) ProductTypeID() string { return o.productTypeID }
func (o *Order) Size() string          { return o.size }
func (o *Order) FrameColor() *string   { return o.frameColor }
func (o *Order) Quantity() int32       { return o.quantity }
func (o *Order) Totals() Totals        { return o.totals }
func (o *Order) Status() Status        { return o.status }
