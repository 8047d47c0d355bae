//go:build unit || integration

package builder

import (
	domcustomer "printcanvas/internal/domain/customer"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID                  uuid.UUID
	ShopDomain          string
	ExternalID          string
	Credits             int32
	FreeGenerationsUsed int32
	TotalGenerations    int32
	TotalSpentCents     int64
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:                  uuid.New(),
		ShopDomain:          "artprints.myshopify.com",
		ExternalID:          "gid://shopify/Customer/1234567890",
		Credits:             5,
		FreeGenerationsUsed: 0,
		TotalGenerations:    0,
		TotalSpentCents:     0,
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildDomain() (*domcustomer.Customer, error) {
	return domcustomer.NewCustomer(
		b.ID, b.ShopDomain, b.ExternalID,
		b.Credits, b.FreeGenerationsUsed, b.TotalGenerations, b.TotalSpentCents,
	)
}

func (b *CustomerBuilder) BuildSnapshot() *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:                  b.ID,
		ShopDomain:          b.ShopDomain,
		ExternalID:          b.ExternalID,
		Credits:             b.Credits,
		FreeGenerationsUsed: b.FreeGenerationsUsed,
		TotalGenerations:    b.TotalGenerations,
		TotalSpentCents:     b.TotalSpentCents,
	}
}
