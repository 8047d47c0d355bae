package customer

import (
	"github.com/google/uuid"
)

type Customer struct {
	id                  uuid.UUID
	shopDomain          string
	externalID          string
	credits             Credits
	freeGenerationsUsed int32
	totalGenerations    int32
	totalSpentCents     int64
}

func NewCustomer(
	id uuid.UUID,
	shopDomain string,
	externalID string,
	credits int32,
	freeGenerationsUsed int32,
	totalGenerations int32,
	totalSpentCents int64,
) (*Customer, error) {
	if shopDomain == "" {
		return nil, ErrInvalidShop
	}
	if externalID == "" {
		return nil, ErrInvalidExternal
	}

	balance, err := NewCredits(credits)
	if err != nil {
		return nil, err
	}

	return &Customer{
		id:                  id,
		shopDomain:          shopDomain,
		externalID:          externalID,
		credits:             balance,
		freeGenerationsUsed: freeGenerationsUsed,
		totalGenerations:    totalGenerations,
		totalSpentCents:     totalSpentCents,
	}, nil
}

// HasFreeGeneration reports whether the customer is still inside the free
// allowance and the next generation should not debit a credit.
func (c *Customer) HasFreeGeneration(allowance int32) bool {
	return c.freeGenerationsUsed < allowance
}

func (c *Customer) ID() uuid.UUID              { return c.id }
func (c *Customer) ShopDomain() string         { return c.shopDomain }
func (c *Customer) ExternalID() string         { return c.externalID }
func (c *Customer) Credits() Credits           { return c.credits }
func (c *Customer) FreeGenerationsUsed() int32 { return c.freeGenerationsUsed }
func (c *Customer) TotalGenerations() int32    { return c.totalGenerations }
func (c *Customer) TotalSpentCents() int64     { return c.totalSpentCents }
