package dto

import (
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name           string             `json:"name" binding:"required"`
	Phone          string             `json:"phone"`
	Address        string             `json:"address"`
	ContactType    domain.ContactType `json:"contactType" binding:"required,oneof=CUSTOMER SELLER BOTH"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Pointers distinguish zero-value updates from fields not provided. A name
// change triggers rename propagation into historical ledger entries and notes.
type UpdateCustomerRequest struct {
	Name        *string             `json:"name"`
	Phone       *string             `json:"phone"`
	Address     *string             `json:"address"`
	ContactType *domain.ContactType `json:"contactType" binding:"omitempty,oneof=CUSTOMER SELLER BOTH"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID     string             `json:"customerID"`
	Name           string             `json:"name"`
	Phone          string             `json:"phone"`
	Address        string             `json:"address"`
	ContactType    domain.ContactType `json:"contactType"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:     c.CustomerID,
		Name:           c.Name,
		Phone:          c.Phone,
		Address:        c.Address,
		ContactType:    c.ContactType,
		OpeningBalance: c.OpeningBalance,
		CreatedAt:      c.CreatedAt,
		LastUpdatedAt:  c.LastUpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}
