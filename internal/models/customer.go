package models

import "github.com/shopspring/decimal"

// Customer is the customers table row.
type Customer struct {
	CustomerID     string          `json:"customerID"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	ContactType    string          `json:"contactType"` // CUSTOMER | SELLER | BOTH
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
}
