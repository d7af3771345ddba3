package domain

import "github.com/shopspring/decimal"

// ContactType classifies a contact as a customer, a seller (supplier), or both.
type ContactType string

const (
	ContactCustomer ContactType = "CUSTOMER"
	ContactSeller   ContactType = "SELLER"
	ContactBoth     ContactType = "BOTH"
)

// Customer is a party the business extends credit to or buys from.
// A customer owns its transactions; deleting a customer cascades to them.
type Customer struct {
	CustomerID     string          `json:"customerID"` // Primary Key (UUID)
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	ContactType    ContactType     `json:"contactType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Balance carried in from before record-keeping started
	AuditFields
}
