package models

import "time"

// Account types accepted by POST /banking/accounts/.
const (
	AccountTypeChecking = "CHECKING"
	AccountTypeSavings  = "SAVINGS"
	AccountTypeBusiness = "BUSINESS"
)

// Account statuses reported by the API.
const (
	AccountStatusActive = "ACTIVE"
	AccountStatusFrozen = "FROZEN"
	AccountStatusClosed = "CLOSED"
)

// Account is a caller-owned bank account. Balance is a decimal string; the
// client never does arithmetic on it.
type Account struct {
	ID            int64     `json:"id"`
	AccountNumber string    `json:"account_number"`
	AccountType   string    `json:"account_type"`
	Balance       string    `json:"balance"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
}

// Balance is the snapshot returned by GET /banking/accounts/{id}/balance/.
type Balance struct {
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
	Currency      string `json:"currency"`
}

// ValidAccountType reports whether t is one of the account types the API
// accepts on creation.
func ValidAccountType(t string) bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeBusiness:
		return true
	}
	return false
}
