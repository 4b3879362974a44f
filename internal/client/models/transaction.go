package models

import "time"

// Transaction types reported by the API.
const (
	TransactionTypeTransfer   = "TRANSFER"
	TransactionTypeDeposit    = "DEPOSIT"
	TransactionTypeWithdrawal = "WITHDRAWAL"
	TransactionTypePayment    = "PAYMENT"
)

// Transaction statuses reported by the API.
const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
	TransactionStatusCancelled = "CANCELLED"
)

// Transaction is a money movement between two accounts as reported by the
// API. FromAccount/ToAccount are account IDs and may be zero for external
// legs; the corresponding account numbers are denormalized alongside.
type Transaction struct {
	ID                int64      `json:"id"`
	FromAccount       int64      `json:"from_account,omitempty"`
	ToAccount         int64      `json:"to_account,omitempty"`
	FromAccountNumber string     `json:"from_account_number,omitempty"`
	ToAccountNumber   string     `json:"to_account_number,omitempty"`
	Amount            string     `json:"amount"`
	TransactionType   string     `json:"transaction_type"`
	Status            string     `json:"status"`
	Description       string     `json:"description,omitempty"`
	ReferenceNumber   string     `json:"reference_number"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// TransferRequest is the payload for POST /banking/transactions/transfer/.
// Amount is a decimal string; it is validated client-side before dispatch.
type TransferRequest struct {
	FromAccountID   int64  `json:"from_account_id"`
	ToAccountNumber string `json:"to_account_number"`
	Amount          string `json:"amount"`
	Description     string `json:"description,omitempty"`
}

// TransactionFilter narrows GET /banking/transactions/. Zero values mean
// "no filter".
type TransactionFilter struct {
	Type      string
	AccountID int64
}
