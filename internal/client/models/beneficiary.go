package models

import "time"

// Beneficiary is a saved transfer destination.
type Beneficiary struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	AccountNumber string    `json:"account_number"`
	BankName      string    `json:"bank_name"`
	Nickname      string    `json:"nickname,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeneficiaryRequest is the payload for POST /banking/beneficiaries/.
type BeneficiaryRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name,omitempty"`
	Nickname      string `json:"nickname,omitempty"`
}
