package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/demobank/bankcli/internal/client/api"
	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/common"
)

// TransactionService defines transaction history, transfers and beneficiary
// management.
type TransactionService interface {
	GetTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	GetRecentTransactions(ctx context.Context) ([]models.Transaction, error)
	CreateTransfer(ctx context.Context, req models.TransferRequest) (*models.Transaction, error)
	GetBeneficiaries(ctx context.Context) ([]models.Beneficiary, error)
	AddBeneficiary(ctx context.Context, req models.BeneficiaryRequest) (*models.Beneficiary, error)
	DeleteBeneficiary(ctx context.Context, id int64) error
}

type transactionService struct {
	gateway *api.Client
}

func NewTransactionService(gateway *api.Client) TransactionService {
	return &transactionService{gateway: gateway}
}

func (s *transactionService) listTransactions(ctx context.Context, path string) ([]models.Transaction, error) {
	body, err := s.gateway.GetRaw(ctx, path)
	if err != nil {
		return nil, err
	}

	txns := []models.Transaction{}
	if err := json.Unmarshal(api.NormalizeList(body), &txns); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return txns, nil
}

// GetTransactions lists the caller's transactions, optionally narrowed by
// type and account.
func (s *transactionService) GetTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	params := url.Values{}
	if filter.Type != "" {
		params.Set("type", filter.Type)
	}
	if filter.AccountID != 0 {
		params.Set("account_id", strconv.FormatInt(filter.AccountID, 10))
	}

	path := "/banking/transactions/"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return s.listTransactions(ctx, path)
}

// GetRecentTransactions returns the bounded recent list (the server caps it
// at ten records).
func (s *transactionService) GetRecentTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.listTransactions(ctx, "/banking/transactions/recent/")
}

// validateTransfer rejects a transfer locally before any request is sent:
// the amount must parse as a positive decimal and the destination account
// number must be exactly twelve digits.
func validateTransfer(req models.TransferRequest) error {
	if req.FromAccountID == 0 {
		return fmt.Errorf("%w: source account is required", common.ErrValidation)
	}

	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not a number", common.ErrValidation, req.Amount)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", common.ErrValidation)
	}

	if len(req.ToAccountNumber) != 12 {
		return fmt.Errorf("%w: destination account number must be 12 digits", common.ErrValidation)
	}
	for _, r := range req.ToAccountNumber {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: destination account number must be 12 digits", common.ErrValidation)
		}
	}
	return nil
}

// CreateTransfer executes a transfer and returns the created transaction
// with its reference number. Money-movement correctness is entirely the
// server's concern; this method only validates the input shape.
func (s *transactionService) CreateTransfer(ctx context.Context, req models.TransferRequest) (*models.Transaction, error) {
	if err := validateTransfer(req); err != nil {
		return nil, err
	}

	var txn models.Transaction
	if err := s.gateway.Post(ctx, "/banking/transactions/transfer/", req, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *transactionService) GetBeneficiaries(ctx context.Context) ([]models.Beneficiary, error) {
	body, err := s.gateway.GetRaw(ctx, "/banking/beneficiaries/")
	if err != nil {
		return nil, err
	}

	bens := []models.Beneficiary{}
	if err := json.Unmarshal(api.NormalizeList(body), &bens); err != nil {
		return nil, fmt.Errorf("decode beneficiaries: %w", err)
	}
	return bens, nil
}

func (s *transactionService) AddBeneficiary(ctx context.Context, req models.BeneficiaryRequest) (*models.Beneficiary, error) {
	if req.Name == "" || req.AccountNumber == "" {
		return nil, fmt.Errorf("%w: name and account number are required", common.ErrValidation)
	}

	var ben models.Beneficiary
	if err := s.gateway.Post(ctx, "/banking/beneficiaries/", req, &ben); err != nil {
		return nil, err
	}
	return &ben, nil
}

func (s *transactionService) DeleteBeneficiary(ctx context.Context, id int64) error {
	return s.gateway.Delete(ctx, fmt.Sprintf("/banking/beneficiaries/%d/", id), nil)
}
