package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/demobank/bankcli/internal/client/api"
	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/common"
)

// AccountService defines account operations: listing, opening, balance
// snapshots and statement downloads.
type AccountService interface {
	GetAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
	CreateAccount(ctx context.Context, accountType string) (*models.Account, error)
	GetBalance(ctx context.Context, id int64) (*models.Balance, error)
	DownloadStatement(ctx context.Context, id int64) ([]byte, string, error)
}

type accountService struct {
	gateway *api.Client
}

func NewAccountService(gateway *api.Client) AccountService {
	return &accountService{gateway: gateway}
}

// GetAccounts lists the caller's accounts in server order, unwrapping the
// paginated envelope when present.
func (s *accountService) GetAccounts(ctx context.Context) ([]models.Account, error) {
	body, err := s.gateway.GetRaw(ctx, "/banking/accounts/")
	if err != nil {
		return nil, err
	}

	accounts := []models.Account{}
	if err := json.Unmarshal(api.NormalizeList(body), &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	if err := s.gateway.Get(ctx, fmt.Sprintf("/banking/accounts/%d/", id), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccount opens a new account of the given type. The type is checked
// locally against the values the API accepts.
func (s *accountService) CreateAccount(ctx context.Context, accountType string) (*models.Account, error) {
	if !models.ValidAccountType(accountType) {
		return nil, fmt.Errorf("%w: account type must be one of CHECKING, SAVINGS, BUSINESS", common.ErrValidation)
	}

	var account models.Account
	payload := map[string]string{"account_type": accountType}
	if err := s.gateway.Post(ctx, "/banking/accounts/", payload, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *accountService) GetBalance(ctx context.Context, id int64) (*models.Balance, error) {
	var balance models.Balance
	if err := s.gateway.Get(ctx, fmt.Sprintf("/banking/accounts/%d/balance/", id), &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// DownloadStatement fetches the account statement PDF and returns its bytes
// together with the server-suggested filename, if any.
func (s *accountService) DownloadStatement(ctx context.Context, id int64) ([]byte, string, error) {
	return s.gateway.Download(ctx, fmt.Sprintf("/banking/accounts/%d/statement/", id))
}
