package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/demobank/bankcli/internal/filex"
)

// Accounts lists the user's accounts in server order.
func (a *App) Accounts(ctx context.Context) error {
	accounts, err := a.accounts.GetAccounts(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	if len(accounts) == 0 {
		fmt.Println("No accounts yet. Type 'newaccount' to open one.")
		return nil
	}

	for _, acc := range accounts {
		fmt.Printf("%-5d %-14s %-9s %12s %s  %s\n",
			acc.ID, acc.AccountNumber, acc.AccountType, acc.Balance, acc.Currency, acc.Status)
	}
	return nil
}

// NewAccount prompts for an account type and opens a new account.
func (a *App) NewAccount(ctx context.Context) error {
	accountType, err := getSimpleText(a.reader, "Enter account type (CHECKING, SAVINGS, BUSINESS)", os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.accounts.CreateAccount(ctx, accountType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Printf("Opened %s account %s\n", account.AccountType, account.AccountNumber)
	return nil
}

// Balance shows the balance snapshot for a single account.
func (a *App) Balance(ctx context.Context) error {
	id, err := getID(a.reader, "Enter account id", os.Stdout)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	balance, err := a.accounts.GetBalance(ctx, id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Printf("%s: %s %s\n", balance.AccountNumber, balance.Balance, balance.Currency)
	return nil
}

// Statement downloads the account statement PDF into a local "statements"
// directory and prints the destination path.
func (a *App) Statement(ctx context.Context) error {
	id, err := getID(a.reader, "Enter account id", os.Stdout)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	content, fileName, err := a.accounts.DownloadStatement(ctx, id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	if fileName == "" {
		fileName = fmt.Sprintf("statement_%d.pdf", id)
	}

	dir, err := filex.EnsureSubDir("statements")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	outputFile := filepath.Join(dir, filepath.Base(fileName))
	if err := os.WriteFile(outputFile, content, 0o600); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Printf("Statement saved to: %s\n", outputFile)
	return nil
}
