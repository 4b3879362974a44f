package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/demobank/bankcli/internal/client/models"
)

func printTransactions(txns []models.Transaction) {
	if len(txns) == 0 {
		fmt.Println("No transactions.")
		return
	}
	for _, txn := range txns {
		desc := txn.Description
		if desc != "" {
			desc = "  " + desc
		}
		fmt.Printf("%-16s %-10s %12s %-9s %s%s\n",
			txn.ReferenceNumber, txn.TransactionType, txn.Amount, txn.Status,
			txn.CreatedAt.Format("2006-01-02 15:04"), desc)
	}
}

// Transfer prompts for the transfer details and executes it. Validation of
// the amount and the destination number happens before any request is sent.
func (a *App) Transfer(ctx context.Context) error {
	fromID, err := getID(a.reader, "Enter source account id", os.Stdout)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}
	toNumber, err := getSimpleText(a.reader, "Enter destination account number (12 digits)", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	txn, err := a.transactions.CreateTransfer(ctx, models.TransferRequest{
		FromAccountID:   fromID,
		ToAccountNumber: toNumber,
		Amount:          amount,
		Description:     description,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Printf("Transfer %s: %s %s\n", txn.Status, txn.Amount, txn.ReferenceNumber)
	return nil
}

// Transactions lists the transaction history, optionally narrowed by type
// and account. Empty answers mean "no filter".
func (a *App) Transactions(ctx context.Context) error {
	txType, err := getSimpleText(a.reader, "Filter by type (TRANSFER, DEPOSIT, WITHDRAWAL, PAYMENT; empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	accountStr, err := getSimpleText(a.reader, "Filter by account id (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	filter := models.TransactionFilter{Type: txType}
	if accountStr != "" {
		id, err := strconv.ParseInt(accountStr, 10, 64)
		if err != nil {
			fmt.Printf("Error: %q is not a numeric id\n", accountStr)
			return err
		}
		filter.AccountID = id
	}

	txns, err := a.transactions.GetTransactions(ctx, filter)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	printTransactions(txns)
	return nil
}

// Recent lists the most recent transactions (the server caps the list).
func (a *App) Recent(ctx context.Context) error {
	txns, err := a.transactions.GetRecentTransactions(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	printTransactions(txns)
	return nil
}
