package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/demobank/bankcli/internal/client/models"
)

// Beneficiaries lists the saved transfer destinations.
func (a *App) Beneficiaries(ctx context.Context) error {
	bens, err := a.transactions.GetBeneficiaries(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	if len(bens) == 0 {
		fmt.Println("No beneficiaries yet. Type 'addbeneficiary' to save one.")
		return nil
	}

	for _, ben := range bens {
		nickname := ben.Nickname
		if nickname != "" {
			nickname = "  (" + nickname + ")"
		}
		fmt.Printf("%-5d %-20s %-14s %s%s\n", ben.ID, ben.Name, ben.AccountNumber, ben.BankName, nickname)
	}
	return nil
}

// AddBeneficiary prompts for the beneficiary details and saves them.
func (a *App) AddBeneficiary(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter beneficiary name", os.Stdout)
	if err != nil {
		return err
	}
	accountNumber, err := getSimpleText(a.reader, "Enter account number", os.Stdout)
	if err != nil {
		return err
	}
	bankName, err := getSimpleText(a.reader, "Enter bank name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	nickname, err := getSimpleText(a.reader, "Enter nickname (optional)", os.Stdout)
	if err != nil {
		return err
	}

	ben, err := a.transactions.AddBeneficiary(ctx, models.BeneficiaryRequest{
		Name:          name,
		AccountNumber: accountNumber,
		BankName:      bankName,
		Nickname:      nickname,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Printf("Saved beneficiary %s (%s)\n", ben.Name, ben.AccountNumber)
	return nil
}

// DeleteBeneficiary removes a beneficiary by its identifier.
func (a *App) DeleteBeneficiary(ctx context.Context) error {
	id, err := getID(a.reader, "Enter beneficiary id to remove", os.Stdout)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	if err := a.transactions.DeleteBeneficiary(ctx, id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Println("Removed.")
	return nil
}
