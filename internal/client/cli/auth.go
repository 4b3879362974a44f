package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/common"
)

// getSimpleText, getPassword and getID are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getID = GetID

// Register prompts for the new user's details and attempts to create an
// account. On success the session is authenticated immediately; the issued
// tokens are persisted by the underlying service.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is reported to the user and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := a.session.Register(ctx, req); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Printf("Welcome, %s!\n", username)
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session holds the server-confirmed user identity.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		fmt.Printf("Login unsuccessful: %v\n", err)
		return err
	}

	fmt.Printf("Logged in as %s\n", username)
	return nil
}

// Logout drops the stored token pair and the in-memory user. It never asks
// the server for anything and always leaves the session unauthenticated.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}
