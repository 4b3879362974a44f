package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Accounts(ctx context.Context) error
	NewAccount(ctx context.Context) error
	Balance(ctx context.Context) error
	Statement(ctx context.Context) error
	Transfer(ctx context.Context) error
	Transactions(ctx context.Context) error
	Recent(ctx context.Context) error
	Beneficiaries(ctx context.Context) error
	AddBeneficiary(ctx context.Context) error
	DeleteBeneficiary(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	UploadPicture(ctx context.Context) error
	DeletePicture(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the DemoBank CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - accounts       — list accounts
//	  - newaccount     — open a new account
//	  - balance        — show an account balance
//	  - statement      — download an account statement
//	  - transfer       — send money to an account number
//	  - transactions   — list transactions (with optional filters)
//	  - recent         — list the most recent transactions
//	  - beneficiaries  — list saved beneficiaries
//	  - addbeneficiary — save a new beneficiary
//	  - delbeneficiary — remove a beneficiary
//	  - profile        — show the current profile
//	  - updateprofile  — update profile fields
//	  - uploadpicture  — upload a profile picture
//	  - delpicture     — remove the profile picture
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Commands that require authentication are rejected with a hint while no user
// is logged in. Any errors returned by command handlers are ignored here;
// handlers should report their own errors. This keeps the REPL loop resilient
// and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bank> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: accounts, newaccount, balance, statement, transfer, transactions, recent, beneficiaries, addbeneficiary, delbeneficiary, profile, updateprofile, uploadpicture, delpicture, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "accounts", "newaccount", "balance", "statement", "transfer",
			"transactions", "recent", "beneficiaries", "addbeneficiary",
			"delbeneficiary", "profile", "updateprofile", "uploadpicture",
			"delpicture", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first (type 'login' or 'register')")
				continue
			}
			switch cmd {
			case "accounts":
				_ = a.Accounts(ctx)
			case "newaccount":
				_ = a.NewAccount(ctx)
			case "balance":
				_ = a.Balance(ctx)
			case "statement":
				_ = a.Statement(ctx)
			case "transfer":
				_ = a.Transfer(ctx)
			case "transactions":
				_ = a.Transactions(ctx)
			case "recent":
				_ = a.Recent(ctx)
			case "beneficiaries":
				_ = a.Beneficiaries(ctx)
			case "addbeneficiary":
				_ = a.AddBeneficiary(ctx)
			case "delbeneficiary":
				_ = a.DeleteBeneficiary(ctx)
			case "profile":
				_ = a.Profile(ctx)
			case "updateprofile":
				_ = a.UpdateProfile(ctx)
			case "uploadpicture":
				_ = a.UploadPicture(ctx)
			case "delpicture":
				_ = a.DeletePicture(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
