package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/demobank/bankcli/internal/client/models"
)

// Profile re-fetches the current user and prints the profile fields.
func (a *App) Profile(ctx context.Context) error {
	if err := a.session.Refresh(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	user := a.session.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("Username:   %s\n", user.Username)
	fmt.Printf("Email:      %s\n", user.Email)
	if user.FirstName != "" || user.LastName != "" {
		fmt.Printf("Name:       %s %s\n", user.FirstName, user.LastName)
	}
	if user.Profile.PhoneNumber != "" {
		fmt.Printf("Phone:      %s\n", user.Profile.PhoneNumber)
	}
	if user.Profile.Address != "" {
		fmt.Printf("Address:    %s\n", user.Profile.Address)
	}
	fmt.Printf("KYC:        %v\n", user.Profile.KYCVerified)
	if user.Profile.ProfilePicture != "" {
		fmt.Printf("Picture:    %s\n", user.Profile.ProfilePicture)
	}
	return nil
}

// UpdateProfile prompts for the editable profile fields and applies a partial
// update. An empty answer keeps the current value. The session is re-synced
// from the server afterwards.
func (a *App) UpdateProfile(ctx context.Context) error {
	var upd models.ProfileUpdate

	prompts := []struct {
		prompt string
		target **string
	}{
		{"Enter email (empty to keep)", &upd.Email},
		{"Enter first name (empty to keep)", &upd.FirstName},
		{"Enter last name (empty to keep)", &upd.LastName},
		{"Enter phone number (empty to keep)", &upd.PhoneNumber},
		{"Enter address (empty to keep)", &upd.Address},
	}
	for _, p := range prompts {
		value, err := getSimpleText(a.reader, p.prompt, os.Stdout)
		if err != nil {
			return err
		}
		if value != "" {
			v := value
			*p.target = &v
		}
	}

	if _, err := a.auth.UpdateProfile(ctx, upd); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	if err := a.session.Refresh(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}

// UploadPicture reads a local image file and uploads it as the profile
// picture. Type and size are validated before anything is sent.
func (a *App) UploadPicture(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path to picture (JPEG, PNG or GIF, up to 5 MB)", os.Stdout)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	if err := a.auth.UploadProfilePicture(ctx, filepath.Base(path), content); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	if err := a.session.Refresh(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Println("Picture uploaded.")
	return nil
}

// DeletePicture removes the profile picture.
func (a *App) DeletePicture(ctx context.Context) error {
	if err := a.auth.DeleteProfilePicture(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	if err := a.session.Refresh(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Println("Picture removed.")
	return nil
}
