package services

import (
	"context"
	"fmt"

	"github.com/demobank/bankcli/internal/client/api"
	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/client/tokenstore"
	"github.com/demobank/bankcli/internal/common"
)

// AuthService defines authentication and profile operations.
//
// Contract:
//   - Register: create an account; the issued token pair is persisted.
//   - Login: authenticate; the issued token pair is persisted.
//   - Logout: drop the stored pair; purely local, no network call.
//   - GetProfile/UpdateProfile: fetch or partially update the current user.
//   - UploadProfilePicture/DeleteProfilePicture: replace or remove the
//     profile picture; uploads are validated locally first.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	UploadProfilePicture(ctx context.Context, fileName string, content []byte) error
	DeleteProfilePicture(ctx context.Context) error
}

type authService struct {
	gateway *api.Client
	tokens  tokenstore.Store
}

// NewAuthService constructs an AuthService bound to the given gateway and
// token store.
func NewAuthService(gateway *api.Client, tokens tokenstore.Store) AuthService {
	return &authService{gateway: gateway, tokens: tokens}
}

// Register creates a new user. When the response carries a token pair it is
// persisted, so the fresh account is immediately usable.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	}

	var resp models.RegisterResponse
	if err := a.gateway.Post(ctx, "/auth/register/", req, &resp); err != nil {
		return nil, err
	}

	if resp.Tokens != nil {
		if err := a.tokens.Save(ctx, *resp.Tokens); err != nil {
			return nil, fmt.Errorf("save tokens: %w", err)
		}
	}
	return &resp.User, nil
}

// Login exchanges credentials for a token pair and persists it.
func (a *authService) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	var pair models.TokenPair
	payload := map[string]string{"username": username, "password": password}
	if err := a.gateway.Post(ctx, "/auth/login/", payload, &pair); err != nil {
		return nil, err
	}

	if err := a.tokens.Save(ctx, pair); err != nil {
		return nil, fmt.Errorf("save tokens: %w", err)
	}
	return &pair, nil
}

// Logout clears the stored credential pair. No network call is made; the
// server keeps no session to tear down.
func (a *authService) Logout(ctx context.Context) error {
	return a.tokens.Clear(ctx)
}

func (a *authService) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.gateway.Get(ctx, "/auth/profile/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := a.gateway.Patch(ctx, "/auth/profile/update/", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadProfilePicture validates the picture locally (type by magic bytes,
// size cap) and sends it as a single multipart request.
func (a *authService) UploadProfilePicture(ctx context.Context, fileName string, content []byte) error {
	if err := ValidateProfilePicture(content); err != nil {
		return err
	}
	return a.gateway.Upload(ctx, "/auth/profile/upload-picture/", "profile_picture", fileName, content, nil)
}

func (a *authService) DeleteProfilePicture(ctx context.Context) error {
	return a.gateway.Delete(ctx, "/auth/profile/delete-picture/", nil)
}
