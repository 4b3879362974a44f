package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demobank/bankcli/internal/client/api"
	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/common"
)

func TestLogin_PersistsPair_AndNextRequestCarriesBearer(t *testing.T) {
	store := &memStore{}

	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "alice", creds["username"])
		require.Equal(t, "pw123", creds["password"])
		_, _ = w.Write([]byte(`{"access":"a","refresh":"r"}`))
	})
	mux.HandleFunc("/auth/profile/", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(api.AuthorizationHeader)
		_, _ = w.Write([]byte(`{"id":1,"username":"alice"}`))
	})

	gateway, _ := newGateway(t, mux, store)
	svc := NewAuthService(gateway, store)
	ctx := context.Background()

	pair, err := svc.Login(ctx, "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "a", pair.Access)
	assert.Equal(t, "r", pair.Refresh)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.TokenPair{Access: "a", Refresh: "r"}, *stored)

	user, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Bearer a", gotAuth)
}

func TestLogin_EmptyCredentials_NoNetworkCall(t *testing.T) {
	store := &memStore{}
	gateway, calls := newGateway(t, http.NewServeMux(), store)
	svc := NewAuthService(gateway, store)

	_, err := svc.Login(context.Background(), "", "pw")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Login(context.Background(), "alice", "")
	require.ErrorIs(t, err, common.ErrValidation)

	assert.Zero(t, *calls)
}

func TestRegister_PersistsTokens_ReturnsCreatedUser(t *testing.T) {
	store := &memStore{}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register/", func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "bob", req.Username)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"user": {"id": 7, "username": "bob", "email": "bob@example.com"},
			"tokens": {"access": "a7", "refresh": "r7"},
			"message": "User created successfully"
		}`))
	})

	gateway, _ := newGateway(t, mux, store)
	svc := NewAuthService(gateway, store)

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7, user.ID)
	assert.Equal(t, "bob", user.Username)

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "a7", stored.Access)
}

func TestRegister_MissingRequiredFields(t *testing.T) {
	store := &memStore{}
	gateway, calls := newGateway(t, http.NewServeMux(), store)
	svc := NewAuthService(gateway, store)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "x"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, *calls)
}

func TestLogout_ClearsStore_NoNetworkCall_Idempotent(t *testing.T) {
	store := &memStore{pair: &models.TokenPair{Access: "a", Refresh: "r"}}
	gateway, calls := newGateway(t, http.NewServeMux(), store)
	svc := NewAuthService(gateway, store)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx), "second logout must be safe")

	pair, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, pair)
	assert.Zero(t, *calls, "logout must not touch the network")
}

func TestUpdateProfile_SendsOnlySetFields(t *testing.T) {
	store := &memStore{pair: &models.TokenPair{Access: "a", Refresh: "r"}}

	var gotBody map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/profile/update/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id":1,"username":"alice","first_name":"Alice"}`))
	})

	gateway, _ := newGateway(t, mux, store)
	svc := NewAuthService(gateway, store)

	first := "Alice"
	user, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.FirstName)

	assert.Equal(t, map[string]any{"first_name": "Alice"}, gotBody)
}

func TestUploadProfilePicture_OversizedRejectedLocally(t *testing.T) {
	store := &memStore{pair: &models.TokenPair{Access: "a", Refresh: "r"}}
	gateway, calls := newGateway(t, http.NewServeMux(), store)
	svc := NewAuthService(gateway, store)

	big := make([]byte, 6*1024*1024)
	copy(big, "\xFF\xD8") // valid JPEG header, size is the problem

	err := svc.UploadProfilePicture(context.Background(), "big.jpg", big)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, *calls, "oversized file must be rejected before any request")
}

func TestUploadProfilePicture_WrongTypeRejectedLocally(t *testing.T) {
	store := &memStore{pair: &models.TokenPair{Access: "a", Refresh: "r"}}
	gateway, calls := newGateway(t, http.NewServeMux(), store)
	svc := NewAuthService(gateway, store)

	err := svc.UploadProfilePicture(context.Background(), "doc.pdf", []byte("%PDF-1.4 ..."))
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, *calls)
}

func TestUploadProfilePicture_SendsValidFile(t *testing.T) {
	store := &memStore{pair: &models.TokenPair{Access: "a", Refresh: "r"}}

	var gotName string
	var gotContent []byte
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/profile/upload-picture/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("profile_picture")
		require.NoError(t, err)
		defer f.Close()
		gotName = hdr.Filename
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(f)
		gotContent = buf.Bytes()
		_, _ = w.Write([]byte(`{"message":"Profile picture uploaded successfully"}`))
	})

	gateway, _ := newGateway(t, mux, store)
	svc := NewAuthService(gateway, store)

	content := append([]byte("\x89PNG\r\n\x1a\n"), []byte("pixels")...)
	require.NoError(t, svc.UploadProfilePicture(context.Background(), "me.png", content))
	assert.Equal(t, "me.png", gotName)
	assert.Equal(t, content, gotContent)
}

func TestDeleteProfilePicture(t *testing.T) {
	store := &memStore{pair: &models.TokenPair{Access: "a", Refresh: "r"}}

	var gotMethod string
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/profile/delete-picture/", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	gateway, _ := newGateway(t, mux, store)
	svc := NewAuthService(gateway, store)

	require.NoError(t, svc.DeleteProfilePicture(context.Background()))
	assert.Equal(t, http.MethodDelete, gotMethod)
}
