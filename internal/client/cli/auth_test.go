package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/demobank/bankcli/internal/client/models"
)

// stubInputs replaces the interactive input seams with canned answers.
// getSimpleText and getID consume the answer queue in order; getPassword
// always returns the given password.
func stubInputs(t *testing.T, password []byte, answers ...string) func() {
	t.Helper()
	origST, origGP, origID := getSimpleText, getPassword, getID

	i := 0
	next := func() (string, error) {
		if i >= len(answers) {
			return "", errors.New("no more canned input")
		}
		a := answers[i]
		i++
		return a, nil
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	getID = func(_ *bufio.Reader, _ string, _ io.Writer) (int64, error) {
		s, err := next()
		if err != nil {
			return 0, err
		}
		return strconv.ParseInt(s, 10, 64)
	}

	return func() {
		getSimpleText = origST
		getPassword = origGP
		getID = origID
	}
}

// fakeSession is a sessionCtrl stub that records calls.
type fakeSession struct {
	user *models.User

	loginUser string
	loginPass string
	loginErr  error

	registerReq models.RegisterRequest
	registerErr error

	logoutCalled bool

	refreshCalls int
	refreshErr   error
}

func (f *fakeSession) Load(context.Context) {}
func (f *fakeSession) Login(_ context.Context, username, password string) error {
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.user = &models.User{ID: 1, Username: username}
	return nil
}
func (f *fakeSession) Register(_ context.Context, req models.RegisterRequest) error {
	f.registerReq = req
	if f.registerErr != nil {
		return f.registerErr
	}
	f.user = &models.User{ID: 1, Username: req.Username}
	return nil
}
func (f *fakeSession) Logout(context.Context) {
	f.logoutCalled = true
	f.user = nil
}
func (f *fakeSession) Refresh(context.Context) error {
	f.refreshCalls++
	return f.refreshErr
}
func (f *fakeSession) CurrentUser() *models.User { return f.user }
func (f *fakeSession) IsAuthenticated() bool     { return f.user != nil }

func TestLogin_Success(t *testing.T) {
	s := &fakeSession{}
	a := &App{session: s}

	restore := stubInputs(t, []byte("secret"), "alice")
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if s.loginUser != "alice" {
		t.Fatalf("Login user mismatch: %q", s.loginUser)
	}
	if s.loginPass != "secret" {
		t.Fatalf("Login pass mismatch: %q", s.loginPass)
	}
	if !a.isLoggedIn() {
		t.Fatal("expected authenticated session")
	}
}

func TestLogin_ErrorPropagates(t *testing.T) {
	s := &fakeSession{loginErr: errors.New("bad credentials")}
	a := &App{session: s}

	restore := stubInputs(t, []byte("wrong"), "alice")
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("want error from session login")
	}
	if a.isLoggedIn() {
		t.Fatal("session must stay unauthenticated")
	}
}

func TestRegister_Success(t *testing.T) {
	s := &fakeSession{}
	a := &App{session: s}

	restore := stubInputs(t, []byte("secret"), "bob", "bob@example.org", "Bob", "Jones")
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if s.registerReq.Username != "bob" {
		t.Fatalf("Register username mismatch: %q", s.registerReq.Username)
	}
	if s.registerReq.Email != "bob@example.org" {
		t.Fatalf("Register email mismatch: %q", s.registerReq.Email)
	}
	if s.registerReq.Password != "secret" {
		t.Fatalf("Register password mismatch: %q", s.registerReq.Password)
	}
	if s.registerReq.FirstName != "Bob" || s.registerReq.LastName != "Jones" {
		t.Fatalf("Register name mismatch: %+v", s.registerReq)
	}
}

func TestLogout(t *testing.T) {
	s := &fakeSession{user: &models.User{ID: 1, Username: "alice"}}
	a := &App{session: s}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !s.logoutCalled {
		t.Fatal("session Logout not called")
	}
	if a.isLoggedIn() {
		t.Fatal("session must be unauthenticated after logout")
	}
}
