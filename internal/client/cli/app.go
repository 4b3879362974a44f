package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/demobank/bankcli/internal/client/api"
	"github.com/demobank/bankcli/internal/client/config"
	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/client/services"
	"github.com/demobank/bankcli/internal/client/session"
	"github.com/demobank/bankcli/internal/client/tokenstore"
	"github.com/demobank/bankcli/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionCtrl is the slice of the session controller the CLI needs. The real
// *session.Controller satisfies it; tests can provide a lightweight stub.
type sessionCtrl interface {
	Load(ctx context.Context)
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context)
	Refresh(ctx context.Context) error
	CurrentUser() *models.User
	IsAuthenticated() bool
}

type App struct {
	config       *config.Config
	db           *sql.DB
	session      sessionCtrl
	auth         services.AuthService
	accounts     services.AccountService
	transactions services.TransactionService
	reader       *bufio.Reader
	log          logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := tokenstore.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := tokenstore.NewSQLiteStore(db)
	gateway := api.New(c.ServerBaseURL, store, &http.Client{Timeout: c.RequestTimeout}, log)

	auth := services.NewAuthService(gateway, store)

	return &App{
		config:       c,
		db:           db,
		session:      session.NewController(auth, store, log),
		auth:         auth,
		accounts:     services.NewAccountService(gateway),
		transactions: services.NewTransactionService(gateway),
		reader:       bufio.NewReader(os.Stdin),
		log:          log,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

// Run rehydrates the session from the local token store and starts the REPL.
// It blocks until the user exits or the scanner hits EOF.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.session.Load(ctx)

	printlnFn("Welcome to DemoBank CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
