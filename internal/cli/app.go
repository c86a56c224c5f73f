package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"qrforge/internal/common"
	"qrforge/internal/config"
	"qrforge/internal/encode"
	"qrforge/internal/logging"
	"qrforge/internal/models"
	"qrforge/internal/notify"
	"qrforge/internal/repositories/accounts"
	"qrforge/internal/repositories/items"
	"qrforge/internal/repositories/sessions"
	"qrforge/internal/services"
	"qrforge/internal/storage"

	_ "modernc.org/sqlite"
)

// App is the interactive shell. It holds the service stack, the current
// session (nil when nobody is logged in) and the input reader.
type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	auth     services.AuthService
	sessions services.SessionService
	items    services.ItemService
	codes    services.CodeService
	notifier notify.Notifier
	session  *models.Session
	reader   *bufio.Reader
}

// NewApp opens the local database and wires the full service stack.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	kv := storage.NewSQLiteKV(db)
	auth := services.NewAuthService(accounts.NewBlobRepository(kv))
	itemSvc := services.NewItemService(items.NewBlobRepository(kv))
	sessionSvc := services.NewSessionService(auth, sessions.NewTokenRepository(kv), itemSvc)
	codeSvc := services.NewCodeService(encode.NewLibraryEncoder(), itemSvc, c.DownloadDir)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		auth:     auth,
		sessions: sessionSvc,
		items:    itemSvc,
		codes:    codeSvc,
		notifier: notify.NewWriterNotifier(os.Stdout),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Username)
}

// Run restores any persisted session and enters the command loop. It returns
// when the user exits or input reaches EOF.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("Welcome to qrforge (type 'help' for commands)")

	if session, err := a.sessions.Restore(ctx); err == nil {
		a.session = session
		a.notifier.Notify(notify.Success("Welcome Back", fmt.Sprintf("Logged in as %s.", session.Username)))
	} else if !errors.Is(err, common.ErrNotFound) {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
