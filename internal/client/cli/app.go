package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/lyade28/shopsync/internal/client/api"
	"github.com/lyade28/shopsync/internal/client/cache"
	"github.com/lyade28/shopsync/internal/client/config"
	"github.com/lyade28/shopsync/internal/client/services"
	"github.com/lyade28/shopsync/internal/client/storage"
	"github.com/lyade28/shopsync/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	offline *services.OfflineService
	catalog *services.CatalogService
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	db, repos, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewRESTClient(c.APIBaseURL)
	store := cache.NewStore(c.CacheTTL)

	off := services.NewOfflineService(apiClient, repos.Sales, log, c.RetentionWindow)
	cat := services.NewCatalogService(apiClient, store, repos.Snapshots, log, c.CacheTTL, c.SessionCacheTTL)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		offline: off,
		catalog: cat,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) getStatus() string {
	if a.offline.IsOnline() {
		return "(online)"
	}
	return "(offline)"
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("shopsync POS (type 'help' for commands)")

	go a.offline.StartWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
