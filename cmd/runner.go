package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/repositories"
	"github.com/desertthunder/insightboard/internal/services"
	"github.com/desertthunder/insightboard/internal/shared"
	"github.com/desertthunder/insightboard/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// The key-value store and the video fetcher are built on first use so commands that
// need neither (setup config, --help) never touch the database or the network.
type Runner struct {
	config     *shared.Config
	configPath string
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	fetcher    tasks.VideoFetcher
	kv         repositories.KeyValue
	db         *sql.DB
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	Fetcher    tasks.VideoFetcher    // Defaults to a Normalizer over the YouTube Data API
	Store      repositories.KeyValue // Defaults to SQLite at config.Database.Path
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		fetcher:    opts.Fetcher,
		kv:         opts.Store,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, setupCommand, videoCommand, accountCommand, savedCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the logger used by the runner and every store it builds afterwards.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Close releases the database connection if one was opened.
func (r *Runner) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// loadConfig replaces the startup config when --config was given explicitly.
func (r *Runner) loadConfig(cmd *cli.Command) error {
	if !cmd.IsSet("config") {
		return nil
	}

	path := cmd.String("config")
	config, err := shared.LoadConfig(path)
	if err != nil {
		return err
	}

	r.config = config
	r.configPath = path
	r.logger.Debug("loaded config", "path", path)
	return nil
}

func (r *Runner) store() (repositories.KeyValue, error) {
	if r.kv != nil {
		return r.kv, nil
	}

	db, err := shared.OpenDatabase(r.config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", r.config.Database.Path, err)
	}

	r.db = db
	r.kv = repositories.NewSQLiteStore(db)
	return r.kv, nil
}

func (r *Runner) videoFetcher(ctx context.Context) (tasks.VideoFetcher, error) {
	if r.fetcher != nil {
		return r.fetcher, nil
	}

	provider, err := services.NewDataAPIProvider(ctx, r.config.Credentials.YouTube.APIKey)
	if err != nil {
		return nil, err
	}
	if !provider.Configured() {
		r.logger.Warn("no YouTube API key configured", "env", shared.EnvYouTubeAPIKey)
	}

	r.fetcher = services.NewNormalizer(provider, r.logger)
	return r.fetcher, nil
}

func (r *Runner) videoStore() (*repositories.VideoStore, error) {
	kv, err := r.store()
	if err != nil {
		return nil, err
	}
	return repositories.NewVideoStore(kv, r.logger), nil
}

func (r *Runner) userStore() (*repositories.UserStore, error) {
	kv, err := r.store()
	if err != nil {
		return nil, err
	}
	return repositories.NewUserStore(kv, r.logger), nil
}

// session opens the CLI session, keyed by [shared.SessionConfig.CLIKey].
func (r *Runner) session() (*repositories.Session, error) {
	kv, err := r.store()
	if err != nil {
		return nil, err
	}
	return repositories.NewSession(kv, r.config.Session.CLIKey, r.logger), nil
}

// currentUser returns the signed-in CLI user or wraps [shared.ErrNotAuthenticated].
func (r *Runner) currentUser() (models.User, error) {
	session, err := r.session()
	if err != nil {
		return models.User{}, err
	}

	user, ok := session.Current()
	if !ok {
		return models.User{}, fmt.Errorf("%w: run 'insightboard account login' first", shared.ErrNotAuthenticated)
	}
	return user, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
