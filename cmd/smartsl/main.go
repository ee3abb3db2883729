package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/nuwanhe/smartsl/internal/cli"
	"github.com/nuwanhe/smartsl/internal/config"
	"github.com/nuwanhe/smartsl/internal/content"
	"github.com/nuwanhe/smartsl/internal/db"
	"github.com/nuwanhe/smartsl/internal/genai"
	"github.com/nuwanhe/smartsl/internal/planner"
	"github.com/nuwanhe/smartsl/internal/repository"
	"github.com/nuwanhe/smartsl/internal/speech"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load file config first; environment variables override it below.
	cfgPath := os.Getenv("SMARTSL_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logLevel := cfg.LogLevel
	if v := os.Getenv("SMARTSL_LOG_LEVEL"); v != "" {
		logLevel = v
	}
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)

	// Determine DB path: env var, config file, or default ~/.smartsl/smartsl.db
	dbPath := os.Getenv("SMARTSL_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".smartsl", "smartsl.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Generative client: env-derived config with file overrides underneath.
	genaiCfg := applyGenAIOverrides(genai.LoadConfig(), cfg.GenAI)
	var observer genai.Observer = genai.NoopObserver{}
	if genaiCfg.LogCalls {
		observer = genai.NewLogObserver(log)
	}
	client := genai.NewGeminiClient(genaiCfg, observer)

	store := repository.NewSQLiteTaskStore(database, log)

	app := &cli.App{
		Planner: planner.NewEngine(context.Background(), store, log),
		Content: content.NewService(client),
		Speech:  speech.NewSynthesizer(client, speech.NewExecPlayer(), log),
		Cfg:     cfg,
		Log:     log,
	}

	// Detect interactive terminal: the bare command is TUI-only.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// applyGenAIOverrides layers config-file values under the env-derived
// genai configuration: a file value fills a field only when the
// environment left the default in place.
func applyGenAIOverrides(envCfg genai.Config, file config.GenAI) genai.Config {
	def := genai.DefaultConfig()
	if file.Endpoint != "" && envCfg.Endpoint == def.Endpoint {
		envCfg.Endpoint = file.Endpoint
	}
	if file.Model != "" && envCfg.Model == def.Model {
		envCfg.Model = file.Model
	}
	if file.SpeechModel != "" && envCfg.SpeechModel == def.SpeechModel {
		envCfg.SpeechModel = file.SpeechModel
	}
	if file.Voice != "" && envCfg.Voice == def.Voice {
		envCfg.Voice = file.Voice
	}
	return envCfg
}
