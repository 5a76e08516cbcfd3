package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rahulz09/scriptvoice/pkg/bot"
	"github.com/rahulz09/scriptvoice/pkg/catalog"
	"github.com/rahulz09/scriptvoice/pkg/config"
	"github.com/rahulz09/scriptvoice/pkg/logger"
	"github.com/rahulz09/scriptvoice/pkg/prefs"
	"github.com/rahulz09/scriptvoice/pkg/tts"
)

var (
	version   = "dev"
	gitCommit string
)

func main() {
	command := "run"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "run":
		runBot()
	case "version", "-v", "--version":
		printVersion()
	case "help", "-h", "--help":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		printHelp()
		os.Exit(1)
	}
}

func printVersion() {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	fmt.Printf("🎙️ scriptvoice %s\n", v)
	fmt.Printf("  Go: %s\n", runtime.Version())
}

func printHelp() {
	fmt.Println(`scriptvoice - Telegram text-to-speech bot

Usage:
  scriptvoice [run [config-path]]   start the bot (default command)
  scriptvoice version               print version
  scriptvoice help                  show this help

Config is read from config-path (default "config.json"), or the path in
SCRIPTVOICE_CONFIG; environment variables override file values.`)
}

func configPath() string {
	if len(os.Args) > 2 {
		return os.Args[2]
	}
	if path := os.Getenv("SCRIPTVOICE_CONFIG"); path != "" {
		return path
	}
	return "config.json"
}

func runBot() {
	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		logger.FatalC("main", "Failed to load config: "+err.Error())
	}

	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	if cfg.Log.File != "" {
		if err := logger.EnableFileLogging(cfg.Log.File); err != nil {
			logger.WarnC("main", "File logging disabled: "+err.Error())
		}
	}

	if err := cfg.Validate(); err != nil {
		logger.FatalC("main", "Invalid configuration: "+err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat := cfg.BuildCatalog()
	store := prefs.NewStore(catalog.Provider(cfg.Defaults.Provider), map[catalog.Provider]string{
		catalog.ProviderGoogle:     cfg.Defaults.GoogleVoice,
		catalog.ProviderElevenLabs: cfg.Defaults.ElevenLabsVoice,
	})

	google, err := tts.NewGoogleSynthesizer(ctx, cfg)
	if err != nil {
		logger.FatalC("main", "Google TTS init failed: "+err.Error())
	}
	defer google.Close()

	synths := map[catalog.Provider]tts.Synthesizer{
		catalog.ProviderGoogle:     google,
		catalog.ProviderElevenLabs: tts.NewElevenLabsSynthesizer(cfg),
	}

	b, err := bot.New(cfg, cat, store, synths)
	if err != nil {
		logger.FatalC("main", "Bot init failed: "+err.Error())
	}

	if err := b.Start(ctx); err != nil {
		logger.FatalC("main", "Bot stopped with error: "+err.Error())
	}

	logger.InfoC("main", "Shutting down")
}
