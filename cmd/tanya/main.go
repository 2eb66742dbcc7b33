// ABOUTME: CLI entry point for tanya, a terminal QnA chatbot
// ABOUTME: Parses flags, loads config, opens the store, dispatches to print or interactive mode

package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tanyabot/tanya-go/internal/config"
	tanyalog "github.com/tanyabot/tanya-go/internal/log"
	"github.com/tanyabot/tanya-go/internal/match"
	"github.com/tanyabot/tanya-go/internal/mode/print"
	"github.com/tanyabot/tanya-go/internal/qna"
	"github.com/tanyabot/tanya-go/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("tanya %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and dispatches to the
// selected mode.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(cfg, args)

	if cfg.Verbose {
		tanyalog.SetLevel(tanyalog.LevelDebug)
	}

	algo, err := match.Parse(cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("resolving algorithm: %w", err)
	}

	store, err := qna.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening knowledge base: %w", err)
	}
	if cfg.SeedFile != "" {
		n, err := store.ImportSeed(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("importing seed: %w", err)
		}
		if n > 0 {
			tanyalog.Info("imported %d seed questions", n)
		}
	}

	// One-shot when -p is given or there is piped input / extra args.
	utterance := strings.TrimSpace(args.prompt)
	if utterance == "" && len(args.remaining()) > 0 {
		utterance = strings.Join(args.remaining(), " ")
	}
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if utterance != "" || !interactive {
		deps := print.Deps{Store: store, Algorithm: algo}
		return print.RunWithConfig(print.Config{OutputFormat: args.output}, deps, utterance)
	}

	// Interactive mode logs to a file so output never mixes with frames.
	_ = os.MkdirAll(config.GlobalDir(), 0o755)
	if f, err := os.OpenFile(config.LogFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		tanyalog.SetOutput(f)
		defer f.Close()
	}

	return tui.Run(store, algo)
}

// applyOverrides layers CLI flags on top of the merged config.
func applyOverrides(cfg *config.Settings, args cliArgs) {
	if args.algo != "" {
		cfg.Algorithm = args.algo
	}
	if args.dataDir != "" {
		cfg.DataDir = args.dataDir
	}
	if args.seed != "" {
		cfg.SeedFile = args.seed
	}
	if args.verbose {
		cfg.Verbose = true
	}
}
