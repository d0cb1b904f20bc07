package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/later/internal/cli"
	"github.com/idilsaglam/later/internal/config"
	"github.com/idilsaglam/later/internal/logging"
	"github.com/idilsaglam/later/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/.later/config.toml)")
	themeName := flag.String("theme", "", "color theme: classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colored output")
	useTUI := flag.Bool("tui", false, "run the full-screen interface")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}
	theme, err := ui.ThemeByName(cfg.Theme)
	if err != nil {
		fmt.Fprintln(os.Stderr, "theme:", err)
		os.Exit(2)
	}

	logger := logging.New(logOutput(*useTUI), cfg.LogLevel, cfg.LogFormat)
	logger.Debug("starting", "theme", theme.Name, "history", cfg.HistoryFile, "tui", *useTUI)

	if *useTUI {
		if err := cli.RunTUI(os.Stdout, theme, *noColor, logger, cfg.Prompt); err != nil {
			logger.Error("tui", "err", err)
		}
		return
	}

	reader := cli.NewLinerReader(cfg.HistoryFile)
	printer := ui.NewPrinter(os.Stdout, os.Stderr, theme, *noColor)
	repl := &cli.REPL{
		Session: cli.NewSession(printer, logger),
		Reader:  reader,
		Prompt:  cfg.Prompt,
	}
	repl.Run()
	if err := reader.Close(); err != nil {
		logger.Warn("close input", "err", err)
	}
}

// logOutput is stderr, except under -tui where the alternate screen owns
// the terminal.
func logOutput(tui bool) io.Writer {
	if tui {
		return io.Discard
	}
	return os.Stderr
}
