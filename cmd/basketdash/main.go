package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/nehah091/basket-dash/internal/app"
	"github.com/nehah091/basket-dash/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: basketdash needs an interactive terminal")
		os.Exit(1)
	}

	logFile, logger := setupLogging(cfg.Debug)

	application := app.NewApp(cfg, logger)
	runErr := application.Run(context.Background())

	if logFile != nil {
		logFile.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  basketdash [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --difficulty <name>  easy, medium or hard (default: medium)")
	fmt.Fprintln(os.Stderr, "  --theme <name>       sunset, forest, ocean, neon or night (default: sunset)")
	fmt.Fprintln(os.Stderr, "  --basket <name>      classic, neon, dark or glass (default: classic)")
	fmt.Fprintf(os.Stderr, "  --fps <n>            frame rate, %d-%d (default: %d)\n", config.MinFPS, config.MaxFPS, config.DefaultFPS)
	fmt.Fprintln(os.Stderr, "  --seed <n>           random seed for a repeatable round")
	fmt.Fprintln(os.Stderr, "  --mute               disable sound")
	fmt.Fprintln(os.Stderr, "  --debug              write a debug log to logs/basketdash.log")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment:")
	fmt.Fprintf(os.Stderr, "  %s, %s, %s, %s\n", config.EnvDifficulty, config.EnvTheme, config.EnvBasket, config.EnvMute)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  basketdash --difficulty hard --theme neon")
	fmt.Fprintln(os.Stderr, "  basketdash --seed 42 --mute")
}
