package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for static binaries

	"github.com/ericfisherdev/jiracheck/internal/ui"
)

func main() {
	if os.Getenv("JIRACHECK_DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FailStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
