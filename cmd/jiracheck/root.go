package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/jiracheck/internal/adapter/driven/console"
	"github.com/ericfisherdev/jiracheck/internal/adapter/driven/git"
	"github.com/ericfisherdev/jiracheck/internal/adapter/driven/jira"
	"github.com/ericfisherdev/jiracheck/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/jiracheck/internal/application"
	"github.com/ericfisherdev/jiracheck/internal/config"
	"github.com/ericfisherdev/jiracheck/internal/domain/model"
	"github.com/ericfisherdev/jiracheck/internal/domain/port/driven"
	"github.com/ericfisherdev/jiracheck/internal/ui"
)

var (
	flagUsername   string
	flagJiraURL    string
	flagNoAuth     bool
	flagClearToken bool
	flagFormat     string
	flagNoProgress bool
	flagSort       string
)

var rootCmd = &cobra.Command{
	Use:   "jiracheck",
	Short: "Check the JIRA status of tickets referenced in git branch names",
	Long: `jiracheck scans the local and remote branches of the current git
repository for JIRA ticket keys (PROJ-123), asks the tracker for each
ticket's status, and prints a sorted report.

API tokens are cached per server under your user config directory, with
the credential file restricted to owner access.

Examples:
  jiracheck                                   # table report for the default server
  jiracheck --jira-url https://jira.corp.io   # another tracker
  jiracheck --format csv --sort ticket        # machine-friendly output
  jiracheck --clear-token                     # forget the saved token first`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	rootCmd.Flags().StringVar(&flagUsername, "username", "", "JIRA username/email")
	rootCmd.Flags().StringVar(&flagJiraURL, "jira-url", config.DefaultJiraURL, "JIRA base URL")
	rootCmd.Flags().BoolVar(&flagNoAuth, "no-auth", false, "Skip authentication (only for non-default JIRA servers)")
	rootCmd.Flags().BoolVar(&flagClearToken, "clear-token", false, "Clear any saved token before running")
	rootCmd.Flags().StringVar(&flagFormat, "format", application.FormatTable, "Output format (table or csv)")
	rootCmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "Disable progress indicator")
	rootCmd.Flags().StringVar(&flagSort, "sort", application.SortByStatus, "Sort results by status (default) or ticket number")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	// 1. Load configuration; flags override env, env overrides defaults.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	jiraURL := cfg.JiraURL
	if cmd.Flags().Changed("jira-url") {
		jiraURL = strings.TrimRight(flagJiraURL, "/")
	}
	username := cfg.Username
	if flagUsername != "" {
		username = flagUsername
	}
	if flagFormat != application.FormatTable && flagFormat != application.FormatCSV {
		return fmt.Errorf("invalid --format %q (must be table or csv)", flagFormat)
	}
	if flagSort != application.SortByStatus && flagSort != application.SortByTicket {
		return fmt.Errorf("invalid --sort %q (must be status or ticket)", flagSort)
	}
	slog.Debug("config loaded", "jira_url", jiraURL, "config_dir", cfg.ConfigDir)

	// 2. Setup signal-based context so Ctrl-C produces a graceful exit.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the credential database and run migrations.
	db, err := sqlite.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing credential db", "error", closeErr)
		}
	}()
	if err := sqlite.RunMigrations(db.Writer); err != nil {
		return err
	}
	store := sqlite.NewCredentialRepo(db)
	slog.Debug("credential db opened", "path", cfg.DBPath)

	// 4. Clear the saved token first if requested.
	if flagClearToken {
		existing, err := store.Get(ctx, jiraURL)
		if err != nil {
			return err
		}
		if !existing.IsZero() {
			if err := store.Delete(ctx, jiraURL); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, ui.MutedStyle.Render("Cleared saved token for "+jiraURL))
		}
	}

	// 5. List branches and extract the ticket set.
	branches, err := git.Branches(ctx)
	if err != nil {
		if cancelled(ctx) {
			return nil
		}
		return err
	}
	tickets := application.ExtractTickets(branches)
	slog.Debug("tickets extracted", "branches", len(branches), "tickets", len(tickets))
	if len(tickets) == 0 {
		fmt.Println("No JIRA tickets found in branch names.")
		return nil
	}

	// 6. Resolve credentials. The default server always requires them, even
	// under --no-auth.
	factory := func(u, t string) driven.IssueClient {
		return jira.NewClient(jiraURL, u, t)
	}
	var cred model.Credential
	if application.NeedsAuth(flagNoAuth, jiraURL, config.DefaultJiraURL) {
		auth := application.NewAuthService(store, console.NewPrompter(), factory, os.Stderr, cfg.DBPath)
		cred, err = auth.ResolveWithRetry(ctx, jiraURL, username, application.DefaultAuthAttempts)
		if err != nil {
			if cancelled(ctx) {
				return nil
			}
			return err
		}
	}
	if cred.IsZero() && jiraURL == config.DefaultJiraURL {
		return errors.New("authentication is required for the default JIRA server")
	}

	// 7. Fetch statuses sequentially with an in-place progress line.
	checker := application.NewCheckService(factory(cred.Username, cred.Token))
	fmt.Fprintln(os.Stderr, ui.AccentStyle.Render("Checking ticket statuses..."))
	var progress application.ProgressFunc
	if !flagNoProgress {
		progress = printProgress
	}
	results, err := checker.Statuses(ctx, jiraURL, tickets, progress)
	if !flagNoProgress {
		clearProgress()
	}
	if err != nil {
		if cancelled(ctx) {
			return nil
		}
		return err
	}

	// 8. Sort and render.
	application.SortResults(results, flagSort)
	if flagFormat == application.FormatCSV {
		fmt.Print(application.RenderCSV(results))
	} else {
		fmt.Print(application.RenderTable(results))
	}
	return nil
}

// cancelled reports whether the run was interrupted; it prints the
// cancellation notice once on the way out.
func cancelled(ctx context.Context) bool {
	if ctx.Err() == nil {
		return false
	}
	fmt.Fprintln(os.Stderr, "\nOperation cancelled by user. Exiting...")
	return true
}

func printProgress(index, total int, ticket string) {
	fmt.Fprintf(os.Stderr, "\r%s", ui.MutedStyle.Render(fmt.Sprintf("[%d/%d] Checking %s...", index, total, ticket)))
}

func clearProgress() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", 50))
}
