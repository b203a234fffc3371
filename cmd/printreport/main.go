package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"printer-report/internal/app"
	"printer-report/internal/shared/configs"
	"printer-report/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var configFile string

var rootCmd = &cobra.Command{
	Use:   "printreport",
	Short: "Summarise print jobs from Windows print server event logs",
	Long: `printreport reads the "document printed" events of one or more Windows print servers,
totals pages, jobs and bytes per user, group and printer for a period, and prints the
report and/or mails it.

Examples:
  # Last month on the local print server
  printreport

  # March 2024 on two servers, mailed to the office manager
  printreport -t 2024-03 -p print01 -p print02 -m office@example.com

  # From the 1st of the month until today, with every job listed
  printreport -s 2024-03-01 -d --stdout`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runReport,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML config file")

	flags.StringP("time-period", "t", "", "period to report on: YYYY, YYYY-MM, YYYY-MM-DD or today (default: last month)")
	flags.StringP("start-date", "s", "", "first day to report on, ignored with --time-period")
	flags.StringP("end-date", "e", "today", "last day to report on, only read with --start-date")
	flags.StringArrayP("print-server", "p", nil, "print server to query, repeatable (default: localhost)")
	flags.StringArrayP("ignore-printer", "i", nil, "printer to leave out of the report, repeatable")
	flags.StringArrayP("mail-to", "m", nil, "recipient of the report, repeatable")
	flags.BoolP("details", "d", false, "list every print job")
	flags.Bool("stdout", false, "print the report even when mailing it")
	flags.BoolP("raw", "r", false, "keep the structured-text markup in the output")
	flags.String("mail-server", "localhost", "SMTP server")
	flags.String("mail-from", "Administrator", "sender address")
	flags.Bool("users", true, "summarise per user")
	flags.Bool("groups", true, "summarise per group")
	flags.Bool("printers", true, "summarise per printer")
	flags.Bool("no-users", false, "don't summarise per user")
	flags.Bool("no-groups", false, "don't summarise per group")
	flags.Bool("no-printers", false, "don't summarise per printer")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.MarkFlagsMutuallyExclusive("users", "no-users")
	rootCmd.MarkFlagsMutuallyExclusive("groups", "no-groups")
	rootCmd.MarkFlagsMutuallyExclusive("printers", "no-printers")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return app.ErrInvalidConfig(err)
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = app.ErrInvalidConfig(err)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", svcErr.Describe())
		os.Exit(svcErr.ExitCode)
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	// Load configuration
	cfg, err := configs.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return app.ErrInvalidConfig(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize application
	application, err := app.New(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	return application.Run(ctx)
}
