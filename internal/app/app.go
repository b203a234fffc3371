package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"printer-report/internal/aggregators"
	"printer-report/internal/directories"
	"printer-report/internal/eventlogs"
	"printer-report/internal/extractors"
	"printer-report/internal/mailers"
	"printer-report/internal/models"
	"printer-report/internal/periods"
	"printer-report/internal/reports"
	"printer-report/internal/shared/configs"
	"printer-report/internal/shared/filestorages"
	"printer-report/internal/shared/loggers"
	"printer-report/internal/shared/metrics"
	"printer-report/internal/shared/svcerrors"
	"printer-report/internal/shared/ulid"
)

const (
	readerWevtutil = "wevtutil"
	readerExport   = "export"
)

// App holds all collaborators of one report run.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	stdout    io.Writer
	stderr    io.Writer
	now       func() time.Time

	resolver   periods.Resolver
	extractor  extractors.ExtractionService
	aggregator aggregators.AggregationService
	formatter  reports.Formatter
	renderer   reports.HTMLRenderer // nil when HTML mail is off
	mailer     mailers.Mailer

	closers []io.Closer
}

// New creates and wires the collaborators selected by config. The report goes to stdout, logs and
// warnings to stderr.
//
// A group directory that cannot be used is not an error: the run continues without group summaries.
func New(ctx context.Context, config *configs.Config, stdout, stderr io.Writer) (*App, error) {
	appLogger, err := loggers.NewWithWriter(stderr, config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, ErrInvalidConfig(fmt.Errorf("failed to initialize logger: %w", err))
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "printer-report").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()
	ctx = appLogger.WithContext(ctx)

	app := &App{
		config:    config,
		appLogger: appLogger,
		stdout:    stdout,
		stderr:    stderr,
		now:       time.Now,
		resolver:  periods.NewResolver(time.Now),
		formatter: reports.NewFormatter(),
		mailer: mailers.NewSMTPMailer(mailers.SMTPConfig{
			Host:     config.Mail.Server,
			Port:     config.Mail.Port,
			Username: config.Mail.Username,
			Password: config.Mail.Password,
		}),
	}
	if config.Mail.HTML {
		app.renderer = reports.NewHTMLRenderer()
	}

	// Initialize event source
	source, err := newEventSource(config.EventLog)
	if err != nil {
		return nil, err
	}

	// Initialize aggregation service
	options := models.StatisticsOptions{
		Users:    config.Report.Users,
		Groups:   config.Report.Groups,
		Printers: config.Report.Printers,
		Details:  config.Report.Details,
	}
	var directory directories.Directory
	if options.Groups {
		directory, err = directories.New(ctx, config.Directory)
		switch {
		case errors.Is(err, directories.ErrDirectoryUnavailable):
			app.warn(ctx, err, "Couldn't load the group directory; disabling group summaries.")
			options.Groups = false
		case err != nil:
			return nil, err
		}
		if closer, ok := directory.(io.Closer); ok {
			app.closers = append(app.closers, closer)
		}
	}
	app.aggregator = aggregators.NewAggregationService(aggregators.NewJobRolluper(), directory, options)

	// Initialize extraction service
	app.extractor = extractors.NewExtractionService(source, extractors.NewMessageParser(), extractors.Filter{
		Provider:       config.EventLog.Provider,
		EventID:        config.EventLog.EventID,
		IgnorePrinters: config.Report.IgnorePrinters,
	})

	return app, nil
}

func newEventSource(config configs.EventLogConfig) (eventlogs.EventSource, error) {
	switch config.Reader {
	case readerExport:
		fileStorage, err := filestorages.NewFileStorage(config.ExportDir)
		if err != nil {
			return nil, ErrInvalidConfig(fmt.Errorf("failed to initialize export directory: %w", err))
		}
		return eventlogs.NewExportSource(fileStorage), nil
	case readerWevtutil:
		return eventlogs.NewWevtutilSource(config.WevtutilPath, config.Channel), nil
	default:
		return nil, ErrInvalidConfig(fmt.Errorf("unknown event log reader %q", config.Reader))
	}
}

// Run produces the report once: resolve the period, scan every print server, then print and/or mail the
// result. Any failure, including a panic, comes back as a *svcerrors.ServiceError.
func (app *App) Run(ctx context.Context) (err error) {
	ctx = app.appLogger.WithContext(ctx)
	defer app.close(ctx)

	defer func() {
		if p := recover(); p != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("run panic recovered: %v", p)

			// Convert panic value to error
			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			err = svcerrors.NewInternalErrorPanic(panicErr)
		}
		err = app.finish(ctx, err)
	}()

	return app.run(ctx)
}

// finish records the run outcome and normalises err to a service error.
func (app *App) finish(ctx context.Context, err error) error {
	if err == nil {
		metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
		metricLastRunTimestamp.Set(float64(app.now().Unix()))
		app.writeMetrics()
		return nil
	}

	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	metricRunsTotal.WithLabelValues(svcErr.Code).Inc()

	// Log internal errors at error level
	logger := loggers.Ctx(ctx)
	if svcErr.IsInternalError() {
		logger.Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("internal error in run")
	} else {
		logger.Debug().
			Str(loggers.FieldErrorCode, svcErr.Code).
			Str("errorCategory", svcErr.Category).
			Msg(svcErr.Message)
	}
	app.writeMetrics()
	return svcErr
}

func (app *App) run(ctx context.Context) error {
	window, err := app.resolver.Resolve(ctx, app.config.Period)
	if err != nil {
		return err
	}

	app.appLogger.Info().
		Str(loggers.FieldPeriod, window.Label).
		Strs("print_servers", app.config.EventLog.PrintServers).
		Msg("Collecting print statistics")

	extraction, err := app.extractor.Extract(ctx, app.config.EventLog.PrintServers, window, app.aggregator.Aggregate)
	if err != nil {
		return err
	}

	stats := app.aggregator.Statistics()
	doc := app.formatter.Format(reports.Input{
		Label:       window.Label,
		Sources:     extraction.Sources,
		Diagnostics: extraction.Diagnostics,
		Statistics:  stats,
	})

	if app.config.PrintToStdout() {
		if _, err := fmt.Fprintln(app.stdout, app.body(doc)); err != nil {
			return errReportWriteFailed(err)
		}
	}

	if app.config.SendMail() {
		if err := app.mailer.Send(ctx, app.message(ctx, doc)); err != nil {
			return err
		}
		app.appLogger.Info().Strs("to", app.config.Mail.To).Msg("Report mailed")
	}

	metricReportedJobs.Set(float64(stats.Totals.Jobs))
	return nil
}

// body is the report as printed and as the plain mail part.
func (app *App) body(doc *reports.Document) string {
	if app.config.Report.Raw {
		return doc.Markup()
	}
	return doc.Text()
}

func (app *App) message(ctx context.Context, doc *reports.Document) *mailers.Message {
	msg := &mailers.Message{
		From:    app.config.Mail.From,
		To:      app.config.Mail.To,
		Subject: doc.Subject,
		Text:    app.body(doc),
	}
	if app.renderer == nil {
		return msg
	}

	htmlBody, err := app.renderer.Render(doc.Subject, doc.Markup())
	if err != nil {
		app.warn(ctx, err, "Couldn't render the HTML report; sending plain text only.")
		app.renderer = nil
		return msg
	}
	msg.HTML = htmlBody
	return msg
}

// writeMetrics exports the run counters for the node_exporter textfile collector. A failure only costs
// the metrics, never the report.
func (app *App) writeMetrics() {
	path := app.config.Metrics.Textfile
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		app.appLogger.Warn().Err(err).Str("path", path).Msg("Failed to write metrics textfile")
	}
}

// warn reports a missing optional capability both in the log and as plain text for the operator.
func (app *App) warn(ctx context.Context, err error, msg string) {
	loggers.Ctx(ctx).Warn().Err(err).Msg(msg)
	fmt.Fprintln(app.stderr, "Warning: "+msg)
}

func (app *App) close(ctx context.Context) {
	for _, closer := range app.closers {
		if err := closer.Close(); err != nil {
			loggers.Ctx(ctx).Debug().Err(err).Msg("Failed to close collaborator")
		}
	}
	app.closers = nil
}
