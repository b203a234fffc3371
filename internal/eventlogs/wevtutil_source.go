package eventlogs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"printer-report/internal/models"
	"printer-report/internal/shared/loggers"
)

// startFunc launches a command and returns its standard output along with a function that waits for it to
// exit. Replaced in tests.
type startFunc func(ctx context.Context, name string, args ...string) (io.ReadCloser, func() error, error)

// wevtutilSource queries a live System log with `wevtutil qe`, newest first, remote servers through /r:.
type wevtutilSource struct {
	path    string
	channel string
	start   startFunc
}

func NewWevtutilSource(path, channel string) EventSource {
	return &wevtutilSource{path: path, channel: channel, start: startCommand}
}

func (s *wevtutilSource) Open(ctx context.Context, server string) (EventReader, error) {
	args := []string{"qe", s.channel, "/rd:true", "/f:RenderedXml"}
	if !isLocal(server) {
		args = append(args, "/r:"+server)
	}

	ctx, cancel := context.WithCancel(ctx)
	stdout, wait, err := s.start(ctx, s.path, args...)
	if err != nil {
		cancel()
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s is not available: %w", ErrSourceNotFound, s.path, err)
		}
		return nil, fmt.Errorf("failed to start %s: %w", s.path, err)
	}

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldLogSource, server).
		Str("command", s.path+" "+strings.Join(args, " ")).
		Msg("Started event log query")

	return &wevtutilReader{
		server:  server,
		decoder: newXMLEventDecoder(server, stdout),
		stdout:  stdout,
		wait:    wait,
		cancel:  cancel,
	}, nil
}

type wevtutilReader struct {
	server  string
	decoder *xmlEventDecoder
	stdout  io.ReadCloser
	wait    func() error
	cancel  context.CancelFunc

	closeOnce sync.Once
	closeErr  error
	exhausted bool
}

func (r *wevtutilReader) Next(ctx context.Context) (*models.Event, error) {
	if r.exhausted {
		return nil, io.EOF
	}

	event, err := r.decoder.Next(ctx)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, io.EOF) {
		return nil, err
	}

	// The query only succeeded if the command exited cleanly; an unreachable server produces no output
	// and a non-zero exit.
	r.exhausted = true
	if waitErr := r.finish(); waitErr != nil {
		return nil, fmt.Errorf("%w: query on %s failed: %w", ErrSourceNotFound, r.server, waitErr)
	}
	return nil, io.EOF
}

// Close stops the query if it is still running.
func (r *wevtutilReader) Close() error {
	r.exhausted = true
	r.cancel()
	_ = r.finish()
	return nil
}

func (r *wevtutilReader) finish() error {
	r.closeOnce.Do(func() {
		_ = r.stdout.Close()
		r.closeErr = r.wait()
		r.cancel()
	})
	return r.closeErr
}

func startCommand(ctx context.Context, name string, args ...string) (io.ReadCloser, func() error, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, err
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}

	wait := func() error {
		if err := cmd.Wait(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return fmt.Errorf("%w: %s", err, msg)
			}
			return err
		}
		return nil
	}
	return stdout, wait, nil
}
