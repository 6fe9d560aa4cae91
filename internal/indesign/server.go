package indesign

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

// DefaultPort is the console port the upload pipeline expects the server on.
const DefaultPort = 1235

// DefaultBinary is the server executable name inside the installation
// directory.
const DefaultBinary = "InDesignServer.com"

// Options configures the launcher.
type Options struct {
	Log    zerolog.Logger
	Dir    string // installation directory
	Binary string // executable name inside Dir
	Port   int
}

// Launcher starts and supervises the external InDesign Server process. The
// server is a foreground child: its console output is inherited and the
// launcher blocks until it exits or the caller cancels.
type Launcher struct {
	log    zerolog.Logger
	dir    string
	binary string
	port   int

	cmd *exec.Cmd
}

// New creates a launcher. Binary and Port fall back to the defaults the
// pipeline has always used.
func New(opts Options) *Launcher {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.Port <= 0 {
		opts.Port = DefaultPort
	}
	return &Launcher{
		log:    opts.Log,
		dir:    opts.Dir,
		binary: opts.Binary,
		port:   opts.Port,
	}
}

// CheckInstallation verifies the server executable exists in the configured
// directory.
func (l *Launcher) CheckInstallation() error {
	path := l.executable()
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("InDesign Server not found at %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("InDesign Server path %s is a directory", path)
	}
	l.log.Info().Str("path", path).Msg("InDesign Server found")
	return nil
}

// Start launches the server in console mode on the configured port. The
// child runs from the installation directory and writes to our stdout and
// stderr so the operator sees the server console directly.
func (l *Launcher) Start() error {
	cmd := exec.Command(l.executable(), "-console", "-port", strconv.Itoa(l.port))
	cmd.Dir = l.dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start InDesign Server: %w", err)
	}

	l.cmd = cmd
	l.log.Info().Int("port", l.port).Int("pid", cmd.Process.Pid).Msg("InDesign Server started")
	return nil
}

// Wait blocks until the server exits on its own or ctx is cancelled.
// Cancellation kills the child and returns the context error; a clean child
// exit returns nil and an unclean one the *exec.ExitError.
func (l *Launcher) Wait(ctx context.Context) error {
	if l.cmd == nil {
		return fmt.Errorf("server not started")
	}

	done := make(chan error, 1)
	go func() {
		done <- l.cmd.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			l.log.Error().Err(err).Msg("InDesign Server exited with error")
			return err
		}
		l.log.Info().Msg("InDesign Server stopped")
		return nil
	case <-ctx.Done():
		l.log.Info().Msg("stopping InDesign Server")
		if l.cmd.Process != nil {
			_ = l.cmd.Process.Kill()
		}
		<-done
		return ctx.Err()
	}
}

// Port returns the configured console port.
func (l *Launcher) Port() int { return l.port }

func (l *Launcher) executable() string {
	return filepath.Join(l.dir, l.binary)
}
