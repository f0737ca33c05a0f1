package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sinonkt/shapeit4/internal/params"
	"github.com/sinonkt/shapeit4/internal/report"
	"github.com/sinonkt/shapeit4/internal/schedule"
)

// Version is the tool version printed in the startup banner.
const Version = "4.2.0"

// App encapsulates the configuration subsystem's dependencies and lifecycle.
// It owns the log file (when one was requested) for the process lifetime.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	set     *params.Set
	plan    *schedule.Plan
	logFile *os.File
}

// New is the constructor for the application. It configures the logger,
// opens the log file if one was requested, and prints the startup banner.
// A log file that cannot be created is a fatal configuration error.
func New(outW io.Writer, set *params.Set) (*App, error) {
	logger, logFile, err := newLogger(set.LogLevel, set.LogFormat, set.LogFile)
	if err != nil {
		return nil, fmt.Errorf("impossible to create log file [%s]: %w", set.LogFile, err)
	}

	a := &App{
		outW:    outW,
		logger:  logger,
		set:     set,
		logFile: logFile,
	}
	a.banner()
	return a, nil
}

// banner prints the startup title block to the report writer.
func (a *App) banner() {
	w := a.reportWriter()
	report.Title(w, "SHAPEIT4")
	report.Bullet(w, "Version  : %s", Version)
	report.Bullet(w, "Run id   : %s", uuid.New())
	report.Bullet(w, "Run date : %s", time.Now().Format("02/01/2006 - 15:04:05"))
	fmt.Fprintln(w)
}

// reportWriter returns the destination for human-readable status lines:
// the primary output, duplicated into the log file when one is open.
func (a *App) reportWriter() io.Writer {
	if a.logFile != nil {
		return io.MultiWriter(a.outW, a.logFile)
	}
	return a.outW
}

// Set returns the validated parameter set, for downstream consumers.
func (a *App) Set() *params.Set {
	return a.set
}

// Plan returns the compiled iteration plan. It is nil until Run succeeds.
func (a *App) Plan() *schedule.Plan {
	return a.plan
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
