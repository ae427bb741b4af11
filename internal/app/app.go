package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/wordcounter/internal/config"
	"github.com/iw2rmb/wordcounter/internal/vitals"
	"github.com/iw2rmb/wordcounter/stylesheet"
	"github.com/iw2rmb/wordcounter/wordcounter"
)

// Mount is the display surface the widget is attached to. Nil fields use
// the process's stdin and stdout.
type Mount struct {
	In  io.Reader
	Out io.Writer
}

// App holds everything needed to run the widget once.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Start is when the process started; startup vitals are measured from it.
	Start time.Time
	// Report receives the startup vitals. Nil logs them through Logger.
	Report vitals.ReportFunc

	// AltScreen runs the widget in the terminal's alternate screen.
	AltScreen bool
}

func New(cfg *config.Config, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{Config: cfg, Logger: logger, Start: time.Now()}
}

// Result is the widget state when the program exits.
type Result struct {
	Text      string
	WordCount int
	Progress  float64
}

// Run mounts the widget and blocks until the user quits or ctx is done.
// Cancelling ctx is not an error.
func (a *App) Run(ctx context.Context, mount Mount) (Result, error) {
	sheet := a.loadStylesheet()

	widget, err := wordcounter.New(wordcounter.Options{
		TargetWordCount: a.Config.TargetWordCount,
		Sheet:           sheet,
		Logger:          a.Logger,
	})
	if err != nil {
		return Result{}, fmt.Errorf("creating word counter: %w", err)
	}
	if missing := missingClasses(sheet, widget.Classes()); len(missing) > 0 {
		a.Logger.Warn("stylesheet lacks classes", "path", a.Config.Stylesheet, "classes", missing)
	}

	var rec *vitals.Recorder
	if a.Config.Vitals.Enabled {
		report := a.Report
		if report == nil {
			report = vitals.LogReporter(a.Logger)
		}
		rec = vitals.NewRecorder(a.Start, report)
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if mount.In != nil {
		opts = append(opts, tea.WithInput(mount.In))
	}
	if mount.Out != nil {
		opts = append(opts, tea.WithOutput(mount.Out))
	}
	if a.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	a.Logger.Info("starting word counter",
		"target_word_count", a.Config.TargetWordCount,
		"stylesheet", a.Config.Stylesheet,
	)

	final, err := tea.NewProgram(root{widget: widget, vitals: rec}, opts...).Run()
	rec.Wait()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return Result{}, fmt.Errorf("running word counter: %w", err)
	}

	res := resultOf(widget)
	if r, ok := final.(root); ok {
		res = resultOf(r.widget)
	}
	a.Logger.Info("word counter stopped", "words", res.WordCount, "progress", res.Progress)
	return res, nil
}

// loadStylesheet falls back to the built-in sheet; a bad stylesheet must
// not keep the widget from starting.
func (a *App) loadStylesheet() *stylesheet.Sheet {
	if a.Config.Stylesheet == "" {
		return stylesheet.Default()
	}
	sheet, err := stylesheet.Load(a.Config.Stylesheet)
	if err != nil {
		a.Logger.Warn("using default stylesheet", "path", a.Config.Stylesheet, "error", err)
		return stylesheet.Default()
	}
	return sheet
}

// missingClasses reports the classes sheet does not define. They render
// unstyled.
func missingClasses(sheet *stylesheet.Sheet, classes []string) []string {
	var missing []string
	for _, c := range classes {
		if !sheet.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

func resultOf(w wordcounter.Model) Result {
	return Result{Text: w.Text(), WordCount: w.WordCount(), Progress: w.Progress()}
}

// root adapts the widget to tea.Model and times its frames.
type root struct {
	widget wordcounter.Model
	vitals *vitals.Recorder
}

func (r root) Init() tea.Cmd { return r.widget.Init() }

func (r root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	r.widget, cmd = r.widget.Update(msg)
	return r, cmd
}

func (r root) View() string {
	start := time.Now()
	v := r.widget.View()
	r.vitals.Frame(time.Since(start))
	return v
}
