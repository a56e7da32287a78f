package app

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"yargizeka/internal/bridge"
	"yargizeka/internal/config"
	"yargizeka/internal/greeting"
	"yargizeka/internal/gui"
	"yargizeka/internal/logger"
	"yargizeka/internal/platform"
	"yargizeka/internal/shutdown"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName = "YargıZeka"

	// StartupFailureMessage is printed before the process exits on ErrStartup.
	StartupFailureMessage = "failed to start the YargıZeka application window"
)

var ErrStartup = errors.New("event loop could not start")

// Phase is the bootstrap state. The process only ever moves forward from
// PhaseRegistering to PhaseRunning.
type Phase int32

const (
	PhaseRegistering Phase = iota
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseRegistering:
		return "registering"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

type Option func(*Application)

// WithFyneApp injects the host app instead of creating one in Run.
func WithFyneApp(a fyne.App) Option {
	return func(app *Application) {
		app.fyneApp = a
	}
}

// WithDisplayCheck replaces the windowing probe run before the event loop.
func WithDisplayCheck(check func() error) Option {
	return func(app *Application) {
		app.displayCheck = check
	}
}

type Application struct {
	cfg    *config.Config
	logger logger.Logger
	phase  atomic.Int32

	registry     *bridge.Registry
	displayCheck func() error
	shutdown     *shutdown.Manager

	fyneApp fyne.App
	window  fyne.Window
	view    *gui.View
}

// Commands lists every native command exposed to the front-end.
func Commands() []bridge.Command {
	return []bridge.Command{
		bridge.Func(greeting.CommandName, []string{greeting.ArgName}, func(args bridge.Args) string {
			return greeting.Greet(args[greeting.ArgName])
		}),
	}
}

// NewRegistry builds the dispatch table shared by the window and headless callers.
func NewRegistry(log logger.Logger) (*bridge.Registry, error) {
	return bridge.NewRegistry(log, Commands()...)
}

// New performs the registering phase: the dispatch table is populated and
// frozen. No window system resources are touched until Run.
func New(cfg *config.Config, log logger.Logger, opts ...Option) (*Application, error) {
	if log == nil {
		log = logger.Nop{}
	}

	application := &Application{
		cfg:    cfg,
		logger: log,
		displayCheck: func() error {
			return platform.CheckDisplay(os.Getenv)
		},
	}
	application.phase.Store(int32(PhaseRegistering))

	for _, opt := range opts {
		opt(application)
	}

	registry, err := NewRegistry(log)
	if err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}
	application.registry = registry
	application.shutdown = shutdown.NewManager(log)

	log.Info("Application", "commands registered", map[string]interface{}{
		"commands": registry.Names(),
		"phase":    application.Phase().String(),
	})

	return application, nil
}

func (a *Application) Phase() Phase {
	return Phase(a.phase.Load())
}

func (a *Application) Registry() *bridge.Registry {
	return a.registry
}

func (a *Application) View() *gui.View {
	return a.view
}

// Run enters the running phase and blocks until the window is closed.
// Any failure to bring the event loop up is returned wrapping ErrStartup.
func (a *Application) Run() (err error) {
	if err := a.displayCheck(); err != nil {
		a.logger.Error("Application", err, map[string]interface{}{
			"phase": a.Phase().String(),
		})
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}

	// Only a panic raised before the loop is up counts as a startup failure.
	defer func() {
		if r := recover(); r != nil {
			if a.Phase() != PhaseRegistering {
				panic(r)
			}
			err = fmt.Errorf("%w: %v", ErrStartup, r)
			a.logger.Error("Application", err, nil)
		}
	}()

	a.setupWindow()
	a.setupShutdown()
	defer a.shutdown.Stop()

	a.phase.Store(int32(PhaseRunning))
	a.logger.Info("Application", "GUI displayed", map[string]interface{}{
		"window_width":  a.cfg.WindowWidth,
		"window_height": a.cfg.WindowHeight,
	})

	a.window.ShowAndRun()

	a.logger.Info("Application", "window closed", nil)
	return nil
}

func (a *Application) setupWindow() {
	if a.fyneApp == nil {
		a.fyneApp = fyneapp.NewWithID(a.cfg.AppID)
	}

	window := a.fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(a.cfg.WindowWidth, a.cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	a.view = gui.NewView(a.registry, a.logger)
	window.SetContent(a.view.GetMainContainer())
	a.window = window
}

// setupShutdown makes a window close request and SIGINT/SIGTERM share one
// ordered teardown ending with the Fyne loop quitting.
func (a *Application) setupShutdown() {
	a.shutdown.Register(quitter{app: a.fyneApp})
	a.window.SetCloseIntercept(a.handleCloseRequest)
	a.shutdown.Listen()
}

func (a *Application) handleCloseRequest() {
	a.logger.Info("Application", "window close requested", nil)
	a.shutdown.Shutdown()
}

// quitter stops the Fyne event loop once teardown reaches it.
type quitter struct {
	app fyne.App
}

func (q quitter) Shutdown() {
	fyne.Do(q.app.Quit)
}
