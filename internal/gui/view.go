// Package gui is the Fyne front-end. It reaches native code only through
// the command bridge, by command name.
package gui

import (
	"yargizeka/internal/bridge"
	"yargizeka/internal/greeting"
	"yargizeka/internal/gui/components"
	"yargizeka/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Invoker is the bridge surface the view calls into.
type Invoker interface {
	Invoke(name string, args bridge.Args) (string, error)
	Names() []string
}

// View holds the greet form and the status bar.
type View struct {
	invoker Invoker
	logger  logger.Logger

	nameEntry   *widget.Entry
	greetButton *widget.Button
	resultLabel *widget.Label
	statusBar   *components.StatusBar

	mainContainer *fyne.Container
}

func NewView(invoker Invoker, log logger.Logger) *View {
	if log == nil {
		log = logger.Nop{}
	}

	v := &View{
		invoker: invoker,
		logger:  log,
	}

	v.setupComponents()
	v.setupLayout()

	return v
}

func (v *View) setupComponents() {
	v.nameEntry = widget.NewEntry()
	v.nameEntry.SetPlaceHolder("Enter a name...")
	v.nameEntry.OnSubmitted = func(string) { v.Greet() }

	v.greetButton = widget.NewButton("Greet", v.Greet)
	v.greetButton.Importance = widget.HighImportance

	v.resultLabel = widget.NewLabel("")
	v.resultLabel.Wrapping = fyne.TextWrapWord

	v.statusBar = components.NewStatusBar()
	v.statusBar.SetCommandCount(len(v.invoker.Names()))
}

func (v *View) setupLayout() {
	form := container.NewBorder(nil, nil, nil, v.greetButton, v.nameEntry)

	v.mainContainer = container.NewBorder(
		nil,
		v.statusBar.GetContainer(),
		nil, nil,
		container.NewVBox(
			widget.NewLabelWithStyle("Welcome to YargıZeka", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			form,
			v.resultLabel,
		),
	)
}

// Greet sends the entry text to the greet command and renders the reply.
func (v *View) Greet() {
	result, err := v.invoker.Invoke(greeting.CommandName, bridge.Args{
		greeting.ArgName: v.nameEntry.Text,
	})
	if err != nil {
		v.logger.Error("View", err, map[string]interface{}{
			"command": greeting.CommandName,
		})
		v.resultLabel.SetText(err.Error())
		v.statusBar.SetStatus("Error")
		return
	}

	v.resultLabel.SetText(result)
	v.statusBar.SetStatus("Ready")
}

func (v *View) GetMainContainer() *fyne.Container {
	return v.mainContainer
}

func (v *View) NameEntry() *widget.Entry {
	return v.nameEntry
}

func (v *View) GreetButton() *widget.Button {
	return v.greetButton
}

func (v *View) Result() string {
	return v.resultLabel.Text
}

func (v *View) Status() string {
	return v.statusBar.Status()
}
