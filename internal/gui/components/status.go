package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container     *fyne.Container
	statusLabel   *widget.Label
	commandsLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	commandsLabel := widget.NewLabel("Commands: --")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		commandsLabel,
	)

	return &StatusBar{
		container:     mainContainer,
		statusLabel:   statusLabel,
		commandsLabel: commandsLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetCommandCount(n int) {
	sb.commandsLabel.SetText(fmt.Sprintf("Commands: %d", n))
}
