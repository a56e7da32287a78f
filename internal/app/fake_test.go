package app

import (
	"sync/atomic"

	"fyne.io/fyne/v2"
)

// panickingApp stands in for a driver whose window system fails to come up.
type panickingApp struct {
	fyne.App
}

func (panickingApp) NewWindow(string) fyne.Window {
	panic("no GL context")
}

// recordingApp counts Quit calls made on the wrapped app.
type recordingApp struct {
	fyne.App
	quits atomic.Int32
}

func (r *recordingApp) Quit() {
	r.quits.Add(1)
}

// crashingApp hands out windows whose event loop panics once running.
type crashingApp struct {
	fyne.App
}

func (c crashingApp) NewWindow(title string) fyne.Window {
	return crashingWindow{Window: c.App.NewWindow(title)}
}

type crashingWindow struct {
	fyne.Window
}

func (crashingWindow) ShowAndRun() {
	panic("callback failed")
}
