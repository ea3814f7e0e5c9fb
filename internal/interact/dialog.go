//go:build gui

package interact

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

var dialogSize = fyne.NewSize(900, 600)

// DialogPicker opens native fyne dialogs in a throwaway window. The fyne
// driver can only run once per process, so a DialogPicker serves exactly one
// pick; every command makes at most one.
type DialogPicker struct {
	appID string
}

// NewDialogPicker returns a picker backed by fyne dialogs.
func NewDialogPicker(appID string) (Picker, error) {
	return &DialogPicker{appID: appID}, nil
}

// PickFolder opens a folder dialog. Dismissing it returns "".
func (d *DialogPicker) PickFolder(title string) (string, error) {
	var picked string
	d.run(title, func(w fyne.Window, done func()) {
		dlg := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err == nil && uri != nil {
				picked = uri.Path()
			}
			done()
		}, w)
		dlg.Resize(dialogSize)
		dlg.Show()
	})
	return picked, nil
}

// PickFiles opens a file dialog. fyne dialogs select one file at a time,
// so with multiple set the dialog reopens after each pick until the user
// dismisses it.
func (d *DialogPicker) PickFiles(title string, filter Filter, multiple bool) ([]string, error) {
	var picked []string
	d.run(title, func(w fyne.Window, done func()) {
		var open func()
		open = func() {
			dlg := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
				if err != nil || rc == nil {
					done()
					return
				}
				picked = append(picked, rc.URI().Path())
				_ = rc.Close()
				if multiple {
					open()
					return
				}
				done()
			}, w)
			if len(filter.Exts) > 0 {
				dlg.SetFilter(storage.NewExtensionFileFilter(filter.Exts))
			}
			dlg.Resize(dialogSize)
			dlg.Show()
		}
		open()
	})
	return picked, nil
}

func (d *DialogPicker) run(title string, setup func(w fyne.Window, done func())) {
	a := app.NewWithID(d.appID)
	w := a.NewWindow(title)
	w.Resize(dialogSize)
	setup(w, a.Quit)
	w.ShowAndRun()
}
