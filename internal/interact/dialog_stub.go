//go:build !gui

package interact

// NewDialogPicker reports ErrNoGUI in builds without the gui tag.
func NewDialogPicker(appID string) (Picker, error) {
	return nil, ErrNoGUI
}
