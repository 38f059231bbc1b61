// Package display provides the live preview window behind a small interface
// so the capture loop runs in tests without a GUI.
package display

import "gocv.io/x/gocv"

// KeyEscape is the key code WaitKey reports for the escape key, the sole
// user-initiated stop signal.
const KeyEscape = 27

// Display shows annotated frames and reports key presses.
type Display interface {
	// Show renders a frame in the preview window.
	Show(frame *gocv.Mat)

	// WaitKey pumps the window event loop for up to delayMs milliseconds
	// and returns the pressed key code, or a negative value if none.
	WaitKey(delayMs int) int

	// Close destroys the window.
	Close() error
}

// window implements Display on top of a gocv highgui window.
type window struct {
	win *gocv.Window
}

// NewWindow creates a preview window with the given title.
func NewWindow(title string) Display {
	return &window{
		win: gocv.NewWindow(title),
	}
}

func (w *window) Show(frame *gocv.Mat) {
	w.win.IMShow(*frame)
}

func (w *window) WaitKey(delayMs int) int {
	return w.win.WaitKey(delayMs)
}

func (w *window) Close() error {
	return w.win.Close()
}
