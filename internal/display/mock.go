package display

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDisplay is a test implementation of the Display interface. WaitKey
// returns a scripted key sequence, then "no key" once the script runs out.
type MockDisplay struct {
	keys   []int
	shown  int
	closed bool
	mu     sync.Mutex
}

// NewMockDisplay creates a MockDisplay with the given key script.
func NewMockDisplay(keys ...int) *MockDisplay {
	return &MockDisplay{keys: keys}
}

// Show counts the frame instead of rendering it.
func (d *MockDisplay) Show(frame *gocv.Mat) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shown++
}

// WaitKey pops the next scripted key, or -1 when the script is exhausted.
func (d *MockDisplay) WaitKey(delayMs int) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.keys) == 0 {
		return -1
	}

	key := d.keys[0]
	d.keys = d.keys[1:]
	return key
}

// Close marks the display closed.
func (d *MockDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// Shown returns how many frames have been displayed.
func (d *MockDisplay) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// Closed reports whether Close has been called.
func (d *MockDisplay) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
