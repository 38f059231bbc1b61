package capture

import (
	"errors"
	"sync"

	"gocv.io/x/gocv"
)

// MockCamera plays back pre-recorded frames for testing. When the frame
// sequence runs out, ReadFrame fails the way a dead camera would.
type MockCamera struct {
	frames     []*gocv.Mat
	index      int
	openErr    error
	mu         sync.Mutex
	running    bool
	closeCalls int
}

// NewMockCamera creates a MockCamera serving the given frame sequence.
func NewMockCamera(frames []*gocv.Mat) *MockCamera {
	return &MockCamera{
		frames: frames,
	}
}

// SetOpenError makes Open fail with the given error.
func (c *MockCamera) SetOpenError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openErr = err
}

func (c *MockCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.openErr != nil {
		return c.openErr
	}

	c.running = true
	c.index = 0
	return nil
}

func (c *MockCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.closeCalls++
	return nil
}

func (c *MockCamera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil, ErrCameraNotOpen
	}

	if c.index >= len(c.frames) {
		return nil, errors.New("no more frames")
	}

	// Clone so the caller can close its copy without touching the fixture.
	frame := c.frames[c.index].Clone()
	c.index++

	return &frame, nil
}

func (c *MockCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// CloseCalls returns how many times Close has been invoked.
func (c *MockCamera) CloseCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeCalls
}

// FramesRead returns how many frames have been consumed.
func (c *MockCamera) FramesRead() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}
