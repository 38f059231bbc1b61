package capture

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func TestNewCamera(t *testing.T) {
	tests := []struct {
		name     string
		deviceID int
	}{
		{"default device", 0},
		{"device 1", 1},
		{"device 2", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(tt.deviceID)

			if cam == nil {
				t.Fatal("NewCamera returned nil")
			}

			if cam.IsOpen() {
				t.Error("camera should not be open initially")
			}
		})
	}
}

func TestCamera_ReadFrame_NotOpened(t *testing.T) {
	cam := NewCamera(0)

	_, err := cam.ReadFrame()
	if !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestCamera_Close_NotOpened(t *testing.T) {
	cam := NewCamera(0)

	// Close on an unopened camera should not panic and return nil
	if err := cam.Close(); err != nil {
		t.Errorf("Close() on unopened camera should return nil, got: %v", err)
	}
}

func TestCamera_OpenClose_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cam := NewCamera(0)

	err := cam.Open()
	if err != nil {
		t.Skipf("skipping test - camera not available: %v", err)
	}

	if !cam.IsOpen() {
		t.Error("IsOpen() should return true after Open()")
	}

	mat, err := cam.ReadFrame()
	if err != nil {
		t.Errorf("ReadFrame() failed: %v", err)
	} else {
		if mat == nil {
			t.Error("ReadFrame() returned nil mat")
		} else if mat.Empty() {
			t.Error("ReadFrame() returned empty mat")
		} else {
			mat.Close()
		}
	}

	if err := cam.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	if cam.IsOpen() {
		t.Error("IsOpen() should return false after Close()")
	}
}

func TestMockCamera(t *testing.T) {
	newFrame := func() *gocv.Mat {
		mat := gocv.NewMatWithSize(DefaultHeight, DefaultWidth, gocv.MatTypeCV8UC3)
		return &mat
	}

	t.Run("plays back frames in order", func(t *testing.T) {
		f1, f2 := newFrame(), newFrame()
		defer f1.Close()
		defer f2.Close()

		cam := NewMockCamera([]*gocv.Mat{f1, f2})

		if err := cam.Open(); err != nil {
			t.Fatalf("Open() error = %v", err)
		}

		for i := 0; i < 2; i++ {
			frame, err := cam.ReadFrame()
			if err != nil {
				t.Fatalf("ReadFrame() #%d error = %v", i, err)
			}
			if frame.Empty() {
				t.Errorf("ReadFrame() #%d returned empty frame", i)
			}
			frame.Close()
		}

		if cam.FramesRead() != 2 {
			t.Errorf("FramesRead() = %d, want 2", cam.FramesRead())
		}
	})

	t.Run("fails when frames run out", func(t *testing.T) {
		cam := NewMockCamera(nil)
		cam.Open()

		if _, err := cam.ReadFrame(); err == nil {
			t.Error("expected error when no frames remain")
		}
	})

	t.Run("fails when not open", func(t *testing.T) {
		f := newFrame()
		defer f.Close()

		cam := NewMockCamera([]*gocv.Mat{f})

		if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
			t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
		}
	})

	t.Run("open error injection", func(t *testing.T) {
		cam := NewMockCamera(nil)
		wantErr := errors.New("device busy")
		cam.SetOpenError(wantErr)

		if err := cam.Open(); !errors.Is(err, wantErr) {
			t.Errorf("Open() error = %v, want %v", err, wantErr)
		}
		if cam.IsOpen() {
			t.Error("camera should not be open after failed Open()")
		}
	})

	t.Run("counts close calls", func(t *testing.T) {
		cam := NewMockCamera(nil)
		cam.Open()
		cam.Close()

		if cam.CloseCalls() != 1 {
			t.Errorf("CloseCalls() = %d, want 1", cam.CloseCalls())
		}
		if cam.IsOpen() {
			t.Error("IsOpen() should return false after Close()")
		}
	})

	t.Run("implements Camera interface", func(t *testing.T) {
		var _ Camera = (*MockCamera)(nil)
	})
}
