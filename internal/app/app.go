// Package app wires the camera, landmark source, classifier and dispatcher
// into the capture loop.
package app

import (
	"fmt"
	"log"

	"gocv.io/x/gocv"

	"github.com/arunvm/birdwatch/internal/capture"
	"github.com/arunvm/birdwatch/internal/detector"
	"github.com/arunvm/birdwatch/internal/dispatch"
	"github.com/arunvm/birdwatch/internal/display"
	"github.com/arunvm/birdwatch/internal/gesture"
	"github.com/arunvm/birdwatch/internal/overlay"
	"github.com/arunvm/birdwatch/internal/platform"
)

const windowTitle = "Gesture Detector"

// Config holds configuration options for the application.
type Config struct {
	// CameraID is the capture device index.
	CameraID int

	// Live enables real OS side effects on detection. Default is test
	// mode, which only logs.
	Live bool
}

// App owns the capture loop and its resources. The camera, display and
// detector are acquired for the lifetime of Run and released exactly once
// on every exit path.
type App struct {
	config     Config
	camera     capture.Camera
	detector   detector.Detector
	dispatcher *dispatch.Dispatcher
	display    display.Display
}

// New creates a new App instance. The provider may be nil on unsupported
// operating systems; live-mode detections then log an error instead of
// shutting down.
func New(config Config, det detector.Detector, provider platform.Provider) *App {
	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		detector:   det,
		dispatcher: dispatch.New(config.Live, provider),
	}

	mode := "TEST MODE (no shutdown)"
	if config.Live {
		mode = "LIVE MODE (will shutdown)"
	}
	log.Printf("[INFO] Gesture detector initialized - %s", mode)

	return a
}

// SetCamera replaces the camera implementation. Used by tests.
func (a *App) SetCamera(cam capture.Camera) {
	a.camera = cam
}

// SetDisplay replaces the preview display implementation. Used by tests;
// when unset, Run creates a real window.
func (a *App) SetDisplay(d display.Display) {
	a.display = d
}

// Dispatcher returns the detection dispatcher.
func (a *App) Dispatcher() *dispatch.Dispatcher {
	return a.dispatcher
}

// Run drives the capture loop until the escape key is pressed, a frame read
// fails, or a live-mode detection fires. The returned error covers startup
// only; in-loop failures stop the session and are reported on the log, as
// there is no caller to propagate them to.
func (a *App) Run() error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer a.release()

	if a.display == nil {
		a.display = display.NewWindow(windowTitle)
	}

	log.Println("[INFO] Video stream started (press ESC to exit)")

	for {
		frame, err := a.camera.ReadFrame()
		if err != nil {
			log.Printf("[ERROR] Failed to read frame from camera: %v", err)
			return nil
		}

		if done := a.processFrame(frame); done {
			frame.Close()
			return nil
		}

		a.display.Show(frame)
		frame.Close()

		if a.display.WaitKey(1) == display.KeyEscape {
			log.Println("[INFO] ESC pressed, exiting")
			return nil
		}
	}
}

// processFrame mirrors the frame, runs detection and classification, and
// dispatches hits. Returns true when a live-mode detection ends the session.
func (a *App) processFrame(frame *gocv.Mat) bool {
	// Mirror for a natural selfie view. The landmark source sees the
	// mirrored image, so classification coordinates are unaffected.
	gocv.Flip(*frame, frame, 1)

	hands, err := a.detector.Detect(frame)
	if err != nil {
		log.Printf("[ERROR] Hand detection failed: %v", err)
		return false
	}

	for i := range hands {
		hand := &hands[i]
		overlay.Draw(frame, hand)

		if !gesture.IsMiddleFingerOnlyUp(hand) {
			continue
		}

		if err := a.dispatcher.HandleDetection(); err != nil {
			log.Printf("[ERROR] Dispatch failed: %v", err)
		}

		// Live mode is a one-shot trigger: stop immediately and skip
		// any remaining hands in this frame.
		if a.config.Live {
			return true
		}
	}

	return false
}

// release frees the camera, display and detector. Runs once on every exit
// path out of Run.
func (a *App) release() {
	if err := a.camera.Close(); err != nil {
		log.Printf("[ERROR] Failed to close camera: %v", err)
	}

	if a.display != nil {
		if err := a.display.Close(); err != nil {
			log.Printf("[ERROR] Failed to close display: %v", err)
		}
	}

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("[ERROR] Failed to close detector: %v", err)
		}
	}

	log.Println("[INFO] Detector stopped cleanly")
}
