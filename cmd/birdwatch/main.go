package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/arunvm/birdwatch/internal/app"
	"github.com/arunvm/birdwatch/internal/detector"
	"github.com/arunvm/birdwatch/internal/platform"
)

func main() {
	live := flag.Bool("live", false, "issue a real OS shutdown on detection (default: test mode, log only)")
	cameraID := flag.Int("camera", 0, "capture device index")
	flag.Parse()

	fmt.Println("Birdwatch - Middle Finger Shutdown Trigger")

	provider, ok := platform.NewProvider(runtime.GOOS)
	if !ok {
		log.Printf("[WARN] Unsupported OS %q, shutdown will not be available", runtime.GOOS)
	}

	det, err := detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize hand detector: %v", err)
	}

	application := app.New(app.Config{
		CameraID: *cameraID,
		Live:     *live,
	}, det, provider)

	if err := application.Run(); err != nil {
		log.Fatalf("Detector failed: %v", err)
	}
}
