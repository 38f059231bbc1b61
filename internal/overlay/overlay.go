// Package overlay renders hand landmarks onto preview frames.
package overlay

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/arunvm/birdwatch/internal/detector"
)

// connections is the MediaPipe hand skeleton topology: pairs of landmark
// indices joined by a line.
var connections = [][2]int{
	// Thumb
	{detector.Wrist, detector.ThumbCMC},
	{detector.ThumbCMC, detector.ThumbMCP},
	{detector.ThumbMCP, detector.ThumbIP},
	{detector.ThumbIP, detector.ThumbTip},
	// Index finger
	{detector.Wrist, detector.IndexMCP},
	{detector.IndexMCP, detector.IndexPIP},
	{detector.IndexPIP, detector.IndexDIP},
	{detector.IndexDIP, detector.IndexTip},
	// Middle finger
	{detector.IndexMCP, detector.MiddleMCP},
	{detector.MiddleMCP, detector.MiddlePIP},
	{detector.MiddlePIP, detector.MiddleDIP},
	{detector.MiddleDIP, detector.MiddleTip},
	// Ring finger
	{detector.MiddleMCP, detector.RingMCP},
	{detector.RingMCP, detector.RingPIP},
	{detector.RingPIP, detector.RingDIP},
	{detector.RingDIP, detector.RingTip},
	// Pinky and palm edge
	{detector.RingMCP, detector.PinkyMCP},
	{detector.Wrist, detector.PinkyMCP},
	{detector.PinkyMCP, detector.PinkyPIP},
	{detector.PinkyPIP, detector.PinkyDIP},
	{detector.PinkyDIP, detector.PinkyTip},
}

var (
	boneColor  = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	jointColor = color.RGBA{R: 255, G: 0, B: 0, A: 0}
)

// Draw renders the hand skeleton and landmark points onto the frame.
// Landmark coordinates are normalized, so they are scaled by the frame
// dimensions. Purely cosmetic; classification never reads the frame.
func Draw(frame *gocv.Mat, hand *detector.HandLandmarks) {
	if frame == nil || frame.Empty() || hand == nil {
		return
	}

	width := frame.Cols()
	height := frame.Rows()

	at := func(i int) image.Point {
		return image.Pt(
			int(hand.Points[i].X*float64(width)),
			int(hand.Points[i].Y*float64(height)),
		)
	}

	for _, c := range connections {
		gocv.Line(frame, at(c[0]), at(c[1]), boneColor, 2)
	}

	for i := 0; i < detector.NumLandmarks; i++ {
		gocv.Circle(frame, at(i), 3, jointColor, -1)
	}
}
