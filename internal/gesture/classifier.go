// Package gesture classifies hand poses from landmark observations.
package gesture

import "github.com/arunvm/birdwatch/internal/detector"

// fingertip landmark indices, thumb through pinky. Each fingertip's
// comparison joint sits two indices below it.
var tips = [5]int{
	detector.ThumbTip,
	detector.IndexTip,
	detector.MiddleTip,
	detector.RingTip,
	detector.PinkyTip,
}

// IsMiddleFingerOnlyUp reports whether the middle finger is raised while
// the index, ring and pinky fingers are down. The thumb is intentionally
// ignored.
//
// A finger counts as raised when its tip sits above the joint two landmarks
// below it in frame coordinates (smaller Y is higher). The rule assumes an
// upright hand with fingers pointing up and does not normalize for hand
// rotation or handedness; that limitation is part of the contract.
func IsMiddleFingerOnlyUp(hand *detector.HandLandmarks) bool {
	if hand == nil {
		return false
	}

	up := func(i int) bool {
		return hand.Points[tips[i]].Y < hand.Points[tips[i]-2].Y
	}

	return !up(1) && // index
		up(2) && // middle
		!up(3) && // ring
		!up(4) // pinky
}
