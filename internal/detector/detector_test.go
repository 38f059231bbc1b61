package detector

import (
	"errors"
	"testing"
)

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if hands != nil {
			t.Errorf("expected nil hands, got %v", hands)
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()

		mock.SetHands([]HandLandmarks{
			MiddleFingerOnlyLandmarks(),
			OpenPalmLandmarks(),
		})

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 2 {
			t.Errorf("expected 2 hands, got %d", len(hands))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		hands, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if hands != nil {
			t.Errorf("expected nil hands when error is set, got %v", hands)
		}
	})

	t.Run("counts detect calls", func(t *testing.T) {
		mock := NewMockDetector()

		mock.Detect(nil)
		mock.Detect(nil)
		mock.Detect(nil)

		if mock.Calls() != 3 {
			t.Errorf("Calls() = %d, want 3", mock.Calls())
		}
	})

	t.Run("Close returns nil", func(t *testing.T) {
		mock := NewMockDetector()

		if err := mock.Close(); err != nil {
			t.Errorf("expected Close to return nil, got %v", err)
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
	})
}

func TestMiddleFingerOnlyLandmarks(t *testing.T) {
	landmarks := MiddleFingerOnlyLandmarks()

	t.Run("has handedness and score", func(t *testing.T) {
		if landmarks.Handedness != "Right" {
			t.Errorf("expected handedness Right, got %s", landmarks.Handedness)
		}
		if landmarks.Score < 0.9 {
			t.Errorf("expected score >= 0.9, got %f", landmarks.Score)
		}
	})

	t.Run("middle tip is above its comparison joint", func(t *testing.T) {
		if landmarks.Points[MiddleTip].Y >= landmarks.Points[MiddleTip-2].Y {
			t.Error("middle tip should be above landmark tip-2 (lower Y value)")
		}
	})

	t.Run("other fingertips are at or below their comparison joints", func(t *testing.T) {
		for _, tip := range []int{IndexTip, RingTip, PinkyTip} {
			if landmarks.Points[tip].Y < landmarks.Points[tip-2].Y {
				t.Errorf("fingertip %d should not be above landmark %d", tip, tip-2)
			}
		}
	})
}

func TestOpenPalmLandmarks(t *testing.T) {
	landmarks := OpenPalmLandmarks()

	t.Run("all four fingertips are above their comparison joints", func(t *testing.T) {
		for _, tip := range []int{IndexTip, MiddleTip, RingTip, PinkyTip} {
			if landmarks.Points[tip].Y >= landmarks.Points[tip-2].Y {
				t.Errorf("fingertip %d should be above landmark %d", tip, tip-2)
			}
		}
	})
}

func TestFistLandmarks(t *testing.T) {
	landmarks := FistLandmarks()

	t.Run("no fingertip is above its comparison joint", func(t *testing.T) {
		for _, tip := range []int{IndexTip, MiddleTip, RingTip, PinkyTip} {
			if landmarks.Points[tip].Y < landmarks.Points[tip-2].Y {
				t.Errorf("fingertip %d should not be above landmark %d", tip, tip-2)
			}
		}
	})
}

func TestJSONHandConversion(t *testing.T) {
	t.Run("converts full point list", func(t *testing.T) {
		h := jsonHand{
			Handedness: "Left",
			Score:      0.88,
		}
		for i := 0; i < NumLandmarks; i++ {
			h.Points = append(h.Points, jsonPoint{
				X: float64(i) * 0.01,
				Y: float64(i) * 0.02,
				Z: float64(i) * 0.001,
			})
		}

		lm := h.toHandLandmarks()

		if lm.Handedness != "Left" {
			t.Errorf("handedness = %s, want Left", lm.Handedness)
		}
		if lm.Score != 0.88 {
			t.Errorf("score = %f, want 0.88", lm.Score)
		}
		if lm.Points[PinkyTip].X != 0.20 {
			t.Errorf("pinky tip X = %f, want 0.20", lm.Points[PinkyTip].X)
		}
	})

	t.Run("truncated point list leaves remainder zero", func(t *testing.T) {
		h := jsonHand{
			Points: []jsonPoint{{X: 0.5, Y: 0.5, Z: 0.0}},
		}

		lm := h.toHandLandmarks()

		if lm.Points[Wrist].X != 0.5 {
			t.Errorf("wrist X = %f, want 0.5", lm.Points[Wrist].X)
		}
		if lm.Points[IndexTip] != (Point3D{}) {
			t.Errorf("expected zero value for missing landmark, got %+v", lm.Points[IndexTip])
		}
	})
}
