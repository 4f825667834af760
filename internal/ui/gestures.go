package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// ClassifyGesture turns a pointer movement into a gesture. Movements shorter
// than DefaultSwipeThreshold are taps or long presses depending on duration.
func ClassifyGesture(dx, dy float32, duration time.Duration) GestureType {
	if dx*dx+dy*dy >= DefaultSwipeThreshold*DefaultSwipeThreshold {
		return swipeDirection(dx, dy)
	}
	if duration >= DefaultLongPressDuration {
		return GestureLongPress
	}
	return GestureTap
}

// swipeDirection determines the direction of a swipe gesture
func swipeDirection(dx, dy float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// swipeBack wraps a pushed screen header so that a right swipe pops the screen
type swipeBack struct {
	widget.BaseWidget

	content fyne.CanvasObject
	onBack  func()

	dragStart time.Time
	dx, dy    float32
}

func newSwipeBack(content fyne.CanvasObject, onBack func()) *swipeBack {
	s := &swipeBack{content: content, onBack: onBack}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *swipeBack) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// Dragged accumulates the drag distance
func (s *swipeBack) Dragged(event *fyne.DragEvent) {
	if s.dragStart.IsZero() {
		s.dragStart = time.Now()
	}
	s.dx += event.Dragged.DX
	s.dy += event.Dragged.DY
}

// DragEnd pops the screen on a right swipe
func (s *swipeBack) DragEnd() {
	gesture := ClassifyGesture(s.dx, s.dy, time.Since(s.dragStart))
	s.dragStart = time.Time{}
	s.dx, s.dy = 0, 0

	if gesture == GestureSwipeRight && s.onBack != nil {
		s.onBack()
	}
}
