package coloring

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/colorandlearn/color-and-learn/internal/model"
)

// EncourageEvery is the completed-area interval at which an encouragement
// notice is raised
const EncourageEvery = 3

var (
	// ErrAreaOutOfRange is returned for area indices outside 1..TotalAreas
	ErrAreaOutOfRange = errors.New("area out of range")

	// ErrUnknownColor is returned when a color is not in the palette
	ErrUnknownColor = errors.New("color not in palette")

	// ErrUnknownPenSize is returned when a pen size is not offered
	ErrUnknownPenSize = errors.New("unknown pen size")
)

// NoticeKind identifies a presentation side effect of a session operation
type NoticeKind int

const (
	// NoticeComplete is raised when the last area is colored
	NoticeComplete NoticeKind = iota
	// NoticeEncourage is raised every EncourageEvery completed areas
	NoticeEncourage
	// NoticeSaved is raised by Save
	NoticeSaved
)

// String returns a short name for the notice kind
func (k NoticeKind) String() string {
	switch k {
	case NoticeComplete:
		return "complete"
	case NoticeEncourage:
		return "encourage"
	case NoticeSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// Notice is passed to the notice callback. It never carries state that the
// session does not already expose.
type Notice struct {
	Kind    NoticeKind
	Summary Summary
}

// Summary describes how far along a page is
type Summary struct {
	Completed int
	Total     int
	Stars     int
}

// Fill is how a completed area was painted
type Fill struct {
	Color   Color
	PenSize int
}

// Session tracks one open coloring page
type Session struct {
	page     *model.ColoringPage
	fills    map[int]Fill
	order    []int
	color    Color
	penSize  int
	saved    bool
	resetAsk bool
	onNotice func(Notice)
}

// NewSession creates an empty session for page
func NewSession(page *model.ColoringPage) *Session {
	return &Session{
		page:    page,
		fills:   make(map[int]Fill),
		color:   DefaultColor,
		penSize: DefaultPenSize,
	}
}

// SetNoticeCallback sets the function receiving presentation notices
func (s *Session) SetNoticeCallback(callback func(Notice)) {
	s.onNotice = callback
}

// Page returns the page being colored
func (s *Session) Page() *model.ColoringPage {
	return s.page
}

// TotalAreas returns the number of numbered areas on the page
func (s *Session) TotalAreas() int {
	if s.page == nil {
		return 0
	}
	return s.page.NumberedAreas
}

// MarkAreaComplete paints area index with the current selection. It returns
// false without error when the area was already complete.
func (s *Session) MarkAreaComplete(index int) (bool, error) {
	if index < 1 || index > s.TotalAreas() {
		return false, fmt.Errorf("%w: %d not in 1..%d", ErrAreaOutOfRange, index, s.TotalAreas())
	}
	if _, done := s.fills[index]; done {
		return false, nil
	}

	s.fills[index] = Fill{Color: s.color, PenSize: s.penSize}
	s.order = append(s.order, index)

	n := len(s.fills)
	switch {
	case n == s.TotalAreas():
		s.notify(NoticeComplete)
	case n%EncourageEvery == 0:
		s.notify(NoticeEncourage)
	}
	return true, nil
}

// IsComplete reports whether area index has been colored
func (s *Session) IsComplete(index int) bool {
	_, ok := s.fills[index]
	return ok
}

// Fill returns the fill of a completed area
func (s *Session) Fill(index int) (Fill, bool) {
	f, ok := s.fills[index]
	return f, ok
}

// Completed returns the completed area indices in ascending order
func (s *Session) Completed() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	sort.Ints(out)
	return out
}

// CompletedCount returns the size of the completed set
func (s *Session) CompletedCount() int {
	return len(s.fills)
}

// Stars returns the derived 0..3 rating
func (s *Session) Stars() int {
	return DeriveStars(len(s.fills), s.TotalAreas())
}

// Percent returns the completed fraction as 0..100
func (s *Session) Percent() float64 {
	total := s.TotalAreas()
	if total <= 0 {
		return 0
	}
	return float64(len(s.fills)) / float64(total) * 100
}

// Summary returns the current progress summary
func (s *Session) Summary() Summary {
	return Summary{Completed: len(s.fills), Total: s.TotalAreas(), Stars: s.Stars()}
}

// RequestReset starts the two-step reset; ConfirmReset must follow
func (s *Session) RequestReset() {
	s.resetAsk = true
}

// CancelReset drops a pending reset request
func (s *Session) CancelReset() {
	s.resetAsk = false
}

// ResetPending reports whether a reset awaits confirmation
func (s *Session) ResetPending() bool {
	return s.resetAsk
}

// ConfirmReset clears every completed area if a reset was requested.
// It returns false when there was no pending request.
func (s *Session) ConfirmReset() bool {
	if !s.resetAsk {
		return false
	}
	s.resetAsk = false
	s.fills = make(map[int]Fill)
	s.order = nil
	s.saved = false
	return true
}

// Save computes the summary and raises a saved notice. Nothing is stored.
func (s *Session) Save() Summary {
	s.saved = true
	summary := s.Summary()
	s.notify(NoticeSaved)
	return summary
}

// Saved reports whether Save ran since the last reset
func (s *Session) Saved() bool {
	return s.saved
}

// SelectColor replaces the current color
func (s *Session) SelectColor(c Color) error {
	if !InPalette(c) {
		return fmt.Errorf("%w: %s", ErrUnknownColor, c)
	}
	s.color = c
	return nil
}

// SelectedColor returns the current color
func (s *Session) SelectedColor() Color {
	return s.color
}

// SelectPenSize replaces the current pen size
func (s *Session) SelectPenSize(size int) error {
	if _, ok := LookupPenSize(size); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPenSize, size)
	}
	s.penSize = size
	return nil
}

// SelectedPenSize returns the current pen size
func (s *Session) SelectedPenSize() int {
	return s.penSize
}

func (s *Session) notify(kind NoticeKind) {
	if s.onNotice != nil {
		s.onNotice(Notice{Kind: kind, Summary: s.Summary()})
	}
}

// DeriveStars returns floor(completed/total*3) clamped to 0..3
func DeriveStars(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	stars := int(math.Floor(float64(completed) / float64(total) * model.MaxStars))
	if stars > model.MaxStars {
		return model.MaxStars
	}
	return stars
}
