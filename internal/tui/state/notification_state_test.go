package state

import (
	"fmt"
	"strings"
	"testing"
)

// TestAdd_KeepsNewest ensures only the most recent notifications are kept.
func TestAdd_KeepsNewest(t *testing.T) {
	state := NewNotificationState()
	for i := range maxNotifications + 2 {
		state.Add(LevelInfo, fmt.Sprintf("n%d", i))
	}

	all := state.All()
	if len(all) != maxNotifications {
		t.Fatalf("len(All()) = %d, want %d", len(all), maxNotifications)
	}
	if all[0].Message != "n2" {
		t.Errorf("oldest kept = %q, want n2", all[0].Message)
	}
}

func TestClear(t *testing.T) {
	state := NewNotificationState()
	state.Add(LevelError, "boom")
	state.Clear()

	if state.HasAny() {
		t.Error("HasAny() after Clear() = true, want false")
	}
}

// TestGetLayers_NoWindow ensures nothing is placed before the first resize.
func TestGetLayers_NoWindow(t *testing.T) {
	state := NewNotificationState()
	state.Add(LevelInfo, "hello")

	if got := state.GetLayers(func(n Notification) string { return n.Message }, 2, 1); len(got) != 0 {
		t.Errorf("GetLayers() before SetWindowSize returned %d layers, want 0", len(got))
	}
}

// TestGetLayers_StopsAtBottom ensures notifications that would run off the
// screen are dropped.
func TestGetLayers_StopsAtBottom(t *testing.T) {
	state := NewNotificationState()
	state.SetWindowSize(80, 8)
	state.Add(LevelInfo, "one")
	state.Add(LevelInfo, "two")

	tall := func(n Notification) string { return strings.Repeat(n.Message+"\n", 2) + n.Message }
	if got := state.GetLayers(tall, 2, 1); len(got) != 1 {
		t.Errorf("GetLayers() returned %d layers, want 1", len(got))
	}
}
