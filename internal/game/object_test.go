package game

import (
	"testing"
	"time"
)

func TestRect_Overlaps(t *testing.T) {
	catcher := Rect{X: 160, Y: 584, W: 80, H: 16}

	tests := []struct {
		name string
		obj  Rect
		want bool
	}{
		{"inside basket band", Rect{X: 180, Y: 580, W: 16, H: 16}, true},
		{"straddles left edge", Rect{X: 150, Y: 590, W: 16, H: 16}, true},
		{"straddles right edge", Rect{X: 235, Y: 590, W: 16, H: 16}, true},
		{"above basket", Rect{X: 180, Y: 560, W: 16, H: 16}, false},
		{"touching top edge", Rect{X: 180, Y: 568, W: 16, H: 16}, false},
		{"touching left edge", Rect{X: 144, Y: 590, W: 16, H: 16}, false},
		{"touching right edge", Rect{X: 240, Y: 590, W: 16, H: 16}, false},
		{"left of basket", Rect{X: 100, Y: 590, W: 16, H: 16}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.obj.Overlaps(catcher); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.obj, got, tt.want)
			}
			if got := catcher.Overlaps(tt.obj); got != tt.want {
				t.Errorf("overlap should be symmetric for %+v", tt.obj)
			}
		})
	}
}

func TestFallingObject_CatchOnce(t *testing.T) {
	o := &FallingObject{ID: 1, Size: 16}

	if !o.Catch(100 * time.Millisecond) {
		t.Fatal("expected first catch to succeed")
	}
	if o.Catch(200 * time.Millisecond) {
		t.Error("expected second catch to be rejected")
	}
	if o.CaughtAt != 100*time.Millisecond {
		t.Errorf("expected CaughtAt to stay at 100ms, got %v", o.CaughtAt)
	}
}

func TestFallingObject_Expired(t *testing.T) {
	t.Run("caught lingers", func(t *testing.T) {
		o := &FallingObject{Size: 16}
		o.Catch(time.Second)

		if o.Expired(time.Second+219*time.Millisecond, 600) {
			t.Error("caught object should linger for 219ms")
		}
		if !o.Expired(time.Second+CaughtLinger, 600) {
			t.Error("caught object should expire after the linger window")
		}
	})

	t.Run("missed leaves field", func(t *testing.T) {
		o := &FallingObject{Size: 16, Y: 600}
		if o.Expired(0, 600) {
			t.Error("object exactly at the bottom edge is still visible")
		}
		o.Y = 600.5
		if !o.Expired(0, 600) {
			t.Error("object below the field should expire")
		}
	})
}

func TestFallingObject_Fall(t *testing.T) {
	o := &FallingObject{Y: -16, Speed: 256}
	o.Fall(0.25)
	if o.Y != 48 {
		t.Errorf("expected Y=48, got %f", o.Y)
	}
}
