package faros

import "testing"

func TestDPadHit(t *testing.T) {
	d := NewDPad(800, 600)
	if d.Anchor != (Vec2{680, 480}) {
		t.Fatalf("Anchor = %v", d.Anchor)
	}
	tests := []struct {
		x, y float64
		want Direction
	}{
		{720, 480, DirUp},
		{680, 520, DirLeft},
		{760, 520, DirRight},
		{720, 560, DirDown},
		{734, 494, DirUp},
		{735, 480, DirNone},
		{720, 520, DirNone},
		{10, 10, DirNone},
	}
	for _, tt := range tests {
		if got := d.Hit(tt.x, tt.y); got != tt.want {
			t.Errorf("Hit(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDPadHold(t *testing.T) {
	d := NewDPad(800, 600)
	if got := d.Press(720, 560); got != DirDown || !d.Held(DirDown) {
		t.Fatalf("Press = %v, held %v", got, d.Held(DirDown))
	}
	if d.Press(0, 0) != DirNone || d.Held(DirNone) {
		t.Error("missing the pad held something")
	}
	d.Set(DirLeft, true)
	d.Set(DirDown, false)
	if !d.Held(DirLeft) || d.Held(DirDown) {
		t.Error("Set did not update held buttons")
	}
	d.ReleaseAll()
	if d.Held(DirLeft) {
		t.Error("ReleaseAll left a button held")
	}
}

func TestDPadApply(t *testing.T) {
	a := NewAvatar(400, 300, 80, 800, 600)
	d := NewDPad(800, 600)
	d.Set(DirUp, true)
	d.Set(DirRight, true)
	d.Apply(a)
	if a.X != 403 || a.Y != 297 {
		t.Errorf("avatar at (%v,%v), want (403,297)", a.X, a.Y)
	}
	d.Reset()
	d.Apply(a)
	if a.X != 403 || a.Y != 297 {
		t.Error("released pad moved the avatar")
	}
}

func TestDPadSetArea(t *testing.T) {
	d := NewDPad(800, 600)
	d.SetArea(400, 300)
	if got := d.ButtonCenter(DirRight); got != (Vec2{360, 220}) {
		t.Errorf("right button = %v, want (360,220)", got)
	}
}

func TestDPadDraw(t *testing.T) {
	d := NewDPad(800, 600)
	d.Set(DirUp, true)
	s := newRecordSurface(800, 600)
	d.Draw(s)
	if s.count("polygon") != 4 || s.count("roundrect") != 5 {
		t.Errorf("polygons %d roundrects %d", s.count("polygon"), s.count("roundrect"))
	}
	active := 0
	for _, op := range s.ops {
		if op.kind == "roundrect" && op.color == dpadActive {
			active++
		}
	}
	if active != 1 {
		t.Errorf("active buttons = %d, want 1", active)
	}
}
