package faros

import "testing"

func TestBreakpointFor(t *testing.T) {
	tests := []struct {
		width float64
		want  Breakpoint
	}{
		{320, BreakpointXS},
		{479, BreakpointXS},
		{480, BreakpointSM},
		{767, BreakpointSM},
		{768, BreakpointMD},
		{1023, BreakpointMD},
		{1024, BreakpointLG},
		{1439, BreakpointLG},
		{1440, BreakpointXL},
		{3840, BreakpointXL},
	}
	for _, tt := range tests {
		if got := BreakpointFor(tt.width); got != tt.want {
			t.Errorf("BreakpointFor(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestScalerScale(t *testing.T) {
	tests := []struct {
		width float64
		want  float64
	}{
		{400, 70},
		{600, 120},
		{800, 140},
		{1200, 160},
		{1600, 170},
	}
	for _, tt := range tests {
		s := NewScaler(tt.width)
		if got := s.Scale(100); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("Scale(100) at %v = %v, want %v", tt.width, got, tt.want)
		}
	}
	if got := NewScaler(800).ScaleBy(10, 0.5); !approxEqual(got, 7, 1e-9) {
		t.Errorf("ScaleBy = %v, want 7", got)
	}
}

func TestScalerSpacingAndFont(t *testing.T) {
	s := NewScaler(1024)
	if got := s.Spacing(SizeMD); got != 20 {
		t.Errorf("Spacing(md) at lg = %v, want 20", got)
	}
	if got := s.Spacing(SizeXXL); got != s.Spacing(SizeXL) {
		t.Errorf("Spacing(xxl) = %v, want xl %v", got, s.Spacing(SizeXL))
	}
	if got := s.FontSize(SizeXXL); got != 48 {
		t.Errorf("FontSize(xxl) at lg = %v, want 48", got)
	}
	if got := s.FontSize(Size(42)); got != s.FontSize(SizeMD) {
		t.Errorf("unknown size = %v, want md", got)
	}

	s.SetWidth(320)
	if s.Breakpoint() != BreakpointXS || s.FontSize(SizeXS) != 10 || s.Spacing(SizeXS) != 4 {
		t.Errorf("xs lookups: bp %v font %v spacing %v", s.Breakpoint(), s.FontSize(SizeXS), s.Spacing(SizeXS))
	}
	if !s.IsMobileBreakpoint() || s.IsDesktopBreakpoint() {
		t.Error("320 px should be a mobile breakpoint")
	}
}

func TestParseSize(t *testing.T) {
	for i, name := range sizeNames {
		if got := ParseSize(name); got != Size(i) {
			t.Errorf("ParseSize(%q) = %v, want %v", name, got, Size(i))
		}
	}
	if got := ParseSize("huge"); got != SizeMD {
		t.Errorf("ParseSize(huge) = %v, want md", got)
	}
}
