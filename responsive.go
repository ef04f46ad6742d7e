package faros

// Breakpoint is a discrete viewport-width bucket. Values are ordered from
// narrowest to widest.
type Breakpoint uint8

const (
	BreakpointXS Breakpoint = iota
	BreakpointSM
	BreakpointMD
	BreakpointLG
	BreakpointXL
)

var breakpointNames = [...]string{"xs", "sm", "md", "lg", "xl"}

func (b Breakpoint) String() string {
	if int(b) < len(breakpointNames) {
		return breakpointNames[b]
	}
	return "xl"
}

// BreakpointFor maps a viewport width in pixels to its breakpoint.
func BreakpointFor(width float64) Breakpoint {
	switch {
	case width < 480:
		return BreakpointXS
	case width < 768:
		return BreakpointSM
	case width < 1024:
		return BreakpointMD
	case width < 1440:
		return BreakpointLG
	default:
		return BreakpointXL
	}
}

// Size is a symbolic size key for spacing and font lookups.
type Size uint8

const (
	SizeXS Size = iota
	SizeSM
	SizeMD
	SizeLG
	SizeXL
	SizeXXL
)

var sizeNames = [...]string{"xs", "sm", "md", "lg", "xl", "xxl"}

func (s Size) String() string {
	if int(s) < len(sizeNames) {
		return sizeNames[s]
	}
	return "md"
}

// ParseSize converts a size name to a Size. Unknown names give SizeMD.
func ParseSize(name string) Size {
	for i, n := range sizeNames {
		if n == name {
			return Size(i)
		}
	}
	return SizeMD
}

var scaleTable = [5]float64{0.7, 1.2, 1.4, 1.6, 1.7}

// spacing[size][breakpoint]
var spacingTable = [5][5]float64{
	{4, 6, 8, 12, 16},
	{6, 8, 12, 16, 20},
	{8, 12, 16, 20, 24},
	{12, 16, 20, 24, 32},
	{16, 20, 24, 32, 40},
}

// font[size][breakpoint]
var fontTable = [6][5]float64{
	{10, 11, 12, 13, 14},
	{12, 13, 14, 15, 16},
	{14, 15, 16, 17, 18},
	{18, 20, 22, 24, 26},
	{24, 26, 28, 32, 36},
	{32, 36, 40, 48, 56},
}

// Scaler answers size, spacing and font lookups for the current viewport
// width. The width is the only state; call SetWidth on resize.
type Scaler struct {
	width float64
	bp    Breakpoint
}

// NewScaler creates a Scaler for the given viewport width.
func NewScaler(width float64) *Scaler {
	s := &Scaler{}
	s.SetWidth(width)
	return s
}

// SetWidth updates the viewport width and recomputes the breakpoint.
func (s *Scaler) SetWidth(width float64) {
	s.width = width
	s.bp = BreakpointFor(width)
}

// Width returns the viewport width the scaler was last given.
func (s *Scaler) Width() float64 { return s.width }

// Breakpoint returns the current breakpoint.
func (s *Scaler) Breakpoint() Breakpoint { return s.bp }

// Scale multiplies base by the breakpoint's size multiplier.
func (s *Scaler) Scale(base float64) float64 {
	return base * scaleTable[s.bp]
}

// ScaleBy is Scale with an extra caller factor.
func (s *Scaler) ScaleBy(base, factor float64) float64 {
	return s.Scale(base) * factor
}

// Spacing returns the padding/margin for size. There is no xxl spacing row;
// it resolves to xl.
func (s *Scaler) Spacing(size Size) float64 {
	switch {
	case size == SizeXXL:
		size = SizeXL
	case size > SizeXXL:
		size = SizeMD
	}
	return spacingTable[size][s.bp]
}

// FontSize returns the text size for size.
func (s *Scaler) FontSize(size Size) float64 {
	if size > SizeXXL {
		size = SizeMD
	}
	return fontTable[size][s.bp]
}

// IsMobileBreakpoint reports xs or sm.
func (s *Scaler) IsMobileBreakpoint() bool { return s.bp <= BreakpointSM }

// IsTabletBreakpoint reports md.
func (s *Scaler) IsTabletBreakpoint() bool { return s.bp == BreakpointMD }

// IsDesktopBreakpoint reports lg or xl.
func (s *Scaler) IsDesktopBreakpoint() bool { return s.bp >= BreakpointLG }
