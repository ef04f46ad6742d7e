package faros

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Defaults substituted for missing environment signals.
const (
	DefaultCores      = 2
	DefaultMemoryGB   = 2
	DefaultPixelRatio = 1.0
)

// Tier is the coarse performance class of the running device.
type Tier uint8

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	default:
		return "high"
	}
}

// Signals are the raw environment facts the profile is derived from.
// Zero values mean "unknown" and are replaced by defaults.
type Signals struct {
	UserAgent    string
	Platform     string
	ScreenWidth  int
	ScreenHeight int
	PixelRatio   float64
	TouchPoints  int
	HasVibration bool
	Cores        int
	MemoryGB     float64
}

// DeviceProfile is the capability profile computed once at startup.
type DeviceProfile struct {
	IsMobile  bool
	IsTablet  bool
	IsDesktop bool
	IsIOS     bool
	IsAndroid bool
	IsWindows bool
	IsMac     bool
	IsLinux   bool

	HasTouch     bool
	HasVibration bool

	ScreenWidth  int
	ScreenHeight int
	PixelRatio   float64
	IsHighDPI    bool
	IsRetina     bool

	Cores    int
	MemoryGB float64

	Tier                 Tier
	RecommendedFPS       int
	RecommendedParticles int
}

var mobileAgents = []string{
	"android", "webos", "iphone", "ipad", "ipod", "blackberry", "iemobile", "opera mini",
}

func isTabletAgent(ua string) bool {
	if strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet") {
		return true
	}
	// Android tablets omit "mobile" after the android token.
	if i := strings.Index(ua, "android"); i >= 0 {
		return !strings.Contains(ua[i:], "mobile")
	}
	return false
}

// ResolveProfile derives a DeviceProfile from environment signals. It has no
// side effects and never fails.
func ResolveProfile(sig Signals) DeviceProfile {
	ua := strings.ToLower(sig.UserAgent)
	platform := strings.ToLower(sig.Platform)

	p := DeviceProfile{
		ScreenWidth:  sig.ScreenWidth,
		ScreenHeight: sig.ScreenHeight,
		PixelRatio:   sig.PixelRatio,
		Cores:        sig.Cores,
		MemoryGB:     sig.MemoryGB,
		HasTouch:     sig.TouchPoints > 0,
	}
	if p.PixelRatio <= 0 {
		p.PixelRatio = DefaultPixelRatio
	}
	if p.Cores <= 0 {
		p.Cores = DefaultCores
	}
	if p.MemoryGB <= 0 {
		p.MemoryGB = DefaultMemoryGB
	}

	for _, a := range mobileAgents {
		if strings.Contains(ua, a) {
			p.IsMobile = true
			break
		}
	}
	p.IsTablet = isTabletAgent(ua)
	p.IsDesktop = !p.IsMobile && !p.IsTablet

	p.IsIOS = strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") ||
		strings.Contains(ua, "ipod")
	p.IsAndroid = strings.Contains(ua, "android")
	p.IsWindows = strings.Contains(platform, "windows")
	p.IsMac = strings.Contains(platform, "mac") || strings.Contains(platform, "darwin")
	p.IsLinux = strings.Contains(platform, "linux")

	p.HasVibration = sig.HasVibration
	p.IsHighDPI = p.PixelRatio > 1
	p.IsRetina = p.PixelRatio >= 2

	p.Tier = classifyTier(p)
	switch p.Tier {
	case TierLow:
		p.RecommendedFPS, p.RecommendedParticles = 30, 50
	case TierMid:
		p.RecommendedFPS, p.RecommendedParticles = 45, 150
	default:
		p.RecommendedFPS, p.RecommendedParticles = 60, 300
	}
	return p
}

func classifyTier(p DeviceProfile) Tier {
	if (p.IsMobile && p.MemoryGB <= 2) ||
		(p.IsMobile && p.Cores <= 2) ||
		(p.ScreenWidth > 0 && p.ScreenWidth <= 480) {
		return TierLow
	}
	if p.IsDesktop || (p.IsMobile && p.MemoryGB > 4) || (p.IsMobile && p.Cores > 4) {
		return TierHigh
	}
	return TierMid
}

// Label is a short human-readable device class.
func (p DeviceProfile) Label() string {
	switch {
	case p.IsTablet:
		return "tablet"
	case p.IsMobile:
		return "mobile"
	default:
		return "desktop"
	}
}

func (p DeviceProfile) String() string {
	return fmt.Sprintf("%s/%s tier=%s fps=%d particles=%d cores=%d mem=%.0fGB dpr=%.2f",
		p.Label(), p.platformName(), p.Tier, p.RecommendedFPS, p.RecommendedParticles,
		p.Cores, p.MemoryGB, p.PixelRatio)
}

func (p DeviceProfile) platformName() string {
	switch {
	case p.IsIOS:
		return "ios"
	case p.IsAndroid:
		return "android"
	case p.IsWindows:
		return "windows"
	case p.IsMac:
		return "mac"
	case p.IsLinux:
		return "linux"
	default:
		return "unknown"
	}
}

// CurrentSignals reads the running environment. The monitor size and scale
// factor come from Ebitengine; memory is read from the OS where supported.
func CurrentSignals() Signals {
	sig := Signals{
		UserAgent:  agentFor(runtime.GOOS, runtime.GOARCH),
		Platform:   runtime.GOOS,
		PixelRatio: DefaultPixelRatio,
		Cores:      runtime.NumCPU(),
		MemoryGB:   totalMemoryGB(),
	}
	if m := ebiten.Monitor(); m != nil {
		sig.ScreenWidth, sig.ScreenHeight = m.Size()
		sig.PixelRatio = m.DeviceScaleFactor()
	}
	switch runtime.GOOS {
	case "android", "ios":
		sig.TouchPoints = 10
		sig.HasVibration = true
	}
	return sig
}

// agentFor builds a user-agent-like string for a native build. Mobile
// targets carry the tokens a phone browser would send, so ResolveProfile
// classifies them the same way.
func agentFor(goos, goarch string) string {
	switch goos {
	case "android":
		return "android mobile/" + goarch
	case "ios":
		return "iphone/" + goarch
	}
	return goos + "/" + goarch
}

// DeviceOverrides lets configuration force signals, mainly so a desktop
// build can emulate a phone.
type DeviceOverrides struct {
	UserAgent    string  `json:"userAgent,omitempty"`
	ScreenWidth  int     `json:"screenWidth,omitempty"`
	ScreenHeight int     `json:"screenHeight,omitempty"`
	PixelRatio   float64 `json:"pixelRatio,omitempty"`
	TouchPoints  int     `json:"touchPoints,omitempty"`
	Vibration    bool    `json:"vibration,omitempty"`
	Cores        int     `json:"cores,omitempty"`
	MemoryGB     float64 `json:"memoryGB,omitempty"`
}

// Apply returns sig with every non-zero override substituted.
func (o DeviceOverrides) Apply(sig Signals) Signals {
	if o.UserAgent != "" {
		sig.UserAgent = o.UserAgent
	}
	if o.ScreenWidth > 0 {
		sig.ScreenWidth = o.ScreenWidth
	}
	if o.ScreenHeight > 0 {
		sig.ScreenHeight = o.ScreenHeight
	}
	if o.PixelRatio > 0 {
		sig.PixelRatio = o.PixelRatio
	}
	if o.TouchPoints > 0 {
		sig.TouchPoints = o.TouchPoints
	}
	if o.Vibration {
		sig.HasVibration = true
	}
	if o.Cores > 0 {
		sig.Cores = o.Cores
	}
	if o.MemoryGB > 0 {
		sig.MemoryGB = o.MemoryGB
	}
	return sig
}
