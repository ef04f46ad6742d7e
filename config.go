package faros

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Features selects which parts of the lighthouse scene are built. The
// simple variant is markers that reveal their message on hover or tap; the
// full variant adds portraits, the boat, the dialogue bubble, on-screen
// controls and particles.
type Features struct {
	Portraits     bool `json:"portraits"`
	Boat          bool `json:"boat"`
	Dialogue      bool `json:"dialogue"`
	HoverMessages bool `json:"hoverMessages"`
	DPad          bool `json:"dpad"`
	Joystick      bool `json:"joystick"`
	Particles     bool `json:"particles"`
	Fog           bool `json:"fog"`
	Title         bool `json:"title"`
	Zoom          bool `json:"zoom"`
}

// SimpleFeatures is the bare variant: three towers and an avatar.
func SimpleFeatures() Features {
	return Features{HoverMessages: true}
}

// FullFeatures enables everything.
func FullFeatures() Features {
	return Features{
		Portraits:     true,
		Boat:          true,
		Dialogue:      true,
		HoverMessages: true,
		DPad:          true,
		Joystick:      true,
		Particles:     true,
		Fog:           true,
		Title:         true,
		Zoom:          true,
	}
}

// Marker anchors. Positions are derived from the screen size and the xl
// spacing so they follow the breakpoint.
const (
	AnchorTopLeft      = "top-left"
	AnchorTopRight     = "top-right"
	AnchorBottomCenter = "bottom-center"
)

// MarkerSpec describes one lighthouse in configuration.
type MarkerSpec struct {
	Name     string `json:"name"`
	Message  string `json:"message"`
	Color    string `json:"color"` // "#rrggbb"
	Anchor   string `json:"anchor"`
	Tower    string `json:"tower,omitempty"`
	Portrait string `json:"portrait,omitempty"`
}

// Config is the application configuration. Durations are in milliseconds.
type Config struct {
	Title         string `json:"title"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	TPS           int    `json:"tps,omitempty"` // 0 uses the device recommendation
	Debug         bool   `json:"debug"`
	AssetDir      string `json:"assetDir"`
	ScreenshotDir string `json:"screenshotDir"`
	TestScript    string `json:"testScript,omitempty"`

	Features Features     `json:"features"`
	Markers  []MarkerSpec `json:"markers"`

	AvatarImage string `json:"avatarImage,omitempty"`
	BoatImage   string `json:"boatImage,omitempty"`

	TransitionMS        int `json:"transitionMs"`
	MessageMS           int `json:"messageMs"`
	CollisionCooldownMS int `json:"collisionCooldownMs"`
	LoadingDelayMS      int `json:"loadingDelayMs"`

	Device DeviceOverrides `json:"device"`
}

// DefaultMarkers are the three lighthouses of the family.
func DefaultMarkers() []MarkerSpec {
	return []MarkerSpec{
		{
			Name:     "Abuelo",
			Message:  "A veces me pierdo... pero siempre vuelvo a vos",
			Color:    "#0064ff",
			Anchor:   AnchorTopLeft,
			Tower:    "faro-azul.png",
			Portrait: "abuelo.png",
		},
		{
			Name:     "Papá",
			Message:  "Mi amor es fuerte como el viento",
			Color:    "#64ff64",
			Anchor:   AnchorTopRight,
			Tower:    "faro-verde.png",
			Portrait: "papa.png",
		},
		{
			Name:     "Tío",
			Message:  "Tus preguntas no tienen por qué tener respuesta",
			Color:    "#ffff00",
			Anchor:   AnchorBottomCenter,
			Tower:    "faro-amarillo.png",
			Portrait: "tio.png",
		},
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:               "Faros de Sofía",
		Width:               1024,
		Height:              768,
		AssetDir:            "assets/images",
		ScreenshotDir:       "screenshots",
		Features:            FullFeatures(),
		Markers:             DefaultMarkers(),
		AvatarImage:         "sofi-comic.png",
		BoatImage:           "barquito.png",
		TransitionMS:        int(DefaultTransitionDuration / time.Millisecond),
		MessageMS:           int(DefaultMessageDuration / time.Millisecond),
		CollisionCooldownMS: int(DefaultCollisionCooldown / time.Millisecond),
		LoadingDelayMS:      int(DefaultLoadingDelay / time.Millisecond),
	}
}

// LoadConfig reads a JSON config file over DefaultConfig. Fields missing
// from the file keep their defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("faros: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes JSON config data over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	// Markers are replaced as a whole, never merged element by element.
	cfg.Markers = nil
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("faros: parse config: %w", err)
	}
	if cfg.Markers == nil {
		cfg.Markers = DefaultMarkers()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks sizes, durations and marker definitions.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("faros: invalid window size %dx%d", c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("faros: invalid tps %d", c.TPS)
	}
	if c.TransitionMS <= 0 {
		return fmt.Errorf("faros: transitionMs must be positive, got %d", c.TransitionMS)
	}
	for i, m := range c.Markers {
		if m.Name == "" {
			return fmt.Errorf("faros: marker %d: missing name", i)
		}
		if _, err := ParseHexColor(m.Color); err != nil {
			return fmt.Errorf("faros: marker %q: %w", m.Name, err)
		}
		switch m.Anchor {
		case AnchorTopLeft, AnchorTopRight, AnchorBottomCenter:
		default:
			return fmt.Errorf("faros: marker %q: unknown anchor %q", m.Name, m.Anchor)
		}
	}
	return nil
}

// TransitionDuration is the scene cross-fade length.
func (c Config) TransitionDuration() time.Duration { return ms(c.TransitionMS) }

// MessageDuration is how long marker messages stay up.
func (c Config) MessageDuration() time.Duration { return ms(c.MessageMS) }

// CollisionCooldown is the minimum gap between blocked-move messages.
func (c Config) CollisionCooldown() time.Duration { return ms(c.CollisionCooldownMS) }

// LoadingDelay is how long the loading screen stays before fading.
func (c Config) LoadingDelay() time.Duration { return ms(c.LoadingDelayMS) }

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
