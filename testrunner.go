package faros

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	Scene  string  `json:"scene,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var testActions = map[string]bool{
	"tap": true, "swipe": true, "key": true,
	"scene": true, "wait": true, "screenshot": true,
}

// TestRunner sequences injected input, scene changes and screenshots across
// frames for automated visual testing. Attach it with App.SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached with App.SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !testActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "key" {
			if _, ok := keyByName(st.Key); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// LoadTestScriptFile reads and parses the script at path.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	return LoadTestScript(data)
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from the app's frame update
// before input is read.
func (r *TestRunner) step(a *App) {
	if r.done {
		return
	}
	in := a.Input()
	// Wait for pending injections to drain before advancing.
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.done = r.waitCount == 0 && r.cursor >= len(r.steps)
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		a.Screenshot(st.Label)
	case "tap":
		in.InjectTap(st.X, st.Y)
	case "swipe":
		in.InjectSwipe(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "key":
		if k, ok := keyByName(st.Key); ok {
			in.InjectKey(k)
		}
	case "scene":
		if !a.ChangeScene(st.Scene, nil) {
			logger().Warn("test script scene change refused", "scene", st.Scene)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}

// keyByName resolves a key by the lower-case name KeyEvent uses.
func keyByName(name string) (ebiten.Key, bool) {
	name = strings.ToLower(name)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if keyName(k) == name {
			return k, true
		}
	}
	return 0, false
}
