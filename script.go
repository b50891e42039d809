package drafter

import (
	"encoding/json"
	"fmt"
)

// gestureStep is a single action in a gesture script.
type gestureStep struct {
	Action string  `json:"action"` // "press", "move", "release", "cancel", "tool"
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Tool   string  `json:"tool,omitempty"` // for "tool": "line", "rect", "circle"
}

// gestureScriptFile is the top-level JSON structure.
type gestureScriptFile struct {
	Steps []gestureStep `json:"steps"`
}

// GestureScript replays a recorded sequence of pointer actions through
// a tool registry, for scenario tests and demo automation. Scripts are
// JSON:
//
//	{"steps": [
//	  {"action": "tool", "tool": "rect"},
//	  {"action": "press", "x": 100, "y": 100},
//	  {"action": "move", "x": 50, "y": 50},
//	  {"action": "release", "x": 50, "y": 50}
//	]}
type GestureScript struct {
	steps []gestureStep
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(data []byte) (*GestureScript, error) {
	var file gestureScriptFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, step := range file.Steps {
		switch step.Action {
		case "press", "move", "release", "cancel":
		case "tool":
			if _, err := toolKindFromName(step.Tool); err != nil {
				return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, step.Action)
		}
	}
	return &GestureScript{steps: file.Steps}, nil
}

// Len returns the number of steps in the script.
func (g *GestureScript) Len() int {
	return len(g.steps)
}

// Run replays the script against the registry and returns the result of
// every step in order. Tool-switch steps produce an empty result.
func (g *GestureScript) Run(r *Registry) ([]ToolResult, error) {
	results := make([]ToolResult, 0, len(g.steps))
	for i, step := range g.steps {
		p := Point{X: step.X, Y: step.Y}
		switch step.Action {
		case "press":
			results = append(results, r.HandlePointerDown(p))
		case "move":
			results = append(results, r.HandlePointerMove(p))
		case "release":
			results = append(results, r.HandlePointerUp(p))
		case "cancel":
			results = append(results, r.HandleCancel())
		case "tool":
			kind, _ := toolKindFromName(step.Tool)
			if err := r.Activate(kind); err != nil {
				return results, fmt.Errorf("run gesture script: step %d: %w", i, err)
			}
			results = append(results, ToolResult{})
		}
	}
	return results, nil
}

func toolKindFromName(name string) (ToolKind, error) {
	switch name {
	case "line":
		return ToolLine, nil
	case "rect":
		return ToolRect, nil
	case "circle":
		return ToolCircle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}
