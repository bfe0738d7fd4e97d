// Package scripting runs the jewel activation script. Scripts define
// on_activate(event) and may call engine.emit(name, data) and
// engine.add_score(n).
package scripting

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/rs/zerolog"

	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/logging"
	"github.com/milk9111/goldpiece/prefabs"
)

const dispatchScript = `
on_activate(__event)
`

// Emitted is one engine.emit call made by a script.
type Emitted struct {
	Name string
	Data any
}

// Event is what on_activate receives.
type Event struct {
	Kind   string
	Color  string
	Points int
	Jewels int
	X, Y   float64
}

func (e Event) toMap() map[string]any {
	return map[string]any{
		"kind":   e.Kind,
		"color":  e.Color,
		"points": e.Points,
		"jewels": e.Jewels,
		"x":      e.X,
		"y":      e.Y,
	}
}

// EventFor builds the script event for a piece being collected.
func EventFor(p *goldpiece.Piece) Event {
	v := p.Value()
	pos := p.Position()
	return Event{
		Kind:   p.Kind().String(),
		Color:  p.Color().String(),
		Points: v.Points,
		Jewels: v.Jewels,
		X:      pos.X,
		Y:      pos.Y,
	}
}

type Runtime struct {
	name     string
	compiled *tengo.Compiled
	emitted  []Emitted
	onScore  func(n int)
	log      *zerolog.Logger
}

// Load compiles a script from the prefab scripts directory.
func Load(name string) (*Runtime, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scripting: load %s: %w", name, err)
	}
	return Compile(name, src)
}

// Compile builds a runtime from source.
func Compile(name string, src []byte) (*Runtime, error) {
	rt := &Runtime{name: name, log: logging.For("scripting")}
	if err := rt.compile(src); err != nil {
		return nil, err
	}
	return rt, nil
}

// Reload recompiles the script from disk or the embedded copy. The old
// program stays in place when the new one fails to compile.
func (rt *Runtime) Reload() error {
	src, err := prefabs.LoadScript(rt.name)
	if err != nil {
		return fmt.Errorf("scripting: load %s: %w", rt.name, err)
	}
	return rt.compile(src)
}

func (rt *Runtime) compile(src []byte) error {
	full := string(src) + "\n" + dispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__event", map[string]any{})
	_ = script.Add("engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("scripting: compile %s: %w", rt.name, err)
	}
	rt.compiled = compiled
	return nil
}

// OnScore sets the callback behind engine.add_score.
func (rt *Runtime) OnScore(fn func(n int)) {
	rt.onScore = fn
}

// NotifyActivated runs on_activate for p. Script errors are logged, never
// returned, so a broken script cannot stall the frame.
func (rt *Runtime) NotifyActivated(p *goldpiece.Piece) {
	if rt == nil || p == nil {
		return
	}
	if err := rt.Activate(EventFor(p)); err != nil {
		rt.log.Warn().Err(err).Str("script", rt.name).Msg("on_activate failed")
	}
}

// Activate runs on_activate with ev. A panic inside the VM, such as an integer
// division by zero, comes back as an error.
func (rt *Runtime) Activate(ev Event) (err error) {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("scripting: nil runtime")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scripting: run %s: %v", rt.name, r)
		}
	}()
	if err := rt.compiled.Set("__event", ev.toMap()); err != nil {
		return err
	}
	if err := rt.compiled.Set("engine", rt.engine()); err != nil {
		return err
	}
	if err := rt.compiled.Run(); err != nil {
		return fmt.Errorf("scripting: run %s: %w", rt.name, err)
	}
	return nil
}

// Drain returns the emitted events since the last call.
func (rt *Runtime) Drain() []Emitted {
	if rt == nil || len(rt.emitted) == 0 {
		return nil
	}
	out := rt.emitted
	rt.emitted = nil
	return out
}

func (rt *Runtime) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		var data any
		if len(args) > 1 {
			data = objectToAny(args[1])
		}
		rt.emitted = append(rt.emitted, Emitted{Name: name, Data: data})
		return tengo.TrueValue, nil
	}}

	values["add_score"] = &tengo.UserFunction{Name: "add_score", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 || rt.onScore == nil {
			return tengo.FalseValue, nil
		}
		n, ok := tengo.ToInt(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "n", Expected: "int", Found: args[0].TypeName()}
		}
		rt.onScore(n)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}

	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
