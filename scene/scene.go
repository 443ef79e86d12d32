// Package scene runs Starlark scripts that describe what to draw on the
// logical canvas each frame.
//
// A script defines a function
//
//	def draw(frame, mouse_x, mouse_y):
//	    ...
//
// and calls the drawing builtins clear, rect, circle, line and text from it.
// WIDTH and HEIGHT hold the canvas size. Coordinates are logical pixels.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"

	"go.starlark.net/starlark"
)

// MaxSteps bounds the work a single frame may do.
const MaxSteps = 1_000_000

var ErrNoDrawFunc = errors.New("script does not define draw(frame, mouse_x, mouse_y)")

//go:embed default.star
var DefaultScript string

type Kind int

const (
	KindClear Kind = iota
	KindRect
	KindCircle
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one drawing operation recorded by a script.
//
// Rect uses X, Y, W, H; Circle uses X, Y, R; Line uses X, Y, X2, Y2 and
// Stroke; Text uses X, Y and Text.
type Command struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	X2, Y2 float64
	R      float64
	Stroke float64
	Text   string
	Color  color.RGBA
}

// Script is a loaded scene.
type Script struct {
	name   string
	drawFn starlark.Callable
	cmds   []Command
	print  func(msg string)
}

// Load executes src once to collect its definitions.
func Load(name, src string, width, height int) (*Script, error) {
	s := &Script{name: name, print: func(string) {}}

	predeclared := starlark.StringDict{
		"WIDTH":  starlark.MakeInt(width),
		"HEIGHT": starlark.MakeInt(height),
		"clear":  starlark.NewBuiltin("clear", s.builtinClear),
		"rect":   starlark.NewBuiltin("rect", s.builtinRect),
		"circle": starlark.NewBuiltin("circle", s.builtinCircle),
		"line":   starlark.NewBuiltin("line", s.builtinLine),
		"text":   starlark.NewBuiltin("text", s.builtinText),
	}

	globals, err := starlark.ExecFile(s.newThread(), name, src, predeclared)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, describe(err))
	}
	fn, ok := globals["draw"].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("load %s: %w", name, ErrNoDrawFunc)
	}
	s.drawFn = fn
	s.cmds = nil
	return s, nil
}

// Name returns the script's file name.
func (s *Script) Name() string { return s.name }

// SetPrint routes the script's print() output.
func (s *Script) SetPrint(fn func(msg string)) {
	if fn == nil {
		fn = func(string) {}
	}
	s.print = fn
}

// Frame runs draw for one frame and returns the recorded commands.
func (s *Script) Frame(frame int, mouseX, mouseY float64) ([]Command, error) {
	s.cmds = s.cmds[:0]
	args := starlark.Tuple{
		starlark.MakeInt(frame),
		starlark.MakeInt(int(mouseX)),
		starlark.MakeInt(int(mouseY)),
	}
	if _, err := starlark.Call(s.newThread(), s.drawFn, args, nil); err != nil {
		return nil, fmt.Errorf("%s: frame %d: %w", s.name, frame, describe(err))
	}
	out := make([]Command, len(s.cmds))
	copy(out, s.cmds)
	return out, nil
}

func (s *Script) newThread() *starlark.Thread {
	thread := &starlark.Thread{
		Name:  s.name,
		Print: func(_ *starlark.Thread, msg string) { s.print(msg) },
	}
	thread.SetMaxExecutionSteps(MaxSteps)
	return thread
}

// describe folds the Starlark backtrace into the error text.
func describe(err error) error {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return fmt.Errorf("%s", evalErr.Backtrace())
	}
	return err
}
