package scene

import (
	"fmt"
	"image/color"

	"canvas2d/palette"

	"go.starlark.net/starlark"
)

func (s *Script) builtinClear(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var clr starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "color", &clr); err != nil {
		return nil, err
	}
	c, err := toColor(b.Name(), clr)
	if err != nil {
		return nil, err
	}
	s.cmds = append(s.cmds, Command{Kind: KindClear, Color: c})
	return starlark.None, nil
}

func (s *Script) builtinRect(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y, w, h, clr starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "w", &w, "h", &h, "color", &clr); err != nil {
		return nil, err
	}
	nums, err := toFloats(b.Name(), x, y, w, h)
	if err != nil {
		return nil, err
	}
	c, err := toColor(b.Name(), clr)
	if err != nil {
		return nil, err
	}
	s.cmds = append(s.cmds, Command{Kind: KindRect, X: nums[0], Y: nums[1], W: nums[2], H: nums[3], Color: c})
	return starlark.None, nil
}

func (s *Script) builtinCircle(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y, r, clr starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "r", &r, "color", &clr); err != nil {
		return nil, err
	}
	nums, err := toFloats(b.Name(), x, y, r)
	if err != nil {
		return nil, err
	}
	c, err := toColor(b.Name(), clr)
	if err != nil {
		return nil, err
	}
	s.cmds = append(s.cmds, Command{Kind: KindCircle, X: nums[0], Y: nums[1], R: nums[2], Color: c})
	return starlark.None, nil
}

func (s *Script) builtinLine(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x0, y0, x1, y1, clr starlark.Value
	var width starlark.Value = starlark.MakeInt(1)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x0", &x0, "y0", &y0, "x1", &x1, "y1", &y1, "color", &clr, "width?", &width); err != nil {
		return nil, err
	}
	nums, err := toFloats(b.Name(), x0, y0, x1, y1, width)
	if err != nil {
		return nil, err
	}
	c, err := toColor(b.Name(), clr)
	if err != nil {
		return nil, err
	}
	s.cmds = append(s.cmds, Command{Kind: KindLine, X: nums[0], Y: nums[1], X2: nums[2], Y2: nums[3], Stroke: nums[4], Color: c})
	return starlark.None, nil
}

func (s *Script) builtinText(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y starlark.Value
	var msg string
	var clr starlark.Value = starlark.String("#ffffff")
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "msg", &msg, "color?", &clr); err != nil {
		return nil, err
	}
	nums, err := toFloats(b.Name(), x, y)
	if err != nil {
		return nil, err
	}
	c, err := toColor(b.Name(), clr)
	if err != nil {
		return nil, err
	}
	s.cmds = append(s.cmds, Command{Kind: KindText, X: nums[0], Y: nums[1], Text: msg, Color: c})
	return starlark.None, nil
}

func toFloats(fn string, vals ...starlark.Value) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, ok := starlark.AsFloat(v)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d: want number, got %s", fn, i+1, v.Type())
		}
		out[i] = f
	}
	return out, nil
}

// toColor accepts a palette string or an (r, g, b[, a]) tuple.
func toColor(fn string, v starlark.Value) (color.RGBA, error) {
	switch v := v.(type) {
	case starlark.String:
		c, err := palette.Parse(string(v))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%s: %w", fn, err)
		}
		return c, nil
	case starlark.Tuple:
		if len(v) != 3 && len(v) != 4 {
			return color.RGBA{}, fmt.Errorf("%s: color tuple needs 3 or 4 items, got %d", fn, len(v))
		}
		ch := [4]uint8{0, 0, 0, 255}
		for i, item := range v {
			n, err := starlark.AsInt32(item)
			if err != nil || n < 0 || n > 255 {
				return color.RGBA{}, fmt.Errorf("%s: color channel %d must be an int in 0..255", fn, i)
			}
			ch[i] = uint8(n)
		}
		return color.RGBA{ch[0], ch[1], ch[2], ch[3]}, nil
	}
	return color.RGBA{}, fmt.Errorf("%s: want color string or tuple, got %s", fn, v.Type())
}
