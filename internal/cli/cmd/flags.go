package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/swipenav/internal/domain/entity"
)

// defaultViewport matches a narrow browser pane.
var defaultViewport = entity.Sz(300, 600)

// viewportValue is a pflag.Value parsing WIDTHxHEIGHT.
type viewportValue struct {
	size entity.Size
}

func newViewportValue() *viewportValue {
	return &viewportValue{size: defaultViewport}
}

func (v *viewportValue) String() string {
	return strconv.FormatFloat(v.size.Width, 'f', -1, 64) + "x" + strconv.FormatFloat(v.size.Height, 'f', -1, 64)
}

func (v *viewportValue) Set(s string) error {
	size, err := parseViewport(s)
	if err != nil {
		return err
	}
	v.size = size
	return nil
}

func (*viewportValue) Type() string {
	return "WxH"
}

func parseViewport(s string) (entity.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return entity.Size{}, fmt.Errorf("invalid viewport %q: expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return entity.Size{}, fmt.Errorf("invalid viewport width %q: %w", w, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return entity.Size{}, fmt.Errorf("invalid viewport height %q: %w", h, err)
	}
	if width < 0 || height < 0 {
		return entity.Size{}, fmt.Errorf("invalid viewport %q: negative dimension", s)
	}
	return entity.Sz(width, height), nil
}

// sideValue is a pflag.Value accepting back/left or forward/right.
type sideValue struct {
	side entity.Side
}

func (v *sideValue) String() string {
	return v.side.String()
}

func (v *sideValue) Set(s string) error {
	side, ok := entity.ParseSide(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return fmt.Errorf("invalid side %q: expected back or forward", s)
	}
	v.side = side
	return nil
}

func (*sideValue) Type() string {
	return "side"
}
