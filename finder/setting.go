package finder

import (
	"fmt"
	"strconv"
)

// Setting is a named generator parameter. Values cross this boundary as
// strings so presentation layers can populate a control from Options and
// write back whatever the user picked; SetValue validates against the legal
// set and fails on anything else.
type Setting interface {
	Name() string
	ToolTip() string
	Options() []string
	Value() string
	SetValue(value string) error
}

// IntSetting is a setting over a contiguous integer range.
type IntSetting struct {
	name     string
	toolTip  string
	min, max int
	cur      int
	onChange func(name, value string)
}

// NewIntSetting builds an integer setting with an initial value and an
// inclusive legal range.
func NewIntSetting(name string, init, min, max int) *IntSetting {
	return &IntSetting{name: name, min: min, max: max, cur: init}
}

func (s *IntSetting) Name() string    { return s.name }
func (s *IntSetting) ToolTip() string { return s.toolTip }

// SetToolTip attaches help text for presentation layers.
func (s *IntSetting) SetToolTip(tip string) { s.toolTip = tip }

// Options enumerates the legal values in ascending order.
func (s *IntSetting) Options() []string {
	res := make([]string, 0, s.max-s.min+1)
	for v := s.min; v <= s.max; v++ {
		res = append(res, strconv.Itoa(v))
	}
	return res
}

func (s *IntSetting) Value() string { return strconv.Itoa(s.cur) }

// Int returns the current value.
func (s *IntSetting) Int() int { return s.cur }

// SetValue parses and range-checks the value, firing the change callback only
// on an actual change.
func (s *IntSetting) SetValue(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("setting %q: %q is not an integer", s.name, value)
	}
	if v < s.min || v > s.max {
		return fmt.Errorf("setting %q: %d is outside %d..%d", s.name, v, s.min, s.max)
	}
	if v == s.cur {
		return nil
	}
	s.cur = v
	if s.onChange != nil {
		s.onChange(s.name, value)
	}
	return nil
}

func (s *IntSetting) onValueChange(fn func(name, value string)) { s.onChange = fn }

// EnumSetting is a setting over a fixed set of string options.
type EnumSetting struct {
	name     string
	toolTip  string
	options  []string
	cur      string
	onChange func(name, value string)
}

// NewEnumSetting builds an enum setting with an initial value and its legal
// options.
func NewEnumSetting(name, init string, options []string) *EnumSetting {
	return &EnumSetting{name: name, options: options, cur: init}
}

func (s *EnumSetting) Name() string    { return s.name }
func (s *EnumSetting) ToolTip() string { return s.toolTip }

// SetToolTip attaches help text for presentation layers.
func (s *EnumSetting) SetToolTip(tip string) { s.toolTip = tip }

func (s *EnumSetting) Options() []string {
	return append([]string(nil), s.options...)
}

func (s *EnumSetting) Value() string { return s.cur }

// SetValue rejects values outside the option set and fires the change
// callback only on an actual change.
func (s *EnumSetting) SetValue(value string) error {
	found := false
	for _, opt := range s.options {
		if opt == value {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("setting %q: %q is not a legal value", s.name, value)
	}
	if value == s.cur {
		return nil
	}
	s.cur = value
	if s.onChange != nil {
		s.onChange(s.name, value)
	}
	return nil
}

func (s *EnumSetting) onValueChange(fn func(name, value string)) { s.onChange = fn }

// changeNotifier is implemented by both setting kinds so generators can wire
// settings to their own change signal.
type changeNotifier interface {
	onValueChange(fn func(name, value string))
}
