package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntSettingRangeValidation(t *testing.T) {
	assert := assert.New(t)

	s := NewIntSetting("Distance", 0, 0, 2)
	assert.Equal([]string{"0", "1", "2"}, s.Options())
	assert.Equal("0", s.Value())

	assert.NoError(s.SetValue("2"))
	assert.Equal(2, s.Int())

	assert.Error(s.SetValue("3"))
	assert.Error(s.SetValue("-1"))
	assert.Error(s.SetValue("two"))
	assert.Equal(2, s.Int())
}

func TestIntSettingChangeCallback(t *testing.T) {
	assert := assert.New(t)

	s := NewIntSetting("Distance", 0, 0, 2)
	fired := 0
	s.onValueChange(func(name, value string) {
		fired++
		assert.Equal("Distance", name)
	})

	assert.NoError(s.SetValue("1"))
	assert.Equal(1, fired)

	// Re-setting the current value is a no-op.
	assert.NoError(s.SetValue("1"))
	assert.Equal(1, fired)
}

func TestEnumSettingMembershipValidation(t *testing.T) {
	assert := assert.New(t)

	s := NewEnumSetting("Key", "C", []string{"C", "D", "E"})
	assert.Equal("C", s.Value())

	assert.NoError(s.SetValue("D"))
	assert.Equal("D", s.Value())

	assert.Error(s.SetValue("F"))
	assert.Equal("D", s.Value())
}

func TestSettingToolTip(t *testing.T) {
	assert := assert.New(t)

	s := NewIntSetting("Distance", 0, 0, 2)
	s.SetToolTip("how far to search")
	assert.Equal("how far to search", s.ToolTip())
}
