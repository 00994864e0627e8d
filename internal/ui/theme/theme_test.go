package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUse(t *testing.T) {
	t.Cleanup(func() { Use(false) })

	Use(true)
	assert.Equal(t, Dark.Primary, Primary)
	assert.Equal(t, Dark.Text, Text)
	assert.Equal(t, Dark.Primary, Title.GetForeground())

	Use(false)
	assert.Equal(t, Light.Primary, Primary)
	assert.Equal(t, Light.Error, Incorrect.GetForeground())
}

func TestPalettesDiffer(t *testing.T) {
	assert.NotEqual(t, Dark.Text, Light.Text)
	assert.NotEqual(t, Dark.BgCard, Light.BgCard)
}
