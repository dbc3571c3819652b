package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBorderRadiusCSS(t *testing.T) {
	assert.Equal(t, "0", BorderRadiusCSS("none"))
	assert.Equal(t, "8px", BorderRadiusCSS("small"))
	assert.Equal(t, "12px", BorderRadiusCSS("medium"))
	assert.Equal(t, "16px", BorderRadiusCSS("large"))
	assert.Equal(t, "9999px", BorderRadiusCSS("full"))

	// Absent or unknown tokens fall back to small.
	assert.Equal(t, "8px", BorderRadiusCSS(""))
	assert.Equal(t, "8px", BorderRadiusCSS("bogus"))
}

func TestShadowCSS(t *testing.T) {
	assert.Equal(t, "none", ShadowCSS("none"))
	assert.Equal(t, "none", ShadowCSS(""))
	assert.NotEqual(t, ShadowCSS("sm"), ShadowCSS("lg"))
}

func TestSpacingCSS(t *testing.T) {
	assert.Equal(t, "6px", SpacingCSS("small"))
	assert.Equal(t, "10px", SpacingCSS("medium"))
	assert.Equal(t, "10px", SpacingCSS(""))
	assert.Equal(t, "16px", SpacingCSS("large"))
}

func TestAspectRatioCSS(t *testing.T) {
	assert.Equal(t, "16 / 9", AspectRatioCSS(""))
	assert.Equal(t, "16 / 9", AspectRatioCSS("16:9"))
	assert.Equal(t, "9 / 16", AspectRatioCSS("9:16"))
	assert.Equal(t, "1 / 1", AspectRatioCSS("1:1"))
}
