package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/domain/layout"
)

func TestEaseOutQuad(t *testing.T) {
	assert.Equal(t, 0.0, layout.EaseOutQuad(0))
	assert.Equal(t, 0.75, layout.EaseOutQuad(0.5))
	assert.Equal(t, 1.0, layout.EaseOutQuad(1))
}

func TestFrames_Opening(t *testing.T) {
	frames := layout.Frames(layout.Opening, 40, layout.DefaultAnimationSteps)
	require.Len(t, frames, layout.DefaultAnimationSteps+1)

	for i, f := range frames {
		assert.True(t, f.Visible, "frame %d", i)
		assert.GreaterOrEqual(t, f.Ratio, 40)
		assert.LessOrEqual(t, f.Ratio, 100)
		if i > 0 {
			assert.LessOrEqual(t, f.Ratio, frames[i-1].Ratio, "opening ratio must not grow")
		}
	}

	// first step: 100 - 60*(1-(7/8)^2) = 85.9375
	assert.Equal(t, 85, frames[0].Ratio)

	last := frames[len(frames)-1]
	assert.True(t, last.Final)
	assert.Equal(t, 40, last.Ratio)
}

func TestFrames_Closing(t *testing.T) {
	frames := layout.Frames(layout.Closing, 50, layout.DefaultAnimationSteps)
	require.Len(t, frames, layout.DefaultAnimationSteps+1)

	for _, f := range frames[:len(frames)-1] {
		assert.True(t, f.Visible, "content stays visible until the last step")
		assert.False(t, f.Final)
	}
	assert.Equal(t, 100, frames[len(frames)-2].Ratio)

	last := frames[len(frames)-1]
	assert.True(t, last.Final)
	assert.False(t, last.Visible)
	assert.Equal(t, 50, last.Ratio)
}

func TestFrames_ClampsStepCount(t *testing.T) {
	frames := layout.Frames(layout.Opening, 50, 0)
	require.Len(t, frames, 2)
	assert.Equal(t, 50, frames[0].Ratio)
	assert.Equal(t, "opening", layout.Opening.String())
	assert.Equal(t, "closing", layout.Closing.String())
}
