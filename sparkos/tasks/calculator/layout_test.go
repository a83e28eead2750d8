package calculator

import (
	"image"
	"strings"
	"testing"

	"sparkcalc/sparkos/calc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func TestLayoutDefaultFrame(t *testing.T) {
	l, ok := NewLayout(300, 400)
	require.True(t, ok)

	assert.Equal(t, image.Rect(10, 10, 290, 60), l.Display)
	assert.Equal(t, "7", l.Buttons[0].Label)
	assert.Equal(t, calc.LabelClear, l.Buttons[19].Label)

	first := l.Buttons[0].Rect
	second := l.Buttons[1].Rect
	below := l.Buttons[4].Rect
	assert.Equal(t, gap, second.Min.X-first.Max.X)
	assert.Equal(t, gap, below.Min.Y-first.Max.Y)
	assert.Equal(t, first.Size(), l.Buttons[19].Rect.Size())
	assert.LessOrEqual(t, l.Buttons[19].Rect.Max.Y, 400-margin)
	assert.LessOrEqual(t, l.Buttons[19].Rect.Max.X, 300-margin)
	assert.GreaterOrEqual(t, l.ButtonScale, 1)
	assert.Equal(t, 4, l.DisplayScale)
}

func TestHitTestCentersAndGaps(t *testing.T) {
	l, ok := NewLayout(300, 400)
	require.True(t, ok)

	for i, b := range l.Buttons {
		x, y := center(b.Rect)
		got, hit := l.HitTest(x, y)
		require.True(t, hit, "button %q", b.Label)
		assert.Equal(t, i, got)
	}

	r := l.Buttons[0].Rect
	_, hit := l.HitTest(r.Max.X+gap/2, r.Min.Y+1)
	assert.False(t, hit, "gap between columns")
	_, hit = l.HitTest(r.Min.X+1, r.Max.Y+gap/2)
	assert.False(t, hit, "gap between rows")
	_, hit = l.HitTest(center(l.Display))
	assert.False(t, hit, "display field")
	_, hit = l.HitTest(-5, -5)
	assert.False(t, hit)
}

func TestLayoutScalesWithFrame(t *testing.T) {
	small, ok := NewLayout(160, 200)
	require.True(t, ok)
	big, ok := NewLayout(600, 800)
	require.True(t, ok)
	assert.Greater(t, big.Buttons[0].Rect.Dx(), small.Buttons[0].Rect.Dx())
	assert.GreaterOrEqual(t, big.ButtonScale, small.ButtonScale)

	_, ok = NewLayout(40, 40)
	assert.False(t, ok)
}

func TestFitTextShrinksThenClips(t *testing.T) {
	l, ok := NewLayout(300, 400)
	require.True(t, ok)

	text, scale := l.FitText("7")
	assert.Equal(t, "7", text)
	assert.Equal(t, l.DisplayScale, scale)

	text, scale = l.FitText("0.30000000000000004")
	assert.Equal(t, "0.30000000000000004", text)
	assert.Less(t, scale, l.DisplayScale)

	long := strings.Repeat("1234567890", 10)
	text, scale = l.FitText(long)
	assert.Equal(t, 1, scale)
	assert.True(t, strings.HasSuffix(long, text))
	assert.Less(t, len(text), len(long))

	text, _ = l.FitText("")
	assert.Empty(t, text)
}
