package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalWithin(t *testing.T) {
	for _, tc := range []struct {
		name string
		i    Interval
		size int
		exp  bool
	}{
		{"whole", Make(0, 3), 4, true},
		{"point", Point(2), 4, true},
		{"negative left", Make(-1, 2), 4, false},
		{"right past end", Make(1, 4), 4, false},
		{"inverted", Make(3, 1), 4, false},
		{"empty tree", Make(0, 0), 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, tc.i.Within(tc.size))
		})
	}
}

func TestIntervalRelations(t *testing.T) {
	outer := Make(2, 9)
	assert.True(t, outer.Contains(Make(2, 9)))
	assert.True(t, outer.Contains(Make(4, 5)))
	assert.False(t, outer.Contains(Make(1, 5)))
	assert.True(t, outer.Overlaps(Make(9, 12)))
	assert.False(t, outer.Overlaps(Make(10, 12)))
	assert.True(t, outer.ContainsPoint(2))
	assert.False(t, outer.ContainsPoint(10))
	assert.Equal(t, 8, outer.Len())
	assert.Equal(t, 0, Make(3, 2).Len())
	assert.True(t, Span(0).Empty())
	assert.Equal(t, "[2, 9]", outer.String())
}

func TestIntervalSplit(t *testing.T) {
	for _, i := range []Interval{Make(0, 1), Make(0, 4), Make(3, 10), Make(5, 6)} {
		l, r := i.Split()
		require.Equal(t, i.Left, l.Left)
		require.Equal(t, i.Right, r.Right)
		require.Equal(t, l.Right+1, r.Left)
		require.Equal(t, i.Len(), l.Len()+r.Len())
		require.LessOrEqual(t, r.Len(), l.Len())
		require.False(t, l.Empty())
		require.False(t, r.Empty())
	}
}
