package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	l := Labels()
	assert.Len(t, l, Steps)
	assert.Equal(t, "10:00 PM", l[0])
	assert.Equal(t, "10:05 PM", l[1])
	assert.Equal(t, "10:55 PM", l[11])
	assert.Equal(t, "11:00 PM", l[12])
	assert.Equal(t, "11:55 PM", l[23])
	assert.Equal(t, Midnight, l[24])

	l[0] = "changed"
	assert.Equal(t, "10:00 PM", Labels()[0])
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		turnsLeft int
		want      string
	}{
		{20, "10:00 PM"},
		{19, "10:05 PM"},
		{8, "11:00 PM"},
		{0, "11:40 PM"},
		{-3, "11:55 PM"},
		{-4, Midnight},
		{-12, Midnight},
		{25, "10:00 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeOfDay(20, tt.turnsLeft), "turns left %d", tt.turnsLeft)
	}
}

func TestIndexIsClamped(t *testing.T) {
	assert.Equal(t, 0, Index(20, 40))
	assert.Equal(t, Steps-1, Index(20, -100))
}
