package ngram

import (
	"testing"

	"github.com/forestrie/go-ngramcps/tm"
	"github.com/stretchr/testify/assert"
)

func TestLocalContextPush(t *testing.T) {
	const all31 = uint64(0x7FFFFFFFFFFFFFFF)
	tests := []struct {
		name   string
		r      Radius
		window uint64
		dir    tm.Dir
		bit    tm.Bit
		want   uint64
	}{
		{"r1 left 0", 1, 0b101, tm.Left, tm.Zero, 0b010},
		{"r1 left 1", 1, 0b101, tm.Left, tm.One, 0b011},
		{"r1 right 0", 1, 0b101, tm.Right, tm.Zero, 0b010},
		{"r1 right 1", 1, 0b101, tm.Right, tm.One, 0b110},
		{"r4 left drops the rightmost cell", 4, 0x100, tm.Left, tm.Zero, 0},
		{"r4 right drops the leftmost cell", 4, 0x001, tm.Right, tm.Zero, 0},
		{"r31 left 0", 31, all31, tm.Left, tm.Zero, all31 - 1},
		{"r31 left 1", 31, all31, tm.Left, tm.One, all31},
		{"r31 right 0", 31, all31, tm.Right, tm.Zero, all31 >> 1},
		{"r31 right 1 on blank", 31, 0, tm.Right, tm.One, 1 << 62},
		{"r31 left 1 on blank", 31, 0, tm.Left, tm.One, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := LocalContext{State: 3, Window: tt.window}
			got := c.Push(tt.dir, tt.bit, tt.r)
			assert.Equal(t, tt.want, got.Window)
			assert.Equal(t, tm.State(3), got.State, "push never changes the state")
			assert.Zero(t, got.Window>>WindowWidth(tt.r), "no bits above the window")
		})
	}
}

func TestLocalContextEdges(t *testing.T) {
	tests := []struct {
		name   string
		r      Radius
		window uint64
		left   NGram
		center tm.Bit
		right  NGram
	}{
		{"r1 101", 1, 0b101, 1, tm.Zero, 1},
		{"r1 010", 1, 0b010, 0, tm.One, 0},
		{"r1 110", 1, 0b110, 0, tm.One, 1},
		{"r4 center only", 4, 0x10, 0, tm.One, 0},
		{"r4 left only", 4, 0x0F, 0xF, tm.Zero, 0},
		{"r4 right only", 4, 0x1E0, 0, tm.Zero, 0xF},
		{"r4 nearest cells", 4, 0x28, 0x8, tm.Zero, 0x1},
		{"r31 left half", 31, 0x7FFFFFFF, 0x7FFFFFFF, tm.Zero, 0},
		{"r31 center", 31, 0x80000000, 0, tm.One, 0},
		{"r31 rightmost", 31, 1 << 62, 0, tm.Zero, 1 << 30},
		{"r31 full", 31, 0x7FFFFFFFFFFFFFFF, 0x7FFFFFFF, tm.One, 0x7FFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := LocalContext{State: tm.StateA, Window: tt.window}
			assert.Equal(t, tt.left, c.Edge(tm.Left, tt.r))
			assert.Equal(t, tt.center, c.Center(tt.r))
			assert.Equal(t, tt.right, c.Edge(tm.Right, tt.r))
		})
	}
}

func TestLocalContextWriteCenter(t *testing.T) {
	c := LocalContext{State: tm.StateA, Window: 0}
	got := c.WriteCenter(tm.One, 2, 4)
	assert.Equal(t, LocalContext{State: 2, Window: 0x10}, got)

	c = LocalContext{State: tm.StateA, Window: 0x1FF}
	got = c.WriteCenter(tm.Zero, 5, 4)
	assert.Equal(t, LocalContext{State: 5, Window: 0x1EF}, got)
	assert.Equal(t, NGram(0xF), got.Edge(tm.Left, 4), "edges are untouched")
	assert.Equal(t, NGram(0xF), got.Edge(tm.Right, 4), "edges are untouched")

	c = LocalContext{State: tm.StateA, Window: 0x80000000}
	assert.Equal(t, uint64(0x80000000), c.WriteCenter(tm.One, 1, 31).Window)
	assert.Equal(t, uint64(0), c.WriteCenter(tm.Zero, 1, 31).Window)
}

func TestPushExposesEdge(t *testing.T) {
	// the bit pushed on a side becomes the outermost cell of that side's edge
	for _, r := range []Radius{1, 2, 4, 31} {
		blank := BlankContext()
		assert.Equal(t, NGram(1), blank.Push(tm.Left, tm.One, r).Edge(tm.Left, r), "r=%d", r)
		assert.Equal(t, NGram(1)<<(r-1), blank.Push(tm.Right, tm.One, r).Edge(tm.Right, r), "r=%d", r)

		// the center moves to the nearest cell of the trailing side
		c := blank.WriteCenter(tm.One, tm.StateA, r)
		assert.Equal(t, NGram(1), c.Push(tm.Right, tm.Zero, r).Edge(tm.Left, r)>>(r-1), "r=%d", r)
		assert.Equal(t, NGram(1), c.Push(tm.Left, tm.Zero, r).Edge(tm.Right, r), "r=%d", r)
	}
}

func TestCompare(t *testing.T) {
	a := LocalContext{State: 1, Window: 9}
	b := LocalContext{State: 2, Window: 0}
	c := LocalContext{State: 2, Window: 1}
	assert.Negative(t, Compare(a, b))
	assert.Negative(t, Compare(b, c))
	assert.Positive(t, Compare(c, a))
	assert.Zero(t, Compare(c, c))
}

func TestFormat(t *testing.T) {
	c := LocalContext{State: tm.StateA, Window: 0b00110}
	assert.Equal(t, "01[A1]00", c.Format(2))
	assert.Equal(t, "10", NGram(0b01).Format(2))
	assert.Equal(t, "0[B0]0", LocalContext{State: 2}.Format(1))
}
