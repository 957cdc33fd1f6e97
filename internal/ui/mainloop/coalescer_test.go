package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey Key = "layout"

func TestCoalescerMergesBurstIntoSingleTask(t *testing.T) {
	var q Queue
	c := NewCoalescer(q.Post)

	value := 0
	scheduled := 0
	for i := 1; i <= 5; i++ {
		v := i
		if c.Post(testKey, func() { value = v }) {
			scheduled++
		}
	}

	assert.Equal(t, 1, scheduled)
	assert.Equal(t, 1, q.Len())
	assert.True(t, c.Pending(testKey))

	assert.Equal(t, 1, q.Drain())
	assert.Equal(t, 5, value, "latest callback wins")
	assert.False(t, c.Pending(testKey))
}

func TestCoalescerSeparateKeysScheduleSeparately(t *testing.T) {
	var q Queue
	c := NewCoalescer(q.Post)

	var order []string
	c.Post("a", func() { order = append(order, "a") })
	c.Post("b", func() { order = append(order, "b") })

	assert.Equal(t, 2, q.Drain())
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestCoalescerPostAfterRunSchedulesAgain(t *testing.T) {
	var q Queue
	c := NewCoalescer(q.Post)

	runs := 0
	c.Post(testKey, func() { runs++ })
	q.Drain()
	c.Post(testKey, func() { runs++ })
	q.Drain()

	assert.Equal(t, 2, runs)
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	var q Queue
	c := NewCoalescer(q.Post)

	ran := false
	c.Post(testKey, func() { ran = true })
	c.Destroy()

	require.Equal(t, 1, q.Len())
	q.Drain()
	assert.False(t, ran)

	assert.False(t, c.Post(testKey, func() { ran = true }))
	assert.Equal(t, 0, q.Len())
}

func TestCoalescerIgnoresEmptyInput(t *testing.T) {
	var q Queue
	c := NewCoalescer(q.Post)

	assert.False(t, c.Post("", func() {}))
	assert.False(t, c.Post(testKey, nil))
	assert.Equal(t, 0, q.Len())
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}

func TestQueueDrainRunsTasksPostedWhileDraining(t *testing.T) {
	var q Queue
	var order []int
	q.Post(func() {
		order = append(order, 1)
		q.Post(func() { order = append(order, 3) })
	})
	q.Post(func() { order = append(order, 2) })

	assert.Equal(t, 3, q.Drain())
	assert.Equal(t, []int{1, 2, 3}, order)
}
