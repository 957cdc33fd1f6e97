package entity_test

import (
	"sync"
	"testing"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_InitialValues(t *testing.T) {
	s := entity.NewSession()

	assert.False(t, s.ContentVisible())
	assert.Equal(t, entity.Slot(1), s.ActiveSlot())
	assert.Equal(t, 50, s.SplitRatio())
}

func TestSession_SetSplitRatioClamps(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -10, want: 35},
		{in: 0, want: 35},
		{in: 34, want: 35},
		{in: 35, want: 35},
		{in: 50, want: 50},
		{in: 65, want: 65},
		{in: 66, want: 65},
		{in: 1000, want: 65},
	}

	for _, tt := range tests {
		s := entity.NewSession()
		got := s.SetSplitRatio(tt.in)
		assert.Equal(t, tt.want, got, "returned value for %d", tt.in)
		assert.Equal(t, tt.want, s.SplitRatio(), "stored value for %d", tt.in)
	}
}

func TestSession_SetActiveSlotRejectsOutOfRange(t *testing.T) {
	s := entity.NewSession()
	require.NoError(t, s.SetActiveSlot(3))

	require.ErrorIs(t, s.SetActiveSlot(0), entity.ErrInvalidSlot)
	require.ErrorIs(t, s.SetActiveSlot(4), entity.ErrInvalidSlot)
	assert.Equal(t, entity.Slot(3), s.ActiveSlot())
}

func TestSession_StoreTransientRatioAllowsFullWidth(t *testing.T) {
	s := entity.NewSession()

	s.StoreTransientRatio(92)
	assert.Equal(t, 92, s.LayoutRatio())
	assert.Equal(t, 92, s.Snapshot().SplitRatio)

	s.StoreTransientRatio(150)
	assert.Equal(t, 100, s.LayoutRatio())
}

func TestSession_TransientRatioNeverLeaksIntoCommitted(t *testing.T) {
	s := entity.NewSession()
	s.SetSplitRatio(40)

	s.StoreTransientRatio(88)
	assert.Equal(t, 40, s.SplitRatio())
	assert.Equal(t, 88, s.LayoutRatio())

	s.EndTransient()
	assert.Equal(t, 40, s.LayoutRatio())
	assert.Equal(t, 40, s.Snapshot().SplitRatio)
}

func TestSession_ResetEndsTransient(t *testing.T) {
	s := entity.NewSession()
	s.StoreTransientRatio(90)

	s.Reset()

	assert.Equal(t, entity.DefaultSplitRatio, s.LayoutRatio())
}

func TestSession_ResetPreservesNothing(t *testing.T) {
	s := entity.NewSession()
	s.SetContentVisible(true)
	require.NoError(t, s.SetActiveSlot(2))
	s.SetSplitRatio(40)

	s.Reset()

	assert.Equal(t, entity.SessionSnapshot{ContentVisible: false, ActiveSlot: 1, SplitRatio: 50}, s.Snapshot())
}

func TestSession_ConcurrentWritesAreVisible(t *testing.T) {
	s := entity.NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.SetSplitRatio(35 + n%31)
			s.SetContentVisible(n%2 == 0)
		}(i)
	}
	wg.Wait()

	ratio := s.SplitRatio()
	assert.GreaterOrEqual(t, ratio, entity.MinSplitRatio)
	assert.LessOrEqual(t, ratio, entity.MaxSplitRatio)
}
