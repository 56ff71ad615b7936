package nlu

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/config"
)

func TestWindow(t *testing.T) {
	t.Run("evicts oldest beyond capacity", func(t *testing.T) {
		w := NewWindow(3)
		for i := 1; i <= 5; i++ {
			w.Add(Turn{Role: "user", Content: fmt.Sprintf("turn %d", i)})
		}

		turns := w.Turns()
		require.Len(t, turns, 3)
		assert.Equal(t, "turn 3", turns[0].Content)
		assert.Equal(t, "turn 5", turns[2].Content)
	})

	t.Run("length never exceeds capacity", func(t *testing.T) {
		w := NewWindow(2)
		for i := 0; i < 100; i++ {
			w.Add(Turn{Content: "x"})
			assert.LessOrEqual(t, w.Len(), 2)
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		w := NewWindow(3)
		w.Add(Turn{Content: "original"})

		turns := w.Turns()
		turns[0].Content = "mutated"
		assert.Equal(t, "original", w.Turns()[0].Content)
	})

	t.Run("clear empties the window", func(t *testing.T) {
		w := NewWindow(3)
		w.Add(Turn{Content: "a"})
		w.Clear()
		assert.Zero(t, w.Len())
	})

	t.Run("zero capacity falls back to default", func(t *testing.T) {
		w := NewWindow(0)
		for i := 0; i < defaultHistorySize+5; i++ {
			w.Add(Turn{Content: "x"})
		}
		assert.Equal(t, defaultHistorySize, w.Len())
	})

	t.Run("concurrent adds stay bounded", func(t *testing.T) {
		w := NewWindow(10)
		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					w.Add(Turn{Content: "c"})
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 10, w.Len())
	})
}

func TestMemory(t *testing.T) {
	mem := NewMemory(&config.NLUConfig{HistorySize: 4})

	t.Run("windows are per user", func(t *testing.T) {
		mem.Window("alice").Add(Turn{Content: "hello"})
		assert.Equal(t, 1, mem.Window("alice").Len())
		assert.Zero(t, mem.Window("bob").Len())
	})

	t.Run("same window returned across calls", func(t *testing.T) {
		assert.Same(t, mem.Window("alice"), mem.Window("alice"))
	})

	t.Run("forget drops the window", func(t *testing.T) {
		mem.Window("carol").Add(Turn{Content: "x"})
		mem.Forget("carol")
		assert.Zero(t, mem.Window("carol").Len())
	})
}
