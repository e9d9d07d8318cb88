package rhmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		name string
		v    uintptr
		want uintptr
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"two", 2, 2},
		{"three", 3, 4},
		{"four", 4, 4},
		{"five", 5, 8},
		{"just below", 1023, 1024},
		{"exact", 1024, 1024},
		{"just above", 1025, 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextPowerOf2(tt.v))
		})
	}
}

func TestCapacityFromSize(t *testing.T) {
	t.Run("uint64", func(t *testing.T) {
		require.Equal(t, 128, CapacityFromSize[uint64](1024))
	})

	t.Run("string", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof("")

		require.Equal(t, 10, CapacityFromSize[string](sizeOfSlot*10))
	})

	t.Run("entry", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(Entry[int, int]{})

		require.Equal(t, 8, CapacityFromSize[Entry[int, int]](sizeOfSlot*8))
	})

	t.Run("zero size slot", func(t *testing.T) {
		require.Equal(t, 0, CapacityFromSize[struct{}](1024))
	})

	t.Run("usage with New", func(t *testing.T) {
		capacity := CapacityFromSize[uint64](512)
		require.Equal(t, 64, capacity)

		tt := New[uint64](0, capacity)
		require.Equal(t, 64, tt.Cap())
	})
}
