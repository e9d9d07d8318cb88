package rhmap

import (
	"math/bits"
	"unsafe"
)

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uintptr) uintptr {
	if v <= 1 {
		return 1
	}

	return uintptr(1) << min(bits.Len(uint(v-1)), bits.UintSize-1)
}

// Estimates capacity (number of slots) from the given memory size in bytes.
// Useful for sizing a table to a memory budget before passing the result to
// New or Reserve.
func CapacityFromSize[K any](size uintptr) int {
	var k K
	sizeOfSlot := unsafe.Sizeof(k)
	if sizeOfSlot == 0 {
		return 0
	}

	return int(size / sizeOfSlot)
}
