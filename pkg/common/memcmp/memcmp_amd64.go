// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && !purego && !msan && !asan

package memcmp

import (
	"math/bits"
	"unsafe"
)

// VectorPathAvailable reports whether the SSE2 bodies are compiled in. The
// byte-wise bodies are used on other targets, with the purego tag, and under
// msan/asan, which would flag the reads into padding.
const VectorPathAvailable = true

func compare(a, b []byte) int             { return compareVector(a, b) }
func compareSameSize(a, b []byte) int     { return compareSameSizeVector(a, b) }
func compareMultipleOf16(a, b []byte) int { return compareMultipleOf16Vector(a, b) }
func compare16(a, b []byte) int           { return compare16Vector(a, b) }
func equal16(a, b []byte) bool            { return equal16Vector(a, b) }
func equal(a, b []byte) bool              { return equalVector(a, b) }
func isZero(b []byte) bool                { return isZeroVector(b) }

// eqMask16 sets bit i when a[i] == b[i], for i in [0, 16).
//
//go:noescape
func eqMask16(a, b unsafe.Pointer) uint16

// zeroMask16 sets bit i when p[i] == 0, for i in [0, 16).
//
//go:noescape
func zeroMask16(p unsafe.Pointer) uint16

func dataOf(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}

func compareVector(a, b []byte) int {
	size := min(len(a), len(b))
	pa, pb := dataOf(a), dataOf(b)
	for offset := 0; offset < size; offset += blockSize {
		mask := ^eqMask16(unsafe.Add(pa, offset), unsafe.Add(pb, offset))
		if mask != 0 {
			offset += bits.TrailingZeros16(mask)
			if offset >= size {
				break
			}
			return CompareByte(a[offset], b[offset])
		}
	}
	return CompareSize(len(a), len(b))
}

func compareSameSizeVector(a, b []byte) int {
	size := len(a)
	pa, pb := dataOf(a), dataOf(b)
	for offset := 0; offset < size; offset += blockSize {
		mask := ^eqMask16(unsafe.Add(pa, offset), unsafe.Add(pb, offset))
		if mask != 0 {
			offset += bits.TrailingZeros16(mask)
			if offset >= size {
				return 0
			}
			return CompareByte(a[offset], b[offset])
		}
	}
	return 0
}

func compareMultipleOf16Vector(a, b []byte) int {
	size := len(a)
	pa, pb := dataOf(a), dataOf(b)
	for offset := 0; offset < size; offset += blockSize {
		mask := ^eqMask16(unsafe.Add(pa, offset), unsafe.Add(pb, offset))
		if mask != 0 {
			offset += bits.TrailingZeros16(mask)
			return CompareByte(a[offset], b[offset])
		}
	}
	return 0
}

func compare16Vector(a, b []byte) int {
	x, y := (*[blockSize]byte)(a), (*[blockSize]byte)(b)
	mask := ^eqMask16(unsafe.Pointer(x), unsafe.Pointer(y))
	if mask != 0 {
		offset := bits.TrailingZeros16(mask)
		return CompareByte(x[offset], y[offset])
	}
	return 0
}

func equal16Vector(a, b []byte) bool {
	x, y := (*[blockSize]byte)(a), (*[blockSize]byte)(b)
	return eqMask16(unsafe.Pointer(x), unsafe.Pointer(y)) == 0xFFFF
}

func equalVector(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	size := len(a)
	pa, pb := dataOf(a), dataOf(b)
	for offset := 0; offset < size; offset += blockSize {
		mask := ^eqMask16(unsafe.Add(pa, offset), unsafe.Add(pb, offset))
		if mask != 0 {
			offset += bits.TrailingZeros16(mask)
			return offset >= size
		}
	}
	return true
}

func isZeroVector(b []byte) bool {
	size := len(b)
	p := dataOf(b)
	for offset := 0; offset < size; offset += blockSize {
		mask := ^zeroMask16(unsafe.Add(p, offset))
		if mask != 0 {
			offset += bits.TrailingZeros16(mask)
			return offset >= size
		}
	}
	return true
}
