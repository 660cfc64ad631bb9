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

// Package memcmp implements comparison primitives for short byte keys:
// ordering, equality and the all-zero test used by sort, group and hash
// operators.
//
// The overflow-tolerant functions read whole 16-byte blocks and may load up
// to PaddingSize bytes past len(b). Callers must hand them slices with
// cap(b)-len(b) >= PaddingSize. Slices taken from a types.Bytes column always
// satisfy this; foreign keys can be passed through Padded first. The content
// of the padding never affects a result.
//
// Whether the SSE2 bodies or the byte-wise bodies are compiled in is decided
// by build constraints, see VectorPathAvailable.
package memcmp

// PaddingSize is the number of readable bytes that must follow len(b).
const PaddingSize = 15

const blockSize = 16

// CompareByte returns -1, 0 or +1.
func CompareByte(x, y byte) int {
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	return 0
}

// CompareSize returns -1, 0 or +1.
func CompareSize(x, y int) int {
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	return 0
}

// HasPadding reports whether b may be passed to the overflow-tolerant
// functions.
func HasPadding(b []byte) bool {
	return cap(b)-len(b) >= PaddingSize
}

// Padded returns b if it already has PaddingSize spare capacity, otherwise a
// padded copy of it.
func Padded(b []byte) []byte {
	if HasPadding(b) {
		return b
	}
	p := make([]byte, len(b), len(b)+PaddingSize)
	copy(p, b)
	return p
}

// Compare orders a and b lexicographically by unsigned byte value. When one
// is a prefix of the other the shorter one sorts first.
//
// Both slices must be padded.
func Compare(a, b []byte) int {
	return compare(a, b)
}

// CompareSameSize is Compare for callers that already know
// len(a) == len(b). Only len(a) bytes are compared.
//
// Both slices must be padded.
func CompareSameSize(a, b []byte) int {
	return compareSameSize(a, b)
}

// CompareMultipleOf16 is CompareSameSize for sizes that are a multiple of 16.
// Since no block crosses len(a) no padding is required.
func CompareMultipleOf16(a, b []byte) int {
	return compareMultipleOf16(a, b)
}

// Compare16 compares the first 16 bytes of a and b. It panics if either is
// shorter than 16 bytes.
func Compare16(a, b []byte) int {
	return compare16(a, b)
}

// Equal16 reports whether the first 16 bytes of a and b are identical. It
// panics if either is shorter than 16 bytes.
func Equal16(a, b []byte) bool {
	return equal16(a, b)
}

// Equal reports whether a and b hold the same bytes. Equal(a, b) is always
// Compare(a, b) == 0.
//
// Both slices must be padded.
func Equal(a, b []byte) bool {
	return equal(a, b)
}

// IsZero reports whether every byte of b is 0. An empty b is zero.
//
// b must be padded.
func IsZero(b []byte) bool {
	return isZero(b)
}
