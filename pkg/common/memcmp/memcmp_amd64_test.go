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
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestVectorPathAvailable(t *testing.T) {
	require.True(t, VectorPathAvailable)
}

func TestMask16(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 2000; i++ {
		a := randomKey(r, 16, 2)
		b := randomKey(r, 16, 2)
		var eq, zero uint16
		for j := 0; j < 16; j++ {
			if a[j] == b[j] {
				eq |= 1 << j
			}
			if a[j] == 0 {
				zero |= 1 << j
			}
		}
		require.Equal(t, eq, eqMask16(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0])))
		require.Equal(t, zero, zeroMask16(unsafe.Pointer(&a[0])))
	}
}

// TestVectorScalarEquivalence runs both banks over the same padded inputs.
func TestVectorScalarEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for i := 0; i < 50000; i++ {
		a := randomKey(r, r.Intn(65), 2+r.Intn(255))
		b := randomKey(r, r.Intn(65), 2+r.Intn(255))
		if r.Intn(3) == 0 {
			n := r.Intn(len(a) + 1)
			b = append(append([]byte{}, a[:n]...), b...)
		}
		pa, pb := withPadding(r, a), withPadding(r, b)

		require.Equal(t, compareScalar(a, b), compareVector(pa, pb), "a=%v b=%v", a, b)
		require.Equal(t, equalScalar(a, b), equalVector(pa, pb), "a=%v b=%v", a, b)
		require.Equal(t, isZeroScalar(a), isZeroVector(pa), "a=%v", a)

		m := min(len(a), len(b))
		require.Equal(t,
			compareSameSizeScalar(a[:m], b[:m]),
			compareSameSizeVector(withPadding(r, a[:m]), withPadding(r, b[:m])))

		m &^= blockSize - 1
		require.Equal(t,
			compareMultipleOf16Scalar(a[:m], b[:m]),
			compareMultipleOf16Vector(a[:m:m], b[:m:m]))

		if len(a) >= 16 && len(b) >= 16 {
			require.Equal(t, compare16Scalar(a, b), compare16Vector(a, b))
			require.Equal(t, equal16Scalar(a, b), equal16Vector(a, b))
		}
	}
}

func TestVectorZeroLength(t *testing.T) {
	require.Equal(t, 0, compareVector(nil, nil))
	require.Equal(t, -1, compareVector(nil, Padded([]byte{0})))
	require.True(t, equalVector(nil, Padded(nil)))
	require.True(t, isZeroVector(nil))
	require.Equal(t, 0, compareSameSizeVector(nil, nil))
	require.Equal(t, 0, compareMultipleOf16Vector(nil, nil))
}
