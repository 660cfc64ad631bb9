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

package iszero

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/keycmp/pkg/container/types"
)

func newBytes(t *testing.T, vs ...[]byte) *types.Bytes {
	xs := types.NewBytes(len(vs), 0)
	require.NoError(t, xs.Append(vs))
	return xs
}

func TestIsZero(t *testing.T) {
	tt := []struct {
		name string
		xs   [][]byte
		want []uint8
	}{
		{
			name: "Not Zero",
			xs:   [][]byte{[]byte("Hello"), {0, 0, 1}, {1}, append(make([]byte, 31), 7)},
			want: []uint8{0, 0, 0, 0},
		},
		{
			name: "Zero",
			xs:   [][]byte{{}, {0}, make([]byte, 16), make([]byte, 33)},
			want: []uint8{1, 1, 1, 1},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			xs := newBytes(t, tc.xs...)
			require.Equal(t, tc.want, IsZero(xs, make([]uint8, len(tc.xs))))
		})
	}
}

func TestSelections(t *testing.T) {
	xs := newBytes(t, []byte{0, 0}, []byte("a"), nil, []byte{0, 9}, make([]byte, 20))
	require.Equal(t, []int64{0, 2, 4}, StrIsZero(xs, make([]int64, xs.Length())))
	require.Equal(t, []int64{1, 3}, StrNotZero(xs, make([]int64, xs.Length())))

	bm := ZeroBitmap(xs)
	require.Equal(t, uint64(3), bm.GetCardinality())
	require.True(t, bm.Contains(0))
	require.False(t, bm.Contains(1))
	require.True(t, bm.Contains(4))
}
