// Copyright 2021 Matrix Origin
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

package nulls

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/stretchr/testify/require"
)

func TestNulls(t *testing.T) {
	var nsp Nulls
	require.False(t, Any(&nsp))
	require.False(t, Any(nil))
	require.Equal(t, "[]", String(&nsp))

	Add(&nsp, 1, 5, 9)
	AddRange(&nsp, 20, 23)
	require.True(t, Any(&nsp))
	require.Equal(t, 6, Length(&nsp))
	require.True(t, Contains(&nsp, 21))
	require.False(t, Contains(&nsp, 23))
	require.Equal(t, "[1 5 9 20 21 22]", String(&nsp))

	Del(&nsp, 5, 100)
	require.Equal(t, 5, Length(&nsp))
	require.Equal(t, 2, FilterCount(&nsp, []int64{0, 1, 2, 5, 9}))

	Reset(&nsp)
	require.False(t, Any(&nsp))
}

func TestOr(t *testing.T) {
	var r Nulls
	Or(nil, &Nulls{}, &r)
	require.Nil(t, r.Np)

	a, b := Build(1, 2), Build(2, 7)
	Or(a, nil, &r)
	require.Equal(t, []uint32{1, 2}, r.Np.ToArray())
	r.Np.Add(3)
	require.False(t, Contains(a, 3))

	Or(a, b, &r)
	require.True(t, r.Np.Equals(roaring.BitmapOf(1, 2, 7)))
}
