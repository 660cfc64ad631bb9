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

package eq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/keycmp/pkg/container/types"
)

func newBytes(t *testing.T, vs ...string) *types.Bytes {
	xs := types.NewBytes(len(vs), 0)
	for _, v := range vs {
		xs.AppendOnce([]byte(v))
	}
	return xs
}

func TestStrEq(t *testing.T) {
	xs := newBytes(t, "a", "abc", "", "0123456789abcdefg", "x")
	ys := newBytes(t, "a", "abd", "", "0123456789abcdefg", "xy")
	rs := make([]int64, xs.Length())
	require.Equal(t, []int64{0, 2, 3}, StrEq(xs, ys, rs))
	require.Equal(t, []int64{2, 3}, StrEqSels(xs, ys, rs, []int64{1, 2, 3, 4}))
}

func TestStrEqScalar(t *testing.T) {
	ys := newBytes(t, "abc", "ab", "abc", "abcd")
	rs := make([]int64, ys.Length())
	// the constant has no spare capacity
	x := []byte("abc")[:3:3]
	require.Equal(t, []int64{0, 2}, StrEqScalar(x, ys, rs))
	require.Equal(t, []int64{2}, StrEqScalarSels(x, ys, rs, []int64{1, 2, 3}))
}
