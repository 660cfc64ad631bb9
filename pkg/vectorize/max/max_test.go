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

package max

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

func TestStrMax(t *testing.T) {
	xs := newBytes(t, "b", "abc", "ab", "abd", "bb", "")
	require.Equal(t, []byte("bb"), StrMax(xs))
	require.Equal(t, []byte("abd"), StrMaxSels(xs, []int64{1, 2, 3, 5}))
	require.Equal(t, []byte(""), StrMaxSels(xs, []int64{5}))
}
