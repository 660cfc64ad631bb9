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

package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/keycmp/pkg/container/nulls"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

func column(vs ...string) *types.Bytes {
	xs := types.NewBytes(len(vs), 0)
	for _, v := range vs {
		xs.AppendOnce([]byte(v))
	}
	return xs
}

func TestLowCardinalityIndex(t *testing.T) {
	idx := NewLowCardinalityIndex()
	defer idx.Free()

	ctx := context.Background()
	require.NoError(t, idx.InsertBatch(ctx, column("a", "b", "a"), nil))
	require.NoError(t, idx.InsertBatch(ctx, column("c", "", "b", "a"), nulls.Build(1)))

	require.Equal(t, []uint16{1, 2, 1, 3, 0, 2, 1}, idx.GetPoses())
	require.Equal(t, uint64(3), idx.GetDict().Cardinality())

	sels := idx.GetSels()
	require.Equal(t, []int64{4}, sels[0])
	require.Equal(t, []int64{0, 2, 6}, sels[1])
	require.Equal(t, []int64{1, 5}, sels[2])
	require.Equal(t, []int64{3}, sels[3])
}

func TestLowCardinalityIndexEncode(t *testing.T) {
	idx := NewLowCardinalityIndex()
	defer idx.Free()

	require.NoError(t, idx.InsertBatch(context.Background(), column("x", "y"), nil))
	dst := idx.Encode(nil, column("y", "q", "x"))
	require.Equal(t, []uint16{2, 0, 1}, dst)

	empty := idx.DupEmpty()
	defer empty.Free()
	require.Empty(t, empty.GetPoses())
	require.Equal(t, uint64(2), empty.GetDict().Cardinality())
}
