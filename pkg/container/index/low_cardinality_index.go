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

	"github.com/matrixorigin/keycmp/pkg/container/index/dict"
	"github.com/matrixorigin/keycmp/pkg/container/nulls"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

const (
	MaxLowCardinality = dict.MaxCardinality + 1
)

type LowCardinalityIndex struct {
	dict *dict.Dict
	// poses is the positions of original data in the dictionary.
	// The position of `null` value is 0.
	poses []uint16

	sels  [][]int64 // sels[0] -> null values
	rowid int

	ref int
}

func NewLowCardinalityIndex() *LowCardinalityIndex {
	return &LowCardinalityIndex{
		dict:  dict.New(),
		sels:  make([][]int64, MaxLowCardinality),
		rowid: 0,
		ref:   1,
	}
}

func (idx *LowCardinalityIndex) GetSels() [][]int64 {
	return idx.sels
}

func (idx *LowCardinalityIndex) UpdateSels(data []uint16, flags []uint8) {
	cnt := 0
	for i, v := range data {
		if flags != nil && flags[i] == 0 {
			continue
		}
		if len(idx.sels[v]) == 0 {
			idx.sels[v] = make([]int64, 0, 64)
		}
		idx.sels[v] = append(idx.sels[v], int64(i+idx.rowid))
		cnt++
	}
	idx.rowid += cnt
}

func (idx *LowCardinalityIndex) GetPoses() []uint16 {
	return idx.poses
}

func (idx *LowCardinalityIndex) GetDict() *dict.Dict {
	return idx.dict
}

func (idx *LowCardinalityIndex) Dup() *LowCardinalityIndex {
	idx.ref++
	return idx
}

func (idx *LowCardinalityIndex) DupEmpty() *LowCardinalityIndex {
	return &LowCardinalityIndex{
		dict:  idx.dict.Dup(),
		sels:  make([][]int64, MaxLowCardinality),
		rowid: 0,
		ref:   1,
	}
}

// InsertBatch appends the rows of data. Null rows get position 0.
func (idx *LowCardinalityIndex) InsertBatch(ctx context.Context, data *types.Bytes, nsp *nulls.Nulls) error {
	originalLen := data.Length()
	if !nulls.Any(nsp) {
		ips, err := idx.dict.InsertBatch(ctx, data)
		if err != nil {
			return err
		}
		idx.UpdateSels(ips, nil)
		idx.poses = append(idx.poses, ips...)
		return nil
	}

	valid := types.NewBytes(originalLen, 0)
	for i := 0; i < originalLen; i++ {
		if !nulls.Contains(nsp, uint64(i)) {
			if err := valid.AppendOnce(data.Get(int64(i))); err != nil {
				return err
			}
		}
	}
	values, err := idx.dict.InsertBatch(ctx, valid)
	if err != nil {
		return err
	}

	i := 0
	ips := make([]uint16, originalLen)
	for j := 0; j < originalLen; j++ {
		if !nulls.Contains(nsp, uint64(j)) {
			ips[j] = values[i]
			i++
		}
	}
	idx.UpdateSels(ips, nil)
	idx.poses = append(idx.poses, ips...)
	return nil
}

// Encode uses the dictionary of the current index to encode src.
func (idx *LowCardinalityIndex) Encode(dst []uint16, src *types.Bytes) []uint16 {
	return append(dst, idx.dict.FindBatch(src)...)
}

func (idx *LowCardinalityIndex) Free() {
	if idx.ref == 0 {
		return
	}
	idx.ref--
	if idx.ref > 0 {
		return
	}

	idx.poses = nil
	idx.dict.Free()
}
