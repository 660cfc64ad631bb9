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

package dict

import (
	"context"
	"math"

	"github.com/matrixorigin/keycmp/pkg/common/moerr"
	"github.com/matrixorigin/keycmp/pkg/container/hashtable"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

// MaxCardinality is the largest number of distinct values a Dict can hold.
// Position 0 is reserved for null.
const MaxCardinality = math.MaxUint16

// Dict assigns each distinct key a position in [1, MaxCardinality].
type Dict struct {
	idx    *hashtable.StringHashMap
	unique *types.Bytes

	ref int
}

func New() *Dict {
	idx := &hashtable.StringHashMap{}
	idx.Init()
	return &Dict{
		idx:    idx,
		unique: types.NewBytes(0, 0),
		ref:    1,
	}
}

func (d *Dict) GetUnique() *types.Bytes {
	return d.unique
}

func (d *Dict) Cardinality() uint64 {
	return uint64(d.unique.Length())
}

func (d *Dict) Dup() *Dict {
	d.ref++
	return d
}

// InsertBatch adds the rows of data and returns their positions. The dict
// is left unchanged when the batch would push it over MaxCardinality.
func (d *Dict) InsertBatch(ctx context.Context, data *types.Bytes) ([]uint16, error) {
	keys := make([][]byte, data.Length())
	for i := range keys {
		keys[i] = data.Get(int64(i))
	}
	if err := d.checkCardinality(ctx, keys); err != nil {
		return nil, err
	}

	values := make([]uint64, len(keys))
	if err := d.idx.InsertStringBatch(keys, values); err != nil {
		return nil, err
	}

	ips /* insertion points */ := make([]uint16, len(values))
	for i, v := range values {
		if int(v) > d.unique.Length() {
			if err := d.unique.AppendOnce(keys[i]); err != nil {
				return nil, err
			}
		}
		ips[i] = uint16(v)
	}
	return ips, nil
}

func (d *Dict) checkCardinality(ctx context.Context, keys [][]byte) error {
	values := make([]uint64, len(keys))
	d.idx.FindStringBatch(keys, values)
	seen := make(map[string]struct{})
	for i, v := range values {
		if v == 0 {
			seen[string(keys[i])] = struct{}{}
		}
	}
	if n := d.Cardinality() + uint64(len(seen)); n > MaxCardinality {
		return moerr.NewOutOfRange(ctx, "dictionary", "cardinality %d exceeds %d", n, MaxCardinality)
	}
	return nil
}

// FindBatch returns the positions of the rows of data, 0 for unknown keys.
func (d *Dict) FindBatch(data *types.Bytes) []uint16 {
	keys := make([][]byte, data.Length())
	for i := range keys {
		keys[i] = data.Get(int64(i))
	}
	values := make([]uint64, len(keys))
	d.idx.FindStringBatch(keys, values)

	poses := make([]uint16, len(values))
	for i, v := range values {
		poses[i] = uint16(v)
	}
	return poses
}

// FindData returns the key at position pos. pos must be in [1, Cardinality].
func (d *Dict) FindData(pos uint16) []byte {
	return d.unique.Get(int64(pos) - 1)
}

func (d *Dict) Free() {
	if d.ref == 0 {
		return
	}
	d.ref--
	if d.ref > 0 {
		return
	}

	d.idx.Free()
	d.unique = nil
}
