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
	"github.com/google/btree"

	"github.com/matrixorigin/keycmp/pkg/common/memcmp"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

const defaultDegree = 32

type entry struct {
	key  []byte
	rows []int64
}

func (e *entry) Less(than btree.Item) bool {
	return memcmp.Compare(e.key, than.(*entry).key) < 0
}

// OrderedIndex maps byte keys to the rows holding them, in memcmp order.
type OrderedIndex struct {
	tree *btree.BTree
	keys *types.Bytes
	rows int
}

func NewOrderedIndex() *OrderedIndex {
	return &OrderedIndex{
		tree: btree.New(defaultDegree),
		keys: types.NewBytes(0, 0),
	}
}

// Insert records that row holds key. The key is copied.
func (idx *OrderedIndex) Insert(key []byte, row int64) error {
	if e := idx.find(key); e != nil {
		e.rows = append(e.rows, row)
		idx.rows++
		return nil
	}
	if err := idx.keys.AppendOnce(key); err != nil {
		return err
	}
	idx.tree.ReplaceOrInsert(&entry{
		key:  idx.keys.Get(int64(idx.keys.Length() - 1)),
		rows: []int64{row},
	})
	idx.rows++
	return nil
}

// InsertBytes indexes every row of xs, numbering rows from base.
func (idx *OrderedIndex) InsertBytes(xs *types.Bytes, base int64) error {
	for i, n := 0, xs.Length(); i < n; i++ {
		if err := idx.Insert(xs.Get(int64(i)), base+int64(i)); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the rows holding key, nil if none.
func (idx *OrderedIndex) Get(key []byte) []int64 {
	if e := idx.find(key); e != nil {
		return e.rows
	}
	return nil
}

func (idx *OrderedIndex) find(key []byte) *entry {
	item := idx.tree.Get(&entry{key: memcmp.Padded(key)})
	if item == nil {
		return nil
	}
	return item.(*entry)
}

// Ascend calls fn for every key in order until fn returns false.
func (idx *OrderedIndex) Ascend(fn func(key []byte, rows []int64) bool) {
	idx.tree.Ascend(func(i btree.Item) bool {
		e := i.(*entry)
		return fn(e.key, e.rows)
	})
}

// AscendRange is Ascend restricted to keys in [lo, hi).
func (idx *OrderedIndex) AscendRange(lo, hi []byte, fn func(key []byte, rows []int64) bool) {
	idx.tree.AscendRange(&entry{key: memcmp.Padded(lo)}, &entry{key: memcmp.Padded(hi)}, func(i btree.Item) bool {
		e := i.(*entry)
		return fn(e.key, e.rows)
	})
}

// Len returns the number of distinct keys.
func (idx *OrderedIndex) Len() int {
	return idx.tree.Len()
}

// Rows returns the number of indexed rows.
func (idx *OrderedIndex) Rows() int {
	return idx.rows
}
