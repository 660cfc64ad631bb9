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

package hashtable

import (
	"github.com/cespare/xxhash/v2"

	"github.com/matrixorigin/keycmp/pkg/common/memcmp"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

const (
	kInitialCellCnt = 1 << 10
	// a table is resized once it is half full
	kLoadFactorShift = 1
)

type StringHashMapCell struct {
	Hash   uint64
	Mapped uint64
}

// StringHashMap maps byte keys to dense group ids starting from 1. Keys
// are copied into a padded column, and a hash match is confirmed with
// memcmp.Equal before a key is treated as seen.
type StringHashMap struct {
	cellCnt     uint64
	cellCntMask uint64
	elemCnt     uint64
	cells       []StringHashMapCell

	// keys.Get(Mapped-1) is the key of a cell
	keys *types.Bytes
}

func (ht *StringHashMap) Init() {
	ht.cellCnt = kInitialCellCnt
	ht.cellCntMask = kInitialCellCnt - 1
	ht.elemCnt = 0
	ht.cells = make([]StringHashMapCell, kInitialCellCnt)
	ht.keys = types.NewBytes(kInitialCellCnt>>kLoadFactorShift, 0)
}

func (ht *StringHashMap) Free() {
	ht.cells = nil
	ht.keys = nil
	ht.cellCnt, ht.cellCntMask, ht.elemCnt = 0, 0, 0
}

// GroupCount returns the number of distinct keys inserted.
func (ht *StringHashMap) GroupCount() uint64 {
	return ht.elemCnt
}

// Key returns the key of group id v.
func (ht *StringHashMap) Key(v uint64) []byte {
	return ht.keys.Get(int64(v - 1))
}

// InsertStringBatch sets values[i] to the group id of keys[i], creating
// groups for unseen keys.
func (ht *StringHashMap) InsertStringBatch(keys [][]byte, values []uint64) error {
	ht.ResizeOnDemand(uint64(len(keys)))

	var err error
	for i, key := range keys {
		if values[i], err = ht.insert(memcmp.Padded(key)); err != nil {
			return err
		}
	}
	return nil
}

// InsertStringBatchWithRing is InsertStringBatch that skips the rows
// whose zValues entry is 0 and leaves their values untouched.
func (ht *StringHashMap) InsertStringBatchWithRing(zValues []int64, keys [][]byte, values []uint64) error {
	ht.ResizeOnDemand(uint64(len(keys)))

	var err error
	for i, key := range keys {
		if zValues[i] == 0 {
			continue
		}
		if values[i], err = ht.insert(memcmp.Padded(key)); err != nil {
			return err
		}
	}
	return nil
}

// InsertBytes inserts every row of xs. Rows of a Bytes column are already
// padded.
func (ht *StringHashMap) InsertBytes(xs *types.Bytes, values []uint64) error {
	n := xs.Length()
	ht.ResizeOnDemand(uint64(n))

	var err error
	for i := 0; i < n; i++ {
		if values[i], err = ht.insert(xs.Get(int64(i))); err != nil {
			return err
		}
	}
	return nil
}

// FindStringBatch sets values[i] to the group id of keys[i], or 0 when the
// key was never inserted.
func (ht *StringHashMap) FindStringBatch(keys [][]byte, values []uint64) {
	for i, key := range keys {
		key = memcmp.Padded(key)
		values[i] = ht.findCell(xxhash.Sum64(key), key).Mapped
	}
}

func (ht *StringHashMap) insert(key []byte) (uint64, error) {
	hash := xxhash.Sum64(key)
	cell := ht.findCell(hash, key)
	if cell.Mapped == 0 {
		if err := ht.keys.AppendOnce(key); err != nil {
			return 0, err
		}
		ht.elemCnt++
		cell.Hash = hash
		cell.Mapped = ht.elemCnt
	}
	return cell.Mapped, nil
}

func (ht *StringHashMap) findCell(hash uint64, key []byte) *StringHashMapCell {
	for idx := hash & ht.cellCntMask; true; idx = (idx + 1) & ht.cellCntMask {
		cell := &ht.cells[idx]
		if cell.Mapped == 0 {
			return cell
		}
		if cell.Hash == hash && memcmp.Equal(ht.keys.Get(int64(cell.Mapped-1)), key) {
			return cell
		}
	}
	return nil
}

func (ht *StringHashMap) findEmptyCell(hash uint64) *StringHashMapCell {
	for idx := hash & ht.cellCntMask; true; idx = (idx + 1) & ht.cellCntMask {
		cell := &ht.cells[idx]
		if cell.Mapped == 0 {
			return cell
		}
	}
	return nil
}

// ResizeOnDemand grows the table so that n more keys keep it at most half
// full.
func (ht *StringHashMap) ResizeOnDemand(n uint64) {
	targetCnt := ht.elemCnt + n
	if targetCnt <= ht.cellCnt>>kLoadFactorShift {
		return
	}

	newCellCnt := ht.cellCnt << 1
	for newCellCnt>>kLoadFactorShift < targetCnt {
		newCellCnt <<= 1
	}

	oldCells := ht.cells
	ht.cells = make([]StringHashMapCell, newCellCnt)
	ht.cellCnt = newCellCnt
	ht.cellCntMask = newCellCnt - 1

	for i := range oldCells {
		cell := &oldCells[i]
		if cell.Mapped != 0 {
			*ht.findEmptyCell(cell.Hash) = *cell
		}
	}
}
