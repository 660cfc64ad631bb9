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

package types

import (
	"bytes"
	"context"
	"math"

	"github.com/matrixorigin/keycmp/pkg/common/memcmp"
	"github.com/matrixorigin/keycmp/pkg/common/moerr"
)

const (
	MaxStringSize = 10485760
)

// maxDataSize bounds len(Data) so that offsets fit in uint32.
var maxDataSize uint64 = math.MaxUint32

// Bytes is a variable-length column: row i is Data[Offsets[i]:Offsets[i]+Lengths[i]].
//
// Data always keeps at least memcmp.PaddingSize bytes of spare capacity, so
// every slice returned by Get can go straight into the memcmp
// overflow-tolerant functions.
type Bytes struct {
	Data    []byte
	Offsets []uint32
	Lengths []uint32
}

// NewBytes returns a column with room for rows values and dataSize bytes.
func NewBytes(rows, dataSize int) *Bytes {
	return &Bytes{
		Data:    make([]byte, 0, dataSize+memcmp.PaddingSize),
		Offsets: make([]uint32, 0, rows),
		Lengths: make([]uint32, 0, rows),
	}
}

// grow makes room for n more bytes while keeping the trailing padding.
func (a *Bytes) grow(n int) {
	need := len(a.Data) + n + memcmp.PaddingSize
	if need <= cap(a.Data) {
		return
	}
	size := 2 * cap(a.Data)
	if size < need {
		size = need
	}
	data := make([]byte, len(a.Data), size)
	copy(data, a.Data)
	a.Data = data
}

func (a *Bytes) Reset() {
	a.Offsets = a.Offsets[:0]
	a.Lengths = a.Lengths[:0]
	a.Data = a.Data[:0]
}

func (a *Bytes) Length() int {
	return len(a.Offsets)
}

func (a *Bytes) Window(start, end int) *Bytes {
	return &Bytes{
		Data:    a.Data,
		Offsets: a.Offsets[start:end],
		Lengths: a.Lengths[start:end],
	}
}

func (a *Bytes) AppendOnce(v []byte) error {
	if err := a.checkSize(len(v), len(v)); err != nil {
		return err
	}
	a.grow(len(v))
	o := uint32(len(a.Data))
	a.Offsets = append(a.Offsets, o)
	a.Data = append(a.Data, v...)
	a.Lengths = append(a.Lengths, uint32(len(v)))
	return nil
}

func (a *Bytes) Append(vs [][]byte) error {
	n, longest := 0, 0
	for _, v := range vs {
		n += len(v)
		longest = max(longest, len(v))
	}
	if err := a.checkSize(longest, n); err != nil {
		return err
	}
	a.grow(n)
	o := uint32(len(a.Data))
	for _, v := range vs {
		a.Offsets = append(a.Offsets, o)
		a.Data = append(a.Data, v...)
		o += uint32(len(v))
		a.Lengths = append(a.Lengths, uint32(len(v)))
	}
	return nil
}

// checkSize rejects a value longer than MaxStringSize and an append of n
// bytes that would push Data past maxDataSize.
func (a *Bytes) checkSize(longest, n int) error {
	if longest > MaxStringSize {
		return moerr.NewOutOfRange(context.TODO(), "varchar", "value length %d exceeds %d", longest, MaxStringSize)
	}
	if uint64(len(a.Data))+uint64(n) > maxDataSize {
		return moerr.NewOutOfRange(context.TODO(), "varchar", "column data size %d exceeds %d", uint64(len(a.Data))+uint64(n), maxDataSize)
	}
	return nil
}

// Get returns row n. The result shares Data and is padded.
func (a *Bytes) Get(n int64) []byte {
	offset := a.Offsets[n]
	return a.Data[offset : offset+a.Lengths[n]]
}

func (a *Bytes) Swap(i, j int64) {
	a.Offsets[i], a.Offsets[j] = a.Offsets[j], a.Offsets[i]
	a.Lengths[i], a.Lengths[j] = a.Lengths[j], a.Lengths[i]
}

func (a *Bytes) Compare(i, j int64) int {
	return memcmp.Compare(a.Get(i), a.Get(j))
}

func (a *Bytes) Equal(i, j int64) bool {
	return memcmp.Equal(a.Get(i), a.Get(j))
}

func (a *Bytes) IsZero(n int64) bool {
	return memcmp.IsZero(a.Get(n))
}

// Validate checks a column that was assembled by hand: every row must lie
// inside Data and, when there are rows, Data must carry the trailing padding.
func (a *Bytes) Validate(ctx context.Context) error {
	if len(a.Offsets) != len(a.Lengths) {
		return moerr.NewInvalidInput(ctx, "bytes column has %d offsets and %d lengths", len(a.Offsets), len(a.Lengths))
	}
	for i, o := range a.Offsets {
		if end := uint64(o) + uint64(a.Lengths[i]); end > uint64(len(a.Data)) {
			return moerr.NewInvalidInput(ctx, "row %d ends at %d beyond data size %d", i, end, len(a.Data))
		}
	}
	if len(a.Offsets) > 0 && !memcmp.HasPadding(a.Data) {
		return moerr.NewInvalidInput(ctx, "bytes column data needs %d bytes of padding, has %d", memcmp.PaddingSize, cap(a.Data)-len(a.Data))
	}
	return nil
}

func (a *Bytes) String() string {
	var buf bytes.Buffer

	buf.WriteByte('[')
	j := len(a.Offsets) - 1
	for i, o := range a.Offsets {
		buf.Write(a.Data[o : o+a.Lengths[i]])
		if i != j {
			buf.WriteByte(' ')
		}
	}
	buf.WriteByte(']')
	return buf.String()
}
