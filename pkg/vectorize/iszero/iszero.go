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

// Package iszero finds rows whose value consists only of 0x00 bytes, the
// encoding of zeroed fixed-width keys and cleared slots.
package iszero

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/keycmp/pkg/common/memcmp"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

var (
	isZero     func(*types.Bytes, []uint8) []uint8
	strIsZero  func(*types.Bytes, []int64) []int64
	strNotZero func(*types.Bytes, []int64) []int64
)

func init() {
	isZero = isZeroPure
	strIsZero = strIsZeroPure
	strNotZero = strNotZeroPure
}

// IsZero sets rs[i] to 1 when row i is all zero. An empty row is zero.
func IsZero(xs *types.Bytes, rs []uint8) []uint8 {
	return isZero(xs, rs)
}

func isZeroPure(xs *types.Bytes, rs []uint8) []uint8 {
	for i, n := 0, len(xs.Offsets); i < n; i++ {
		if memcmp.IsZero(xs.Get(int64(i))) {
			rs[i] = 1
		} else {
			rs[i] = 0
		}
	}
	return rs
}

func StrIsZero(xs *types.Bytes, rs []int64) []int64 {
	return strIsZero(xs, rs)
}

func strIsZeroPure(xs *types.Bytes, rs []int64) []int64 {
	rsi := 0
	for i, n := 0, len(xs.Offsets); i < n; i++ {
		if memcmp.IsZero(xs.Get(int64(i))) {
			rs[rsi] = int64(i)
			rsi++
		}
	}
	return rs[:rsi]
}

// StrNotZero selects the rows that hold at least one non-zero byte.
func StrNotZero(xs *types.Bytes, rs []int64) []int64 {
	return strNotZero(xs, rs)
}

func strNotZeroPure(xs *types.Bytes, rs []int64) []int64 {
	rsi := 0
	for i, n := 0, len(xs.Offsets); i < n; i++ {
		if !memcmp.IsZero(xs.Get(int64(i))) {
			rs[rsi] = int64(i)
			rsi++
		}
	}
	return rs[:rsi]
}

// ZeroBitmap returns the zero rows as a bitmap, the form the filter
// operators merge with null bitmaps.
func ZeroBitmap(xs *types.Bytes) *roaring.Bitmap {
	bm := roaring.New()
	for i, n := 0, len(xs.Offsets); i < n; i++ {
		if memcmp.IsZero(xs.Get(int64(i))) {
			bm.Add(uint32(i))
		}
	}
	return bm
}
