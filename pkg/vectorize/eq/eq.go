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

package eq

import (
	"github.com/matrixorigin/keycmp/pkg/common/memcmp"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

var (
	strEq           func(*types.Bytes, *types.Bytes, []int64) []int64
	strEqSels       func(*types.Bytes, *types.Bytes, []int64, []int64) []int64
	strEqScalar     func([]byte, *types.Bytes, []int64) []int64
	strEqScalarSels func([]byte, *types.Bytes, []int64, []int64) []int64
)

func init() {
	strEq = strEqPure
	strEqSels = strEqSelsPure
	strEqScalar = strEqScalarPure
	strEqScalarSels = strEqScalarSelsPure
}

// StrEq selects the rows i where xs[i] is equal to ys[i]. rs must have
// room for xs.Length() entries; the selected prefix is returned.
func StrEq(xs, ys *types.Bytes, rs []int64) []int64 {
	return strEq(xs, ys, rs)
}

func strEqPure(xs, ys *types.Bytes, rs []int64) []int64 {
	rsi := 0
	for i, n := 0, len(xs.Offsets); i < n; i++ {
		if memcmp.Equal(xs.Get(int64(i)), ys.Get(int64(i))) {
			rs[rsi] = int64(i)
			rsi++
		}
	}
	return rs[:rsi]
}

func StrEqSels(xs, ys *types.Bytes, rs, sels []int64) []int64 {
	return strEqSels(xs, ys, rs, sels)
}

func strEqSelsPure(xs, ys *types.Bytes, rs, sels []int64) []int64 {
	rsi := 0
	for _, sel := range sels {
		if memcmp.Equal(xs.Get(sel), ys.Get(sel)) {
			rs[rsi] = sel
			rsi++
		}
	}
	return rs[:rsi]
}

// StrEqScalar compares the constant x against every row of ys, with x on
// the left.
func StrEqScalar(x []byte, ys *types.Bytes, rs []int64) []int64 {
	return strEqScalar(x, ys, rs)
}

func strEqScalarPure(x []byte, ys *types.Bytes, rs []int64) []int64 {
	x = memcmp.Padded(x)
	rsi := 0
	for i, n := 0, len(ys.Offsets); i < n; i++ {
		if memcmp.Equal(x, ys.Get(int64(i))) {
			rs[rsi] = int64(i)
			rsi++
		}
	}
	return rs[:rsi]
}

func StrEqScalarSels(x []byte, ys *types.Bytes, rs, sels []int64) []int64 {
	return strEqScalarSels(x, ys, rs, sels)
}

func strEqScalarSelsPure(x []byte, ys *types.Bytes, rs, sels []int64) []int64 {
	x = memcmp.Padded(x)
	rsi := 0
	for _, sel := range sels {
		if memcmp.Equal(x, ys.Get(sel)) {
			rs[rsi] = sel
			rsi++
		}
	}
	return rs[:rsi]
}
