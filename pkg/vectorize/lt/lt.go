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

package lt

import (
	"github.com/matrixorigin/keycmp/pkg/common/memcmp"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

var (
	strLt           func(*types.Bytes, *types.Bytes, []int64) []int64
	strLtSels       func(*types.Bytes, *types.Bytes, []int64, []int64) []int64
	strLtScalar     func([]byte, *types.Bytes, []int64) []int64
	strLtScalarSels func([]byte, *types.Bytes, []int64, []int64) []int64
)

func init() {
	strLt = strLtPure
	strLtSels = strLtSelsPure
	strLtScalar = strLtScalarPure
	strLtScalarSels = strLtScalarSelsPure
}

// StrLt selects the rows i where xs[i] is less than ys[i]. rs must have
// room for xs.Length() entries; the selected prefix is returned.
func StrLt(xs, ys *types.Bytes, rs []int64) []int64 {
	return strLt(xs, ys, rs)
}

func strLtPure(xs, ys *types.Bytes, rs []int64) []int64 {
	rsi := 0
	for i, n := 0, len(xs.Offsets); i < n; i++ {
		if memcmp.Compare(xs.Get(int64(i)), ys.Get(int64(i))) < 0 {
			rs[rsi] = int64(i)
			rsi++
		}
	}
	return rs[:rsi]
}

func StrLtSels(xs, ys *types.Bytes, rs, sels []int64) []int64 {
	return strLtSels(xs, ys, rs, sels)
}

func strLtSelsPure(xs, ys *types.Bytes, rs, sels []int64) []int64 {
	rsi := 0
	for _, sel := range sels {
		if memcmp.Compare(xs.Get(sel), ys.Get(sel)) < 0 {
			rs[rsi] = sel
			rsi++
		}
	}
	return rs[:rsi]
}

// StrLtScalar compares the constant x against every row of ys, with x on
// the left.
func StrLtScalar(x []byte, ys *types.Bytes, rs []int64) []int64 {
	return strLtScalar(x, ys, rs)
}

func strLtScalarPure(x []byte, ys *types.Bytes, rs []int64) []int64 {
	x = memcmp.Padded(x)
	rsi := 0
	for i, n := 0, len(ys.Offsets); i < n; i++ {
		if memcmp.Compare(x, ys.Get(int64(i))) < 0 {
			rs[rsi] = int64(i)
			rsi++
		}
	}
	return rs[:rsi]
}

func StrLtScalarSels(x []byte, ys *types.Bytes, rs, sels []int64) []int64 {
	return strLtScalarSels(x, ys, rs, sels)
}

func strLtScalarSelsPure(x []byte, ys *types.Bytes, rs, sels []int64) []int64 {
	x = memcmp.Padded(x)
	rsi := 0
	for _, sel := range sels {
		if memcmp.Compare(x, ys.Get(sel)) < 0 {
			rs[rsi] = sel
			rsi++
		}
	}
	return rs[:rsi]
}
