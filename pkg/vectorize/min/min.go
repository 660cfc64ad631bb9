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

package min

import (
	"github.com/matrixorigin/keycmp/pkg/common/memcmp"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

var (
	StrMin     func(*types.Bytes) []byte
	StrMinSels func(*types.Bytes, []int64) []byte
)

func init() {
	StrMin = strMin
	StrMinSels = strMinSels
}

func strMin(xs *types.Bytes) []byte {
	res := xs.Get(0)
	for i, n := 1, len(xs.Offsets); i < n; i++ {
		x := xs.Get(int64(i))
		if memcmp.Compare(x, res) < 0 {
			res = x
		}
	}
	return res
}

func strMinSels(xs *types.Bytes, sels []int64) []byte {
	res := xs.Get(sels[0])
	for _, sel := range sels[1:] {
		x := xs.Get(sel)
		if memcmp.Compare(x, res) < 0 {
			res = x
		}
	}
	return res
}
