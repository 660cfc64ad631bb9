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

package sort

import (
	"github.com/matrixorigin/keycmp/pkg/container/types"
	"github.com/matrixorigin/keycmp/pkg/sort/asc/varchar"
	dvarchar "github.com/matrixorigin/keycmp/pkg/sort/desc/varchar"
)

// Sort reorders the row numbers os by the values of vs.
func Sort(desc bool, os []int64, vs *types.Bytes) {
	if desc {
		dvarchar.Sort(vs, os)
	} else {
		varchar.Sort(vs, os)
	}
}

// Rows returns the identity permutation 0..n-1, the usual starting point
// for Sort.
func Rows(n int) []int64 {
	os := make([]int64, n)
	for i := range os {
		os[i] = int64(i)
	}
	return os
}
