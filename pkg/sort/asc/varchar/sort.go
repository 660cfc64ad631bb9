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

package varchar

import (
	"golang.org/x/exp/slices"

	"github.com/matrixorigin/keycmp/pkg/container/types"
)

// Sort orders the row numbers in os so that vs.Get(os[i]) ascends.
func Sort(vs *types.Bytes, os []int64) {
	slices.SortFunc(os, func(a, b int64) int {
		return vs.Compare(a, b)
	})
}

// SortStable is Sort keeping equal keys in their input order.
func SortStable(vs *types.Bytes, os []int64) {
	slices.SortStableFunc(os, func(a, b int64) int {
		return vs.Compare(a, b)
	})
}
