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
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/keycmp/pkg/container/types"
)

const (
	Num   = 1000
	Limit = 100
)

func generate() *types.Bytes {
	vs := make([][]byte, Num)
	for i := 0; i < Num; i++ {
		vs[i] = []byte(fmt.Sprintf("%v", rand.Int63()%Limit))
	}
	xs := types.NewBytes(Num, 0)
	if err := xs.Append(vs); err != nil {
		panic(err)
	}
	return xs
}

func rows(n int) []int64 {
	os := make([]int64, n)
	for i := range os {
		os[i] = int64(i)
	}
	return os
}

func TestSort(t *testing.T) {
	vs := generate()
	os := rows(Num)
	Sort(vs, os[2:])
	require.Equal(t, []int64{0, 1}, os[:2])
	for i := 3; i < Num; i++ {
		require.True(t, bytes.Compare(vs.Get(os[i-1]), vs.Get(os[i])) <= 0)
	}
}

func TestSortStable(t *testing.T) {
	vs := types.NewBytes(5, 0)
	require.NoError(t, vs.Append([][]byte{[]byte("b"), []byte("a"), []byte("b"), []byte("ab"), []byte("a")}))
	os := rows(5)
	SortStable(vs, os)
	require.Equal(t, []int64{1, 4, 3, 0, 2}, os)
}
