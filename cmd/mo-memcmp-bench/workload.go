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

package main

import (
	"math/rand"

	"github.com/matrixorigin/keycmp/pkg/config"
	"github.com/matrixorigin/keycmp/pkg/container/types"
)

// genWorkload builds a column of bp.Rows keys: all-zero keys, repeats of
// earlier rows and random keys over the first bp.Alphabet byte values.
func genWorkload(r *rand.Rand, bp *config.BenchParameters) (*types.Bytes, error) {
	xs := types.NewBytes(bp.Rows, bp.Rows*(bp.MinKeyLength+bp.MaxKeyLength)/2)
	key := make([]byte, bp.MaxKeyLength)
	for i := 0; i < bp.Rows; i++ {
		size := bp.MinKeyLength + r.Intn(bp.MaxKeyLength-bp.MinKeyLength+1)
		var err error
		switch p := r.Float64(); {
		case p < bp.ZeroRatio:
			clear(key[:size])
			err = xs.AppendOnce(key[:size])
		case i > 0 && p < bp.ZeroRatio+bp.DuplicateRatio:
			err = xs.AppendOnce(xs.Get(int64(r.Intn(i))))
		default:
			for j := 0; j < size; j++ {
				key[j] = byte(r.Intn(bp.Alphabet))
			}
			err = xs.AppendOnce(key[:size])
		}
		if err != nil {
			return nil, err
		}
	}
	return xs, nil
}
