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
	"bytes"
	"context"
	"math/rand"
	"sync"
	"time"

	hll "github.com/axiomhq/hyperloglog"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/matrixorigin/keycmp/pkg/common/memcmp"
	"github.com/matrixorigin/keycmp/pkg/common/moerr"
	"github.com/matrixorigin/keycmp/pkg/config"
	"github.com/matrixorigin/keycmp/pkg/container/hashtable"
	"github.com/matrixorigin/keycmp/pkg/container/index"
	"github.com/matrixorigin/keycmp/pkg/container/nulls"
	"github.com/matrixorigin/keycmp/pkg/container/types"
	"github.com/matrixorigin/keycmp/pkg/logutil"
	"github.com/matrixorigin/keycmp/pkg/sort"
	"github.com/matrixorigin/keycmp/pkg/vectorize/eq"
	"github.com/matrixorigin/keycmp/pkg/vectorize/iszero"
	"github.com/matrixorigin/keycmp/pkg/vectorize/lt"
	"github.com/matrixorigin/keycmp/pkg/vectorize/max"
	"github.com/matrixorigin/keycmp/pkg/vectorize/min"
)

// compare is the comparator checked by the verify job.
var compare = memcmp.Compare

type job struct {
	name string
	fn   func(ctx context.Context) error
}

type roundResult struct {
	rows      int
	groups    uint64
	ndv       uint64
	zeros     uint64
	indexKeys int
	dictKeys  uint64
	verified  int
	elapsed   map[string]time.Duration
}

func run(ctx context.Context, bp *config.BenchParameters) error {
	pool, err := ants.NewPool(bp.Workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	r := rand.New(rand.NewSource(bp.Seed))
	for round := 0; round < bp.Rounds; round++ {
		start := time.Now()
		xs, err := genWorkload(r, bp)
		if err != nil {
			return err
		}
		logutil.Debug("workload generated", zap.Int("round", round), zap.Int("rows", xs.Length()), logutil.GetElapsed(start))

		res, err := runRound(ctx, pool, bp, xs, r.Int63())
		if err != nil {
			return err
		}
		fields := []zap.Field{
			zap.Int("round", round),
			zap.Int("rows", res.rows),
			zap.Uint64("groups", res.groups),
			zap.Uint64("ndv-estimate", res.ndv),
			zap.Uint64("zero-rows", res.zeros),
			zap.Int("index-keys", res.indexKeys),
			zap.Uint64("dict-keys", res.dictKeys),
			zap.Int("verified", res.verified),
		}
		for name, d := range res.elapsed {
			fields = append(fields, zap.Duration(name, d))
		}
		logutil.Info("round done", fields...)
	}
	return nil
}

// runRound runs the jobs of one round on the pool and returns the first
// job error in job order.
func runRound(ctx context.Context, pool *ants.Pool, bp *config.BenchParameters, xs *types.Bytes, seed int64) (*roundResult, error) {
	res := &roundResult{
		rows:      xs.Length(),
		indexKeys: -1,
	}
	jobs := []job{
		{"sort-asc", func(ctx context.Context) error { return sortJob(ctx, xs, false) }},
		{"sort-desc", func(ctx context.Context) error { return sortJob(ctx, xs, true) }},
		{"group", func(ctx context.Context) error {
			var err error
			res.groups, res.ndv, err = groupJob(xs)
			return err
		}},
		{"zero", func(ctx context.Context) error {
			var err error
			res.zeros, err = zeroJob(ctx, xs)
			return err
		}},
		{"dict", func(ctx context.Context) error {
			var err error
			res.dictKeys, err = dictJob(ctx, xs)
			return err
		}},
		{"verify", func(ctx context.Context) error {
			var err error
			res.verified, err = verifyJob(ctx, xs, bp.VerifyCases, rand.New(rand.NewSource(seed)))
			return err
		}},
	}
	if !bp.DisableIndex {
		jobs = append(jobs, job{"index", func(ctx context.Context) error {
			var err error
			res.indexKeys, err = indexJob(xs)
			return err
		}})
	}

	var wg sync.WaitGroup
	errs := make([]error, len(jobs))
	elapsed := make([]time.Duration, len(jobs))
	for i := range jobs {
		i := i
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			start := time.Now()
			errs[i] = jobs[i].fn(ctx)
			elapsed[i] = time.Since(start)
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	res.elapsed = make(map[string]time.Duration, len(jobs))
	for i, j := range jobs {
		if errs[i] != nil {
			return nil, errs[i]
		}
		res.elapsed[j.name] = elapsed[i]
	}
	if res.indexKeys >= 0 && uint64(res.indexKeys) != res.groups {
		return nil, moerr.NewInternalError(ctx, "ordered index has %d keys, hash table has %d groups", res.indexKeys, res.groups)
	}
	return res, nil
}

func sortJob(ctx context.Context, xs *types.Bytes, desc bool) error {
	os := sort.Rows(xs.Length())
	sort.Sort(desc, os, xs)
	for i := 1; i < len(os); i++ {
		c := bytes.Compare(xs.Get(os[i-1]), xs.Get(os[i]))
		if (!desc && c > 0) || (desc && c < 0) {
			return moerr.NewInternalError(ctx, "sort (desc=%v) out of order at position %d", desc, i)
		}
	}
	return nil
}

func groupJob(xs *types.Bytes) (uint64, uint64, error) {
	var ht hashtable.StringHashMap
	ht.Init()
	defer ht.Free()

	values := make([]uint64, xs.Length())
	if err := ht.InsertBytes(xs, values); err != nil {
		return 0, 0, err
	}

	sk := hll.New()
	for i, n := 0, xs.Length(); i < n; i++ {
		sk.Insert(xs.Get(int64(i)))
	}
	return ht.GroupCount(), sk.Estimate(), nil
}

func zeroJob(ctx context.Context, xs *types.Bytes) (uint64, error) {
	bm := iszero.ZeroBitmap(xs)
	nonZero := iszero.StrNotZero(xs, make([]int64, xs.Length()))
	if int(bm.GetCardinality())+len(nonZero) != xs.Length() {
		return 0, moerr.NewInternalError(ctx, "%d zero rows and %d non-zero rows in %d rows", bm.GetCardinality(), len(nonZero), xs.Length())
	}
	for _, sel := range nonZero {
		if bm.Contains(uint32(sel)) {
			return 0, moerr.NewInternalError(ctx, "row %d is both zero and non-zero", sel)
		}
	}
	return bm.GetCardinality(), nil
}

// dictJob encodes the column with a low cardinality index, all-zero rows
// taken as nulls. A column with too many distinct keys is skipped and
// reports 0.
func dictJob(ctx context.Context, xs *types.Bytes) (uint64, error) {
	nsp := &nulls.Nulls{Np: iszero.ZeroBitmap(xs)}
	idx := index.NewLowCardinalityIndex()
	defer idx.Free()

	if err := idx.InsertBatch(ctx, xs, nsp); err != nil {
		if moerr.IsMoErrCode(err, moerr.ErrOutOfRange) {
			return 0, nil
		}
		return 0, err
	}
	if n := len(idx.GetSels()[0]); n != nulls.Length(nsp) {
		return 0, moerr.NewInternalError(ctx, "low cardinality index has %d nulls, want %d", n, nulls.Length(nsp))
	}
	return idx.GetDict().Cardinality(), nil
}

func indexJob(xs *types.Bytes) (int, error) {
	idx := index.NewOrderedIndex()
	if err := idx.InsertBytes(xs, 0); err != nil {
		return 0, err
	}
	return idx.Len(), nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// verifyJob checks memcmp and the kernels built on it against the bytes
// package on random rows of xs.
func verifyJob(ctx context.Context, xs *types.Bytes, cases int, r *rand.Rand) (int, error) {
	n := xs.Length()
	if n == 0 {
		return 0, nil
	}
	for c := 0; c < cases; c++ {
		a, b := xs.Get(int64(r.Intn(n))), xs.Get(int64(r.Intn(n)))
		if got, want := compare(a, b), bytes.Compare(a, b); got != want {
			return c, moerr.NewInternalError(ctx, "compare(%x, %x) = %d, want %d", a, b, got, want)
		}
		if got, want := memcmp.Equal(a, b), bytes.Equal(a, b); got != want {
			return c, moerr.NewInternalError(ctx, "equal(%x, %x) = %v, want %v", a, b, got, want)
		}
		if len(a) == len(b) {
			if got, want := memcmp.CompareSameSize(a, b), bytes.Compare(a, b); sign(got) != want {
				return c, moerr.NewInternalError(ctx, "compareSameSize(%x, %x) = %d, want %d", a, b, got, want)
			}
		}
		if got, want := memcmp.IsZero(a), len(bytes.Trim(a, "\x00")) == 0; got != want {
			return c, moerr.NewInternalError(ctx, "isZero(%x) = %v, want %v", a, got, want)
		}
	}

	x := append([]byte(nil), xs.Get(int64(r.Intn(n)))...)
	eqs := eq.StrEqScalar(x, xs, make([]int64, n))
	lts := lt.StrLtScalar(x, xs, make([]int64, n))
	var wantEq, wantLt int
	mn, mx := xs.Get(0), xs.Get(0)
	for i := 0; i < n; i++ {
		y := xs.Get(int64(i))
		switch bytes.Compare(x, y) {
		case 0:
			wantEq++
		case -1:
			wantLt++
		}
		if bytes.Compare(y, mn) < 0 {
			mn = y
		}
		if bytes.Compare(y, mx) > 0 {
			mx = y
		}
	}
	if len(eqs) != wantEq || len(lts) != wantLt {
		return cases, moerr.NewInternalError(ctx, "scalar kernels selected %d equal and %d greater rows, want %d and %d", len(eqs), len(lts), wantEq, wantLt)
	}
	if !bytes.Equal(min.StrMin(xs), mn) || !bytes.Equal(max.StrMax(xs), mx) {
		return cases, moerr.NewInternalError(ctx, "min/max kernels disagree with bytes.Compare")
	}
	return cases, nil
}
