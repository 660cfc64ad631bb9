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

package config

import (
	"context"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/keycmp/pkg/common/moerr"
	"github.com/matrixorigin/keycmp/pkg/logutil"
)

var (
	//default rows of the generated column
	defaultRows = 1 << 20

	//default key length range
	defaultMinKeyLength = 0
	defaultMaxKeyLength = 64

	//default ratio of all-zero keys
	defaultZeroRatio = 0.05

	//default ratio of rows repeating an earlier key
	defaultDuplicateRatio = 0.3

	//default number of distinct byte values used in keys
	defaultAlphabet = 256

	//default rounds of the workload
	defaultRounds = 3

	//default size of the worker pool
	defaultWorkers = 4

	//default number of random comparisons checked against bytes.Compare
	defaultVerifyCases = 100000

	//default seed
	defaultSeed int64 = 1

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// BenchParameters configures mo-memcmp-bench.
type BenchParameters struct {
	//rows of the generated column. default: 1 << 20
	Rows int `toml:"rows"`

	//minimal key length. default: 0
	MinKeyLength int `toml:"minKeyLength"`

	//maximal key length. default: 64
	MaxKeyLength int `toml:"maxKeyLength"`

	//ratio of all-zero keys in [0, 1]. default: 0.05
	ZeroRatio float64 `toml:"zeroRatio"`

	//ratio of rows repeating an earlier key in [0, 1]. default: 0.3
	DuplicateRatio float64 `toml:"duplicateRatio"`

	//number of distinct byte values in keys, in [1, 256]. default: 256
	Alphabet int `toml:"alphabet"`

	//number of rounds. default: 3
	Rounds int `toml:"rounds"`

	//size of the worker pool. default: 4
	Workers int `toml:"workers"`

	//random comparisons checked per round. default: 100000
	VerifyCases int `toml:"verifyCases"`

	//seed of the generator. default: 1
	Seed int64 `toml:"seed"`

	//skip the ordered index job
	DisableIndex bool `toml:"disableIndex"`

	Log logutil.LogConfig `toml:"log"`
}

// NewBenchParameters returns the parameters with every default applied.
func NewBenchParameters() *BenchParameters {
	return &BenchParameters{
		Rows:           defaultRows,
		MinKeyLength:   defaultMinKeyLength,
		MaxKeyLength:   defaultMaxKeyLength,
		ZeroRatio:      defaultZeroRatio,
		DuplicateRatio: defaultDuplicateRatio,
		Alphabet:       defaultAlphabet,
		Rounds:         defaultRounds,
		Workers:        defaultWorkers,
		VerifyCases:    defaultVerifyCases,
		Seed:           defaultSeed,
		Log: logutil.LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// LoadBenchParameters reads the toml file at path over the defaults, so a
// value written in the file, zero included, is kept as written.
func LoadBenchParameters(path string) (*BenchParameters, error) {
	bp := NewBenchParameters()
	md, err := toml.DecodeFile(path, bp)
	if err != nil {
		return nil, err
	}
	if !md.IsDefined("maxKeyLength") && bp.MinKeyLength > bp.MaxKeyLength {
		bp.MaxKeyLength = bp.MinKeyLength
	}
	return bp, nil
}

// SetDefaultValues fills the zero fields that have no valid zero value.
// Ratios, verifyCases and seed are valid at zero and are left alone.
func (bp *BenchParameters) SetDefaultValues() {
	if bp.Rows == 0 {
		bp.Rows = defaultRows
	}

	if bp.MaxKeyLength == 0 {
		bp.MaxKeyLength = max(defaultMaxKeyLength, bp.MinKeyLength)
	}

	if bp.Alphabet == 0 {
		bp.Alphabet = defaultAlphabet
	}

	if bp.Rounds == 0 {
		bp.Rounds = defaultRounds
	}

	if bp.Workers == 0 {
		bp.Workers = defaultWorkers
	}

	if bp.Log.Level == "" {
		bp.Log.Level = defaultLogLevel
	}

	if bp.Log.Format == "" {
		bp.Log.Format = defaultLogFormat
	}
}

func (bp *BenchParameters) Validate(ctx context.Context) error {
	if bp.Rows < 0 {
		return moerr.NewBadConfig(ctx, "rows %d is negative", bp.Rows)
	}
	if bp.MinKeyLength < 0 || bp.MinKeyLength > bp.MaxKeyLength {
		return moerr.NewBadConfig(ctx, "key length range [%d, %d] is invalid", bp.MinKeyLength, bp.MaxKeyLength)
	}
	if bp.ZeroRatio < 0 || bp.ZeroRatio > 1 {
		return moerr.NewBadConfig(ctx, "zeroRatio %v is not in [0, 1]", bp.ZeroRatio)
	}
	if bp.DuplicateRatio < 0 || bp.DuplicateRatio > 1 {
		return moerr.NewBadConfig(ctx, "duplicateRatio %v is not in [0, 1]", bp.DuplicateRatio)
	}
	if bp.Alphabet < 1 || bp.Alphabet > 256 {
		return moerr.NewBadConfig(ctx, "alphabet %d is not in [1, 256]", bp.Alphabet)
	}
	if bp.Rounds < 1 {
		return moerr.NewBadConfig(ctx, "rounds %d must be positive", bp.Rounds)
	}
	if bp.Workers < 1 {
		return moerr.NewBadConfig(ctx, "workers %d must be positive", bp.Workers)
	}
	if bp.VerifyCases < 0 {
		return moerr.NewBadConfig(ctx, "verifyCases %d is negative", bp.VerifyCases)
	}
	return nil
}
