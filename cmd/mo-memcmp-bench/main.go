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
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sys/cpu"

	"github.com/matrixorigin/keycmp/pkg/common/memcmp"
	"github.com/matrixorigin/keycmp/pkg/config"
	"github.com/matrixorigin/keycmp/pkg/logutil"
)

var (
	configFile = flag.String("cfg", "", "toml configuration used to start mo-memcmp-bench, defaults are used when empty")
)

func main() {
	flag.Parse()

	bp, err := loadConfig(context.Background(), *configFile)
	if err != nil {
		panic(fmt.Sprintf("failed to parse config from %s, error: %s", *configFile, err.Error()))
	}

	setupLogger(bp)
	logCapability()

	if err := run(context.Background(), bp); err != nil {
		logutil.Error("mo-memcmp-bench failed", zap.Error(err))
		_ = logutil.Sync()
		os.Exit(1)
	}
	_ = logutil.Sync()
}

func loadConfig(ctx context.Context, path string) (*config.BenchParameters, error) {
	var bp *config.BenchParameters
	if path == "" {
		bp = config.NewBenchParameters()
	} else {
		var err error
		if bp, err = config.LoadBenchParameters(path); err != nil {
			return nil, err
		}
	}
	if err := bp.Validate(ctx); err != nil {
		return nil, err
	}
	return bp, nil
}

func setupLogger(bp *config.BenchParameters) {
	logutil.SetupMOLogger(&bp.Log)
}

func logCapability() {
	logutil.Info("memcmp capability",
		zap.String("arch", runtime.GOARCH),
		zap.Bool("vector-path", memcmp.VectorPathAvailable),
		zap.Bool("sse2", cpu.X86.HasSSE2),
		zap.Bool("avx2", cpu.X86.HasAVX2),
		zap.Bool("asimd", cpu.ARM64.HasASIMD))
}
