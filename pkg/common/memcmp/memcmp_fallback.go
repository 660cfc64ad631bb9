// Copyright 2024 Matrix Origin
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

//go:build !amd64 || purego || msan || asan

package memcmp

// VectorPathAvailable reports whether the SSE2 bodies are compiled in.
const VectorPathAvailable = false

func compare(a, b []byte) int             { return compareScalar(a, b) }
func compareSameSize(a, b []byte) int     { return compareSameSizeScalar(a, b) }
func compareMultipleOf16(a, b []byte) int { return compareMultipleOf16Scalar(a, b) }
func compare16(a, b []byte) int           { return compare16Scalar(a, b) }
func equal16(a, b []byte) bool            { return equal16Scalar(a, b) }
func equal(a, b []byte) bool              { return equalScalar(a, b) }
func isZero(b []byte) bool                { return isZeroScalar(b) }
