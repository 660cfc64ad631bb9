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

package memcmp

import "bytes"

// The byte-wise bank. It never reads past len and is compiled into every
// build so the SSE2 bank can be checked against it.

func compareScalar(a, b []byte) int {
	return bytes.Compare(a, b)
}

func compareSameSizeScalar(a, b []byte) int {
	return bytes.Compare(a, b[:len(a)])
}

func compareMultipleOf16Scalar(a, b []byte) int {
	return bytes.Compare(a, b[:len(a)])
}

func compare16Scalar(a, b []byte) int {
	x, y := (*[blockSize]byte)(a), (*[blockSize]byte)(b)
	return bytes.Compare(x[:], y[:])
}

func equal16Scalar(a, b []byte) bool {
	return *(*[blockSize]byte)(a) == *(*[blockSize]byte)(b)
}

func equalScalar(a, b []byte) bool {
	return bytes.Equal(a, b)
}

func isZeroScalar(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
