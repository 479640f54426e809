// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package agm_test

import (
	"fmt"

	"github.com/ajroetker/go-agm/agm"
	"github.com/ajroetker/go-agm/hwy/contrib/image"
)

func Example() {
	frame, err := image.Wrap([]uint8{16, 17, 100, 235}, 4, 1, 4)
	if err != nil {
		panic(err)
	}

	f, err := agm.New[uint8](agm.GrayFormat(8), agm.WithLumaScaling(10))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	e, _ := f.Exponent(frame)
	out, err := f.Process(frame)
	if err != nil {
		panic(err)
	}
	fmt.Printf("exponent %.3f\n", e)
	fmt.Println(out.RowSlice(0))
	// Output:
	// exponent 1.302
	// [16 85 164 0]
}

func ExampleBaseCurve() {
	for _, x := range []float32{0, 0.25, 0.5} {
		fmt.Printf("%.4f\n", agm.BaseCurve(x))
	}
	// Output:
	// 1.0000
	// 0.8982
	// 0.5000
}
