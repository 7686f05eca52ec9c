// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats computes descriptive statistics of in-memory samples.
package stats // import "github.com/aclements/go-descstat/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
