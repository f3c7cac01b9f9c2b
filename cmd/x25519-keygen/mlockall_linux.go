// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import _ "github.com/curvewise/x25519/internal/mlockall"
