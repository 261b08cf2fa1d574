// Copyright 2025 Android NN Driver Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package driver is the public API of the NN driver's utility layer.
//
// It bridges the NN runtime's view of a request to the compute library's:
//   - tensor layout conversion between the two systems (swizzling)
//   - resolution of opaque memory-pool handles into raw buffers
//   - translation of operand descriptors into tensor metadata
//   - diagnostic artifacts (tensor dumps, network graphs) written to disk
//
// Example:
//
//	info, err := driver.TensorInfoForOperand(op)
//	if err != nil {
//	    return err // unsupported operand type
//	}
//	src, err := driver.ViewFromPool(info, op.Location, pools)
//	if err != nil {
//	    return err
//	}
//	dst := make([]byte, src.ByteSize())
//	swizzled, err := driver.SwizzleTensor4d(src, driver.PermutationVector{0, 3, 1, 2}, dst)
package driver
