// Copyright 2026 The seisgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim minimizes scalar objectives built with package autodiff.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Newton: diagonal Newton steps using second derivatives
//   - Minimize: rebuilds, differentiates and steps an Objective
//
// # Basic Usage
//
//	import (
//	    "github.com/bbsunok/seisgrad/autodiff"
//	    "github.com/bbsunok/seisgrad/optim"
//	)
//
//	func main() {
//	    target := autodiff.NewLeaf([]float64{1, 2}, false)
//	    res, err := optim.Minimize(func(x *autodiff.Node) (*autodiff.Node, error) {
//	        d, err := autodiff.Sub(x, target)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return autodiff.Sum(autodiff.Must(autodiff.Mul(d, d)))
//	    }, []float64{0, 0}, optim.NewNewton(optim.NewtonConfig{}), optim.Settings{})
//	    // res.X == [1 2]
//	}
//
// Newton implements CurvatureStepper, so Minimize hands it the Hessian
// diagonal obtained by differentiating the gradient graph once more.
package optim
