// Copyright 2026 The seisgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/bbsunok/seisgrad/internal/optim"

// Optimizer updates a parameter vector from its gradient.
type Optimizer = optim.Optimizer

// CurvatureStepper is an Optimizer that also uses the Hessian diagonal.
type CurvatureStepper = optim.CurvatureStepper

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Newton

// Newton represents the diagonal Newton optimizer.
type Newton = optim.Newton

// NewtonConfig contains configuration for Newton optimizer.
type NewtonConfig = optim.NewtonConfig

// NewNewton creates a new Newton optimizer.
func NewNewton(config NewtonConfig) *Newton {
	return optim.NewNewton(config)
}

// Minimization

// Objective builds a scalar objective over the parameter leaf.
type Objective = optim.Objective

// Settings bound a Minimize run.
type Settings = optim.Settings

// Iterate is one evaluation of the objective.
type Iterate = optim.Iterate

// Result is the outcome of Minimize.
type Result = optim.Result

// Errors returned by Minimize.
var (
	ErrNotScalar = optim.ErrNotScalar
	ErrDiverged  = optim.ErrDiverged
	ErrNoStart   = optim.ErrNoStart
)

// Minimize runs opt on f from x0.
func Minimize(f Objective, x0 []float64, opt Optimizer, s Settings) (Result, error) {
	return optim.Minimize(f, x0, opt, s)
}
