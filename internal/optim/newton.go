package optim

// Newton takes diagonal Newton steps:
//
//	x_i = x_i - lr * grad_i / curv_i
//
// where curv is the Hessian diagonal. Coordinates whose curvature is not
// above MinCurvature take a plain gradient step instead.
type Newton struct {
	lr      float64
	minCurv float64
}

// NewtonConfig holds configuration for Newton.
type NewtonConfig struct {
	LR           float64 // Step scale (default: 1)
	MinCurvature float64 // Smallest curvature trusted for a Newton step (default: 1e-12)
}

// NewNewton creates a new Newton optimizer.
func NewNewton(config NewtonConfig) *Newton {
	if config.LR == 0 {
		config.LR = 1
	}
	if config.MinCurvature == 0 {
		config.MinCurvature = 1e-12
	}
	return &Newton{lr: config.LR, minCurv: config.MinCurvature}
}

// StepCurvature applies one Newton update to x.
func (n *Newton) StepCurvature(x, grad, curv []float64) {
	for i, g := range grad {
		if curv[i] > n.minCurv {
			x[i] -= n.lr * g / curv[i]
			continue
		}
		x[i] -= n.lr * g
	}
}

// Step falls back to a gradient step when no curvature is available.
func (n *Newton) Step(x, grad []float64) {
	for i, g := range grad {
		x[i] -= n.lr * g
	}
}

// Reset is a no-op; Newton keeps no state.
func (n *Newton) Reset() {}

// GetLR returns the step scale.
func (n *Newton) GetLR() float64 {
	return n.lr
}
