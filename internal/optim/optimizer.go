// Package optim minimizes scalar objectives expressed as computation graphs.
//
// This package provides:
//   - Optimizer interface: one update of a parameter vector from its gradient
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//   - Newton: diagonal Newton steps from second derivatives
//   - Minimize: the loop that rebuilds the objective, differentiates it and steps
//
// Example usage:
//
//	res, err := optim.Minimize(func(x *graph.Node) (*graph.Node, error) {
//	    return expr.Build("sum((x-2)*(x-2))", expr.Env{"x": x})
//	}, []float64{0, 0}, optim.NewNewton(optim.NewtonConfig{}), optim.Settings{})
package optim

// Optimizer updates a parameter vector from the gradient of the objective.
//
// Implementations keep per-run state (velocities, moments) sized on the
// first Step; Reset discards it.
type Optimizer interface {
	// Step moves x in place against grad.
	Step(x, grad []float64)

	// Reset clears any state carried between steps.
	Reset()

	// GetLR returns the current step size.
	GetLR() float64
}

// CurvatureStepper is an Optimizer that also consumes the diagonal of the
// Hessian. Minimize computes it only for optimizers implementing this.
type CurvatureStepper interface {
	Optimizer

	// StepCurvature moves x in place using grad and the Hessian diagonal curv.
	StepCurvature(x, grad, curv []float64)
}

// state returns buf resized to n, zeroed when it had to be reallocated.
func state(buf []float64, n int) []float64 {
	if len(buf) != n {
		return make([]float64, n)
	}
	return buf
}
