package optim

import "math"

// Adam implements the Adam optimizer.
//
// Update rule:
//
//	m = beta1 * m + (1 - beta1) * grad
//	v = beta2 * v + (1 - beta2) * grad²
//	m_hat = m / (1 - beta1^t)
//	v_hat = v / (1 - beta2^t)
//	x = x - lr * m_hat / (sqrt(v_hat) + eps)
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int
	m     []float64
	v     []float64
}

// AdamConfig holds configuration for Adam.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Running average coefficients (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer, filling unset fields with defaults.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step applies one Adam update to x.
func (a *Adam) Step(x, grad []float64) {
	if len(a.m) != len(x) {
		a.t = 0
	}
	a.m = state(a.m, len(x))
	a.v = state(a.v, len(x))
	a.t++

	bc1 := 1 - math.Pow(a.beta1, float64(a.t))
	bc2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, g := range grad {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / bc1
		vHat := a.v[i] / bc2
		x[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
}

// Reset clears the moment estimates and the timestep.
func (a *Adam) Reset() {
	a.t = 0
	a.m = nil
	a.v = nil
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}
