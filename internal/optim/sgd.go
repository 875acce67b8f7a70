package optim

import "gonum.org/v1/gonum/floats"

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	x = x - lr * grad
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + grad
//	x = x - lr * velocity
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step applies one descent update to x.
func (s *SGD) Step(x, grad []float64) {
	if s.momentum == 0 {
		floats.AddScaled(x, -s.lr, grad)
		return
	}

	s.velocity = state(s.velocity, len(x))
	floats.Scale(s.momentum, s.velocity)
	floats.Add(s.velocity, grad)
	floats.AddScaled(x, -s.lr, s.velocity)
}

// Reset clears the velocity buffer.
func (s *SGD) Reset() {
	s.velocity = nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
