package agent

import (
	"math"
	"math/rand"
)

// Network is a small fully connected value approximator with one ReLU hidden
// layer and a linear output per action. It is trained by plain stochastic
// gradient descent on the squared error of the selected action's value.
type Network struct {
	inSize     int
	hiddenSize int
	outSize    int
	rate       float64

	w1 [][]float64 // [hidden][in]
	b1 []float64
	w2 [][]float64 // [out][hidden]
	b2 []float64
}

// NewNetwork creates a network with weights initialized from the given RNG,
// scaled by the inverse square root of the fan-in.
func NewNetwork(in, hidden, out int, rate float64, rng *rand.Rand) *Network {
	n := &Network{
		inSize:     in,
		hiddenSize: hidden,
		outSize:    out,
		rate:       rate,
		w1:         make([][]float64, hidden),
		b1:         make([]float64, hidden),
		w2:         make([][]float64, out),
		b2:         make([]float64, out),
	}

	scale1 := 1.0 / math.Sqrt(float64(in))
	for h := range n.w1 {
		n.w1[h] = make([]float64, in)
		for i := range n.w1[h] {
			n.w1[h][i] = (rng.Float64()*2 - 1) * scale1
		}
	}

	scale2 := 1.0 / math.Sqrt(float64(hidden))
	for o := range n.w2 {
		n.w2[o] = make([]float64, hidden)
		for h := range n.w2[o] {
			n.w2[o][h] = (rng.Float64()*2 - 1) * scale2
		}
	}

	return n
}

// hiddenOut computes the post-activation hidden layer for the input.
func (n *Network) hiddenOut(x []float64) []float64 {
	h := make([]float64, n.hiddenSize)
	for j := 0; j < n.hiddenSize; j++ {
		sum := n.b1[j]
		for i := 0; i < n.inSize; i++ {
			sum += n.w1[j][i] * x[i]
		}
		if sum > 0 {
			h[j] = sum
		}
	}
	return h
}

// Predict returns the estimated value of every action for the given state.
func (n *Network) Predict(x []float64) []float64 {
	h := n.hiddenOut(x)
	q := make([]float64, n.outSize)
	for o := 0; o < n.outSize; o++ {
		sum := n.b2[o]
		for j := 0; j < n.hiddenSize; j++ {
			sum += n.w2[o][j] * h[j]
		}
		q[o] = sum
	}
	return q
}

// Update performs one gradient step pulling the value of the given action
// toward target. Other action outputs are untouched.
func (n *Network) Update(x []float64, action int, target float64) {
	h := n.hiddenOut(x)

	value := n.b2[action]
	for j := 0; j < n.hiddenSize; j++ {
		value += n.w2[action][j] * h[j]
	}

	// d(loss)/d(value) for loss = (value - target)^2 / 2
	grad := value - target

	// Output layer
	for j := 0; j < n.hiddenSize; j++ {
		hiddenGrad := grad * n.w2[action][j]
		n.w2[action][j] -= n.rate * grad * h[j]

		// Hidden layer, ReLU gate
		if h[j] > 0 {
			for i := 0; i < n.inSize; i++ {
				n.w1[j][i] -= n.rate * hiddenGrad * x[i]
			}
			n.b1[j] -= n.rate * hiddenGrad
		}
	}
	n.b2[action] -= n.rate * grad
}

// Params returns a flattened copy of all weights and biases. Used by tests
// to assert that learning did or did not modify the approximator.
func (n *Network) Params() []float64 {
	var out []float64
	for _, row := range n.w1 {
		out = append(out, row...)
	}
	out = append(out, n.b1...)
	for _, row := range n.w2 {
		out = append(out, row...)
	}
	out = append(out, n.b2...)
	return out
}
