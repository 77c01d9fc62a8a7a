package recommend

import (
	"errors"
	"math"
)

const mlFeatureDim = 5

type featureVector [mlFeatureDim]float64

// standardScaler fits zero-mean unit-variance scaling on one call's
// training matrix. Zero-variance columns scale by 1.
type standardScaler struct {
	mean   featureVector
	std    featureVector
	fitted bool
}

func (s *standardScaler) fit(X []featureVector) error {
	if len(X) == 0 {
		return errors.New("empty training matrix")
	}
	n := float64(len(X))
	for j := 0; j < mlFeatureDim; j++ {
		sum := 0.0
		for _, x := range X {
			sum += x[j]
		}
		s.mean[j] = sum / n
	}
	for j := 0; j < mlFeatureDim; j++ {
		sq := 0.0
		for _, x := range X {
			d := x[j] - s.mean[j]
			sq += d * d
		}
		std := math.Sqrt(sq / n)
		if std == 0 {
			std = 1
		}
		s.std[j] = std
	}
	s.fitted = true
	return nil
}

func (s *standardScaler) transform(x featureVector) (featureVector, error) {
	if !s.fitted {
		return featureVector{}, errors.New("scaler not fitted")
	}
	var out featureVector
	for j := 0; j < mlFeatureDim; j++ {
		v := (x[j] - s.mean[j]) / s.std[j]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return featureVector{}, errors.New("non-finite scaled feature")
		}
		out[j] = v
	}
	return out, nil
}

// logisticRegression is a binary classifier fit by batch gradient descent
// on the class-weighted log loss. Fit once per call, then discarded.
type logisticRegression struct {
	weights      featureVector
	bias         float64
	maxIter      int
	learningRate float64
}

func newLogisticRegression() *logisticRegression {
	return &logisticRegression{
		maxIter:      200,
		learningRate: 0.5,
	}
}

// numerically stable logistic function
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	ez := math.Exp(z)
	return ez / (1 + ez)
}

// fit uses class-balanced weighting, w_c = n / (2 * n_c), to compensate for
// unequal positive/negative counts.
func (m *logisticRegression) fit(X []featureVector, y []int) error {
	n := len(X)
	if n == 0 || n != len(y) {
		return errors.New("bad training set shape")
	}
	pos := 0
	for _, label := range y {
		if label == 1 {
			pos++
		}
	}
	neg := n - pos
	if pos == 0 || neg == 0 {
		return errors.New("single-class training set")
	}

	wPos := float64(n) / (2 * float64(pos))
	wNeg := float64(n) / (2 * float64(neg))

	for iter := 0; iter < m.maxIter; iter++ {
		var grad featureVector
		gradBias := 0.0
		for i, x := range X {
			z := m.bias
			for j := 0; j < mlFeatureDim; j++ {
				z += m.weights[j] * x[j]
			}
			p := sigmoid(z)

			w, target := wNeg, 0.0
			if y[i] == 1 {
				w, target = wPos, 1.0
			}
			g := w * (p - target)
			for j := 0; j < mlFeatureDim; j++ {
				grad[j] += g * x[j]
			}
			gradBias += g
		}

		step := m.learningRate / float64(n)
		for j := 0; j < mlFeatureDim; j++ {
			m.weights[j] -= step * grad[j]
		}
		m.bias -= step * gradBias
	}

	for j := 0; j < mlFeatureDim; j++ {
		if math.IsNaN(m.weights[j]) || math.IsInf(m.weights[j], 0) {
			return errors.New("fit diverged")
		}
	}
	if math.IsNaN(m.bias) || math.IsInf(m.bias, 0) {
		return errors.New("fit diverged")
	}
	return nil
}

func (m *logisticRegression) predictProba(x featureVector) float64 {
	z := m.bias
	for j := 0; j < mlFeatureDim; j++ {
		z += m.weights[j] * x[j]
	}
	return sigmoid(z)
}
