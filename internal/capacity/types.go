package capacity

import "github.com/lifeos/governance/internal/constitution"

// #region assessment
// Assessment is a self-reported capacity snapshot. All fields are 0-100.
// Stress and Load are inverted: high is bad.
type Assessment struct {
	Energy     float64 `json:"energy" yaml:"energy"`
	Clarity    float64 `json:"clarity" yaml:"clarity"`
	Stress     float64 `json:"stress" yaml:"stress"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Load       float64 `json:"load" yaml:"load"`
}

// #endregion assessment

// #region weights
// Weights are the classification blend. They sum to 1.0.
type Weights struct {
	Energy     float64
	Clarity    float64
	Stress     float64 // applied to 100-stress
	Confidence float64
	Load       float64 // applied to 100-load
}

// DefaultWeights returns the constitutional classification weights.
func DefaultWeights() Weights {
	return Weights{
		Energy:     0.18,
		Clarity:    0.22,
		Stress:     0.20,
		Confidence: 0.18,
		Load:       0.22,
	}
}

// #endregion weights

// #region classification
// Classification is the classifier output.
type Classification struct {
	State      constitution.StateInfo `json:"state"`
	Score      int                    `json:"score"`
	Confidence float64                `json:"confidence"`
}

// #endregion classification
