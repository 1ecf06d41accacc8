package eval

// #region eval-config
// EvalConfig holds the structural expectations checked on every result.
type EvalConfig struct {
	MinConfidence  float64 // classifier confidence floor
	MaxConfidence  float64 // classifier confidence ceiling
	ScenarioCount  int     // scenarios per result
	HorizonPoints  int     // cash points per scenario
	MinPlanActions int     // actions a readiness plan must carry
}

// DefaultEvalConfig returns the expectations of the current constitution.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		MinConfidence:  0.5,
		MaxConfidence:  1.0,
		ScenarioCount:  4,
		HorizonPoints:  13,
		MinPlanActions: 3,
	}
}

// #endregion eval-config

// #region eval-metric
// EvalMetric captures a single validation check result.
type EvalMetric struct {
	Name  string
	Value float64
	Pass  bool
}

// #endregion eval-metric

// #region eval-result
// EvalResult is the output of post-verdict validation.
type EvalResult struct {
	Passed  bool
	Metrics []EvalMetric
	Reason  string
}

// #endregion eval-result
