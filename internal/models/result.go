package models

// MatchResult is one ranked entry returned by the match engine. Field
// names follow the frontend contract.
type MatchResult struct {
	School   string  `json:"school"`
	Program  string  `json:"program"`
	Overall  float64 `json:"overall"`
	Academic float64 `json:"academic"`
	Campus   float64 `json:"campus"`
	Social   float64 `json:"social"`
}

type FullMatchesResponse struct {
	Success bool          `json:"success"`
	Matches []MatchResult `json:"matches"`
}

type ChanceRequest struct {
	School  string  `json:"school"`
	Program string  `json:"program"`
	Top6    float64 `json:"top6"`
	ECs     string  `json:"ecs"`
}

// ChanceResult is the structured admission estimate. NoData marks the
// defined "insufficient data" outcome when no historical offers match;
// every numeric field is zero in that case.
type ChanceResult struct {
	University            string  `json:"university"`
	Program               string  `json:"program"`
	SupplementaryRequired bool    `json:"supplementary_required"`
	Average               float64 `json:"average"`
	Bonus                 float64 `json:"bonus"`
	AdjustedAverage       float64 `json:"adjusted_average"`
	HistoricalAvg         float64 `json:"historical_avg"`
	HistoricalMin         float64 `json:"historical_min"`
	HistoricalMax         float64 `json:"historical_max"`
	Score                 float64 `json:"score"`
	Verdict               string  `json:"verdict"`
	NoData                bool    `json:"no_data,omitempty"`
}

type ChanceResponse struct {
	Success    bool          `json:"success"`
	Prediction *ChanceResult `json:"prediction,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// PDFRequest carries already-computed results back for rendering.
type PDFRequest struct {
	Results []MatchResult `json:"results"`
	Weights PDFWeights    `json:"weights"`
}

type PDFWeights struct {
	Academic float64 `json:"wa"`
	Campus   float64 `json:"wc"`
	Social   float64 `json:"wso"`
}
