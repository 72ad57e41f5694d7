package types

import (
	"bytes"
	"encoding/json"
)

// Risk labels produced by the analysis service.
const (
	LabelHighRisk = "High Risk"
	LabelWarning  = "Warning"
	LabelSafe     = "Safe"
)

// Analysis is the classifier triple returned by /analyze-text.
type Analysis struct {
	Label    string   `json:"label"`
	Score    float64  `json:"score"`
	Keywords Keywords `json:"keywords_detected"`
}

// Keywords is the list of matched phrases. Older servers send the string
// "None" instead of an empty list; both decode to an empty slice.
type Keywords []string

// UnmarshalJSON accepts either a JSON array of strings or a bare string.
func (k *Keywords) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" || s == "None" {
			*k = Keywords{}
			return nil
		}
		*k = Keywords{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if list == nil {
		list = []string{}
	}
	*k = list
	return nil
}

// AnalysisResult is what the text analysis client hands back to the caller.
// TriggerMatched reports that the local trigger phrase fired an alert;
// Analysis is nil when the remote classifier could not be reached.
type AnalysisResult struct {
	Analysis       *Analysis
	TriggerMatched bool
	TriggerPhrase  string
	Alert          *AlertOutcome
	AlertErr       error
}
