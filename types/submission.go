package types

import (
	"encoding/json"
	"fmt"
)

// SubmitBenchmarkRequest is the payload sent to the benchmark service.
type SubmitBenchmarkRequest struct {
	Settings          BenchmarkSettings  `json:"settings"`
	SolutionsMetaData []SolutionMetaData `json:"solutions_meta_data"`
	SolutionData      SolutionData       `json:"solution_data"`
}

// NewSubmitBenchmarkRequest packages extracted submission materials into a
// request. Pure; all failure modes belong to the extraction step.
func NewSubmitBenchmarkRequest(
	settings BenchmarkSettings,
	solutionsMetaData []SolutionMetaData,
	solutionData SolutionData,
) *SubmitBenchmarkRequest {
	return &SubmitBenchmarkRequest{
		Settings:          settings,
		SolutionsMetaData: solutionsMetaData,
		SolutionData:      solutionData,
	}
}

// VerificationResult is the server-side verdict on a submitted benchmark:
// either verified OK or flagged as fraud with a reason. On the wire it is
// encoded as {"Ok":null} or {"Err":"reason"}.
type VerificationResult struct {
	fraud  bool
	reason string
}

func VerificationOK() VerificationResult {
	return VerificationResult{}
}

func VerificationFraud(reason string) VerificationResult {
	return VerificationResult{fraud: true, reason: reason}
}

// FraudReason returns the fraud reason and whether the submission was
// flagged at all.
func (v VerificationResult) FraudReason() (string, bool) {
	return v.reason, v.fraud
}

func (v VerificationResult) MarshalJSON() ([]byte, error) {
	if v.fraud {
		return json.Marshal(map[string]string{"Err": v.reason})
	}

	return []byte(`{"Ok":null}`), nil
}

// UnmarshalJSON decodes the {"Ok":...}/{"Err":...} wire form. Key presence
// decides the variant; the Ok payload itself is null and cannot be used.
func (v *VerificationResult) UnmarshalJSON(data []byte) error {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	if raw, ok := wire["Err"]; ok {
		var reason string
		if err := json.Unmarshal(raw, &reason); err != nil {
			return fmt.Errorf("invalid fraud reason: %w", err)
		}
		*v = VerificationFraud(reason)

		return nil
	}

	if _, ok := wire["Ok"]; ok {
		*v = VerificationOK()

		return nil
	}

	return fmt.Errorf("invalid verification result: %s", data)
}

// SubmitBenchmarkResponse is returned by the benchmark service once the
// submission was transmitted and verified.
type SubmitBenchmarkResponse struct {
	BenchmarkID string             `json:"benchmark_id"`
	Verified    VerificationResult `json:"verified"`
}
