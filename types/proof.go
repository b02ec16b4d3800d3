package types

import (
	"encoding/json"
	"errors"
)

var ErrEmptyProof = errors.New("the proof contains no solution data")

// SolutionData is the full runtime output for one solved nonce.
type SolutionData struct {
	Nonce            uint64          `json:"nonce"`
	RuntimeSignature uint64          `json:"runtime_signature"`
	FuelConsumed     uint64          `json:"fuel_consumed"`
	Solution         json.RawMessage `json:"solution"`
}

func (sd SolutionData) Clone() SolutionData {
	cloned := sd
	cloned.Solution = make(json.RawMessage, len(sd.Solution))
	copy(cloned.Solution, sd.Solution)

	return cloned
}

// Proof holds the ordered solution data computed for a benchmark. Submission
// only ever uses the first entry; the remaining ones back later audits and
// are not examined here.
type Proof struct {
	SolutionsData []SolutionData
}

// FirstSolutionData returns a clone of the first solution entry.
func (p *Proof) FirstSolutionData() (SolutionData, error) {
	if len(p.SolutionsData) == 0 {
		return SolutionData{}, ErrEmptyProof
	}

	return p.SolutionsData[0].Clone(), nil
}
