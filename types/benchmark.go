package types

import "errors"

var ErrMetaDataConsumed = errors.New("the benchmark solutions metadata was already consumed")

// BenchmarkSettings identifies what was benchmarked and under which
// parameters. Settings are immutable once the benchmark is created and are
// copied, never moved, into submission requests.
type BenchmarkSettings struct {
	PlayerID    string  `json:"player_id"`
	BlockID     string  `json:"block_id"`
	ChallengeID string  `json:"challenge_id"`
	AlgorithmID string  `json:"algorithm_id"`
	Difficulty  []int32 `json:"difficulty"`
}

func (s BenchmarkSettings) Clone() BenchmarkSettings {
	cloned := s
	cloned.Difficulty = make([]int32, len(s.Difficulty))
	copy(cloned.Difficulty, s.Difficulty)

	return cloned
}

// SolutionMetaData summarises a single solution found during benchmarking.
type SolutionMetaData struct {
	Nonce             uint64 `json:"nonce"`
	SolutionSignature uint32 `json:"solution_signature"`
}

type metaDataState uint8

const (
	metaDataAvailable metaDataState = iota
	metaDataConsumed
)

// ConsumableMetaData holds the solutions metadata of a benchmark and can be
// taken exactly once. The state transition Available -> Consumed is checked;
// a second take fails with ErrMetaDataConsumed rather than returning an
// empty slice.
type ConsumableMetaData struct {
	state   metaDataState
	entries []SolutionMetaData
}

func NewConsumableMetaData(entries []SolutionMetaData) ConsumableMetaData {
	return ConsumableMetaData{
		state:   metaDataAvailable,
		entries: entries,
	}
}

// Take moves the metadata out, leaving the container consumed.
func (m *ConsumableMetaData) Take() ([]SolutionMetaData, error) {
	if m.state == metaDataConsumed {
		return nil, ErrMetaDataConsumed
	}

	entries := m.entries
	m.state = metaDataConsumed
	m.entries = nil

	return entries, nil
}

func (m *ConsumableMetaData) Consumed() bool {
	return m.state == metaDataConsumed
}

// Benchmark is one unit of benchmarking work tracked in shared state,
// keyed by its benchmark id.
type Benchmark struct {
	Settings          BenchmarkSettings
	SolutionsMetaData ConsumableMetaData
}
