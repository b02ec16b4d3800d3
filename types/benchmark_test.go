package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benchnet-io/benchmarker/types"
)

func TestConsumableMetaDataTake(t *testing.T) {
	t.Parallel()

	entries := []types.SolutionMetaData{
		{Nonce: 1, SolutionSignature: 10},
		{Nonce: 2, SolutionSignature: 20},
	}
	metaData := types.NewConsumableMetaData(entries)
	require.False(t, metaData.Consumed())

	taken, err := metaData.Take()
	require.NoError(t, err)
	require.Equal(t, entries, taken)
	require.True(t, metaData.Consumed())

	_, err = metaData.Take()
	require.ErrorIs(t, err, types.ErrMetaDataConsumed)
}

func TestBenchmarkSettingsClone(t *testing.T) {
	t.Parallel()

	settings := types.BenchmarkSettings{
		PlayerID:    "p1",
		BlockID:     "blk",
		ChallengeID: "c001",
		AlgorithmID: "a001",
		Difficulty:  []int32{40, 250},
	}

	cloned := settings.Clone()
	cloned.Difficulty[0] = 99
	require.Equal(t, int32(40), settings.Difficulty[0])
}

func TestProofFirstSolutionData(t *testing.T) {
	t.Parallel()

	first := types.SolutionData{Nonce: 7, Solution: []byte(`{"x":1}`)}
	proof := &types.Proof{SolutionsData: []types.SolutionData{first, {Nonce: 8}}}

	sd, err := proof.FirstSolutionData()
	require.NoError(t, err)
	require.Equal(t, uint64(7), sd.Nonce)

	sd.Solution[1] = 'y'
	require.Equal(t, byte('x'), proof.SolutionsData[0].Solution[2])

	empty := &types.Proof{}
	_, err = empty.FirstSolutionData()
	require.ErrorIs(t, err, types.ErrEmptyProof)
}
