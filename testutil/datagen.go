package testutil

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/benchnet-io/benchmarker/types"
)

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	newHeaderBytes := make([]byte, length)
	r.Read(newHeaderBytes)

	return newHeaderBytes
}

func GenRandomHexStr(r *rand.Rand, length uint64) string {
	randBytes := GenRandomByteArray(r, length)

	return hex.EncodeToString(randBytes)
}

func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	// Seed based on the current time
	r := rand.New(rand.NewSource(time.Now().Unix()))
	var idx uint
	for idx = 0; idx < num; idx++ {
		f.Add(r.Int63())
	}
}

func GenRandomBenchmarkSettings(r *rand.Rand) types.BenchmarkSettings {
	difficulty := make([]int32, 2)
	for i := range difficulty {
		difficulty[i] = r.Int31n(1000)
	}

	return types.BenchmarkSettings{
		PlayerID:    GenRandomHexStr(r, 20),
		BlockID:     GenRandomHexStr(r, 16),
		ChallengeID: fmt.Sprintf("c%03d", r.Intn(10)),
		AlgorithmID: fmt.Sprintf("a%03d", r.Intn(100)),
		Difficulty:  difficulty,
	}
}

func GenRandomSolutionsMetaData(r *rand.Rand, num int) []types.SolutionMetaData {
	entries := make([]types.SolutionMetaData, num)
	for i := range entries {
		entries[i] = types.SolutionMetaData{
			Nonce:             r.Uint64(),
			SolutionSignature: r.Uint32(),
		}
	}

	return entries
}

func GenRandomSolutionData(r *rand.Rand) types.SolutionData {
	solution, _ := json.Marshal(map[string]string{"route": GenRandomHexStr(r, 8)})

	return types.SolutionData{
		Nonce:            r.Uint64(),
		RuntimeSignature: r.Uint64(),
		FuelConsumed:     r.Uint64(),
		Solution:         solution,
	}
}

func GenRandomBenchmark(r *rand.Rand, numMetaData int) *types.Benchmark {
	return &types.Benchmark{
		Settings:          GenRandomBenchmarkSettings(r),
		SolutionsMetaData: types.NewConsumableMetaData(GenRandomSolutionsMetaData(r, numMetaData)),
	}
}

func GenRandomProof(r *rand.Rand, numSolutions int) *types.Proof {
	solutionsData := make([]types.SolutionData, numSolutions)
	for i := range solutionsData {
		solutionsData[i] = GenRandomSolutionData(r)
	}

	return &types.Proof{SolutionsData: solutionsData}
}
