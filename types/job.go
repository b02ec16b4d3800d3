package types

// Job identifies one benchmark submission task.
type Job struct {
	BenchmarkID string
}
