package service

import (
	"errors"
)

var (
	ErrBenchmarkNotFound = errors.New("the benchmark does not exist in shared state")
	ErrProofNotFound     = errors.New("the proof does not exist in shared state")
)
