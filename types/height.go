package types

// Height is a chain height. It only ever advances; the retry policy compares
// the height a submission was prepared against with the latest one to detect
// staleness.
type Height uint64
