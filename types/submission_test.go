package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benchnet-io/benchmarker/types"
)

func TestVerificationResultWireFormat(t *testing.T) {
	t.Parallel()

	var resp types.SubmitBenchmarkResponse
	require.NoError(t, json.Unmarshal([]byte(`{"benchmark_id":"b1","verified":{"Ok":null}}`), &resp))
	_, fraud := resp.Verified.FraudReason()
	require.False(t, fraud)

	require.NoError(t, json.Unmarshal([]byte(`{"benchmark_id":"b1","verified":{"Err":"reused nonce"}}`), &resp))
	reason, fraud := resp.Verified.FraudReason()
	require.True(t, fraud)
	require.Equal(t, "reused nonce", reason)

	var invalid types.VerificationResult
	require.Error(t, json.Unmarshal([]byte(`{}`), &invalid))

	encoded, err := json.Marshal(types.VerificationFraud("reused nonce"))
	require.NoError(t, err)
	require.JSONEq(t, `{"Err":"reused nonce"}`, string(encoded))

	encoded, err = json.Marshal(types.VerificationOK())
	require.NoError(t, err)
	require.JSONEq(t, `{"Ok":null}`, string(encoded))
}
