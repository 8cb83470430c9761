package observability_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *observability.Metrics) string {
	t.Helper()
	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_RecordsOperations(t *testing.T) {
	m := observability.NewMetrics()
	ctx := context.Background()

	m.OperationDone(ctx, observability.OperationEvent{Operation: "union", Duration: time.Millisecond, States: 5})
	m.OperationDone(ctx, observability.OperationEvent{Operation: "union", Duration: time.Millisecond, States: 3})
	m.OperationDone(ctx, observability.OperationEvent{Operation: "includes", States: -1, Err: errors.New("boom")})

	body := scrape(t, m)
	assert.Contains(t, body, `automata_operations_total{operation="union",result="ok"} 2`)
	assert.Contains(t, body, `automata_operations_total{operation="includes",result="error"} 1`)
	assert.Contains(t, body, `automata_result_states_sum{operation="union"} 8`)
	assert.NotContains(t, body, `automata_result_states_count{operation="includes"}`)
	assert.Contains(t, body, `automata_operation_duration_seconds_count{operation="union"} 2`)
}

func TestMetrics_Namespace(t *testing.T) {
	m := observability.NewMetrics(observability.WithNamespace("fsa"))
	m.OperationDone(context.Background(), observability.OperationEvent{Operation: "trim", States: 1})

	assert.Contains(t, scrape(t, m), `fsa_operations_total{operation="trim",result="ok"} 1`)
}

func TestMulti(t *testing.T) {
	var got []string
	record := func(tag string) observability.Observer {
		return observability.ObserverFunc(func(_ context.Context, e observability.OperationEvent) {
			got = append(got, tag+":"+e.Operation)
		})
	}

	obs := observability.Multi(record("a"), nil, record("b"))
	obs.OperationDone(context.Background(), observability.OperationEvent{Operation: "mirror"})

	assert.Equal(t, []string{"a:mirror", "b:mirror"}, got)
}
