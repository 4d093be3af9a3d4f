package script

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot is the golden-file form of a scenario run.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Trace        []TraceEvent `json:"trace"`
	Released     int          `json:"released"`
}

// toCanonicalMap converts a TraceSnapshot to a map for MarshalCanonical.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"seq":     event.Seq,
			"op":      event.Op,
			"outcome": event.Outcome,
		}
		if event.Args != nil {
			eventMap["args"] = event.Args
		}
		if event.Result != nil {
			eventMap["result"] = event.Result
		}
		traceList[i] = eventMap
	}

	return map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         traceList,
		"released":      s.Released,
	}
}

// Snapshot renders a result as canonical JSON.
func Snapshot(result *Result) ([]byte, error) {
	snapshot := TraceSnapshot{
		ScenarioName: result.Name,
		Trace:        result.Trace,
		Released:     result.Released,
	}
	return MarshalCanonical(snapshot.toCanonicalMap())
}

// AssertGolden compares the result's trace against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/script -update
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	traceJSON, err := Snapshot(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, traceJSON)
	return nil
}
