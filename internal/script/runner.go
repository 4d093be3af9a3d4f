package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/roster/internal/roster"
)

// Outcome names recorded in traces.
const (
	OutcomeOK = "ok"
)

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq     int64          `json:"seq"`
	Op      string         `json:"op"`
	Args    map[string]any `json:"args,omitempty"`
	Outcome string         `json:"outcome"`
	Result  map[string]any `json:"result,omitempty"`
}

// Failure describes one unmet expectation.
// Step is 1-based; 0 refers to the final-state check.
type Failure struct {
	Step    int    `json:"step"`
	Message string `json:"message"`
}

// Result is the outcome of running a scenario.
type Result struct {
	Name     string          `json:"name"`
	Trace    []TraceEvent    `json:"trace"`
	Failures []Failure       `json:"failures,omitempty"`
	Final    []roster.Record `json:"final"`
	Released int             `json:"released"`
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run executes a scenario against a fresh store.
//
// Handles are deterministic ("rec-1", "rec-2", ...) so repeated runs of the
// same scenario produce identical traces. The store is closed before Run
// returns; Released reports how many records that teardown freed.
//
// Unmet expectations are collected in Result.Failures. An error is returned
// only for scenarios that cannot be executed (unknown op).
func Run(sc *Scenario) (*Result, error) {
	store := roster.New(roster.WithHandleGenerator(roster.NewSequenceGenerator("rec")))
	clock := NewClock()

	result := &Result{Name: sc.Name}
	for i, step := range sc.Steps {
		event, records, err := execute(store, step)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		event.Seq = clock.Next()
		result.Trace = append(result.Trace, event)

		for _, msg := range checkStep(step, event, records) {
			result.Failures = append(result.Failures, Failure{Step: i + 1, Message: msg})
		}
	}

	result.Final = store.List()
	if sc.ExpectFinal != nil {
		if msg := compareRecords(*sc.ExpectFinal, result.Final); msg != "" {
			result.Failures = append(result.Failures, Failure{Step: 0, Message: "final state: " + msg})
		}
	}

	result.Released = store.Close()
	return result, nil
}

// execute performs one step. For list steps it also returns the listed
// records so expectations can compare them.
func execute(store *roster.Store, step Step) (TraceEvent, []roster.Record, error) {
	event := TraceEvent{Op: step.Op, Outcome: OutcomeOK}

	switch step.Op {
	case OpAdd:
		event.Args = map[string]any{"id": step.ID, "age": step.Age, "name": step.Name}
		h, err := store.Add(step.ID, step.Age, step.Name)
		if err != nil {
			event.Outcome = outcomeOf(err)
			return event, nil, nil
		}
		event.Result = map[string]any{"handle": string(h)}
		return event, nil, nil

	case OpList:
		records := store.List()
		event.Result = map[string]any{"records": recordsToAny(records)}
		return event, records, nil

	case OpDelete:
		event.Args = map[string]any{"id": step.ID}
		removed, err := store.DeleteByID(step.ID)
		if err != nil {
			event.Outcome = outcomeOf(err)
			return event, nil, nil
		}
		event.Result = map[string]any{"handle": string(removed.Handle), "name": removed.Name}
		return event, nil, nil

	case OpClear:
		n := store.Clear()
		event.Result = map[string]any{"count": n}
		return event, nil, nil

	default:
		return event, nil, fmt.Errorf("unknown op %q", step.Op)
	}
}

func checkStep(step Step, event TraceEvent, records []roster.Record) []string {
	var msgs []string

	wantOutcome := OutcomeOK
	if step.Expect != nil && step.Expect.Error != "" {
		wantOutcome = step.Expect.Error
	}
	if event.Outcome != wantOutcome {
		msgs = append(msgs, fmt.Sprintf("%s: expected outcome %q, got %q", step.Op, wantOutcome, event.Outcome))
	}

	if step.Expect == nil {
		return msgs
	}

	if step.Expect.Count != nil {
		var got int
		switch step.Op {
		case OpClear:
			got, _ = event.Result["count"].(int)
		case OpList:
			got = len(records)
		default:
			msgs = append(msgs, fmt.Sprintf("%s: count is only checked for clear and list", step.Op))
			return msgs
		}
		if got != *step.Expect.Count {
			msgs = append(msgs, fmt.Sprintf("%s: expected count %d, got %d", step.Op, *step.Expect.Count, got))
		}
	}

	if step.Expect.Records != nil {
		if step.Op != OpList {
			msgs = append(msgs, fmt.Sprintf("%s: records are only checked for list", step.Op))
		} else if msg := compareRecords(*step.Expect.Records, records); msg != "" {
			msgs = append(msgs, "list: "+msg)
		}
	}

	return msgs
}

// compareRecords returns "" when got matches want exactly, in order.
func compareRecords(want []RecordSpec, got []roster.Record) string {
	if len(want) != len(got) {
		return fmt.Sprintf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		g := RecordSpec{ID: got[i].ID, Age: got[i].Age, Name: got[i].Name}
		// Compare against the stored form of the expected name.
		w := want[i]
		w.Name = roster.BoundName(w.Name)
		if g != w {
			return fmt.Sprintf("record %d: expected %+v, got %+v", i, w, g)
		}
	}
	return ""
}

// outcomeOf maps a roster error to its trace outcome ("not_found", ...).
func outcomeOf(err error) string {
	var re *roster.Error
	if errors.As(err, &re) {
		return strings.ToLower(string(re.Code))
	}
	return "error"
}

func recordsToAny(records []roster.Record) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = map[string]any{
			"handle": string(r.Handle),
			"id":     r.ID,
			"age":    r.Age,
			"name":   r.Name,
		}
	}
	return out
}
