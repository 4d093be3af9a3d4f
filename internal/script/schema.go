package script

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// scenarioSchema constrains scenario files beyond what strict YAML decoding
// can express: allowed ops, per-op required fields, non-empty steps.
const scenarioSchema = `
#Record: {
	id:   int
	age:  int
	name: string
}

#Expect: {
	error?:   "not_found"
	count?:   int & >=0
	records?: [...#Record]
}

#Step: {
	op:      "add" | "list" | "delete" | "clear"
	id?:     int
	age?:    int
	name?:   string
	expect?: #Expect

	if op == "add" {
		id:   int
		age:  int
		name: string
	}
	if op == "delete" {
		id: int
	}
}

#Scenario: {
	name:          string & !=""
	description?:  string
	steps:         [#Step, ...#Step]
	expect_final?: [...#Record]
}
`

// validateSchema checks decoded YAML against #Scenario.
func validateSchema(raw any) error {
	if raw == nil {
		return fmt.Errorf("empty scenario")
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(scenarioSchema).LookupPath(cue.ParsePath("#Scenario"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling scenario schema: %w", err)
	}

	value := schema.Unify(ctx.Encode(raw))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s", strings.TrimSpace(cueerrors.Details(err, nil)))
	}
	return nil
}
