package api

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Makepad-fr/tada/internal/model"
)

//go:embed todos.schema.json
var todosSchemaJSON string

var todosSchema = jsonschema.MustCompileString("todos.schema.json", todosSchemaJSON)

// decodeTasks validates a list payload before decoding it.
// A JSON null is accepted as an empty list.
func decodeTasks(body []byte) ([]model.Task, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if err := todosSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, strings.Join(schemaErrors(err), "; "))
	}

	tasks := []model.Task{}
	if doc == nil {
		return tasks, nil
	}
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return tasks, nil
}

// schemaErrors flattens a validation error into its leaf causes.
func schemaErrors(err error) []string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	var out []string
	collectSchemaErrors(ve, &out)
	return out
}

func collectSchemaErrors(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, out)
	}
}
