package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/louisbranch/capbridge/apperr"
)

// Validate checks input against schema. A document that does not conform is
// reported as an apperr INVALID_INPUT error listing every violation; a schema
// that cannot be compiled is an INTERNAL error.
func Validate(schema, input json.RawMessage) error {
	if len(input) == 0 {
		input = json.RawMessage(`{}`)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(input),
	)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, fmt.Sprintf("compile schema: %v", err), err)
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return apperr.InvalidInput("invalid input: " + strings.Join(details, "; "))
}
