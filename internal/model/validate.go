package model

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

var ErrInvalidDocument = errors.New("invalid resume document")

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// ValidateDocument checks that a JSON resume document has the right shape.
// Only JSON types are checked: no field is required and string content is
// never inspected, so empty names or odd emails pass.
func ValidateDocument(doc []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// DecodeDocument validates doc and decodes it into a Resume.
func DecodeDocument(doc []byte) (Resume, error) {
	if err := ValidateDocument(doc); err != nil {
		return Resume{}, err
	}
	var r Resume
	if err := json.Unmarshal(doc, &r); err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return r, nil
}
