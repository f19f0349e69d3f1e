package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrMalformedOutput is returned when the CLI succeeded but printed something unusable
var ErrMalformedOutput = errors.New("unexpected output from bws")

// Records must carry exactly the declared fields. null is accepted and relayed as-is.
const secretListSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["object", "id", "organizationId", "projectId", "key", "value", "note", "creationDate", "revisionDate"],
    "properties": {
      "object": {"type": ["string", "null"]},
      "id": {"type": ["string", "null"]},
      "organizationId": {"type": ["string", "null"]},
      "projectId": {"type": ["string", "null"]},
      "key": {"type": ["string", "null"]},
      "value": {"type": ["string", "null"]},
      "note": {"type": ["string", "null"]},
      "creationDate": {"type": ["string", "null"]},
      "revisionDate": {"type": ["string", "null"]}
    },
    "additionalProperties": false
  }
}`

const projectListSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["object", "id", "organizationId", "name", "creationDate", "revisionDate"],
    "properties": {
      "object": {"type": ["string", "null"]},
      "id": {"type": ["string", "null"]},
      "organizationId": {"type": ["string", "null"]},
      "name": {"type": ["string", "null"]},
      "creationDate": {"type": ["string", "null"]},
      "revisionDate": {"type": ["string", "null"]}
    },
    "additionalProperties": false
  }
}`

var (
	secretListSchema  = mustCompile("https://bws-api/schemas/secret-list.json", secretListSchemaJSON)
	projectListSchema = mustCompile("https://bws-api/schemas/project-list.json", projectListSchemaJSON)
)

func mustCompile(url, schemaJSON string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("unmarshal schema %s: %v", url, err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("add schema resource %s: %v", url, err))
	}

	sch, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", url, err))
	}
	return sch
}

// DecodeSecrets parses `bws secret list` output into records
func DecodeSecrets(data []byte) ([]Secret, error) {
	secrets := []Secret{}
	if err := decodeStrict(data, secretListSchema, &secrets); err != nil {
		return nil, err
	}
	return secrets, nil
}

// DecodeProjects parses `bws project list` output into records
func DecodeProjects(data []byte) ([]Project, error) {
	projects := []Project{}
	if err := decodeStrict(data, projectListSchema, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func decodeStrict(data []byte, sch *jsonschema.Schema, out any) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrMalformedOutput, err)
	}

	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return nil
}
