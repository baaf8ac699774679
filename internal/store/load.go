package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	storeerrors "github.com/conneroisu/storecraft/internal/errors"
)

// Load reads and validates a store document. Files ending in .json are
// decoded as JSON, everything else as YAML. Unknown keys are rejected.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, storeerrors.NewIOError("READ_STORE", "cannot read store file", err).WithFile(path)
	}

	cfg, err := Decode(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, withFile(err, path)
	}

	if err := Validate(cfg); err != nil {
		return nil, withFile(err, path)
	}

	return cfg, nil
}

// Decode parses a store document.
func Decode(data []byte, isJSON bool) (*Configuration, error) {
	var cfg Configuration

	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			se := storeerrors.NewValidationError(storeerrors.CodeInvalidStore, "malformed JSON store document")
			se.Cause = err

			return nil, se
		}

		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		se := storeerrors.NewValidationError(storeerrors.CodeInvalidStore, "malformed YAML store document")
		se.Cause = err

		return nil, se
	}

	return &cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Configuration) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, storeerrors.NewInternalError("ENCODE_STORE", "cannot encode store", err)
	}
	if err := enc.Close(); err != nil {
		return nil, storeerrors.NewInternalError("ENCODE_STORE", "cannot encode store", err)
	}

	return buf.Bytes(), nil
}

func withFile(err error, path string) error {
	var se *storeerrors.StoreError
	if errors.As(err, &se) {
		return se.WithFile(path)
	}

	return err
}
