package repository

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
)

const jsonIndent = "    "

// MarshalCursors encodes cursors as a JSON object keyed by repository URL, indented with four spaces.
// Repositories without a baseline are written as null.
func MarshalCursors(cursors model.Cursors) ([]byte, error) {
	if cursors == nil {
		cursors = model.Cursors{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cursors); err != nil {
		return nil, goerr.Wrap(err, "failed to encode cursors")
	}

	return buf.Bytes(), nil
}

// UnmarshalCursors decodes the document written by MarshalCursors. Empty input is an empty map. Malformed
// input returns ErrCorruptedCursors.
func UnmarshalCursors(raw []byte) (model.Cursors, error) {
	cursors := model.Cursors{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return cursors, nil
	}

	if err := json.Unmarshal(raw, &cursors); err != nil {
		return nil, goerr.Wrap(ErrCorruptedCursors, "failed to decode cursors", goerr.V("error", err.Error()))
	}
	if cursors == nil {
		cursors = model.Cursors{}
	}

	return cursors, nil
}
