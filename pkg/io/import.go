package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/errors"
)

// ReadJSON decodes and validates a snapshot file from r.
//
// It fails with INVALID_FORMAT for malformed JSON or an unknown version, and
// with the validation error of [aggregate.Snapshot.Validate] for snapshots
// that break cluster invariants. ReadJSON does not close r.
func ReadJSON(r io.Reader) (aggregate.Snapshot, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return aggregate.Snapshot{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode snapshot")
	}
	if f.Version != FormatVersion {
		return aggregate.Snapshot{}, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported snapshot version %d (want %d)", f.Version, FormatVersion)
	}
	if err := f.Snapshot.Validate(); err != nil {
		return aggregate.Snapshot{}, err
	}
	return f.Snapshot, nil
}

// UnmarshalJSON is ReadJSON over a byte slice.
func UnmarshalJSON(data []byte) (aggregate.Snapshot, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads the snapshot file at path.
func ImportJSON(path string) (aggregate.Snapshot, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return aggregate.Snapshot{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return aggregate.Snapshot{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
