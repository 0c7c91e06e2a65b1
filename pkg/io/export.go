package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
)

// Write encodes g in the given format and writes it to w.
// The output can be re-imported with [Read].
func Write(g *dag.DAG, w io.Writer, f Format) error {
	doc := FromDAG(g)
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported graph format: %q", f)
	}
	return nil
}

// WriteJSON is Write with [FormatJSON].
func WriteJSON(g *dag.DAG, w io.Writer) error { return Write(g, w, FormatJSON) }

// Export writes g to the file at path, choosing the encoder by extension.
func Export(g *dag.DAG, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer file.Close()
	return Write(g, file, f)
}
