// Package io reads and writes graph definitions for asciidag.
//
// # File Format
//
// A graph file lists nodes and edges in the order they should be added to a
// [dag.DAG], plus an optional render mode:
//
//	{
//	  "mode": "auto",
//	  "nodes": [
//	    {"id": 1, "label": "Root"},
//	    {"id": 2, "label": "Left"}
//	  ],
//	  "edges": [
//	    {"from": 1, "to": 2},
//	    {"from": 2, "to": 9}
//	  ]
//	}
//
// The same structure is accepted as TOML, using [[nodes]] and [[edges]]
// array tables. IDs are non-negative integers. Labels are optional; a node
// without one renders as a placeholder. Edges may reference IDs that are
// never declared (node 9 above); these become placeholder nodes exactly as
// they do with [dag.DAG.AddEdge]. The mode accepts the names understood by
// [dag.ParseRenderMode].
//
// # Import
//
// [Import] picks the decoder from the file extension (.json or .toml).
// [Read] decodes from any io.Reader. For untrusted input, [Decode] a
// [Document], check it with [Document.Validate], then call [Document.Build].
//
// # Export
//
// [Export] and [Write] encode a DAG back into the same format. Node and edge
// order is preserved, so an exported graph renders identically once
// re-imported.
//
// Errors carry codes from [errors]: INVALID_FORMAT for malformed input,
// INVALID_MODE for unknown modes, UNSUPPORTED for unknown extensions and
// FILE_NOT_FOUND for missing files.
package io
