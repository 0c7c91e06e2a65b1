package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/asciidag/pkg/dag"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

type hashedNode struct {
	ID          uint   `json:"i"`
	Label       string `json:"l"`
	Placeholder bool   `json:"p,omitempty"`
}

// GraphHash fingerprints everything about g that affects its rendering:
// nodes in index order (with placeholder state), edges in insertion order,
// and the render mode.
func GraphHash(g *dag.DAG) string {
	nodes := make([]hashedNode, g.NodeCount())
	for i, n := range g.Nodes() {
		nodes[i] = hashedNode{ID: n.ID, Label: n.Label, Placeholder: g.IsAutoCreated(n.ID)}
	}
	data, _ := json.Marshal(struct {
		Mode  string       `json:"m"`
		Nodes []hashedNode `json:"n"`
		Edges []dag.Edge   `json:"e"`
	}{g.Mode().String(), nodes, g.Edges()})
	return Hash(data)
}
