package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
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

// ArtifactKeyOpts holds every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Kind    string  `json:"kind"`
	Format  string  `json:"format"`
	Style   string  `json:"style"`
	VizType string  `json:"viz_type,omitempty"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Scale   float64 `json:"scale,omitempty"`
	Seed    uint64  `json:"seed,omitempty"`
	Version string  `json:"version"`
}

// ArtifactKey returns the key of an artifact rendered from model with opts.
// model must marshal to JSON deterministically (structs and slices do).
func ArtifactKey(model any, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Kind+":"+opts.Format, model, opts)
}
