package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/archigen/archigen/pkg/model"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// DiagramHash computes a content hash of a diagram: every element,
// every relationship and the effective visibility of each element, in
// insertion order. Two diagrams with the same hash render identically.
func DiagramHash(d *model.Diagram) string {
	type elementState struct {
		Element  *model.Element `json:"element"`
		Hidden   bool           `json:"hidden"`
		Excluded bool           `json:"excluded"`
	}

	vis := d.Visibility()
	state := struct {
		Name          string                `json:"name"`
		Description   string                `json:"description"`
		Elements      []elementState        `json:"elements"`
		Relationships []*model.Relationship `json:"relationships"`
	}{
		Name:        d.Name,
		Description: d.Description,
	}
	for _, e := range d.Elements() {
		state.Elements = append(state.Elements, elementState{
			Element:  e,
			Hidden:   vis.Hidden(e),
			Excluded: vis.Excluded(e),
		})
	}
	state.Relationships = d.Relationships()

	data, _ := json.Marshal(state)
	return Hash(data)
}
