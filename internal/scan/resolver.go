// Package scan resolves raw QR payloads to equipment identifiers.
package scan

import (
	"encoding/json"
	"net/url"
	"strings"

	apperrors "gearguard/pkg/errors"
)

var ErrUnresolved = apperrors.NewInvalidInputError("could not read an equipment id from the scanned payload")

// minRawIDLength guards the raw-token fallback against picking up junk like
// short numeric fragments.
const minRawIDLength = 6

// ResolveEquipmentID resolves a scanned or pasted payload to an equipment id
// through an ordered fallback chain; the first matching strategy wins:
//
//  1. absolute URL whose path contains a "scan" or "equipment" segment
//     followed by the id;
//  2. JSON object with an "equipmentId" or "id" string field;
//  3. the trimmed payload itself, when long enough to plausibly be an id.
func ResolveEquipmentID(raw string) (string, error) {
	value := strings.TrimSpace(raw)

	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		if u, err := url.Parse(value); err == nil {
			if id := idFromPath(u.Path); id != "" {
				return id, nil
			}
		}
	}

	var payload struct {
		EquipmentID string `json:"equipmentId"`
		ID          string `json:"id"`
	}
	if err := json.Unmarshal([]byte(value), &payload); err == nil {
		if payload.EquipmentID != "" {
			return payload.EquipmentID, nil
		}
		if payload.ID != "" {
			return payload.ID, nil
		}
	}

	if len(value) >= minRawIDLength {
		return value, nil
	}

	return "", ErrUnresolved
}

func idFromPath(path string) string {
	parts := make([]string, 0)
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	// A "scan" segment anywhere in the path outranks an "equipment" one.
	for _, segment := range []string{"scan", "equipment"} {
		for i, p := range parts {
			if p == segment && i+1 < len(parts) {
				return parts[i+1]
			}
		}
	}
	return ""
}
