package session

import (
	"context"
	"encoding/json"
	"fmt"
)

// Fragment keys, one per booking phase.
const (
	KeySearch       = "searchData"
	KeyRoom         = "roomSelection"
	KeyPersonal     = "personalDetails"
	KeyConfirmation = "bookingConfirmation"
)

// Fragments is every phase of one booking session, each defaulted to an
// empty map when the phase has not been reached yet.
type Fragments struct {
	Search       map[string]any `json:"search"`
	Room         map[string]any `json:"room"`
	Personal     map[string]any `json:"personal"`
	Confirmation map[string]any `json:"confirmation"`
}

// Store persists wizard state across page loads. Save shallow-merges the
// fragment into whatever is stored under key and reports success; it never
// returns an error to the caller. Load returns nil on a missing key or a
// fragment that no longer deserializes. Last write wins, no expiry.
type Store interface {
	Save(ctx context.Context, sessionID, key string, fragment map[string]any) bool
	Load(ctx context.Context, sessionID, key string) map[string]any
	LoadAll(ctx context.Context, sessionID string) Fragments
}

// merge overlays update onto existing, top-level keys only. Nested objects
// are replaced wholesale, not merged recursively.
func merge(existing, update map[string]any) map[string]any {
	if existing == nil {
		existing = make(map[string]any, len(update))
	}
	for k, v := range update {
		existing[k] = v
	}
	return existing
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

// Encode converts a typed fragment into its stored map form.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}
	return m, nil
}

// Decode fills out from a stored fragment. A nil fragment leaves out zeroed.
func Decode(fragment map[string]any, out any) error {
	if fragment == nil {
		return nil
	}
	raw, err := json.Marshal(fragment)
	if err != nil {
		return fmt.Errorf("decode fragment: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode fragment: %w", err)
	}
	return nil
}
