package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref points at a team or a player from another record. Older records store
// the bare id string, newer ones store {"id", "name"}; both decode into Ref.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// NewRef returns a reference carrying only an id.
func NewRef(id string) Ref {
	return Ref{ID: id}
}

// TeamID resolves the reference to a bare identifier.
func (r Ref) TeamID() string {
	return r.ID
}

func (r Ref) IsZero() bool {
	return r.ID == "" && r.Name == ""
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("decode ref id: %w", err)
		}
		*r = Ref{ID: id}
		return nil
	}

	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode ref object: %w", err)
	}
	*r = Ref{ID: obj.ID, Name: obj.Name}
	return nil
}

// MarshalJSON keeps the shape the record was written with: an object when a
// name is known, the bare id otherwise.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{ID: r.ID, Name: r.Name})
}
