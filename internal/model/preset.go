package model

import (
	"time"

	"github.com/google/uuid"
)

// Preset is a named, reusable combination of packing settings and style
// options. It captures how a sheet is built but never the sprites in it.
type Preset struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Settings    PackSettings `json:"settings"`
	ClassPrefix string       `json:"class_prefix,omitempty"`
	SheetURL    string       `json:"sheet_url,omitempty"`
}

func NewPreset(name, description string, settings PackSettings) Preset {
	now := time.Now().UTC().Format(time.RFC3339)
	return Preset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Settings:    settings,
	}
}

// PresetStore holds a collection of presets.
type PresetStore struct {
	Presets []Preset `json:"presets"`
}

func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: []Preset{},
	}
}

// Put adds p, replacing any existing preset with the same name. A replaced
// preset keeps its ID and creation time.
func (ps *PresetStore) Put(p Preset) {
	for i := range ps.Presets {
		if ps.Presets[i].Name == p.Name {
			p.ID = ps.Presets[i].ID
			p.CreatedAt = ps.Presets[i].CreatedAt
			p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			ps.Presets[i] = p
			return
		}
	}
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by name. Returns true if found and removed.
func (ps *PresetStore) Remove(name string) bool {
	for i, p := range ps.Presets {
		if p.Name == name {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByName returns a pointer to the preset with the given name, or nil.
func (ps *PresetStore) FindByName(name string) *Preset {
	for i := range ps.Presets {
		if ps.Presets[i].Name == name {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names returns the preset names in stored order.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}
