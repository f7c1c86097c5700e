package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const profileFile = ".profile.json"

// Profile is the persisted personality profile from onboarding.
type Profile struct {
	Score int    `json:"score"` // 0-100
	Label string `json:"label"`
}

// DefaultProfile is used until onboarding has run.
func DefaultProfile() Profile {
	return Profile{Score: 50, Label: "Omnivert"}
}

func (p *persistence) profilePath() string {
	return filepath.Join(p.basePath, profileFile)
}

// LoadProfile reads the saved profile, or the default when none exists.
func (p *persistence) LoadProfile() (Profile, error) {
	if p.basePath == "" {
		return Profile{}, errors.New("store: base path unknown")
	}
	data, err := os.ReadFile(p.profilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultProfile(), nil
		}
		return Profile{}, err
	}
	var prof Profile
	if err := json.Unmarshal(data, &prof); err != nil {
		return Profile{}, err
	}
	return prof, nil
}

// SaveProfile writes the profile atomically.
func (p *persistence) SaveProfile(prof Profile) error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(prof)
	if err != nil {
		return err
	}
	path := p.profilePath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
