package precedent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

type seedFile struct {
	Precedents []model.Precedent `yaml:"precedents"`
}

// LoadSeedFile reads additional precedents from a YAML file.
func LoadSeedFile(path string) ([]model.Precedent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read precedent seed file: %w", err)
	}
	return ParseSeeds(data)
}

// ParseSeeds decodes a YAML precedent list and validates each entry.
func ParseSeeds(data []byte) ([]model.Precedent, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: precedent seeds: %w", common.ErrInvalidConfig, err)
	}

	for i, p := range file.Precedents {
		if p.RulingID == "" {
			return nil, fmt.Errorf("%w: precedent %d has no ruling_id", common.ErrInvalidConfig, i)
		}
		if !p.Region.Valid() {
			return nil, fmt.Errorf("%w: precedent %s: region %q", common.ErrUnknownRegion, p.RulingID, p.Region)
		}
		if heading(p.HSCode) == "" {
			return nil, fmt.Errorf("%w: precedent %s: hs_code %q", common.ErrInvalidConfig, p.RulingID, p.HSCode)
		}
		if p.ID == "" {
			file.Precedents[i].ID = p.RulingID
		}
	}

	return file.Precedents, nil
}
