package pets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSeed es la lista inicial cuando no se configura SEED_FILE.
func DefaultSeed() []Pet {
	return []Pet{
		{ID: "1", Name: "Rex", Age: 3, Size: SizeMedium},
		{ID: "3", Name: "Luna", Age: 2, Size: SizeSmall},
		{ID: "4", Name: "Thor", Age: 6, Size: SizeLarge},
	}
}

// LoadSeedFile lee una lista YAML de mascotas:
//
//	- id: "1"
//	  name: Rex
//	  age: 3
//	  size: medium
func LoadSeedFile(path string) ([]Pet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(b)
}

func ParseSeed(b []byte) ([]Pet, error) {
	var out []Pet
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if out == nil {
		out = []Pet{}
	}
	return out, nil
}
