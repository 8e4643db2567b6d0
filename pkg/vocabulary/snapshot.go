package vocabulary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"gopkg.in/yaml.v3"
)

// Snapshot is an immutable in-memory vocabulary, loadable from a YAML
// catalog. It backs standalone runs and tests where no vocabulary database
// is available.
type Snapshot struct {
	concepts map[int64]models.Concept
}

type catalogFile struct {
	Concepts []models.Concept `yaml:"concepts"`
}

func NewSnapshot(concepts ...models.Concept) *Snapshot {
	indexed := make(map[int64]models.Concept, len(concepts))
	for _, c := range concepts {
		indexed[c.ConceptID] = c
	}
	return &Snapshot{concepts: indexed}
}

// LoadSnapshot reads a YAML concept catalog from path.
func LoadSnapshot(path string) (*Snapshot, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var cat catalogFile
	if err := yaml.Unmarshal(content, &cat); err != nil {
		return nil, err
	}
	if len(cat.Concepts) == 0 {
		return nil, fmt.Errorf("vocabulary catalog %s is empty", path)
	}
	return NewSnapshot(cat.Concepts...), nil
}

func (s *Snapshot) DomainOf(ctx context.Context, conceptID int64) (models.Domain, bool, error) {
	concept, ok := s.concepts[conceptID]
	if !ok {
		return "", false, nil
	}
	return concept.DomainID, true, nil
}

// Lookup returns the full concept row when present.
func (s *Snapshot) Lookup(conceptID int64) (models.Concept, bool) {
	concept, ok := s.concepts[conceptID]
	return concept, ok
}

// Len reports the number of concepts held.
func (s *Snapshot) Len() int {
	return len(s.concepts)
}
