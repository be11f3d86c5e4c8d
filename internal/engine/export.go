package engine

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportDocument is the on-disk backup format.
type ExportDocument struct {
	ExportedAt time.Time       `yaml:"exportedAt"`
	Character  *CharacterState `yaml:"character"`
}

// DefaultExportFilename builds the backup filename for the given time,
// e.g. level-system-backup-2026-01-31.yaml.
func DefaultExportFilename(now time.Time) string {
	return fmt.Sprintf("level-system-backup-%s.yaml", now.Format(dateLayout))
}

// Export writes the full character state as YAML.
func (s *Service) Export(w io.Writer) error {
	doc := ExportDocument{
		ExportedAt: s.now(),
		Character:  s.state,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return enc.Close()
}
