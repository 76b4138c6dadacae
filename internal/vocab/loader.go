package vocab

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptySource is returned when a vocabulary source yields no usable
// words. Callers branch on it to distinguish "nothing to check against"
// from I/O and parse failures.
var ErrEmptySource = errors.New("vocabulary source contains no words")

// wordFile is the YAML schema for a vocabulary resource. The two lists are
// unioned; the split exists only so curators can maintain native and
// code-switched word forms separately.
type wordFile struct {
	CoreWords         []string `yaml:"core_words"`
	CodeSwitchedWords []string `yaml:"code_switched_words"`
}

// LoadFile reads a YAML vocabulary resource and builds a Vocabulary from the
// union of its word lists. A missing file or a file with no usable words is
// an error — a silently empty vocabulary would make every classification
// vacuously incorrect.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: read %s: %w", path, err)
	}

	var wf wordFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("vocab: parse %s: %w", path, err)
	}

	words := make([]string, 0, len(wf.CoreWords)+len(wf.CodeSwitchedWords))
	words = append(words, wf.CoreWords...)
	words = append(words, wf.CodeSwitchedWords...)

	v := New(words)
	if v.Len() == 0 {
		return nil, fmt.Errorf("vocab: %s: %w", path, ErrEmptySource)
	}
	return v, nil
}
