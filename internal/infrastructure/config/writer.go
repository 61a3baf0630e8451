package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// WriteConfigOrdered writes the configuration to disk with consistent ordering.
// Missing parent directories are created.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// EncodeTOML renders cfg as TOML with keys in field order and sections
// sorted by name, so written files diff cleanly.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// sortTOMLSections reorders [section] blocks by name. Keys before the first
// header stay on top and blocks are separated by one blank line.
func sortTOMLSections(content string) string {
	type section struct {
		name  string
		lines []string
	}

	var (
		preamble []string
		sections []section
	)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			sections = append(sections, section{name: strings.Trim(trimmed, "[]")})
			continue
		}
		if trimmed == "" {
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].name < sections[j].name
	})

	blocks := make([]string, 0, len(sections)+1)
	if len(preamble) > 0 {
		blocks = append(blocks, strings.Join(preamble, "\n"))
	}
	for _, sec := range sections {
		block := append([]string{"[" + sec.name + "]"}, sec.lines...)
		blocks = append(blocks, strings.Join(block, "\n"))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
