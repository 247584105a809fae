package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/czmate/internal/errors"
)

// ToolConfigFiles are searched in order inside each directory.
var ToolConfigFiles = []string{".czrc", ".cz.json", "package.json"}

// CommitTypes decodes either a JSON array of CommitType or an object keyed by
// type ({"feat": {"title": ..., "description": ...}}), keeping the key order.
type CommitTypes []CommitType

func (c *CommitTypes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}

	if data[0] == '[' {
		var list []CommitType
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*c = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}

	var out CommitTypes
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in types", tok)
		}
		var entry CommitType
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("type %q: %w", key, err)
		}
		entry.Key = key
		out = append(out, entry)
	}
	*c = out
	return nil
}

type packageJSON struct {
	Config struct {
		Commitizen *Overrides `json:"commitizen"`
	} `json:"config"`
}

// LoadToolConfig returns the overrides stored by a previous commitizen setup.
// The first directory holding one of ToolConfigFiles wins. The returned path is
// empty when nothing was found.
func LoadToolConfig(dirs ...string) (Overrides, string, error) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range ToolConfigFiles {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return Overrides{}, "", errors.ErrToolConfig.WithError(err).WithContext("path", path)
			}

			if name == "package.json" {
				var pkg packageJSON
				if err := json.Unmarshal(data, &pkg); err != nil {
					return Overrides{}, "", errors.ErrToolConfig.WithError(err).WithContext("path", path)
				}
				if pkg.Config.Commitizen == nil {
					continue
				}
				return *pkg.Config.Commitizen, path, nil
			}

			var o Overrides
			if err := json.Unmarshal(data, &o); err != nil {
				return Overrides{}, "", errors.ErrToolConfig.WithError(err).WithContext("path", path)
			}
			return o, path, nil
		}
	}
	return Overrides{}, "", nil
}

// SaveToolConfig writes overrides as an indented .czrc file.
func SaveToolConfig(path string, o Overrides) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return errors.ErrToolConfig.WithError(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.ErrToolConfig.WithError(err).WithContext("path", path)
	}
	return nil
}
