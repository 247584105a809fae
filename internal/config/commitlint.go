package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/czmate/internal/errors"
	"gopkg.in/yaml.v3"
)

// LintConfigFiles are the commitlint files czmate can read, in lookup order.
// JavaScript configs are not evaluated.
var LintConfigFiles = []string{
	".commitlintrc",
	".commitlintrc.json",
	".commitlintrc.yaml",
	".commitlintrc.yml",
	"package.json",
}

const headerMaxLengthRule = "header-max-length"

type lintConfig struct {
	Rules map[string][]interface{} `json:"rules" yaml:"rules"`
}

// LoadLintHeaderWidth reads header-max-length from the first commitlint file
// found in dir. It returns 0 when no file declares an enabled rule.
func LoadLintHeaderWidth(dir string) (int, string, error) {
	for _, name := range LintConfigFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return 0, "", errors.ErrLintConfig.WithError(err).WithContext("path", path)
		}

		cfg, found, err := parseLintConfig(name, data)
		if err != nil {
			return 0, "", errors.ErrLintConfig.WithError(err).WithContext("path", path)
		}
		if !found {
			continue
		}
		return HeaderMaxLength(cfg.Rules), path, nil
	}
	return 0, "", nil
}

func parseLintConfig(name string, data []byte) (lintConfig, bool, error) {
	var cfg lintConfig

	switch {
	case name == "package.json":
		var pkg struct {
			Commitlint *lintConfig `json:"commitlint"`
		}
		if err := json.Unmarshal(data, &pkg); err != nil {
			return cfg, false, err
		}
		if pkg.Commitlint == nil {
			return cfg, false, nil
		}
		return *pkg.Commitlint, true, nil
	case strings.HasSuffix(name, ".json"):
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, false, err
		}
	default:
		// .commitlintrc may hold JSON or YAML; yaml.v3 reads both.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, false, err
		}
	}
	return cfg, true, nil
}

// HeaderMaxLength extracts the value of a [level, applicability, value] rule.
// A disabled rule (level 0) or a malformed one yields 0.
func HeaderMaxLength(rules map[string][]interface{}) int {
	rule, ok := rules[headerMaxLengthRule]
	if !ok || len(rule) < 3 {
		return 0
	}
	if level, ok := toInt(rule[0]); !ok || level == 0 {
		return 0
	}
	if n, ok := toInt(rule[2]); ok && n > 0 {
		return n
	}
	return 0
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
