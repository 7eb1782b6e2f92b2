package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

type promptFile struct {
	Prompts map[string]promptEntry `yaml:"prompts"`
}

type promptEntry struct {
	Content string `yaml:"content"`
}

// LoadSystemPrompt reads prompts.<key>.content from a YAML prompt file.
func LoadSystemPrompt(path, key string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("System prompt file %s not found", path)
		}
		return "", fmt.Errorf("read prompt file %q: %w", path, err)
	}

	var file promptFile
	if err := yaml.NewDecoder(bytes.NewReader(content)).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("Invalid prompt file structure in %s", path)
		}
		return "", fmt.Errorf("Error parsing YAML file %s: %w", path, err)
	}
	if file.Prompts == nil {
		return "", fmt.Errorf("Invalid prompt file structure in %s", path)
	}

	entry, ok := file.Prompts[key]
	if !ok {
		return "", fmt.Errorf("Prompt key '%s' not found in %s. Available keys: %q", key, path, promptKeys(file.Prompts))
	}
	if entry.Content == "" {
		return "", fmt.Errorf("Empty content for prompt key '%s' in %s", key, path)
	}
	return entry.Content, nil
}

func promptKeys(prompts map[string]promptEntry) []string {
	keys := make([]string, 0, len(prompts))
	for k := range prompts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
