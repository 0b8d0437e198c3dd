package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultModels maps the supported languages to their small spaCy pipelines.
var DefaultModels = map[string]string{
	"en": "en_core_web_sm",
	"it": "it_core_news_sm",
	"fr": "fr_core_news_sm",
	"es": "es_core_news_sm",
	"pt": "pt_core_news_sm",
}

type modelsFile struct {
	Languages map[string]string `yaml:"languages"`
}

// LoadModels returns the language to model mapping. An empty path yields
// DefaultModels; a file replaces them entirely.
func LoadModels(path string) (map[string]string, error) {
	if path == "" {
		models := make(map[string]string, len(DefaultModels))
		for lang, model := range DefaultModels {
			models[lang] = model
		}
		return models, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read models file: %w", err)
	}

	var f modelsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse models file: %w", err)
	}
	if len(f.Languages) == 0 {
		return nil, fmt.Errorf("models file %s lists no languages", path)
	}

	models := make(map[string]string, len(f.Languages))
	for lang, model := range f.Languages {
		lang = strings.ToLower(strings.TrimSpace(lang))
		model = strings.TrimSpace(model)
		if lang == "" || model == "" {
			return nil, fmt.Errorf("models file %s: empty language or model entry", path)
		}
		models[lang] = model
	}
	return models, nil
}
