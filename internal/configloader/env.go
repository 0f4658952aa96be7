package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/markpadhq/markpad/pkg/config"
)

// envVarPrefix is the prefix for all markpad environment variables.
const envVarPrefix = "MARKPAD_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"HIGHLIGHT":       {field: "render.highlight", typ: envTypeBool},
	"HIGHLIGHT_STYLE": {field: "render.highlight_style", typ: envTypeString},
	"DETECT_LANGUAGE": {field: "render.detect_language", typ: envTypeBool},
	"CASE_SENSITIVE":  {field: "search.case_sensitive", typ: envTypeBool},
	"REGEX":           {field: "search.regex", typ: envTypeBool},
	"FLAGS":           {field: "search.flags", typ: envTypeString},
	"WRAP_AROUND":     {field: "search.wrap_around", typ: envTypeBool},
	"HISTORY_LIMIT":   {field: "search.history_limit", typ: envTypeInt},
	"HISTORY_FILE":    {field: "search.history_file", typ: envTypeString},
	"FORMAT":          {field: "format", typ: envTypeString},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"IGNORE":          {field: "ignore", typ: envTypeSlice},
	"BACKUPS":         {field: "backups", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MARKPAD_ (e.g., MARKPAD_REGEX).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "render.highlight_style":
		cfg.Render.HighlightStyle = value
	case "search.flags":
		cfg.Search.Flags = value
	case "search.history_file":
		cfg.Search.HistoryFile = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "render.highlight":
		cfg.Render.Highlight = value
	case "render.detect_language":
		cfg.Render.DetectLanguage = value
	case "search.case_sensitive":
		cfg.Search.CaseSensitive = value
	case "search.regex":
		cfg.Search.Regex = value
	case "search.wrap_around":
		cfg.Search.WrapAround = value
	case "backups":
		cfg.Backups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "search.history_limit":
		cfg.Search.HistoryLimit = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"MARKPAD_HIGHLIGHT":       "Highlight code fences in rendered HTML: true or false",
		"MARKPAD_HIGHLIGHT_STYLE": "Highlighter style name (e.g. github)",
		"MARKPAD_DETECT_LANGUAGE": "Guess the language of untagged code fences: true or false",
		"MARKPAD_CASE_SENSITIVE":  "Case-sensitive matching: true or false",
		"MARKPAD_REGEX":           "Treat queries as regular expressions: true or false",
		"MARKPAD_FLAGS":           "Extra regex flags (i, m, s, U)",
		"MARKPAD_WRAP_AROUND":     "Wrap match navigation at boundaries: true or false",
		"MARKPAD_HISTORY_LIMIT":   "Number of history entries to keep",
		"MARKPAD_HISTORY_FILE":    "Path of the history file",
		"MARKPAD_FORMAT":          "Search output format: text, table, or json",
		"MARKPAD_JOBS":            "Number of parallel render workers (0 = auto)",
		"MARKPAD_IGNORE":          "Comma-separated list of ignore patterns",
		"MARKPAD_BACKUPS":         "Write backups before in-place replacement: true or false",
	}
}
