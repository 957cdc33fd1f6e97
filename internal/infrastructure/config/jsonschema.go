package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/bnema/paneshell/internal/domain/entity"
)

const schemaBaseID = "https://github.com/bnema/paneshell/"

// SchemaTarget names a document paneshell reads or writes.
type SchemaTarget string

const (
	SchemaConfig    SchemaTarget = "config"
	SchemaDownloads SchemaTarget = "downloads"
	SchemaArchive   SchemaTarget = "archive"
	SchemaSettings  SchemaTarget = "settings"
)

// SchemaTargets lists every target in a stable order.
func SchemaTargets() []SchemaTarget {
	return []SchemaTarget{SchemaConfig, SchemaDownloads, SchemaArchive, SchemaSettings}
}

// GenerateSchema reflects the JSON schema of target.
func GenerateSchema(target SchemaTarget) (*jsonschema.Schema, error) {
	r := new(jsonschema.Reflector)

	var (
		schema      *jsonschema.Schema
		title       string
		description string
	)
	switch target {
	case SchemaConfig:
		schema = r.Reflect(&Config{})
		title = "paneshell configuration"
		description = "Configuration schema for paneshell (config.toml)"
	case SchemaDownloads:
		schema = r.Reflect(&[]entity.DownloadRecord{})
		title = "paneshell downloads log"
		description = "Contents of " + entity.DownloadsLogFile
	case SchemaArchive:
		schema = r.Reflect(&[]entity.ArchiveRecord{})
		title = "paneshell archive log"
		description = "Contents of " + entity.ArchiveLogFile
	case SchemaSettings:
		schema = r.Reflect(&entity.Settings{})
		title = "paneshell downloads settings"
		description = "Contents of " + entity.SettingsFile
	default:
		return nil, fmt.Errorf("unknown schema target %q", target)
	}

	schema.ID = jsonschema.ID(schemaBaseID + string(target) + ".schema.json")
	schema.Title = title
	schema.Description = description
	return schema, nil
}

// MarshalSchema renders the schema of target as indented JSON.
func MarshalSchema(target SchemaTarget) ([]byte, error) {
	schema, err := GenerateSchema(target)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to config.toml and returns its path.
func GenerateSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := MarshalSchema(SchemaConfig)
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
