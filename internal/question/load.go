package question

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a question bank document.
type Format int

const (
	// FormatYAML decodes YAML documents.
	FormatYAML Format = iota
	// FormatJSON decodes JSON documents.
	FormatJSON
)

//go:embed bank.yml
var defaultBankYAML []byte

var (
	defaultOnce sync.Once
	defaultBank Bank
)

// Default returns the built-in stress questionnaire.
func Default() Bank {
	defaultOnce.Do(func() {
		bank, err := Parse(defaultBankYAML, FormatYAML)
		if err != nil {
			panic(fmt.Sprintf("built-in question bank: %v", err))
		}
		defaultBank = bank
	})
	return defaultBank
}

// LoadFile reads, parses, and validates a question bank file.
func LoadFile(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read question bank: %w", err)
	}
	format := FormatYAML
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = FormatJSON
	}
	return Parse(data, format)
}

// Parse decodes and validates a question bank document.
func Parse(data []byte, format Format) (Bank, error) {
	var (
		file File
		err  error
	)
	switch format {
	case FormatJSON:
		file, err = parseJSONFile(data)
	default:
		file, err = parseYAMLFile(data)
	}
	if err != nil {
		return Bank{}, err
	}
	normalized, err := NormalizeFile(file)
	if err != nil {
		return Bank{}, err
	}
	return newBank(normalized), nil
}

func parseJSONFile(data []byte) (File, error) {
	var file File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	return file, nil
}

func parseYAMLFile(data []byte) (File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	return file, nil
}
