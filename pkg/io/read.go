package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/blueprint/pkg/catalog"
	"github.com/matzehuels/blueprint/pkg/chart"
	"github.com/matzehuels/blueprint/pkg/diagram"
	"github.com/matzehuels/blueprint/pkg/errors"
)

// Format is a data file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported data formats.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"cannot infer data format from %q (use .toml, .yaml, .yml or .json)", path)
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTOML, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown data format %q (use toml, yaml or json)", s)
	}
}

// Decode strictly decodes r in format f into v.
func Decode(r io.Reader, f Format, v any) error {
	switch f {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(v)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec.Decode(v)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown data format %q", f)
	}
}

// ReadFile decodes the file at path into v, choosing the format by
// extension.
func ReadFile(path string, v any) error {
	if err := errors.ValidateInputPath(path); err != nil {
		return err
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	if err := Decode(bytes.NewReader(data), f, v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", path)
	}
	return nil
}

// ReadDiagram loads and validates a diagram file.
func ReadDiagram(path string) (*diagram.Diagram, error) {
	var d diagram.Diagram
	if err := ReadFile(path, &d); err != nil {
		return nil, err
	}
	if err := d.Check(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadChart loads and validates a bar chart file.
func ReadChart(path string) (*chart.BarChart, error) {
	var c chart.BarChart
	if err := ReadFile(path, &c); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ReadCatalog loads and validates a file catalog.
func ReadCatalog(path string) (*catalog.Catalog, error) {
	var c catalog.Catalog
	if err := ReadFile(path, &c); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return &c, nil
}
