// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/chart/base/errors"
)

// ErrUnknownFormat is returned for files whose extension
// is not .toml, .yaml, .yml, or .json.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Format is the encoding of an options file.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf returns the format of the named file from its extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

// Decode reads options in the given format from r, on top of the
// default options.
func Decode(r io.Reader, f Format) (*Options, error) {
	o := New()
	var err error
	switch f {
	case TOML:
		err = toml.NewDecoder(r).Decode(o)
	case YAML:
		err = yaml.NewDecoder(r).Decode(o)
		if err == io.EOF {
			err = nil
		}
	case JSON:
		err = json.NewDecoder(r).Decode(o)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", f, err)
	}
	return o, nil
}

// Open reads the options from the named file, choosing the
// format by its extension.
func Open(filename string) (*Options, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	o, err := Decode(bytes.NewReader(b), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return o, nil
}

// Save writes the options to the named file, choosing the
// format by its extension.
func Save(o *Options, filename string) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	var b []byte
	switch f {
	case TOML:
		b, err = toml.Marshal(o)
	case YAML:
		b, err = yaml.Marshal(o)
	case JSON:
		b, err = json.MarshalIndent(o, "", "\t")
	}
	if err != nil {
		return fmt.Errorf("config: encoding %s: %w", f, err)
	}
	return os.WriteFile(filename, b, 0666)
}
