// SPDX-License-Identifier: AGPL-3.0-only

package commands

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// marshal encodes v as indented JSON, or as YAML with the same keys as the JSON encoding.
func marshal(v interface{}, format string) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	if format != formatYAML {
		return append(out, '\n'), nil
	}

	var generic interface{}
	if err := json.Unmarshal(out, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

func writeTo(w io.Writer, v interface{}, format string) error {
	out, err := marshal(v, format)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func writeFile(path string, v interface{}, format string) error {
	out, err := marshal(v, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, os.FileMode(int(0o666))); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	return nil
}

// outputPath names the converted file after its source, in dir.
func outputPath(dir, source, format string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"."+format)
}
