// Package source loads dropdown option collections from files: plain text
// (one option per line), TOML, or a SQLite table.
package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	apperrors "dropdown/internal/errors"
	"dropdown/internal/ui"
)

// Load reads the options stored at path. The format follows the extension;
// table names the SQLite table and is ignored for other formats.
func Load(ctx context.Context, path, table string) (ui.Collection, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return ui.Strings(nil), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".txt", ".list":
		return loadText(path)
	case ".toml":
		return loadTOML(path)
	case ".db", ".sqlite", ".sqlite3":
		t, err := OpenTable(ctx, path, table)
		if err != nil {
			return nil, err
		}
		return ui.Collect(t)
	}
	return nil, apperrors.New(apperrors.CodeSourceUnsupported,
		fmt.Sprintf("unsupported option source %q", filepath.Base(path)), nil)
}

func readFile(path string) ([]byte, error) {
	//nolint:gosec // G304: Option files are chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeSourceReadFailed, "read options", err)
	}
	return data, nil
}

// loadText keeps every non-blank line that is not a # comment.
func loadText(path string) (ui.Collection, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var opts ui.Strings
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		opts = append(opts, line)
	}
	if err := sc.Err(); err != nil {
		return nil, apperrors.New(apperrors.CodeSourceParseFailed, "scan options", err)
	}
	return opts, nil
}

type tomlOptions struct {
	Options []string `toml:"options"`
}

func loadTOML(path string) (ui.Collection, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var doc tomlOptions
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.New(apperrors.CodeSourceParseFailed, "parse options toml", err)
	}
	return ui.Strings(doc.Options), nil
}
