// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.astrophena.name/licenser/txtar"
)

const configFile = ".licenser.txtar"

type config struct {
	exclusions []string
}

// loadConfig reads the optional configuration archive at the root of dir.
func loadConfig(dir string) (*config, error) {
	cfg := &config{exclusions: []string{configFile}}

	ar, err := txtar.ParseFile(filepath.Join(dir, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		if f.Name == "exclusions.json" {
			var exclusions []string
			if err := json.Unmarshal(f.Data, &exclusions); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", configFile, f.Name, err)
			}
			cfg.exclusions = append(cfg.exclusions, exclusions...)
		}
	}

	return cfg, nil
}
