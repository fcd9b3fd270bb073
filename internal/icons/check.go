// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"go.astrophena.name/base/logger"
)

// Check reports paths of icons that are missing or differ from what Generate
// would write, including placeholders when the base image can't be processed.
// It doesn't write anything.
func Check(ctx context.Context, c *Config) ([]string, error) {
	c.setDefaults()

	if err := c.checkBase(ctx); err != nil {
		return nil, err
	}

	want, err := renderBase(c.Base)
	if err != nil {
		logger.Info(ctx, "base icon can't be processed, expecting placeholders", slog.Any("err", err))
		if want, err = Placeholders(); err != nil {
			return nil, err
		}
	}

	var stale []string
	for _, size := range sizes {
		path := c.path(size)
		got, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, path)
			continue
		} else if err != nil {
			return nil, err
		}
		if !bytes.Equal(got, want[size]) {
			stale = append(stale, path)
		}
	}
	return stale, nil
}

func renderBase(path string) (map[int][]byte, error) {
	src, err := load(path)
	if err != nil {
		return nil, err
	}
	return Render(src)
}
