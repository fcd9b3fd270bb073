// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/exticons/internal/icons"
)

func main() { cli.Main(new(app)) }

type app struct {
	dir      string
	check    bool
	watch    bool
	manifest bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dir, "dir", filepath.Join(".", "icons"), "Read the base image from and write icons to `dir`.")
	fs.BoolVar(&a.check, "check", false, "Check that icons are up to date instead of writing them.")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate icons when the base image changes.")
	fs.BoolVar(&a.manifest, "manifest", false, "Print the manifest.json icons object and exit.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) != 0 {
		return fmt.Errorf("%w: no arguments expected", cli.ErrInvalidArgs)
	}

	c := &icons.Config{Dir: a.dir}

	switch {
	case a.manifest:
		b, err := json.MarshalIndent(map[string]any{"icons": icons.Manifest(c)}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(env.Stdout, "%s\n", b)
		return err
	case a.check:
		stale, err := icons.Check(ctx, c)
		if err != nil {
			return err
		}
		if len(stale) > 0 {
			return fmt.Errorf("icons are out of date, run exticons to regenerate them: %s", strings.Join(stale, ", "))
		}
		return nil
	case a.watch:
		return icons.Watch(ctx, c)
	}

	_, err := icons.Generate(ctx, c)
	return err
}
