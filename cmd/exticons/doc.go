// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Exticons generates browser extension icons.

# Usage

	$ exticons [flags]

Exticons reads the base image from "icons/base_icon.png" and writes it
resized to 16x16, 32x32, 48x48 and 128x128 as "icons/icon16.png",
"icons/icon32.png", "icons/icon48.png" and "icons/icon128.png".

If the base image is missing, nothing is written and exticons exits with a
non-zero status. If the base image can't be processed, exticons writes solid
blue placeholder icons instead and exits successfully.

With -check, exticons doesn't write anything, but fails if any of the icons
are missing or out of date. With -watch, it regenerates icons each time the
base image changes. With -manifest, it prints the "icons" object to put in
manifest.json.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
