// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Pre-commit runs checks that must pass before committing.
package main

import (
	"bytes"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"go.astrophena.name/exticons/internal/devtools"
)

func main() {
	log.SetFlags(0)
	if err := devtools.ChdirRoot(); err != nil {
		log.Fatal(err)
	}

	isCI := os.Getenv("CI") == "true"

	var w bytes.Buffer

	run(&w, "gofmt", "-d", "ci_test.go", "cmd", "internal")
	if diff := w.String(); diff != "" {
		log.Fatalf("Run gofmt on these files:\n\t%v", diff)
	}

	run(&w, "go", "tool", "staticcheck", "./...")

	if isCI {
		run(&w, "go", "test", "-race", "./...")
	} else {
		run(&w, "go", "test", "./...")
	}

	run(&w, "go", "mod", "tidy", "--diff")

	// Repositories that keep their extension icons next to the module
	// must commit them regenerated.
	if _, err := os.Stat(filepath.Join("icons", "base_icon.png")); err == nil {
		run(&w, "go", "run", "./cmd/exticons", "-check")
	}
}

func run(buf *bytes.Buffer, cmd string, args ...string) {
	buf.Reset()
	c := exec.Command(cmd, args...)
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		log.Fatalf("%s failed: %v:\n%v", cmd, err, buf.String())
	}
}
