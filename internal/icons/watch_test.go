// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatch(t *testing.T) {
	c := &Config{Dir: t.TempDir()}
	writeBase(t, c, gradient(image.NewNRGBA(image.Rect(0, 0, 64, 64)), 255), encodeStdPNG)

	ready := make(chan struct{})
	watchReadyHook = func() { close(ready) }
	t.Cleanup(func() { watchReadyHook = nil })

	var wg sync.WaitGroup
	errCh := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := Watch(ctx, c); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		t.Fatalf("Watch failed during startup: %v", err)
	case <-ready:
	}

	// Initial generation happens before watching starts.
	assertIcon(t, c.path(16), 16)

	red := color.NRGBA{R: 255, A: 255}
	solid := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(solid.Pix); i += 4 {
		copy(solid.Pix[i:i+4], []byte{red.R, red.G, red.B, red.A})
	}
	writeBase(t, c, solid, encodeStdPNG)

	deadline := time.Now().Add(10 * time.Second)
	for {
		if b, err := os.ReadFile(c.path(16)); err == nil {
			if m, err := png.Decode(bytes.NewReader(b)); err == nil {
				if nm, ok := m.(*image.NRGBA); ok && closeColor(nm.NRGBAAt(8, 8), red) {
					break
				}
			}
		}
		if time.Now().After(deadline) {
			t.Fatal("icons weren't regenerated after the base icon changed")
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	wg.Wait()
	select {
	case err := <-errCh:
		t.Fatalf("Watch failed: %v", err)
	default:
	}
}

func TestShouldRegenerate(t *testing.T) {
	base := filepath.Join("icons", "base_icon.png")
	cases := map[string]struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		"base written":      {"icons/base_icon.png", fsnotify.Write, true},
		"base created":      {"icons/base_icon.png", fsnotify.Create, true},
		"unclean path":      {"icons/./base_icon.png", fsnotify.Write, true},
		"base removed":      {"icons/base_icon.png", fsnotify.Remove, false},
		"base chmod":        {"icons/base_icon.png", fsnotify.Chmod, false},
		"generated icon":    {"icons/icon16.png", fsnotify.Write, false},
		"vim backup file":   {"icons/base_icon.png~", fsnotify.Create, false},
		"vim temp file":     {"icons/4913", fsnotify.Create, false},
		"macOS garbage":     {"icons/.DS_Store", fsnotify.Create, false},
		"other directory":   {"other/base_icon.png", fsnotify.Write, false},
		"rename and create": {"icons/base_icon.png", fsnotify.Rename | fsnotify.Create, true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := shouldRegenerate(base, fsnotify.Event{Name: filepath.FromSlash(tc.name), Op: tc.op})
			if got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}
