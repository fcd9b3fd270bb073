// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"context"
	"errors"
	"image"
	"os"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestCheck(t *testing.T) {
	cases := map[string]struct {
		corrupt bool
		modify  func(t *testing.T, c *Config)
		want    []int
	}{
		"up to date": {},
		"placeholders up to date": {
			corrupt: true,
		},
		"modified": {
			modify: func(t *testing.T, c *Config) {
				if err := os.WriteFile(c.path(32), []byte("stale"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			want: []int{32},
		},
		"removed": {
			modify: func(t *testing.T, c *Config) {
				for _, size := range []int{16, 128} {
					if err := os.Remove(c.path(size)); err != nil {
						t.Fatal(err)
					}
				}
			},
			want: []int{16, 128},
		},
		"base changed": {
			modify: func(t *testing.T, c *Config) {
				writeBase(t, c, gradient(image.NewNRGBA(image.Rect(0, 0, 64, 64)), 10), encodeStdPNG)
			},
			want: []int{16, 32, 48, 128},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := &Config{Dir: t.TempDir()}
			if tc.corrupt {
				c.setDefaults()
				if err := os.WriteFile(c.Base, []byte("GIF89a"), 0o644); err != nil {
					t.Fatal(err)
				}
			} else {
				writeBase(t, c, gradient(image.NewNRGBA(image.Rect(0, 0, 150, 150)), 255), encodeStdPNG)
			}
			if _, err := Generate(context.Background(), c); err != nil {
				t.Fatal(err)
			}
			if tc.modify != nil {
				tc.modify(t, c)
			}

			got, err := Check(context.Background(), c)
			if err != nil {
				t.Fatal(err)
			}
			var want []string
			for _, size := range tc.want {
				want = append(want, c.path(size))
			}
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestCheckMissingBase(t *testing.T) {
	c := &Config{Dir: t.TempDir()}
	if _, err := Check(context.Background(), c); !errors.Is(err, ErrBaseMissing) {
		t.Fatalf("want ErrBaseMissing, got %v", err)
	}
}
