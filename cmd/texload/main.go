// Command texload loads a texture manifest on a headless device and prints
// what was created.
//
// Usage:
//
//	texload -manifest textures.toml [-root dir] [-bind] [-verbose]
//
// Files named in the manifest are resolved under <root>/Assets/Textures.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/texture"
	"github.com/gogpu/texture/backend/native"
	"github.com/gogpu/texture/manifest"
	"github.com/gogpu/texture/sprite"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "textures.toml", "texture manifest (TOML)")
		root         = flag.String("root", "", "directory containing Assets/Textures (default: current directory)")
		bind         = flag.Bool("bind", false, "bind each texture to consecutive texture units")
		verbose      = flag.Bool("verbose", false, "log texture lifecycle")
	)
	flag.Parse()

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		texture.SetLogger(logger)
	}

	m, err := manifest.ReadFile(*manifestPath)
	if err != nil {
		log.Fatalf("texload: %v", err)
	}
	if *root != "" {
		if err := os.Chdir(*root); err != nil {
			log.Fatalf("texload: %v", err)
		}
	}

	if err := run(m, *bind); err != nil {
		log.Fatalf("texload: %v", err)
	}
}

func run(m *manifest.Manifest, bind bool) error {
	dev, err := native.NewNoopAdapter()
	if err != nil {
		return err
	}
	defer dev.Destroy()

	reg := texture.NewRegistry()
	defer reg.ReleaseAll()

	loaded, err := m.Load(dev, reg)
	if err != nil {
		return err
	}

	for i, t := range loaded {
		q := sprite.Quad(t)
		fmt.Printf("%-20s %4dx%-4d sprite (%g,%g)-(%g,%g)\n",
			t.Name(), t.Width(), t.Height(), q[1].X, q[1].Y, q[3].X, q[3].Y)

		if bind && i < texture.MaxUnits {
			unit := texture.Unit(i) //nolint:gosec // G115: bounded by MaxUnits
			t.Use(unit)
			if _, _, ok := dev.Binding(unit); !ok {
				return fmt.Errorf("texture %q not bound to unit %d", t.Name(), unit)
			}
		}
	}

	stats := dev.Stats()
	fmt.Printf("%s; device holds %d textures, %d samplers\n", reg.Stats(), stats.Textures, stats.Samplers)
	return nil
}
