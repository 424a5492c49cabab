// Command texview loads a texture manifest into the GPU device of a gogpu
// window, cycles the loaded textures through texture unit 0 and draws
// whatever unit 0 holds as a sprite.
//
// The device is shared with the window through gpucontext, so textures are
// created on the same device the window renders with.
//
// Usage:
//
//	texview -manifest textures.toml
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/texture"
	"github.com/gogpu/texture/backend/native"
	"github.com/gogpu/texture/manifest"
	"github.com/gogpu/texture/sprite"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "textures.toml", "texture manifest (TOML)")
		every        = flag.Int("every", 60, "frames each texture stays bound")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	texture.SetLogger(logger)

	m, err := manifest.ReadFile(*manifestPath)
	if err != nil {
		log.Fatalf("texview: %v", err)
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("texview").
		WithSize(640, 480))

	var (
		dev     *native.HALAdapter
		sprites *sprite.Renderer
		reg     = texture.NewRegistry()
		loaded  []*texture.Texture
		current *texture.Texture
		frame   int
	)

	app.OnDraw(func(dc *gogpu.Context) {
		if dev == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			dev, err = native.NewHALAdapterFromProvider(provider)
			if err != nil {
				log.Fatalf("texview: %v", err)
			}
			loaded, err = m.Load(dev, reg)
			if err != nil {
				log.Fatalf("texview: %v", err)
			}
			sprites, err = sprite.NewRenderer(dev.Device(), dev.Queue(), provider.SurfaceFormat())
			if err != nil {
				log.Fatalf("texview: %v", err)
			}
			log.Printf("backend %s: %s", dc.Backend(), reg.Stats())
		}
		if len(loaded) == 0 || *every <= 0 {
			return
		}

		if frame%*every == 0 {
			current = loaded[(frame / *every)%len(loaded)]
			current.Use(0)
			logger.Debug("texview: bound", "texture", current.Name(), "size", current.Width()*current.Height())
		}
		frame++

		view, sampler, ok := dev.Binding(0)
		target := dc.SurfaceView()
		if !ok || target == nil {
			return
		}
		w, h := dc.SurfaceSize()
		if err := sprites.Draw(target.HalTextureView(), w, h, current, view, sampler); err != nil {
			logger.Warn("texview: draw failed", "texture", current.Name(), "err", err)
		}
	})

	// Textures must go before the shared device does.
	app.OnClose(func() {
		if sprites != nil {
			sprites.Destroy()
		}
		reg.ReleaseAll()
		if dev != nil {
			dev.Destroy()
		}
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
