// Command canvasdemo renders a demo scene with the canvas library and writes
// it as a PNG.
//
// Settings come from an optional TOML file and from flags; flags that are
// set explicitly win over the file:
//
//	width   = 800
//	height  = 600
//	threads = 4
//	output  = "demo.png"
//	scene   = "all"
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/canvas"
)

// Conf is the demo configuration.
type Conf struct {
	Width   int
	Height  int
	Threads int
	Output  string
	Scene   string
}

var (
	confFlag    = flag.String("conf", "", "optional TOML config file")
	widthFlag   = flag.Int("width", 800, "image width")
	heightFlag  = flag.Int("height", 600, "image height")
	threadsFlag = flag.Int("threads", 0, "compositing workers; 0 draws synchronously")
	outputFlag  = flag.String("output", "demo.png", "output file")
	sceneFlag   = flag.String("scene", "all", "scene to draw: "+sceneNames())
	verboseFlag = flag.Bool("v", false, "log context activity to stderr")
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	flag.Parse()

	c, err := loadConf()
	if err != nil {
		log.Fatal(err)
	}
	if *verboseFlag {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	draw, ok := scenes[c.Scene]
	if !ok {
		log.Fatalf("unknown scene %q, want one of %s", c.Scene, sceneNames())
	}

	s, err := canvas.NewSurface(c.Width, c.Height)
	if err != nil {
		log.Fatal(err)
	}
	err = canvas.Draw(s, func(ctx *canvas.Context) error {
		return draw(ctx, float64(c.Width), float64(c.Height))
	}, canvas.WithThreadCount(c.Threads))
	if err != nil {
		log.Fatalf("render %s: %v", c.Scene, err)
	}

	if err := writePNG(c.Output, s); err != nil {
		log.Fatal(err)
	}
	log.Printf("scene %q saved to %s (%dx%d, %d threads)", c.Scene, c.Output, c.Width, c.Height, c.Threads)
}

// loadConf merges the config file with the flags.
func loadConf() (Conf, error) {
	c := Conf{
		Width:   *widthFlag,
		Height:  *heightFlag,
		Threads: *threadsFlag,
		Output:  *outputFlag,
		Scene:   *sceneFlag,
	}
	if *confFlag != "" {
		md, err := toml.DecodeFile(*confFlag, &c)
		if err != nil {
			return c, fmt.Errorf("failed to decode config file: %v", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return c, fmt.Errorf("undecoded fields in config file: %v", undecoded)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			c.Width = *widthFlag
		case "height":
			c.Height = *heightFlag
		case "threads":
			c.Threads = *threadsFlag
		case "output":
			c.Output = *outputFlag
		case "scene":
			c.Scene = *sceneFlag
		}
	})
	return c, nil
}

func writePNG(name string, s *canvas.Surface) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}
