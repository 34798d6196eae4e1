package main

import (
	"flag"
	"log"
	"strings"

	"github.com/1siamBot/hexboard-synth/engine/generator"
	"github.com/1siamBot/hexboard-synth/internal/config"
	"github.com/1siamBot/hexboard-synth/internal/timeutil"
)

func main() {
	configPath := flag.String("config", "", "Path to a JSON config file")
	radius := flag.Int("radius", 0, "Board radius (2-4)")
	count := flag.Int("count", 0, "Number of images to generate")
	quality := flag.Float64("quality", 0, "Resolution multiplier")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	outDir := flag.String("out", "", "Output directory")
	assetDir := flag.String("assets", "", "Sprite directory")
	sources := flag.String("sources", "", "Comma-separated icon sources to enable")
	noReport := flag.Bool("no-report", false, "Skip the report chart")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "radius":
			cfg.Radius = radius
		case "count":
			cfg.ImageCount = count
		case "quality":
			cfg.QualityMultiplier = quality
		case "seed":
			cfg.Seed = seed
		case "out":
			cfg.OutputDir = outDir
		case "assets":
			cfg.AssetDir = assetDir
		case "sources":
			cfg.EnabledSources = splitList(*sources)
		case "no-report":
			report := !*noReport
			cfg.WriteReport = &report
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g, err := generator.New(cfg, timeutil.RealClock{})
	if err != nil {
		log.Fatalf("Failed to set up generator: %v", err)
	}
	summary, err := g.Run()
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	log.Printf("Done: %d images, %d annotations in %s", summary.Images, summary.Annotations, cfg.GetOutputDir())
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
