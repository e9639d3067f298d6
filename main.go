package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/clauseai/clausehound/internal/classify"
	"github.com/clauseai/clausehound/internal/detect"
	"github.com/clauseai/clausehound/internal/extract"
	"github.com/clauseai/clausehound/internal/serve"
	"github.com/clauseai/clausehound/internal/state"
)

func main() {
	app := &cli.App{
		Name:  "clausehound",
		Usage: "detect SaaS contract/terms pages and extract their text",
		Commands: []*cli.Command{
			{
				Name:  "detect",
				Usage: "run the detection pipeline against a live page",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "page URL to classify", Required: true},
					&cli.StringFlag{Name: "db", Usage: "state database path (default: in-memory)"},
					&cli.IntFlag{Name: "tab", Usage: "tab id to report under", Value: 1},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: detect.DetectAction,
			},
			{
				Name:  "scan",
				Usage: "run the detection pipeline concurrently over a list of URLs",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Usage: "YAML config with urls and worker_count", Required: true},
					&cli.IntFlag{Name: "workers", Usage: "override the configured worker count"},
					&cli.StringFlag{Name: "db", Usage: "state database path (default: in-memory)"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: detect.ScanAction,
			},
			{
				Name:  "classify",
				Usage: "classify a SaaS vendor into a taxonomy category",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "vendor/product name"},
					&cli.StringFlag{Name: "description", Usage: "short vendor description"},
					&cli.StringFlag{Name: "text", Usage: "website/marketing copy"},
					&cli.StringFlag{Name: "file", Usage: "read website text from a file"},
					&cli.StringFlag{Name: "tags", Usage: "comma-separated product tags"},
					&cli.BoolFlag{Name: "breakdown", Usage: "include per-category score breakdown"},
				},
				Action: classify.ClassifyAction,
			},
			{
				Name:  "extract",
				Usage: "fetch a URL and extract clean contract text",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "URL to extract from", Required: true},
					&cli.StringFlag{Name: "content-type", Usage: "force content type: html, pdf, or text"},
				},
				Action: extract.ExtractAction,
			},
			{
				Name:  "serve",
				Usage: "run the extraction/classification HTTP service",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address", Value: ":8787"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: serve.ServeAction,
			},
			{
				Name:  "state",
				Usage: "show the persisted last detection and analysis context",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "state database path (default: next to the binary)"},
				},
				Action: state.StateAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
