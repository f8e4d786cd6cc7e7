package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fed-sentiment/internal/artifact"
	"fed-sentiment/internal/config"
	"fed-sentiment/internal/domain"
	"fed-sentiment/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// checkResult resume la resolucion de un artefacto.
type checkResult struct {
	Name    string
	Kind    domain.ArtifactKind
	Detail  string
	Elapsed time.Duration
	Err     error
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	manifest, err := config.LoadManifest(cfg)
	if err != nil {
		log.Fatal(err)
	}

	loader := artifact.NewResolver(
		artifact.NewImageLoader(cfg.ArtifactFetchTimeout, zap.NewNop()),
		artifact.NewTableLoader(),
	)
	names := service.NewReportService(manifest, loader, cfg.ProjectURL, 1, zap.NewNop()).ArtifactNames()

	results := checkArtifacts(context.Background(), manifest, loader, names)
	if failed := printResults(os.Stdout, results); failed > 0 {
		os.Exit(1)
	}
}

// checkArtifacts resuelve cada artefacto en orden y sigue aunque alguno falle.
func checkArtifacts(ctx context.Context, catalog service.ArtifactCatalog, loader artifact.Loader, names []string) []checkResult {
	results := make([]checkResult, 0, len(names))
	for _, name := range names {
		ref, ok := catalog.Lookup(name)
		if !ok {
			results = append(results, checkResult{Name: name, Err: errors.New("missing from manifest")})
			continue
		}
		start := time.Now()
		loaded, err := loader.Load(ctx, ref)
		res := checkResult{Name: name, Kind: ref.Kind, Elapsed: time.Since(start), Err: err}
		if err == nil {
			res.Detail = describe(loaded)
		}
		results = append(results, res)
	}
	return results
}

func describe(loaded domain.LoadedArtifact) string {
	switch {
	case loaded.Table != nil:
		return fmt.Sprintf("%d columns, %d rows", len(loaded.Table.Header), len(loaded.Table.Rows))
	case loaded.Image != nil:
		return fmt.Sprintf("%dx%d, %d bytes png", loaded.Image.Width, loaded.Image.Height, len(loaded.Image.PNG))
	default:
		return "empty"
	}
}

// printResults escribe un reporte por artefacto y devuelve cuantos fallaron.
func printResults(w io.Writer, results []checkResult) int {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(w, "%s[FAIL]%s %-12s %v\n", colorRed, colorReset, res.Name, res.Err)
			continue
		}
		fmt.Fprintf(w, "%s[OK]%s   %-12s %-5s %s (%s)\n", colorGreen, colorReset, res.Name, res.Kind, res.Detail, res.Elapsed.Round(time.Millisecond))
	}
	fmt.Fprintf(w, "%s[Resumen]%s %d/%d artefactos disponibles\n", colorCyan, colorReset, len(results)-failed, len(results))
	return failed
}
