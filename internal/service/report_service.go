package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fed-sentiment/internal/artifact"
	"fed-sentiment/internal/domain"
	"fed-sentiment/internal/render"
)

var ErrArtifactNotConfigured = errors.New("artifact not configured")

// ArtifactCatalog resuelve nombres de artefacto a ubicaciones.
type ArtifactCatalog interface {
	Lookup(name string) (domain.ArtifactRef, bool)
}

type blockPlan struct {
	kind     domain.BlockKind
	prose    template.HTML
	artifact string
}

type sectionPlan struct {
	id     string
	title  string
	blocks []blockPlan
}

func planProse(md string) blockPlan {
	return blockPlan{kind: domain.BlockProse, prose: render.MustMarkdown(md)}
}

func planTable(name string) blockPlan {
	return blockPlan{kind: domain.BlockTable, artifact: name}
}

func planChart(name string) blockPlan {
	return blockPlan{kind: domain.BlockImage, artifact: name}
}

// reportPlan es el orden fijo de lectura del reporte.
var reportPlan = []sectionPlan{
	{id: "abstract", title: "Abstract", blocks: []blockPlan{planProse(abstractText)}},
	{id: "survey", title: "1 minute survey", blocks: []blockPlan{
		planProse(surveyIntroText),
		{kind: domain.BlockSurvey},
	}},
	{id: "statements", title: "Press conference reports dataframe", blocks: []blockPlan{
		planProse(statementsText),
		planTable(domain.ArtifactStatements),
	}},
	{id: "cleaned", title: "Cleaned textual dataframe", blocks: []blockPlan{
		planProse(cleanedText),
		planTable(domain.ArtifactCleaned),
	}},
	{id: "textual-variables", title: "Textual variables visualization", blocks: []blockPlan{
		planChart(domain.ArtifactGraph1),
		planChart(domain.ArtifactGraph2),
	}},
	{id: "word-frequencies", title: "Word frequencies", blocks: []blockPlan{
		planProse(wordFrequencyText),
		planChart(domain.ArtifactGraph3),
		planChart(domain.ArtifactGraph4),
	}},
	{id: "communication", title: "Communication variable: from qualitative to quantitative", blocks: []blockPlan{
		planProse(toneText),
		planChart(domain.ArtifactGraph5),
	}},
	{id: "macro", title: "Macro-variables", blocks: []blockPlan{
		planTable(domain.ArtifactFinal),
		planChart(domain.ArtifactGraph6),
		planChart(domain.ArtifactGraph7),
	}},
	{id: "regression", title: "Regression Analysis", blocks: []blockPlan{
		planProse(regressionText),
		{kind: domain.BlockRegression},
	}},
}

// ReportService ejecuta una pasada de render: resuelve todos los artefactos o falla entera.
type ReportService struct {
	catalog     ArtifactCatalog
	loader      artifact.Loader
	projectURL  string
	concurrency int
	logger      *zap.Logger
}

// NewReportService crea el servicio. concurrency <= 1 resuelve en serie.
func NewReportService(catalog ArtifactCatalog, loader artifact.Loader, projectURL string, concurrency int, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ReportService{
		catalog:     catalog,
		loader:      loader,
		projectURL:  projectURL,
		concurrency: concurrency,
		logger:      logger,
	}
}

// ArtifactNames devuelve los artefactos de una pasada, en orden de aparicion.
func (s *ReportService) ArtifactNames() []string {
	names := []string{domain.ArtifactFedLogo}
	for _, sec := range reportPlan {
		for _, b := range sec.blocks {
			if b.artifact != "" {
				names = append(names, b.artifact)
			}
		}
	}
	return names
}

// Render arma la pagina completa para el estado de encuesta dado.
func (s *ReportService) Render(ctx context.Context, survey domain.SurveyView) (domain.Page, error) {
	start := time.Now()
	loaded, err := s.resolveAll(ctx, s.ArtifactNames())
	if err != nil {
		return domain.Page{}, err
	}

	page := domain.Page{
		Banner: domain.Banner{
			Title:      reportTitle,
			Authors:    reportAuthors,
			ProjectURL: s.projectURL,
			LogoURI:    loaded[domain.ArtifactFedLogo].Image.DataURI(),
		},
		Survey:     survey,
		Regression: regressionSummary(),
	}
	for _, sec := range reportPlan {
		section := domain.Section{ID: sec.id, Title: sec.title}
		for _, b := range sec.blocks {
			block := domain.Block{Kind: b.kind, Prose: b.prose, Artifact: b.artifact}
			switch b.kind {
			case domain.BlockTable:
				block.Table = loaded[b.artifact].Table
			case domain.BlockImage:
				block.ImageURI = loaded[b.artifact].Image.DataURI()
			}
			section.Blocks = append(section.Blocks, block)
		}
		page.Sections = append(page.Sections, section)
	}

	s.logger.Debug("report rendered",
		zap.Int("artifacts", len(loaded)),
		zap.Duration("latency", time.Since(start)),
	)
	return page, nil
}

func (s *ReportService) resolveAll(ctx context.Context, names []string) (map[string]domain.LoadedArtifact, error) {
	if s.loader == nil || s.catalog == nil {
		return nil, fmt.Errorf("%w: report loader not configured", ErrArtifactNotConfigured)
	}
	refs := make([]domain.ArtifactRef, len(names))
	for i, name := range names {
		ref, ok := s.catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrArtifactNotConfigured, name)
		}
		refs[i] = ref
	}

	results := make([]domain.LoadedArtifact, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.loader.Load(gctx, ref)
			if err != nil {
				return err
			}
			if err := checkLoaded(ref, res); err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]domain.LoadedArtifact, len(results))
	for i, res := range results {
		out[refs[i].Name] = res
	}
	return out, nil
}

func checkLoaded(ref domain.ArtifactRef, res domain.LoadedArtifact) error {
	switch ref.Kind {
	case domain.ArtifactImage:
		if res.Image == nil {
			return fmt.Errorf("%w: %s returned no image", artifact.ErrNotImage, ref.Name)
		}
	case domain.ArtifactTable:
		if res.Table == nil {
			return fmt.Errorf("%w: %s returned no table", artifact.ErrUnavailable, ref.Name)
		}
	}
	return nil
}
