package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"nsxfint/internal/core"
)

// Run executes the full load, resolve, write pass over one report.
func (s Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input path is required")
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}

	log.Ctx(ctx).Debug().Str("input", inputPath).Msg("reading usage report")
	report, err := s.Report.LoadUsage(inputPath)
	if err != nil {
		return RunResult{}, err
	}
	log.Ctx(ctx).Trace().Ints("lines", report.SkippedLines).Msg("non-table lines skipped")

	if req.KeepArtifacts {
		if err := s.keepFilteredArtifact(ctx, outputPath, report.Filtered); err != nil {
			return RunResult{}, err
		}
	}

	log.Ctx(ctx).Debug().Msg("reading NSX feature catalog")
	features, err := s.catalogPort(req.CatalogPath).LoadFeatures()
	if err != nil {
		return RunResult{}, err
	}

	resolver, err := core.NewResolver(ctx, features)
	if err != nil {
		return RunResult{}, err
	}
	rows := resolver.Resolve(ctx, report.Records)

	if err := s.Writer.WriteReport(outputPath, features, rows); err != nil {
		return RunResult{}, err
	}
	return RunResult{
		VMCount:      len(rows),
		FeatureCount: len(features),
		SkippedLines: len(report.SkippedLines),
		OutputPath:   outputPath,
	}, nil
}

// keepFilteredArtifact writes the pre-pass output next to the report
// for inspection. Debug runs disable cleanup, so the file stays.
func (s Service) keepFilteredArtifact(ctx context.Context, outputPath string, filtered []byte) error {
	path := outputPath + ".filtered"
	if err := os.WriteFile(path, filtered, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write filtered report artifact").
			WithCause(err)
	}
	log.Ctx(ctx).Trace().Str("path", path).Msg("filtered report kept")
	return nil
}
