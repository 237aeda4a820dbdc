package counter

import (
	"context"
	"fmt"
	"regexp"

	"github.com/viant/afs"

	"github.com/viant/identicount/counter/graph"
	"github.com/viant/identicount/counter/locator"
	"github.com/viant/identicount/counter/python"
)

// Service drives a full analysis run: resolve sources, parse each file,
// collect its identifier records and accumulate them into a report.
type Service struct {
	fs        afs.Service
	config    *graph.Config
	include   *regexp.Regexp
	exclude   *regexp.Regexp
	inspector *python.Inspector
}

// New validates the configured patterns and returns a ready service.
// An invalid pattern is rejected here, before any file system access.
func New(config *graph.Config) (*Service, error) {
	if config == nil {
		config = graph.DefaultConfig()
	}
	include, err := regexp.Compile(config.Include)
	if err != nil {
		return nil, fmt.Errorf("invalid include pattern %q: %w", config.Include, err)
	}
	var exclude *regexp.Regexp
	if config.Exclude != "" {
		if exclude, err = regexp.Compile(config.Exclude); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", config.Exclude, err)
		}
	}
	return &Service{
		fs:        afs.New(),
		config:    config,
		include:   include,
		exclude:   exclude,
		inspector: python.NewInspector(config),
	}, nil
}

// Check analyzes every source file the supplied paths resolve to and
// returns the accumulated report, with files in resolution order. The
// run is fail-fast: the first file that cannot be parsed aborts it and
// no partial report is returned.
func (s *Service) Check(ctx context.Context, paths []string) (*graph.Report, error) {
	report := &graph.Report{}
	for _, path := range locator.New(s.include, s.exclude).Resolve(paths) {
		data, err := s.fs.DownloadWithURL(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		file, err := s.inspector.Inspect(data, path)
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, file)
	}
	return report, nil
}
