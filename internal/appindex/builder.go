package appindex

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/fenilsonani/appsweep/internal/platform"
)

// DefaultSources returns the discovery sources for the current platform.
func DefaultSources(info *platform.Info) []Source {
	sources := []Source{NewAppDirsSource(info), ProcessSource{}}
	if info.OS == platform.MacOS {
		sources = append([]Source{SpotlightSource{}}, sources...)
	}
	return sources
}

// Build unions every source into a fresh index. A failing or empty
// source degrades match recall but never fails the run; borderline
// directories then surface as leftovers for the user to review.
func Build(ctx context.Context, sources ...Source) *Index {
	index := NewIndex()

	for _, source := range sources {
		tokens, err := source.Contribute(ctx)
		if err != nil {
			log.Debug("index source unavailable", "source", source.Name(), "err", err)
		}
		for _, token := range tokens {
			index.Add(token)
		}
	}

	log.Debug("installed index built", "entries", index.Len(), "sources", len(sources))
	return index
}
