// Package ionarrative implements narrative.Narrator with an offline
// template and with text-generation services.
package ionarrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/cfazone/pkg/median"
	"github.com/gnames/cfazone/pkg/narrative"
)

// New creates a narrator for the configured provider.
func New(ctx context.Context, cfg config.NarrativeConfig) (narrative.Narrator, error) {
	switch cfg.Provider {
	case "", "template":
		return NewTemplate(), nil
	case "openai":
		return NewOpenAI(cfg)
	case "gemini":
		return NewGemini(ctx, cfg)
	default:
		return nil, ConfigError(cfg.Provider, ErrUnknownProvider)
	}
}

type tmpl struct{}

// NewTemplate creates a narrator that writes a deterministic summary
// without network access.
func NewTemplate() narrative.Narrator {
	return tmpl{}
}

func (tmpl) Summarize(_ context.Context, req narrative.Request) (string, error) {
	var sb strings.Builder

	if len(req.Years) == 0 {
		fmt.Fprintf(&sb,
			"There are no years where medians of **%s** are known for "+
				"both groups of countries, so they cannot be compared.",
			req.Indicator)
		return sb.String(), nil
	}

	fmt.Fprintf(&sb, "Medians of **%s** were compared for %d years (%s).",
		req.Indicator, len(req.Years), narrative.YearsRange(req.Years))
	if req.Unit != "" {
		fmt.Fprintf(&sb, " Values are given as %s.", strings.ToLower(req.Unit))
	}
	sb.WriteString("\n\n")

	switch req.Verdict {
	case median.CFADominant, median.NonCFADominant:
		fmt.Fprintf(&sb,
			"The median was higher more often for %s.", req.Verdict.Phrase())
	default:
		fmt.Fprintf(&sb, "%s.", req.Verdict.Phrase())
	}

	if req.Description != "" {
		fmt.Fprintf(&sb, "\n\n%s", req.Description)
	}
	return sb.String(), nil
}
