package llm

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
)

const generationFailed = "menu generation failed"

// Generator asks a language model for the daily menu. Failures are
// reported as external provider errors; there is no rule-based fallback.
type Generator struct {
	client  Client
	timeout time.Duration
	log     logrus.FieldLogger
}

func NewGenerator(client Client, timeout time.Duration, log logrus.FieldLogger) *Generator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Generator{
		client:  client,
		timeout: timeout,
		log:     log.WithField("component", "llm"),
	}
}

func (g *Generator) Name() string { return "llm" }

func (g *Generator) Generate(ctx context.Context, req suggestion.Request) (*suggestion.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	raw, err := g.client.Complete(ctx, SystemPrompt, BuildMenuPrompt(req))
	if err != nil {
		g.log.WithError(err).WithField("duration_ms", time.Since(start).Milliseconds()).Warn("llm call failed")
		return nil, apperr.ExternalProvider(generationFailed, err)
	}

	res, err := ParseMenu(raw)
	if err != nil {
		g.log.WithError(err).WithField("response_prefix", prefix(raw, 200)).Warn("unusable llm response")
		return nil, apperr.ExternalProvider(generationFailed, err)
	}

	attachCatalogIDs(res, req)

	g.log.WithFields(logrus.Fields{
		"duration_ms": time.Since(start).Milliseconds(),
		"starters":    len(res.Starters),
		"mains":       len(res.Mains),
		"desserts":    len(res.Desserts),
	}).Info("llm menu generated")
	return res, nil
}

func attachCatalogIDs(res *suggestion.Result, req suggestion.Request) {
	ids := make(map[string]string, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if ing.ID != "" {
			ids[strings.ToLower(strings.TrimSpace(ing.Name))] = ing.ID
		}
	}
	if len(ids) == 0 {
		return
	}
	for _, items := range [][]suggestion.MenuItem{res.Starters, res.Mains, res.Desserts} {
		for i := range items {
			for j := range items[i].Ingredients {
				ref := &items[i].Ingredients[j]
				ref.ID = ids[strings.ToLower(ref.Name)]
			}
		}
	}
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
