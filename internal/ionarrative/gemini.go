package ionarrative

import (
	"context"
	"strings"

	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/cfazone/pkg/narrative"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

type gemini struct {
	model  string
	client *genai.Client
}

// NewGemini creates a narrator that uses Google Gemini API.
func NewGemini(
	ctx context.Context,
	cfg config.NarrativeConfig,
) (narrative.Narrator, error) {
	if cfg.APIKey == "" {
		return nil, ConfigError("gemini", ErrNoAPIKey)
	}

	ccfg := genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		ccfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, &ccfg)
	if err != nil {
		return nil, ConfigError("gemini", err)
	}

	res := gemini{model: geminiModel, client: client}
	if cfg.Model != "" {
		res.model = cfg.Model
	}
	return &res, nil
}

func (g *gemini) Summarize(
	ctx context.Context,
	req narrative.Request,
) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(narrative.Prompt(req), genai.RoleUser),
	}
	gcfg := genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(
			narrative.System, genai.RoleUser,
		),
		Temperature: genai.Ptr[float32](0.2),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &gcfg)
	if err != nil {
		return "", RequestError("gemini", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", RequestError("gemini", ErrEmptyAnswer)
	}
	return text, nil
}
