package ionarrative

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/cfazone/pkg/narrative"
	"github.com/gnames/gnfmt"
)

const (
	openAIURL   = "https://api.openai.com/v1"
	openAIModel = "gpt-4o-mini"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type openAI struct {
	url    string
	model  string
	key    string
	client *http.Client
}

// NewOpenAI creates a narrator that uses a chat-completions API.
// Any OpenAI-compatible service works if BaseURL points to it.
func NewOpenAI(cfg config.NarrativeConfig) (narrative.Narrator, error) {
	if cfg.APIKey == "" {
		return nil, ConfigError("openai", ErrNoAPIKey)
	}
	res := openAI{
		url:    openAIURL,
		model:  openAIModel,
		key:    cfg.APIKey,
		client: &http.Client{Timeout: 2 * time.Minute},
	}
	if cfg.BaseURL != "" {
		res.url = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Model != "" {
		res.model = cfg.Model
	}
	return &res, nil
}

func (o *openAI) Summarize(
	ctx context.Context,
	req narrative.Request,
) (string, error) {
	enc := gnfmt.GNjson{}
	body, err := enc.Encode(chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: narrative.System},
			{Role: "user", Content: narrative.Prompt(req)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", RequestError("openai", err)
	}

	url := o.url + "/chat/completions"
	hreq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, url, bytes.NewReader(body),
	)
	if err != nil {
		return "", RequestError("openai", err)
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Authorization", "Bearer "+o.key)

	resp, err := o.client.Do(hreq)
	if err != nil {
		return "", RequestError("openai", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", RequestError("openai", err)
	}

	var res chatResponse
	if err = enc.Decode(data, &res); err != nil {
		return "", RequestError("openai", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if res.Error != nil && res.Error.Message != "" {
			msg = res.Error.Message
		}
		return "", RequestError("openai", &statusError{msg: msg})
	}
	if len(res.Choices) == 0 {
		return "", RequestError("openai", ErrEmptyAnswer)
	}

	text := strings.TrimSpace(res.Choices[0].Message.Content)
	if text == "" {
		return "", RequestError("openai", ErrEmptyAnswer)
	}
	return text, nil
}
