package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

// requestTimeout bounds each translation call so dish creation never blocks
// on a slow upstream.
const requestTimeout = 4 * time.Second

const sourceLanguage = "es"

// fallbackPrefix tags passthrough text when the translation service is
// unavailable. Best-effort contract: the caller always gets usable text.
var fallbackPrefix = map[string]string{
	"en": "[EN]",
	"de": "[DE]",
}

// Client calls a LibreTranslate-compatible endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a translation client for the given endpoint URL.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate returns text translated to the target language, or the original
// text tagged with the target prefix if the service fails. It never returns
// an error.
func (c *Client) Translate(ctx context.Context, text, target string) string {
	if text == "" {
		return ""
	}

	translated, err := c.call(ctx, text, target)
	if err != nil || translated == "" {
		return fallback(text, target)
	}
	return translated
}

func (c *Client) call(ctx context.Context, text, target string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: sourceLanguage,
		Target: target,
		Format: "text",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation failed: status %d", resp.StatusCode)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.TranslatedText, nil
}

// TranslateDish produces EN and DE translations for a dish's title and
// description, fanning the four calls out concurrently.
func (c *Client) TranslateDish(ctx context.Context, title, description string) model.Translations {
	targets := []string{"en", "de"}
	type result struct {
		lang        string
		title       string
		description string
	}

	results := make([]result, len(targets))
	var wg sync.WaitGroup
	for i, lang := range targets {
		wg.Add(1)
		go func(i int, lang string) {
			defer wg.Done()
			results[i] = result{
				lang:        lang,
				title:       c.Translate(ctx, title, lang),
				description: c.Translate(ctx, description, lang),
			}
		}(i, lang)
	}
	wg.Wait()

	translations := make(model.Translations, len(targets))
	for _, r := range results {
		translations[r.lang] = model.DishTranslation{
			Title:       r.title,
			Description: r.description,
		}
	}
	return translations
}

func fallback(text, target string) string {
	prefix, ok := fallbackPrefix[target]
	if !ok {
		return text
	}
	return prefix + " " + text
}
