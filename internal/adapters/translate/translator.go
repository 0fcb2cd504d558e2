package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/httpclient"
	"poi-viewer/internal/platform/obs"
	"strings"
)

// ErrNoTranslation is returned when the service answered without a usable text.
var ErrNoTranslation = errors.New("translate: response carried no translation")

// Wire formats understood by Translator.
const (
	// Google Cloud Translation v2: {q, target, format} -> data.translations[0].translatedText
	ProtocolGoogle = "google"
	// {text, targetLocale} -> {translatedText}
	ProtocolPlain = "plain"
)

type googleRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

type plainRequest struct {
	Text         string `json:"text"`
	TargetLocale string `json:"targetLocale"`
}

type plainResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translator calls an external translation endpoint. One request per call;
// no caching, no retry.
type Translator struct {
	client   *httpclient.Client
	endpoint string
	apiKey   string
	protocol string
}

func NewTranslator(endpoint, apiKey, protocol string, client *httpclient.Client) (*Translator, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("translator: endpoint is empty")
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("translator: invalid endpoint: %w", err)
	}

	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "":
		protocol = ProtocolGoogle
	case ProtocolGoogle, ProtocolPlain:
	default:
		return nil, fmt.Errorf("translator: unknown protocol %q", protocol)
	}
	if protocol == ProtocolGoogle && strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("translator: google protocol requires an api key")
	}

	if client == nil {
		client = httpclient.New(0)
	}

	return &Translator{
		client:   client,
		endpoint: endpoint,
		apiKey:   apiKey,
		protocol: protocol,
	}, nil
}

func (t *Translator) Translate(
	ctx context.Context,
	text string,
	target domain.LocaleTag,
) (_ string, err error) {
	defer obs.Time(ctx, "translate."+t.protocol)(&err)

	var bodyObj any
	endpoint := t.endpoint
	switch t.protocol {
	case ProtocolGoogle:
		bodyObj = googleRequest{Q: text, Target: string(target), Format: "text"}
		endpoint = withQuery(endpoint, "key", t.apiKey)
	default:
		bodyObj = plainRequest{Text: text, TargetLocale: string(target)}
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return "", fmt.Errorf("marshal translate request: %w", err)
	}

	req, err := t.client.NewRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	var translated string
	switch t.protocol {
	case ProtocolGoogle:
		var gr googleResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return "", fmt.Errorf("decode translate response: %w", err)
		}
		if len(gr.Data.Translations) == 0 {
			return "", ErrNoTranslation
		}
		translated = gr.Data.Translations[0].TranslatedText
	default:
		var pr plainResponse
		if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
			return "", fmt.Errorf("decode translate response: %w", err)
		}
		translated = pr.TranslatedText
	}

	if strings.TrimSpace(translated) == "" {
		return "", ErrNoTranslation
	}
	return translated, nil
}

func withQuery(endpoint, key, value string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
