package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

const (
	defaultPromptCacheSize = 64
	defaultPromptCacheTTL  = 10 * time.Minute
	promptFetchTimeout     = 5 * time.Second
)

// ErrPromptNotFound is returned when no source has the requested prompt.
var ErrPromptNotFound = errors.New("prompt not found")

var errDisabled = errors.New("langfuse integration disabled")

// PromptStoreConfig describes where prompts come from. Resolution order is
// the in-memory cache, Langfuse prompt management, a file in LocalDir, and
// finally Defaults.
type PromptStoreConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string
	// Label selects the prompt version, e.g. "production".
	Label string

	// LocalDir holds <name>.txt copies. Prompts fetched from Langfuse are
	// written back here.
	LocalDir string
	Defaults map[string]string

	CacheSize int
	CacheTTL  time.Duration
}

// PromptStore resolves named prompt texts. It is safe for concurrent use.
type PromptStore struct {
	cfg        PromptStoreConfig
	cache      *expirable.LRU[string, string]
	httpClient *http.Client
	log        *zap.Logger
}

func NewPromptStore(cfg PromptStoreConfig) *PromptStore {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultPromptCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultPromptCacheTTL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &PromptStore{
		cfg:        cfg,
		cache:      expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        zap.L().Named("langfuse.prompts"),
	}
}

// Get returns the text of the named prompt.
func (s *PromptStore) Get(ctx context.Context, name string) (string, error) {
	if prompt, ok := s.cache.Get(name); ok {
		return prompt, nil
	}

	prompt, err := s.resolve(ctx, name)
	if err != nil {
		return "", err
	}
	s.cache.Add(name, prompt)
	return prompt, nil
}

// Invalidate drops every cached prompt.
func (s *PromptStore) Invalidate() {
	s.cache.Purge()
}

func (s *PromptStore) resolve(ctx context.Context, name string) (string, error) {
	prompt, err := s.fetch(ctx, name)
	if err == nil {
		if err := s.saveLocal(name, prompt); err != nil {
			s.log.Warn("failed to cache prompt locally", zap.String("prompt", name), zap.Error(err))
		}
		return prompt, nil
	}
	if !errors.Is(err, errDisabled) {
		s.log.Warn("prompt fetch failed, falling back", zap.String("prompt", name), zap.Error(err))
	}

	if prompt, err := s.readLocal(name); err == nil {
		return prompt, nil
	}
	if prompt, ok := s.cfg.Defaults[name]; ok {
		return prompt, nil
	}
	return "", fmt.Errorf("%w: %s", ErrPromptNotFound, name)
}

func (s *PromptStore) fetch(ctx context.Context, name string) (string, error) {
	if s.cfg.BaseURL == "" || s.cfg.PublicKey == "" || s.cfg.SecretKey == "" {
		return "", errDisabled
	}

	parsed, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(name)
	if s.cfg.Label != "" {
		q := parsed.Query()
		q.Set("label", s.cfg.Label)
		parsed.RawQuery = q.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, promptFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(s.cfg.PublicKey, s.cfg.SecretKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(promptResp.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChatMessages(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

// flattenChatMessages renders a chat prompt as "ROLE: content" blocks.
// Placeholders become {{name}}.
func flattenChatMessages(messages []chatPromptMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		content := msg.Content
		if msg.Type == "placeholder" {
			content = ""
			if msg.Name != "" {
				content = "{{" + msg.Name + "}}"
			}
		}
		if content == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		b.WriteString(strings.ToUpper(role))
		b.WriteString(": ")
		b.WriteString(content)
	}
	return b.String()
}

func (s *PromptStore) localPath(name string) string {
	if s.cfg.LocalDir == "" {
		return ""
	}
	return filepath.Join(s.cfg.LocalDir, filepath.Base(name)+".txt")
}

func (s *PromptStore) readLocal(name string) (string, error) {
	path := s.localPath(name)
	if path == "" {
		return "", errors.New("no local prompt directory configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local prompt file: %w", err)
	}
	return string(data), nil
}

func (s *PromptStore) saveLocal(name, prompt string) error {
	path := s.localPath(name)
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
