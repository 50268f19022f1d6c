package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskEnhance TaskType = "enhance"
	TaskExplain TaskType = "explain"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the text-generation client.
type LLMConfig struct {
	Enabled       bool
	LogCalls      bool
	APIKey        string
	BaseURL       string
	Model         string
	TimeoutMs     int
	MaxAttempts   int
	BackoffBaseMs int
	Tasks         map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// The client stays disabled until an API key is supplied.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		BaseURL:       "https://api.openai.com/v1",
		Model:         "gpt-4o-mini",
		TimeoutMs:     8000,
		MaxAttempts:   2,
		BackoffBaseMs: 200,
		Tasks: map[TaskType]TaskConfig{
			TaskEnhance: {Temperature: 0.6, MaxTokens: 700, TimeoutMs: 10000},
			TaskExplain: {Temperature: 0.7, MaxTokens: 220},
		},
	}
}

// LoadConfig reads configuration from AI_* environment variables,
// falling back to defaults for any unset or malformed values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	cfg.APIKey = strings.TrimSpace(os.Getenv("AI_API_KEY"))
	cfg.Enabled = cfg.APIKey != ""

	if v := os.Getenv("AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv("AI_BASE_URL")); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("AI_MODEL")); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("AI_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxAttempts = max(1, n)
		}
	}
	if v := os.Getenv("AI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			for task, tc := range cfg.Tasks {
				tc.MaxTokens = n
				cfg.Tasks[task] = tc
			}
		}
	}
	if v := os.Getenv("AI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			for task, tc := range cfg.Tasks {
				tc.Temperature = f
				cfg.Tasks[task] = tc
			}
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskEnhance, "AI_ENHANCE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskExplain, "AI_EXPLAIN_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective per-attempt timeout for a task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
