package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// It also resolves an empty mood provider.
func (c *Config) Validate() error {
	if len(c.Auth.Secret) < 32 {
		return fmt.Errorf("auth.secret must be at least 32 characters (got %d)", len(c.Auth.Secret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	if strings.TrimSpace(c.Auth.CookieName) == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}

	if err := c.Mood.validate(); err != nil {
		return fmt.Errorf("mood: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (m *MoodConfig) validate() error {
	m.Provider = strings.ToLower(strings.TrimSpace(m.Provider))
	if m.Provider == "" {
		if m.APIKey != "" {
			m.Provider = MoodProviderGemini
		} else {
			m.Provider = MoodProviderNone
		}
	}

	switch m.Provider {
	case MoodProviderGemini, MoodProviderAnthropic:
		if m.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", m.Provider)
		}
	case MoodProviderNone:
	default:
		return fmt.Errorf("unknown provider %q (want gemini, anthropic or none)", m.Provider)
	}

	if m.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", m.Timeout)
	}
	if m.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", m.MaxTokens)
	}

	return nil
}
