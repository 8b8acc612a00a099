package configs

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:""`

	SanityProjectID  string `env:"SANITY_PROJECT_ID" envDefault:""`
	SanityDataset    string `env:"SANITY_DATASET" envDefault:"production"`
	SanityAPIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	SanityToken      string `env:"SANITY_TOKEN" envDefault:""`

	ResendAPIKey    string `env:"RESEND_API_KEY" envDefault:""`
	OrderFromEmail  string `env:"ORDER_FROM_EMAIL" envDefault:"orders@bakehouse.example"`
	OrderAdminEmail string `env:"ORDER_ADMIN_EMAIL" envDefault:"kitchen@bakehouse.example"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

func (c Config) CORSOriginsSlice() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
