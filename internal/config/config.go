package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Token        string
	GuildID      string // optional: scope command registration to one guild
	Locale       string
	Timezone     string
	ReminderLead time.Duration
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Token:        os.Getenv("TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),
		Locale:       os.Getenv("LOCALE"),
		Timezone:     os.Getenv("TIMEZONE"),
		ReminderLead: 10 * time.Minute,
	}

	if v := os.Getenv("REMINDER_LEAD_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("config: REMINDER_LEAD_MINUTES invalide (%q)", v)
		}
		cfg.ReminderLead = time.Duration(minutes) * time.Minute
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	if c.GuildID != "" {
		for _, r := range c.GuildID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
			}
		}
	}

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "fr"
	}
	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = "Europe/Paris"
	}

	return nil
}
