package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LLM providers.
const (
	ProviderOpenAI   = "openai"
	ProviderVertexAI = "vertexai"
)

// Analyzer and violation report modes.
const (
	ModeRuleBased = "rule_based"
	ModeLLM       = "llm"
)

// Config holds runtime configuration values for the API service. It is built once at start-up
// and passed by value.
type Config struct {
	AppName     string
	AppEnv      string
	AppPort     string
	CORSOrigins []string

	LLMProvider string
	LLMAPIKey   string
	LLMBaseURL  string
	LLMModel    string
	LLMTimeout  time.Duration

	VertexProject         string
	VertexLocation        string
	VertexModel           string
	VertexCredentialsFile string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPTimeout  time.Duration

	EmailEscapeHTML bool
	AnalysisMode    string
	ViolationsMode  string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// EmailConfigured reports whether SMTP credentials were supplied.
func (c Config) EmailConfigured() bool {
	return c.SMTPUsername != "" && c.SMTPPassword != ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Names used by existing deployments.
	_ = v.BindEnv("app.port", "PORT", "APP_PORT")
	_ = v.BindEnv("llm.api_key", "GROQ_API_KEY", "LLM_API_KEY")
	_ = v.BindEnv("vertex.project", "GOOGLE_CLOUD_PROJECT", "VERTEX_PROJECT")
	_ = v.BindEnv("vertex.location", "GOOGLE_CLOUD_LOCATION", "VERTEX_LOCATION")
	_ = v.BindEnv("vertex.credentials_file", "GOOGLE_APPLICATION_CREDENTIALS")
	_ = v.BindEnv("smtp.host", "SMTP_SERVER", "SMTP_HOST")
	_ = v.BindEnv("smtp.username", "EMAIL_USER")
	_ = v.BindEnv("smtp.password", "EMAIL_PASSWORD")
	_ = v.BindEnv("smtp.from", "EMAIL_FROM")
	_ = v.BindEnv("violations.mode", "VIOLATION_REPORT_MODE")

	v.SetDefault("app.name", "Skills Assessment API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "5001")
	v.SetDefault("cors.origins", "http://localhost:5173,https://skills-v2-frontend.onrender.com")
	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.model", "llama-3.3-70b-versatile")
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("vertex.location", "us-central1")
	v.SetDefault("vertex.model", "gemini-1.5-flash")
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.timeout", "30s")
	v.SetDefault("email.escape_html", true)
	v.SetDefault("analysis.mode", ModeRuleBased)
	v.SetDefault("violations.mode", ModeLLM)

	llmTimeout, err := time.ParseDuration(v.GetString("llm.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid llm timeout: %w", err)
	}

	smtpTimeout, err := time.ParseDuration(v.GetString("smtp.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid smtp timeout: %w", err)
	}

	cfg := Config{
		AppName:               v.GetString("app.name"),
		AppEnv:                v.GetString("app.env"),
		AppPort:               v.GetString("app.port"),
		CORSOrigins:           splitList(v.GetString("cors.origins")),
		LLMProvider:           strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
		LLMAPIKey:             v.GetString("llm.api_key"),
		LLMBaseURL:            v.GetString("llm.base_url"),
		LLMModel:              v.GetString("llm.model"),
		LLMTimeout:            llmTimeout,
		VertexProject:         v.GetString("vertex.project"),
		VertexLocation:        v.GetString("vertex.location"),
		VertexModel:           v.GetString("vertex.model"),
		VertexCredentialsFile: v.GetString("vertex.credentials_file"),
		SMTPHost:              v.GetString("smtp.host"),
		SMTPPort:              v.GetInt("smtp.port"),
		SMTPUsername:          v.GetString("smtp.username"),
		SMTPPassword:          v.GetString("smtp.password"),
		SMTPFrom:              v.GetString("smtp.from"),
		SMTPTimeout:           smtpTimeout,
		EmailEscapeHTML:       v.GetBool("email.escape_html"),
		AnalysisMode:          strings.ToLower(strings.TrimSpace(v.GetString("analysis.mode"))),
		ViolationsMode:        strings.ToLower(strings.TrimSpace(v.GetString("violations.mode"))),
	}

	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUsername
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderVertexAI:
	default:
		return fmt.Errorf("unsupported llm provider %q", c.LLMProvider)
	}

	if !validMode(c.AnalysisMode) {
		return fmt.Errorf("unsupported analysis mode %q", c.AnalysisMode)
	}
	if !validMode(c.ViolationsMode) {
		return fmt.Errorf("unsupported violation report mode %q", c.ViolationsMode)
	}

	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid smtp port %d", c.SMTPPort)
	}

	return nil
}

func validMode(mode string) bool {
	return mode == ModeRuleBased || mode == ModeLLM
}

func splitList(input string) []string {
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
