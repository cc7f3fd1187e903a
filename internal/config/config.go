package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Upload     UploadConfig
	CORS       CORSConfig
	S3         S3Config
	Extraction ExtractionConfig
	Validation ValidationConfig
	Routing    RoutingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UploadConfig limits documents accepted over HTTP.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB << 20
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// S3Config holds settings for reading source documents from S3.
type S3Config struct {
	Enabled   bool   `mapstructure:"enabled"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// FilenameHint maps a filename keyword to the claim type inferred from it.
type FilenameHint struct {
	Keyword   string
	ClaimType string
}

// ExtractionConfig holds field-extraction heuristics.
type ExtractionConfig struct {
	// FilenameClaimTypes is evaluated in order; the first keyword contained in the filename wins.
	FilenameClaimTypes []FilenameHint
}

// ValidationConfig holds mandatory-field validation settings.
type ValidationConfig struct {
	DescriptionMinWords int `mapstructure:"description_min_words"`
}

// RoutingConfig holds the routing rule chain parameters.
type RoutingConfig struct {
	FastTrackThreshold        float64  `mapstructure:"fast_track_threshold"`
	StrongFraudIndicators     []string `mapstructure:"strong_fraud_indicators"`
	InjuryIndicators          []string `mapstructure:"injury_indicators"`
	WeakFraudIndicators       []string `mapstructure:"weak_fraud_indicators"`
	RoutingFields             []string `mapstructure:"routing_fields"`
	MaxListedMissing          int      `mapstructure:"max_listed_missing"`
	SuspiciousExemptClaimType string   `mapstructure:"suspicious_exempt_claim_type"`
}

// Load reads configuration from environment variables with the FNOL_ prefix and,
// when FNOL_CONFIG_FILE is set, from that YAML file. Environment wins over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FNOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("upload.max_file_size_mb", 20)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// S3 defaults
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")

	// Heuristics
	v.SetDefault("extraction.filename_claim_types", "theft=Theft,injury=Injury,fraud=Fire Damage,small=Property Damage")
	v.SetDefault("validation.description_min_words", 3)
	v.SetDefault("routing.fast_track_threshold", 25000)
	v.SetDefault("routing.strong_fraud_indicators", "potentially fraudulent,appears to be staged,fraudulent claim,false claim,fabricated")
	v.SetDefault("routing.injury_indicators", "injury,medical,bodily,hospital")
	v.SetDefault("routing.weak_fraud_indicators", "suspicious,inconsistent,questionable")
	v.SetDefault("routing.routing_fields", "policy_number,policyholder_name,incident_date,incident_time,location,description,asset_type,estimated_damage,claim_type")
	v.SetDefault("routing.max_listed_missing", 3)
	v.SetDefault("routing.suspicious_exempt_claim_type", "theft")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                          "FNOL_SERVER_PORT",
		"server.read_timeout":                  "FNOL_SERVER_READ_TIMEOUT",
		"server.write_timeout":                 "FNOL_SERVER_WRITE_TIMEOUT",
		"server.environment":                   "FNOL_SERVER_ENVIRONMENT",
		"log.level":                            "FNOL_LOG_LEVEL",
		"log.format":                           "FNOL_LOG_FORMAT",
		"upload.max_file_size_mb":              "FNOL_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":                 "FNOL_CORS_ALLOWED_ORIGINS",
		"s3.enabled":                           "FNOL_S3_ENABLED",
		"s3.region":                            "FNOL_S3_REGION",
		"s3.endpoint":                          "FNOL_S3_ENDPOINT",
		"s3.access_key":                        "FNOL_S3_ACCESS_KEY",
		"s3.secret_key":                        "FNOL_S3_SECRET_KEY",
		"extraction.filename_claim_types":      "FNOL_EXTRACTION_FILENAME_CLAIM_TYPES",
		"validation.description_min_words":     "FNOL_VALIDATION_DESCRIPTION_MIN_WORDS",
		"routing.fast_track_threshold":         "FNOL_ROUTING_FAST_TRACK_THRESHOLD",
		"routing.strong_fraud_indicators":      "FNOL_ROUTING_STRONG_FRAUD_INDICATORS",
		"routing.injury_indicators":            "FNOL_ROUTING_INJURY_INDICATORS",
		"routing.weak_fraud_indicators":        "FNOL_ROUTING_WEAK_FRAUD_INDICATORS",
		"routing.routing_fields":               "FNOL_ROUTING_ROUTING_FIELDS",
		"routing.max_listed_missing":           "FNOL_ROUTING_MAX_LISTED_MISSING",
		"routing.suspicious_exempt_claim_type": "FNOL_ROUTING_SUSPICIOUS_EXEMPT_CLAIM_TYPE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	_ = v.BindEnv("config_file", "FNOL_CONFIG_FILE")
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	cfg.Server = ServerConfig{
		Port:         v.GetString("server.port"),
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: getList(v, "cors.allowed_origins"),
	}
	cfg.S3 = S3Config{
		Enabled:   v.GetBool("s3.enabled"),
		Region:    v.GetString("s3.region"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}

	hints, err := ParseFilenameHints(getList(v, "extraction.filename_claim_types"))
	if err != nil {
		return nil, err
	}
	cfg.Extraction = ExtractionConfig{FilenameClaimTypes: hints}

	cfg.Validation = ValidationConfig{
		DescriptionMinWords: v.GetInt("validation.description_min_words"),
	}
	cfg.Routing = RoutingConfig{
		FastTrackThreshold:        v.GetFloat64("routing.fast_track_threshold"),
		StrongFraudIndicators:     getList(v, "routing.strong_fraud_indicators"),
		InjuryIndicators:          getList(v, "routing.injury_indicators"),
		WeakFraudIndicators:       getList(v, "routing.weak_fraud_indicators"),
		RoutingFields:             getList(v, "routing.routing_fields"),
		MaxListedMissing:          v.GetInt("routing.max_listed_missing"),
		SuspiciousExemptClaimType: v.GetString("routing.suspicious_exempt_claim_type"),
	}

	return cfg, nil
}

// ParseFilenameHints parses "keyword=Claim Type" entries, preserving order.
func ParseFilenameHints(entries []string) ([]FilenameHint, error) {
	hints := make([]FilenameHint, 0, len(entries))
	for _, e := range entries {
		keyword, claimType, ok := strings.Cut(e, "=")
		keyword = strings.TrimSpace(keyword)
		claimType = strings.TrimSpace(claimType)
		if !ok || keyword == "" || claimType == "" {
			return nil, fmt.Errorf("invalid filename claim type hint %q: want keyword=Claim Type", e)
		}
		hints = append(hints, FilenameHint{Keyword: strings.ToLower(keyword), ClaimType: claimType})
	}
	return hints, nil
}

// getList reads a key that may hold either a comma-separated string (env) or a YAML sequence (file).
func getList(v *viper.Viper, key string) []string {
	var raw []string
	switch val := v.Get(key).(type) {
	case string:
		raw = strings.Split(val, ",")
	default:
		raw = v.GetStringSlice(key)
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
