package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access    string        `json:"access" yaml:"access"`
		AccessTTL time.Duration `json:"accessTTL" yaml:"accessTTL"`
	} `json:"secretKey" yaml:"secretKey"`

	// Geocoding configures the upstream place provider and the resolution guards
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Autocomplete configures debounced suggestion lookups
	Autocomplete *AutocompleteConfig `json:"autocomplete" yaml:"autocomplete"`

	// Collections configuration for collection and location limits
	Collections *CollectionsConfig `json:"collections" yaml:"collections"`

	// QRCode configuration for collection share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for sync event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeocodingConfig defines the Nominatim-compatible provider and search guards
type GeocodingConfig struct {
	// Base URL of the provider, e.g. https://nominatim.openstreetmap.org
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// User-Agent sent upstream; public Nominatim rejects anonymous clients
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	// Accept-Language for names and addresses
	Language string `json:"language" yaml:"language"`

	// Per-request timeout for upstream calls
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Radius of the bias region used for hinted map selections
	SearchRadiusMeters float64 `json:"searchRadiusMeters" yaml:"searchRadiusMeters"`

	// A search hit farther than this from the tapped point is not trusted
	MaxMatchDistanceMeters float64 `json:"maxMatchDistanceMeters" yaml:"maxMatchDistanceMeters"`

	// Maximum candidates requested from forward search
	ResultLimit int `json:"resultLimit" yaml:"resultLimit"`
}

// AutocompleteConfig defines suggestion debounce and retention windows
type AutocompleteConfig struct {
	Debounce    time.Duration `json:"debounce" yaml:"debounce"`
	HandleTTL   time.Duration `json:"handleTTL" yaml:"handleTTL"`
	SessionTTL  time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	ResultLimit int           `json:"resultLimit" yaml:"resultLimit"`
}

// CollectionsConfig defines per-owner and per-collection limits
type CollectionsConfig struct {
	MaxCollectionsPerOwner    int `json:"maxCollectionsPerOwner" yaml:"maxCollectionsPerOwner"`
	MaxLocationsPerCollection int `json:"maxLocationsPerCollection" yaml:"maxLocationsPerCollection"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for sync event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the sync worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Force OIDC verification of push requests; always on for google outside develop
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env overrides: GEOCODING_BASEURL -> geocoding.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections so that consumers never see nil pointers.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	g := cfg.Geocoding
	if g.BaseURL == "" {
		g.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if g.UserAgent == "" {
		g.UserAgent = "placebook/1.0"
	}
	if g.Timeout <= 0 {
		g.Timeout = 10 * time.Second
	}
	if g.SearchRadiusMeters <= 0 {
		g.SearchRadiusMeters = 1000
	}
	if g.MaxMatchDistanceMeters <= 0 {
		g.MaxMatchDistanceMeters = 500
	}
	if g.ResultLimit <= 0 {
		g.ResultLimit = 5
	}

	if cfg.Autocomplete == nil {
		cfg.Autocomplete = &AutocompleteConfig{}
	}
	a := cfg.Autocomplete
	if a.Debounce <= 0 {
		a.Debounce = 500 * time.Millisecond
	}
	if a.HandleTTL <= 0 {
		a.HandleTTL = 10 * time.Minute
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 5 * time.Minute
	}
	if a.ResultLimit <= 0 {
		a.ResultLimit = 8
	}

	if cfg.SecretKey.AccessTTL <= 0 {
		cfg.SecretKey.AccessTTL = 15 * time.Minute
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}

	if cfg.Collections == nil {
		cfg.Collections = &CollectionsConfig{}
	}
	if cfg.Collections.MaxCollectionsPerOwner <= 0 {
		cfg.Collections.MaxCollectionsPerOwner = 50
	}
	if cfg.Collections.MaxLocationsPerCollection <= 0 {
		cfg.Collections.MaxLocationsPerCollection = 500
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
