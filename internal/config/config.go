package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/logging"
)

// Config stores runtime configuration for the importer.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	LogLevel                logging.Level
	LogFormat               logging.Format
	StorageDriver           string
	DBURL                   string
	DBDisablePreparedBinary bool
	XMLSoccerServiceURL     string
	XMLSoccerAPIKey         string
	XMLSoccerRequestIP      string
	XMLSoccerTimeout        time.Duration
	XMLSoccerGenerateHash   bool
	XMLSoccerInvalidMarkers []string
	CacheDriver             string
	CacheMaxEntries         int
	CacheKeyPrefix          string
	RedisAddr               string
	RedisPassword           string
	RedisDB                 int
	ImportWorkers           int
	UptraceEnabled          bool
	UptraceDSN              string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	storageDriver, err := parseChoice("STORAGE_DRIVER", getEnv("STORAGE_DRIVER", StoragePostgres), StoragePostgres, StorageMemory)
	if err != nil {
		return Config{}, err
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storageDriver == StoragePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	xmlSoccerTimeout, err := time.ParseDuration(getEnv("XMLSOCCER_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse XMLSOCCER_TIMEOUT: %w", err)
	}
	if xmlSoccerTimeout <= 0 {
		return Config{}, fmt.Errorf("XMLSOCCER_TIMEOUT must be > 0")
	}
	xmlSoccerGenerateHash, err := strconv.ParseBool(getEnv("XMLSOCCER_GENERATE_HASH", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse XMLSOCCER_GENERATE_HASH: %w", err)
	}

	cacheDriver, err := parseChoice("CACHE_DRIVER", getEnv("CACHE_DRIVER", CacheMemory), CacheNone, CacheMemory, CacheRedis)
	if err != nil {
		return Config{}, err
	}
	cacheMaxEntries, err := getEnvAsInt("CACHE_MAX_ENTRIES", 1024)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_MAX_ENTRIES: %w", err)
	}
	if cacheMaxEntries < 0 {
		return Config{}, fmt.Errorf("CACHE_MAX_ENTRIES must be >= 0")
	}
	redisAddr := strings.TrimSpace(getEnv("REDIS_ADDR", ""))
	if cacheDriver == CacheRedis && redisAddr == "" {
		return Config{}, fmt.Errorf("REDIS_ADDR is required when CACHE_DRIVER=%s", CacheRedis)
	}
	redisDB, err := getEnvAsInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse REDIS_DB: %w", err)
	}
	if redisDB < 0 {
		return Config{}, fmt.Errorf("REDIS_DB must be >= 0")
	}

	importWorkers, err := getEnvAsInt("IMPORT_WORKERS", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_WORKERS: %w", err)
	}
	if importWorkers < 1 {
		return Config{}, fmt.Errorf("IMPORT_WORKERS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	serviceName := getEnv("APP_SERVICE_NAME", "xmlsoccer-import")

	return Config{
		AppEnv:                  appEnv,
		ServiceName:             serviceName,
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:               logging.ParseFormat(getEnv("APP_LOG_FORMAT", string(logging.FormatJSON))),
		StorageDriver:           storageDriver,
		DBURL:                   dbURL,
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		XMLSoccerServiceURL:     strings.TrimSpace(getEnv("XMLSOCCER_SERVICE_URL", "")),
		XMLSoccerAPIKey:         strings.TrimSpace(getEnv("XMLSOCCER_API_KEY", "")),
		XMLSoccerRequestIP:      strings.TrimSpace(getEnv("XMLSOCCER_REQUEST_IP", "")),
		XMLSoccerTimeout:        xmlSoccerTimeout,
		XMLSoccerGenerateHash:   xmlSoccerGenerateHash,
		XMLSoccerInvalidMarkers: splitCSV(getEnv("XMLSOCCER_INVALID_KEY_MARKER", "")),
		CacheDriver:             cacheDriver,
		CacheMaxEntries:         cacheMaxEntries,
		CacheKeyPrefix:          getEnv("CACHE_KEY_PREFIX", ""),
		RedisAddr:               redisAddr,
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisDB:                 redisDB,
		ImportWorkers:           importWorkers,
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
		PyroscopeEnabled:        pyroscopeEnabled,
		PyroscopeServerAddress:  pyroscopeServerAddress,
		PyroscopeAppName:        getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:      getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeUploadRate:     pyroscopeUploadRate,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseChoice(key, v string, valid ...string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	for _, candidate := range valid {
		if value == candidate {
			return value, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q: valid values are %s", key, v, strings.Join(valid, ", "))
}
