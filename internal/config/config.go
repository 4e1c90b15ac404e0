package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Tracking  Tracking  `mapstructure:",squash"`
	RateLimit RateLimit `mapstructure:",squash"`
	Digest    Digest    `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	Env              string `mapstructure:"app_env"`
	LogLevel         string `mapstructure:"log_level"`
	LogFile          string `mapstructure:"log_file"`
	LogFileMaxSizeMB int    `mapstructure:"log_file_max_size_mb"`
	LogFileBackups   int    `mapstructure:"log_file_max_backups"`
}

// IsDevelopment segue a mesma regra de pkg/log: APP_ENV vazio conta como desenvolvimento
func (a App) IsDevelopment() bool {
	return a.Env == "" || a.Env == "development" || a.Env == "dev"
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

// Configured indica se há endpoint e chave de acesso válidos.
// Sem isso o backend opera em modo degradado.
func (d Database) Configured() bool {
	return d.DSN != ""
}

type Dashboard struct {
	Password     string        `mapstructure:"dashboard_password"`
	PasswordHash string        `mapstructure:"dashboard_password_hash"`
	AutoAuth     bool          `mapstructure:"dashboard_auto_auth"`
	TokenTTL     time.Duration `mapstructure:"dashboard_token_ttl"`
	CookieName   string        `mapstructure:"dashboard_cookie_name"`
}

type Tracking struct {
	IPLookupEnabled bool          `mapstructure:"ip_lookup_enabled"`
	IPLookupURL     string        `mapstructure:"ip_lookup_url"`
	IPLookupTimeout time.Duration `mapstructure:"ip_lookup_timeout"`
	IPPlaceholder   string        `mapstructure:"ip_placeholder"`
}

type RateLimit struct {
	Rate     string `mapstructure:"rate_limit"`
	RedisURL string `mapstructure:"rate_limit_redis_url"`
}

type Digest struct {
	CronSchedule string `mapstructure:"digest_cron"`
	Enabled      bool   `mapstructure:"digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	// IPs ou CIDRs dos proxies reversos, separados por vírgula
	viper.SetDefault("TRUSTED_PROXIES", "")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_FILE_MAX_SIZE_MB", 50)
	viper.SetDefault("LOG_FILE_MAX_BACKUPS", 5)

	// Sem DATABASE_URL ou DATABASE_PASSWORD o serviço sobe em modo degradado
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")
	viper.SetDefault("DATABASE_SSLMODE", "require")

	// Sem SECRET_KEY o login do dashboard só sobe em desenvolvimento
	viper.SetDefault("SECRET_KEY", "")

	viper.SetDefault("DASHBOARD_PASSWORD", "")
	viper.SetDefault("DASHBOARD_PASSWORD_HASH", "")
	viper.SetDefault("DASHBOARD_AUTO_AUTH", false)
	viper.SetDefault("DASHBOARD_TOKEN_TTL", "12h")
	viper.SetDefault("DASHBOARD_COOKIE_NAME", "sm_dashboard")

	// O ipify vê o IP de saída do servidor, não o do visitante
	viper.SetDefault("IP_LOOKUP_ENABLED", false)
	viper.SetDefault("IP_LOOKUP_URL", "https://api.ipify.org?format=json")
	viper.SetDefault("IP_LOOKUP_TIMEOUT", "3s")
	viper.SetDefault("IP_PLACEHOLDER", "unknown")

	viper.SetDefault("RATE_LIMIT", "60-M") // 60 requisições por minuto por IP
	viper.SetDefault("RATE_LIMIT_REDIS_URL", "")

	viper.SetDefault("DIGEST_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("DIGEST_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN, err = BuildDSN(config.Database)
	if err != nil {
		logrus.WithError(err).Warn("Configuração do banco inválida, backend entrará em modo degradado")
	}

	return config, nil
}

// BuildDSN monta a connection string a partir do endpoint e da chave de acesso.
// Retorna string vazia quando algum dos dois está ausente ou o endpoint é malformado.
func BuildDSN(db Database) (string, error) {
	if strings.TrimSpace(db.URL) == "" || db.Password == "" {
		return "", nil
	}

	driver := db.Driver
	if driver == "" {
		driver = "postgres"
	}

	endpoint := strings.TrimPrefix(strings.TrimPrefix(db.URL, "postgres://"), "postgresql://")

	parsed, err := url.Parse(fmt.Sprintf("%s://%s", driver, endpoint))
	if err != nil {
		return "", fmt.Errorf("database_url malformada: %w", err)
	}

	if parsed.Host == "" || parsed.Opaque != "" {
		return "", fmt.Errorf("database_url sem host: %q", db.URL)
	}

	parsed.User = url.UserPassword(db.User, db.Password)

	query := parsed.Query()
	if query.Get("sslmode") == "" && db.SSLMode != "" {
		query.Set("sslmode", db.SSLMode)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
