package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

// Addr retorna host:port para o listener HTTP
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// DatabaseConfig descreve a conexão com o PostgreSQL.
// URL vazia significa que a aplicação roda sem banco.
type DatabaseConfig struct {
	URL         string
	MaxConns    int
	MinConns    int
	MaxIdleTime int // segundos
	LogLevel    string
	AutoMigrate bool
}

// Configured indica se há uma connection string
func (d DatabaseConfig) Configured() bool {
	return strings.TrimSpace(d.URL) != ""
}

// IdleTimeout retorna MaxIdleTime como duração
func (d DatabaseConfig) IdleTimeout() time.Duration {
	return time.Duration(d.MaxIdleTime) * time.Second
}

// AuthConfig contém a identidade do dono do sistema
type AuthConfig struct {
	// OwnerOpenID é promovido a admin em todo login
	OwnerOpenID string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Origins retorna as origens permitidas, sem espaços e sem itens vazios
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

type I18nConfig struct {
	DefaultLanguage string
	// LocalesDir vazio usa as traduções embutidas no binário
	LocalesDir string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("OWNER_OPEN_ID", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DEFAULT_LANGUAGE", "pt-BR")
	v.SetDefault("LOCALES_DIR", "")
}

// Load carrega o .env (se existir) e lê as variáveis de ambiente
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}
	return FromViper(viper.New())
}

// FromViper monta a configuração a partir de uma instância do viper,
// aplicando os valores padrão e lendo o ambiente.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			URL:         v.GetString("DATABASE_URL"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			LogLevel:    v.GetString("DB_LOG_LEVEL"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Auth: AuthConfig{
			OwnerOpenID: v.GetString("OWNER_OPEN_ID"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		I18n: I18nConfig{
			DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
			LocalesDir:      v.GetString("LOCALES_DIR"),
		},
	}

	if config.Database.MaxConns < 1 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", config.Database.MaxConns)
	}
	if config.Database.MinConns < 0 || config.Database.MinConns > config.Database.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS, got %d", config.Database.MinConns)
	}

	return config, nil
}

// IsProduction indica se ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
