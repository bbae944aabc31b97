package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Sales        Sales        `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	CacheJanitor CacheJanitor `mapstructure:",squash"`
	Session      Session      `mapstructure:",squash"`
	CORS         CORS         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Host            string        `mapstructure:"database_host"`
	Port            string        `mapstructure:"database_port"`
	Name            string        `mapstructure:"database_name"`
	User            string        `mapstructure:"database_user"`
	Password        string        `mapstructure:"database_password"`
	SSLMode         string        `mapstructure:"database_sslmode"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Sales struct {
	QueryFile string  `mapstructure:"sales_query_file"`
	MinAmount float64 `mapstructure:"sales_min_amount"`
}

type Cache struct {
	SalesTTL    time.Duration `mapstructure:"sales_cache_ttl"`
	LoadTimeout time.Duration `mapstructure:"cache_load_timeout"`
	MetadataTTL time.Duration `mapstructure:"metadata_cache_ttl"`
}

type CacheJanitor struct {
	CronSchedule   string `mapstructure:"cache_janitor_cron"`
	Enabled        bool   `mapstructure:"cache_janitor_enabled"`
	MetadataWarmup bool   `mapstructure:"metadata_warmup_enabled"`
}

type Session struct {
	CookieName string        `mapstructure:"session_cookie_name"`
	TTL        time.Duration `mapstructure:"session_ttl"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_NAME", "salesdb")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")

	viper.SetDefault("SALES_QUERY_FILE", "") // vazio usa a consulta embutida
	viper.SetDefault("SALES_MIN_AMOUNT", 0.0)

	viper.SetDefault("SALES_CACHE_TTL", "5m")
	viper.SetDefault("METADATA_CACHE_TTL", "10m")
	viper.SetDefault("CACHE_LOAD_TIMEOUT", "2m") // cargas compartilhadas não seguem o cancelamento da requisição

	viper.SetDefault("CACHE_JANITOR_CRON", "*/5 * * * *") // a cada 5 minutos
	viper.SetDefault("CACHE_JANITOR_ENABLED", true)
	viper.SetDefault("METADATA_WARMUP_ENABLED", false)

	viper.SetDefault("SESSION_COOKIE_NAME", "painel_session")
	viper.SetDefault("SESSION_TTL", "12h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

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

	dsn, err := BuildDSN(config.Database)
	if err != nil {
		return nil, err
	}
	config.Database.DSN = dsn

	return config, nil
}

// BuildDSN monta a string de conexão de acordo com o driver configurado
func BuildDSN(db Database) (string, error) {
	switch db.Driver {
	case DriverPostgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(db.User, db.Password),
			Host:   fmt.Sprintf("%s:%s", db.Host, db.Port),
			Path:   "/" + db.Name,
		}
		if db.SSLMode != "" {
			u.RawQuery = url.Values{"sslmode": []string{db.SSLMode}}.Encode()
		}
		return u.String(), nil

	case DriverMySQL:
		cfg := mysql.NewConfig()
		cfg.User = db.User
		cfg.Passwd = db.Password
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%s", db.Host, db.Port)
		cfg.DBName = db.Name
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil

	default:
		return "", fmt.Errorf("config: driver de banco não suportado: %q", db.Driver)
	}
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
