package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Engine              Engine              `mapstructure:",squash"`
	InsightSnapshotSync InsightSnapshotSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Engine contém os padrões do motor de insights, usados quando o negócio não configurou metas
type Engine struct {
	DefaultTargetMarginPercent float64 `mapstructure:"engine_default_target_margin_percent"`
	DefaultAverageTaxPercent   float64 `mapstructure:"engine_default_average_tax_percent"`
	DefaultTargetCMVPercent    float64 `mapstructure:"engine_default_target_cmv_percent"`
	MaxSecondaryInsights       int     `mapstructure:"engine_max_secondary_insights"`
	HistoryLimit               int     `mapstructure:"engine_history_limit"`
}

type InsightSnapshotSync struct {
	CronSchedule      string `mapstructure:"insight_snapshot_sync_cron"`
	Period            string `mapstructure:"insight_snapshot_sync_period"`
	MaxConcurrentJobs int    `mapstructure:"insight_snapshot_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"insight_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/margin?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Metas padrão quando o negócio não configurou as suas
	viper.SetDefault("ENGINE_DEFAULT_TARGET_MARGIN_PERCENT", 30)
	viper.SetDefault("ENGINE_DEFAULT_AVERAGE_TAX_PERCENT", 10)
	viper.SetDefault("ENGINE_DEFAULT_TARGET_CMV_PERCENT", 35)
	viper.SetDefault("ENGINE_MAX_SECONDARY_INSIGHTS", 5)
	viper.SetDefault("ENGINE_HISTORY_LIMIT", 20)

	viper.SetDefault("INSIGHT_SNAPSHOT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("INSIGHT_SNAPSHOT_SYNC_PERIOD", "mes")
	viper.SetDefault("INSIGHT_SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("INSIGHT_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica se os padrões do motor são coerentes
func (c *Config) Validate() error {
	sum := c.Engine.DefaultTargetMarginPercent + c.Engine.DefaultAverageTaxPercent
	if sum >= 100 {
		return fmt.Errorf("config: margem e imposto padrão somam %.1f%%, o preço sugerido seria inviável", sum)
	}

	if c.Engine.MaxSecondaryInsights < 0 {
		return fmt.Errorf("config: ENGINE_MAX_SECONDARY_INSIGHTS não pode ser negativo")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
