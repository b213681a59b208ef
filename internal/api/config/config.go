package config

import (
	"errors"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// EnvPrefix 环境变量前缀，例如 CAMPAIGNLENS_DATABASE_DSN 覆盖 database.dsn
const EnvPrefix = "CAMPAIGNLENS"

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on OS environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.slow_threshold_ms", 200)
	v.SetDefault("elastic.slow_threshold_ms", 500)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("jwt.issuer", "CampaignLens")
	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("minio.presign_minute", 30)
	v.SetDefault("minio.retention_days", 7)
	v.SetDefault("mongo.database", "campaignlens")
	v.SetDefault("report.cache_ttl_seconds", 300)
	v.SetDefault("cron.post_index_spec", "0 */1 * * * *")
	v.SetDefault("kafka.consumer.session_timeout", 10)
	v.SetDefault("kafka.consumer.heartbeat_interval", 3)
	v.SetDefault("kafka.consumer.rebalance_timeout", 60)
	v.SetDefault("kafka.consumer.max_processing_time", 5)
	v.SetDefault("kafka.consumer.initial_offset", "newest")
}
