package config

// Config 配置主体
type Config struct {
	Server               ServerConfig        `mapstructure:"server"`
	DB                   DBConfig            `mapstructure:"database"`
	Redis                RedisConfig         `mapstructure:"redis"`
	JWT                  JWTConfig           `mapstructure:"jwt"`
	Logstash             LogstashConfig      `mapstructure:"logstash"`
	MinIO                MinIOConfig         `mapstructure:"minio"`
	Elastic              ElasticConfig       `mapstructure:"elastic"`
	Mongo                MongoConfig         `mapstructure:"mongo"`
	Kafka                KafkaConfig         `mapstructure:"kafka"`
	KafkaMetricsConsumer KafkaMetricConsumer `mapstructure:"kafka_metrics_consumer"`
	Report               ReportConfig        `mapstructure:"report"`
	Cron                 CronConfig          `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	// LogLevel silent / error / warn / info
	LogLevel        string `mapstructure:"log_level"`
	SlowThresholdMs int    `mapstructure:"slow_threshold_ms"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// JWTConfig 令牌签发配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// LogstashConfig 远程日志
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	ReportBucket  string `mapstructure:"report_bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PresignMinute int    `mapstructure:"presign_minute"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// MongoConfig 导出记录存储
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
	// SlowThresholdMs 超过该耗时的请求记录请求体
	SlowThresholdMs int `mapstructure:"slow_threshold_ms"`
}

// ElasticIndices Elastic索引
type ElasticIndices struct {
	PostIndex string `mapstructure:"post_index"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
	// InitialOffset newest / oldest，仅对没有提交位点的分组生效
	InitialOffset string `mapstructure:"initial_offset"`
}

type KafkaMetricConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// ReportConfig 报表缓存
type ReportConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

// CronConfig 定时任务表达式
type CronConfig struct {
	PostIndexSpec string `mapstructure:"post_index_spec"`
}
