package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"prana/internal/infrastructure/broker"
	"prana/internal/infrastructure/database"
	"prana/internal/infrastructure/minio"
	"prana/internal/infrastructure/session"
	"prana/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTP            HTTPConfig             `yaml:"http"`
	Auth            AuthConfig             `yaml:"auth"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Session         session.Config         `yaml:"session"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPConfig struct {
	Address   string `yaml:"address"`
	BodyLimit string `yaml:"body_limit"`
	RateLimit int    `yaml:"rate_limit_per_second"`
	// AllowOrigins lists CORS origins; empty allows any.
	AllowOrigins []string `yaml:"allow_origins"`
}

type AuthConfig struct {
	// AdminRole is the role required to create, update or delete blogs.
	AdminRole string `yaml:"admin_role"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Session.Secret = os.Getenv("SESSION_SECRET")

	config.setDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":5000"
	}

	if c.HTTP.BodyLimit == "" {
		c.HTTP.BodyLimit = "12M"
	}

	if c.HTTP.RateLimit == 0 {
		c.HTTP.RateLimit = 20
	}

	if c.Auth.AdminRole == "" {
		c.Auth.AdminRole = "admin"
	}

	if c.MinIOUploader.MaxFileSize == 0 {
		c.MinIOUploader.MaxFileSize = 5 << 20
	}

	defaultMillis(&c.MinIOUploader.Timeout, 30000)
	defaultMillis(&c.MinIORemover.Timeout, 5000)
	defaultMillis(&c.DBConfig.ConnectionTimeout, 5000)
	defaultMillis(&c.DBConfig.QueryTimeout, 3000)

	if c.PublisherConfig.Timeout == 0 {
		c.PublisherConfig.Timeout = 2000
	}
}

func defaultMillis(v *int64, fallback int64) {
	if *v == 0 {
		*v = fallback
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	switch {
	case c.DBConfig.URI == "":
		return errMissingEnv("DATABASE_URI")
	case c.DBConfig.DBName == "":
		return Error{reason: "db_config.db_name is required"}
	case c.Session.Secret == "":
		return errMissingEnv("SESSION_SECRET")
	case c.MinIOUploader.Bucket == "":
		return Error{reason: "minio_uploader.bucket is required"}
	case c.MinIOUploader.MaxFileSize < 0:
		return Error{reason: "minio_uploader.max_file_size_in_bytes must be positive"}
	}

	return nil
}
