package config

import (
	"log"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress      = ":5000"
	defaultMaxUploadSizeMB = 20
)

type Config struct {
	Env     string
	Server  server
	Logger  logger
	Upload  upload
	Catalog catalog
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type upload struct {
	MaxFileSizeMB int `env:"MAX_UPLOAD_SIZE_MB" envDefault:"20"`
}

type catalog struct {
	Seed bool `env:"SEED_CATALOG" envDefault:"true"`
}

// MaxFileBytes is the per-file upload limit in bytes.
func (u upload) MaxFileBytes() int64 {
	return int64(u.MaxFileSizeMB) << 20
}

func NewConfig() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("failed to load %s: %v", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("log_level", "info")
	v.SetDefault("max_upload_size_mb", defaultMaxUploadSizeMB)
	v.SetDefault("seed_catalog", true)

	return load(v)
}

func load(v *viper.Viper) *Config {
	addr := v.GetString("run_address")
	if port := v.GetString("port"); port != "" {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = ""
		}
		addr = net.JoinHostPort(host, port)
	}

	maxMB := v.GetInt("max_upload_size_mb")
	if maxMB <= 0 {
		maxMB = defaultMaxUploadSizeMB
	}

	return &Config{
		Env:     v.GetString("app_env"),
		Server:  server{RunAddress: addr},
		Logger:  logger{LogLevel: v.GetString("log_level")},
		Upload:  upload{MaxFileSizeMB: maxMB},
		Catalog: catalog{Seed: v.GetBool("seed_catalog")},
	}
}
