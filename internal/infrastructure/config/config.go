package config

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	SMTP       SMTP
	Blog       Blog
	Prometheus Prometheus
}

type HTTPServer struct {
	Address string
	Port    int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type SMTP struct {
	Host           string
	Port           int
	Username       string
	Password       string
	From           string
	TimeoutSeconds int
}

type Blog struct {
	Title     string
	PublicURL string
	PageSize  int
}

type Prometheus struct {
	Address string
	Port    int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "blog-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "blogservice")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("smtp.host", "localhost")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("smtp.username", "")
	viper.SetDefault("smtp.password", "")
	viper.SetDefault("smtp.from", "noreply@blogd.local")
	viper.SetDefault("smtp.timeout_seconds", 10)

	viper.SetDefault("blog.title", "My Blog")
	viper.SetDefault("blog.public_url", "http://localhost:8080")
	viper.SetDefault("blog.page_size", 3)

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9103)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Error reading config file: %s", err)
			os.Exit(1)
		}
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		SMTP: SMTP{
			Host:           viper.GetString("smtp.host"),
			Port:           viper.GetInt("smtp.port"),
			Username:       viper.GetString("smtp.username"),
			Password:       viper.GetString("smtp.password"),
			From:           viper.GetString("smtp.from"),
			TimeoutSeconds: viper.GetInt("smtp.timeout_seconds"),
		},
		Blog: Blog{
			Title:     viper.GetString("blog.title"),
			PublicURL: viper.GetString("blog.public_url"),
			PageSize:  viper.GetInt("blog.page_size"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
	}

	return config
}
