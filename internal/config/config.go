package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Auth struct {
		JWTSecret               string
		TokenTTLHours           int
		BcryptCost              int
		GeneratedPasswordLength int
	}
	CORS struct {
		AllowedOrigins []string
	}
	RateLimit struct {
		WindowMinutes int
		MaxRequests   int
	}
	Pagination struct {
		DefaultLimit int
		MaxLimit     int
	}
	Upload struct {
		MaxFileSize int64
	}
	Storage struct {
		Bucket    string
		KeyPrefix string
		Region    string
		Endpoint  string
	}
	AWS struct {
		Profile string
	}
	Admin struct {
		Username string
		Email    string
		Password string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("DASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:5000")
	v.SetDefault("database.path", "data/dashboard.db")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenttlhours", 168)
	v.SetDefault("auth.bcryptcost", 10)
	v.SetDefault("auth.generatedpasswordlength", 12)
	v.SetDefault("cors.allowedorigins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("ratelimit.windowminutes", 15)
	v.SetDefault("ratelimit.maxrequests", 100)
	v.SetDefault("pagination.defaultlimit", 10)
	v.SetDefault("pagination.maxlimit", 100)
	v.SetDefault("upload.maxfilesize", 5*1024*1024)
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.keyprefix", "dashboard-uploads")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("aws.profile", "")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.email", "admin@company.com")
	v.SetDefault("admin.password", "Admin@123")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
