package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Remote breakfast4U API
	APIURL string `yaml:"API_URL"`

	// HTTP server
	ListenAddr string `yaml:"LISTEN_ADDR"`

	// Session storage
	SessionFile   string `yaml:"SESSION_FILE"`
	SessionCookie string `yaml:"SESSION_COOKIE"`
}

var config Config

// LoadConfig reads config.yaml and a .env file if present; environment
// variables win over the YAML values.
func LoadConfig() {
	_ = godotenv.Load()

	file, err := os.ReadFile("config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	}

	if v := os.Getenv("API_URL"); v != "" {
		config.APIURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		config.ListenAddr = v
	}
	if v := os.Getenv("SESSION_FILE"); v != "" {
		config.SessionFile = v
	}
	if v := os.Getenv("SESSION_COOKIE"); v != "" {
		config.SessionCookie = v
	}

	if config.APIURL == "" {
		config.APIURL = "http://localhost:5000/api"
	}
	if config.ListenAddr == "" {
		config.ListenAddr = ":3000"
	}
	if config.SessionFile == "" {
		config.SessionFile = "sessions.json"
	}
	if config.SessionCookie == "" {
		config.SessionCookie = "b4u_session"
	}
}

func GetConfig(key string) string {
	switch key {
	case "API_URL":
		return config.APIURL
	case "LISTEN_ADDR":
		return config.ListenAddr
	case "SESSION_FILE":
		return config.SessionFile
	case "SESSION_COOKIE":
		return config.SessionCookie
	default:
		return ""
	}
}
