package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI        string        `validate:"required,uri"`
	MongoDatabase   string        `validate:"required"`
	MongoCollection string        `validate:"required"`
	Port            string        `validate:"required,numeric"`
	AllowedOrigins  string        `validate:"required"`
	RequestTimeout  time.Duration `validate:"gt=0"`
	LogLevel        string        `validate:"oneof=debug info warn error"`

	// EnvFileLoaded บอกว่าอ่านไฟล์ .env ได้หรือไม่ (ไม่มีไฟล์ก็ทำงานต่อได้)
	EnvFileLoaded bool `validate:"-"`
	// Warnings ค่าที่อ่านไม่ได้และถูกแทนด้วยค่าเริ่มต้น
	Warnings []string `validate:"-"`
}

// Load อ่านค่าจาก .env (ถ้ามี) และ environment variables
//
// ยังไม่ตรวจค่า ผู้เรียกต้องเรียก Validate หลังใส่ค่าจาก flag แล้ว
func Load(envFiles ...string) Config {
	cfg := Config{EnvFileLoaded: godotenv.Load(envFiles...) == nil}

	cfg.MongoURI = getenv("MONGO_URI", "mongodb://localhost:27017")
	cfg.MongoDatabase = getenv("MONGO_DB", "student_portal")
	cfg.MongoCollection = getenv("MONGO_COLLECTION", "students")
	cfg.Port = getenv("APP_PORT", "5000")
	cfg.AllowedOrigins = getenv("ALLOWED_ORIGINS", "*")
	cfg.RequestTimeout = cfg.getenvDuration("REQUEST_TIMEOUT", 10*time.Second)
	cfg.LogLevel = getenv("LOG_LEVEL", "info")
	return cfg
}

// ApplyFlags ใส่ค่าจาก command line ทับ environment (ค่าว่าง = ไม่ทับ)
func (c *Config) ApplyFlags(port string, verbose bool) {
	if port != "" {
		c.Port = port
	}
	if verbose {
		c.LogLevel = "debug"
	}
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func (c *Config) getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		c.Warnings = append(c.Warnings, fmt.Sprintf("%s=%q is not a duration, using %s", key, val, fallback))
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
		c.Warnings = append(c.Warnings, fmt.Sprintf("%s_SECONDS=%q is not a number, using %s", key, val, fallback))
	}
	return fallback
}
