package utils

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppURL       string `yaml:"APP_URL"`
	AppPort      string `yaml:"APP_PORT"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Redis, optional. Reset codes stay in memory when empty.
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"REDIS_DB"`

	// Kafka, optional. Order events are dropped when empty.
	KafkaBrokers    string `yaml:"KAFKA_BROKERS"`
	KafkaOrderTopic string `yaml:"KAFKA_ORDER_TOPIC"`

	// Payment configuration
	ClientKey string `yaml:"CLIENT_KEY"`
	ServerKey string `yaml:"SERVER_KEY"`
	IsProd    bool   `yaml:"IsProd"`
	VnPayURL  string `yaml:"VNPAY_URL"`
	MomoURL   string `yaml:"MOMO_URL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppURL:          "http://localhost:8080",
		AppPort:         "8080",
		RateLimitMax:    10,
		DBHost:          "localhost",
		DBPort:          "5432",
		SMTPPort:        "587",
		KafkaOrderTopic: "order-events",
		VnPayURL:        "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		MomoURL:         "https://test-payment.momo.vn/v2/gateway/api/create",
	}
}

// LoadConfig reads .env (optional) and the YAML file at path, then lets any key
// present in the process environment override the YAML value.
func LoadConfig(path string) {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Info(".env not loaded")
	}

	file, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("error reading yaml file")
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("error parsing yaml file")
	}

	applyEnvOverrides(&config)
}

func applyEnvOverrides(c *Config) {
	strs := map[string]*string{
		"APP_URL":            &c.AppURL,
		"APP_PORT":           &c.AppPort,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"JWT_SECRET":         &c.JWTSecret,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"REDIS_ADDR":         &c.RedisAddr,
		"REDIS_PASSWORD":     &c.RedisPassword,
		"KAFKA_BROKERS":      &c.KafkaBrokers,
		"KAFKA_ORDER_TOPIC":  &c.KafkaOrderTopic,
		"CLIENT_KEY":         &c.ClientKey,
		"SERVER_KEY":         &c.ServerKey,
		"VNPAY_URL":          &c.VnPayURL,
		"MOMO_URL":           &c.MomoURL,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"REDIS_DB":       &c.RedisDB,
		"RATE_LIMIT_MAX": &c.RateLimitMax,
	}
	for key, dst := range ints {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				*dst = n
			}
		}
	}

	if v, ok := os.LookupEnv("IS_PROD"); ok {
		c.IsProd, _ = strconv.ParseBool(v)
	}
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "APP_URL":
		return config.AppURL
	case "APP_PORT":
		return config.AppPort
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "REDIS_ADDR":
		return config.RedisAddr
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "REDIS_DB":
		return strconv.Itoa(config.RedisDB)
	case "KAFKA_BROKERS":
		return config.KafkaBrokers
	case "KAFKA_ORDER_TOPIC":
		return config.KafkaOrderTopic
	case "CLIENT_KEY":
		return config.ClientKey
	case "SERVER_KEY":
		return config.ServerKey
	case "IsProd":
		return getBoolString(config.IsProd)
	case "VNPAY_URL":
		return config.VnPayURL
	case "MOMO_URL":
		return config.MomoURL
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// GetConfigInt returns 0 for keys that are missing or not numeric.
func GetConfigInt(key string) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return 0
	}
	return n
}
