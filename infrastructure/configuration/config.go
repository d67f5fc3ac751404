package configuration

import (
	"fmt"
	"os"
	"strconv"

	"vibes-backend/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	YouTube     YouTube     `json:"youtube"`
	Instagram   Instagram   `json:"instagram"`
	Cache       Cache       `json:"cache"`
	Storage     Storage     `json:"storage"`
	Email       Email       `json:"email"`
	WhatsApp    WhatsApp    `json:"whatsApp"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

type Database struct {
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Password     string `json:"password"`
	DatabaseName string `json:"databaseName"`
	Username     string `json:"username"`
}

type YouTube struct {
	APIKey        string `json:"apiKey"`
	ChannelHandle string `json:"channelHandle"`
	ChannelID     string `json:"channelId"`
	ClientID      string `json:"clientId"`
	ClientSecret  string `json:"clientSecret"`
	RedirectURI   string `json:"redirectURI"`
	AccessToken   string `json:"accessToken"`
	RefreshToken  string `json:"refreshToken"`
}

type Instagram struct {
	AccessToken string `json:"accessToken"`
	UserID      string `json:"userId"`
}

// Cache holds TTL overrides in minutes; zero means the platform default.
type Cache struct {
	YouTubeTTLMinutes   int `json:"youtubeTTLMinutes"`
	InstagramTTLMinutes int `json:"instagramTTLMinutes"`
}

type Storage struct {
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
	PublicURL string `json:"publicURL"`
}

type Email struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	From     string `json:"from"`
	To       string `json:"to"`
}

type WhatsApp struct {
	PhoneNumber    string `json:"phoneNumber"`
	DefaultMessage string `json:"defaultMessage"`
}

type Logger struct {
	Format string `json:"format"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initPlatforms(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = os.Getenv("MONGO_DB_NAME")
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}

	if C.RedisClient.Host == "" {
		C.RedisClient.Host = os.Getenv("REDIS_HOST")
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = os.Getenv("REDIS_PORT")
	}
	if C.RedisClient.Password == "" {
		C.RedisClient.Password = os.Getenv("REDIS_PASSWORD")
	}
}

func initApp(C *Config) {
	// Prefer SECRET_KEY from environment for JWT signing; overrides config file when provided
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; admin authentication will fail. Provide SECRET_KEY via environment.")
	}
}

func initPlatforms(C *Config) {
	if C.YouTube.APIKey == "" {
		C.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if C.YouTube.ChannelHandle == "" {
		C.YouTube.ChannelHandle = os.Getenv("YOUTUBE_CHANNEL_HANDLE")
	}
	if C.YouTube.ChannelID == "" {
		C.YouTube.ChannelID = os.Getenv("YOUTUBE_CHANNEL_ID")
	}
	if C.Instagram.AccessToken == "" {
		C.Instagram.AccessToken = os.Getenv("INSTAGRAM_ACCESS_TOKEN")
	}
	if C.Instagram.UserID == "" {
		C.Instagram.UserID = os.Getenv("INSTAGRAM_USER_ID")
	}
	if C.Storage.Bucket == "" {
		C.Storage.Bucket = os.Getenv("S3_BUCKET")
	}
	if C.Storage.Region == "" {
		C.Storage.Region = os.Getenv("AWS_REGION")
	}
	if C.Email.Host == "" {
		C.Email.Host = os.Getenv("SMTP_HOST")
	}
	if C.WhatsApp.PhoneNumber == "" {
		C.WhatsApp.PhoneNumber = os.Getenv("WHATSAPP_PHONE_NUMBER")
	}

	if C.YouTube.APIKey == "" {
		logger.GetLogger().Warn("YouTube API key not set; YouTube endpoints will be unavailable")
	}
	if C.Instagram.AccessToken == "" {
		logger.GetLogger().Warn("Instagram access token not set; Instagram endpoints will be unavailable")
	}
}
