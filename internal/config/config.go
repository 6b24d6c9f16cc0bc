package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	ServerPort int

	MongoURI         string
	MongoDatabase    string
	LedgerCollection string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool

	RawBucket       string
	ProcessedBucket string

	RawVideoDir       string
	ProcessedVideoDir string

	FFmpegBin    string
	TargetHeight int

	RedisAddr     string
	RedisPassword string

	JWTPublicKey string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("SERVER_PORT", 3000)
	viper.SetDefault("MONGO_DATABASE", "video-processor")
	viper.SetDefault("LEDGER_COLLECTION", "videos")
	viper.SetDefault("RAW_BUCKET", "raw-videos")
	viper.SetDefault("PROCESSED_BUCKET", "processed-videos")
	viper.SetDefault("RAW_VIDEO_DIR", "./raw-videos")
	viper.SetDefault("PROCESSED_VIDEO_DIR", "./processed-videos")
	viper.SetDefault("FFMPEG_BIN", "ffmpeg")
	viper.SetDefault("TARGET_HEIGHT", 360)

	if !viper.IsSet("MONGO_URI") {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if !viper.IsSet("MINIO_ENDPOINT") {
		return nil, fmt.Errorf("MINIO_ENDPOINT is required")
	}
	if !viper.IsSet("MINIO_ACCESS_KEY") {
		return nil, fmt.Errorf("MINIO_ACCESS_KEY is required")
	}
	if !viper.IsSet("MINIO_SECRET_KEY") {
		return nil, fmt.Errorf("MINIO_SECRET_KEY is required")
	}

	return &Settings{
		ServerPort:        viper.GetInt("SERVER_PORT"),
		MongoURI:          viper.GetString("MONGO_URI"),
		MongoDatabase:     viper.GetString("MONGO_DATABASE"),
		LedgerCollection:  viper.GetString("LEDGER_COLLECTION"),
		MinioEndpoint:     viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:    viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:    viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:       viper.GetBool("MINIO_USE_SSL"),
		RawBucket:         viper.GetString("RAW_BUCKET"),
		ProcessedBucket:   viper.GetString("PROCESSED_BUCKET"),
		RawVideoDir:       viper.GetString("RAW_VIDEO_DIR"),
		ProcessedVideoDir: viper.GetString("PROCESSED_VIDEO_DIR"),
		FFmpegBin:         viper.GetString("FFMPEG_BIN"),
		TargetHeight:      viper.GetInt("TARGET_HEIGHT"),
		RedisAddr:         viper.GetString("REDIS_ADDR"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),
		JWTPublicKey:      viper.GetString("JWT_PUBLIC_KEY"),
	}, nil
}
