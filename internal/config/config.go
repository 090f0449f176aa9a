package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DBPath string // 単一ファイルDBのパス（cafe.db）

	SessionSecret string // セッションcookie署名シークレット

	GoEnv string // dev/prod
}

const devSessionSecret = "dev_secret_change_me"

// Loadは環境変数から設定を読む。未設定はdev向けデフォルトで埋める。
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DBPath:        getenv("DB_PATH", "cafe.db"),
		SessionSecret: getenv("SESSION_SECRET", devSessionSecret),
		GoEnv:         getenv("GO_ENV", "dev"),
	}

	//本番はシークレット必須
	if cfg.GoEnv == "prod" && cfg.SessionSecret == devSessionSecret {
		return Config{}, fmt.Errorf("SESSION_SECRET is required when GO_ENV=prod")
	}

	return cfg, nil
}

// Prodは本番環境かどうか（cookieのSecure属性などに使う）
func (c Config) Prod() bool {
	return c.GoEnv == "prod"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
