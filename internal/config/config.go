package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"app/internal/domain/model"
	"app/internal/pricing"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StoreAPIURL     string        // ストアバックエンドのベースURL
	StoreAPITimeout time.Duration // バックエンド呼び出しのタイムアウト

	JWTSecret string // JWT署名シークレット

	GoEnv string // dev/prod

	Pricing pricing.Config // 配送料テーブル（環境変数で上書き可）
}

// Loadは環境変数
func Load() (Config, error) {
	timeoutMS, err := atoiOr("STORE_API_TIMEOUT_MS", 10000)
	if err != nil {
		return Config{}, err
	}

	p, err := loadPricing()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		StoreAPIURL:     os.Getenv("STORE_API_URL"),
		StoreAPITimeout: time.Duration(timeoutMS) * time.Millisecond,

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoEnv: os.Getenv("GO_ENV"),

		Pricing: p,
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.StoreAPIURL == "" {
		return Config{}, fmt.Errorf("STORE_API_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	return cfg, nil
}

// 配送料は既定値に環境変数を上書き。
func loadPricing() (pricing.Config, error) {
	p := pricing.DefaultConfig()

	overrides := map[model.ShippingOption]string{
		model.ShippingExpress:  "SHIPPING_FEE_EXPRESS",
		model.ShippingStandard: "SHIPPING_FEE_STANDARD",
		model.ShippingEconomy:  "SHIPPING_FEE_ECONOMY",
		model.ShippingFree:     "SHIPPING_FEE_FREE",
	}
	for opt, key := range overrides {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		fee, err := strconv.ParseInt(v, 10, 64)
		if err != nil || fee < 0 {
			return pricing.Config{}, fmt.Errorf("%s must be a non-negative number", key)
		}
		p.Fees[opt] = fee
	}
	return p, nil
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
