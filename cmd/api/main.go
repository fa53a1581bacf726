package main

import (
	"log"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/storeapi"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くてもよい（本番は環境変数直）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//ストアバックエンドのクライアント
	client := storeapi.New(cfg.StoreAPIURL, cfg.StoreAPITimeout)
	cartAPI := storeapi.NewCartAPI(client)
	promoAPI := storeapi.NewPromoAPI(client)
	orderAPI := storeapi.NewOrderAPI(client)

	//Usecase生成（カートはセッションごと）
	checkoutUC := usecase.NewCheckoutUsecase(orderAPI)
	sessions := usecase.NewSessions(func() *usecase.CartUsecase {
		return usecase.NewCartUsecase(cartAPI, promoAPI, checkoutUC, cfg.Pricing)
	})

	//Handler生成
	cartH := handler.NewCartHandler(sessions)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, cartH)
	if err := server.Start(e, addr); err != nil {
		log.Fatal(err)
	}
}
