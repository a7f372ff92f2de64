package main

import (
	"context"
	"log"
	"time"

	"qrmesa/config"
	httpapi "qrmesa/internal/api/http"
	"qrmesa/internal/board"
	"qrmesa/internal/service"
	"qrmesa/internal/storage"
)

const ordersTopic = "orders"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(ordersTopic)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisTableCache(rdb, 15*time.Minute)
	notifier := storage.NewKafkaNotifier(writer)

	orderSvc := service.NewOrderService(repo, repo, repo, repo, cache, notifier)
	tableSvc := service.NewTableService(repo, cache, service.DefaultQRRenderer{BaseURL: config.PublicBaseURL()})
	menuSvc := service.NewMenuService(repo, repo, cache)

	reader := config.NewKafkaReader(ordersTopic, "qrmesa-board")
	defer reader.Close()
	consumer := board.NewConsumer(reader, board.NewRedisBoard(rdb))
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(orderSvc, tableSvc, menuSvc, repo)
	router := httpapi.NewRouter(handler)
	httpapi.StartServer(config.ListenAddr(), router)
}
