package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/divyam007142/Railway-reservation/internal/config"
	"github.com/divyam007142/Railway-reservation/internal/dto"
	"github.com/divyam007142/Railway-reservation/internal/logger"
	"github.com/divyam007142/Railway-reservation/internal/stub"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.LogLevel)
	defer logger.Sync()

	store := stub.NewStore()
	seed(store)

	server := stub.NewServer(store, cfg.Stub.JWTSecret, cfg.Stub.AccessTokenTTL)

	addr := fmt.Sprintf(":%d", cfg.Stub.Port)
	logger.Info("starting stub API server", zap.String("addr", addr))
	if err := server.Router().Run(addr); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

// seed loads a few demo trains so the client has something to book.
func seed(store *stub.Store) {
	trains := []dto.TrainCreateRequest{
		{TrainNumber: "12301", TrainName: "Rajdhani Express", Source: "Delhi", Destination: "Mumbai", TotalSeats: 50, Fare: 1250, DepartureTime: "16:55", ArrivalTime: "08:15"},
		{TrainNumber: "12002", TrainName: "Shatabdi Express", Source: "Delhi", Destination: "Bhopal", TotalSeats: 40, Fare: 890, DepartureTime: "06:00", ArrivalTime: "13:40"},
		{TrainNumber: "12621", TrainName: "Tamil Nadu Express", Source: "Chennai", Destination: "Delhi", TotalSeats: 60, Fare: 1420, DepartureTime: "22:00", ArrivalTime: "07:05"},
	}
	for i := range trains {
		store.AddTrain(&trains[i])
	}
}
