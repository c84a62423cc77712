package main

import (
	"fmt"
	"os"

	_ "time/tzdata"

	"github.com/Umar-Zak/lyospot/config"
	"github.com/Umar-Zak/lyospot/internal/app"
	circuitbreaker "github.com/Umar-Zak/lyospot/internal/infrastructure/circuit-breaker"
	"github.com/Umar-Zak/lyospot/internal/infrastructure/database/mongodb"
	paymentgateway "github.com/Umar-Zak/lyospot/internal/infrastructure/payment-gateway"
	"github.com/Umar-Zak/lyospot/internal/infrastructure/sms"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	mongoURI := fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort)
	db, err := mongodb.ConnectToMongoDB(mongoURI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	midtransClient := paymentgateway.CreateMidtransClient(config)
	twilioClient := sms.CreateTwilioClient(config)
	chargeBreaker := circuitbreaker.CreateChargeBreaker("lyospot-payment")

	application := app.App{
		DB:             db,
		Config:         config,
		MidtransClient: midtransClient,
		TwilioClient:   twilioClient,
		ChargeBreaker:  chargeBreaker,
	}

	application.Start()
}
