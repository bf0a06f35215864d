package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/abhayg44/RFP-System/internal/client"
	"github.com/abhayg44/RFP-System/internal/core/domain"
	"github.com/abhayg44/RFP-System/internal/core/service"
	"github.com/abhayg44/RFP-System/internal/handler"
	"github.com/abhayg44/RFP-System/internal/infrastructure/amqp"
	"github.com/abhayg44/RFP-System/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	// Get configuration from environment
	amqpURL := os.Getenv("AMQP_URL")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		log.Fatalf("Invalid SMTP_PORT: %v", err)
	}
	smtpUser := os.Getenv("SMTP_USER")
	smtpPassword := os.Getenv("SMTP_PASSWORD")
	smtpFrom := os.Getenv("SMTP_FROM")

	amqpClient := amqp.NewClient(amqpURL)
	defer amqpClient.Close()

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, dbHost, dbPort, dbUser, dbPassword, dbName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	documents := storage.NewDocumentsStorage(db)
	evaluations := storage.NewEvaluationsStorage(db)

	notifier := client.NewSMTPNotifier(smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom)
	validate := validator.New()

	ingestionService := service.NewIngestionService(documents, notifier)
	evaluationService := service.NewEvaluationService(evaluations)

	ingestionConsumer := amqp.NewConsumer(amqpClient, handler.NewIngestionConsumerHandler(ingestionService, validate))
	evaluationConsumer := amqp.NewConsumer(amqpClient, handler.NewEvaluationConsumerHandler(evaluationService, validate))

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		ingestionConsumer.Run(workerCtx, domain.AIResponsesQueue)
	}()
	go func() {
		defer wg.Done()
		evaluationConsumer.Run(workerCtx, domain.EvaluationResultsQueue)
	}()

	log.Info("Worker service started successfully")
	log.Infof("Consuming queues: %s, %s", domain.AIResponsesQueue, domain.EvaluationResultsQueue)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down worker service...")
	workerCancel()

	// Both run loops must drain their in-flight delivery and ack/nack it
	// before the AMQP client is released.
	wg.Wait()
}
