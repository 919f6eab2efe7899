// Command worker runs the document pipeline: the trigger and completion
// queue consumers plus the admin HTTP endpoint.
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"sync"
	"syscall"

	"docflow/internal/awsclient"
	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/email/noop"
	"docflow/internal/email/ses"
	"docflow/internal/handler"
	"docflow/internal/nlp"
	"docflow/internal/ontology"
	"docflow/internal/port"
	sqsqueue "docflow/internal/queue/sqs"
	"docflow/internal/router"
	"docflow/internal/service"
	dynamostore "docflow/internal/storage/dynamo"
	s3storage "docflow/internal/storage/s3"
	"docflow/internal/textract"
	"docflow/internal/worker"

	snsnotify "docflow/internal/notify/sns"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func newEmailSender(cfg *config.Config) (port.EmailSender, error) {
	if cfg.Email.Provider == "ses" && cfg.Email.ToAddress != "" {
		return ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.ToAddress)
	}
	return noop.NewNoopSender(), nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsclient.Load(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	// Adapters
	objects := s3storage.NewS3Client(awsCfg, cfg)
	store := dynamostore.NewDynamoStore(awsCfg, cfg)
	jobs := textract.NewTextractClient(awsCfg, cfg)
	inference := ontology.NewComprehendMedicalClient(awsCfg, cfg)
	nlpClient := nlp.NewComprehendClient(awsCfg)
	notifier := snsnotify.NewSNSNotifier(awsCfg, cfg)
	mail, err := newEmailSender(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Services
	ontologySaver := service.NewOntologySaver(objects, store, cfg)
	orchestrator := service.NewOrchestrator(inference, ontologySaver, notifier, cfg)
	textSaver := service.NewTextSaver(jobs, objects, store, orchestrator, cfg)
	expenseSaver := service.NewExpenseSaver(jobs, store, notifier, mail)
	pleadingSaver := service.NewPleadingSaver(jobs, objects, store, cfg)
	completion := service.NewCompletionService(textSaver, expenseSaver, pleadingSaver)
	correspondence := service.NewCorrespondenceService(objects, store, nlpClient)
	intake := service.NewIntakeService(store, jobs, correspondence, cfg.Intake)

	// Queue workers
	triggerQueue := sqsqueue.NewSQSQueue(awsCfg, cfg.Queue.TriggerURL, cfg.Queue.WaitSecs)
	completionQueue := sqsqueue.NewSQSQueue(awsCfg, cfg.Queue.CompletionURL, cfg.Queue.WaitSecs)

	triggerWorker := worker.NewQueueWorker("triggerWorker", triggerQueue, func(ctx context.Context, body []byte) error {
		event, err := domain.ParseTriggerEvent(body)
		if err != nil {
			return err
		}
		return intake.HandleTrigger(ctx, event)
	}, worker.Config{
		Concurrency:    cfg.Queue.Concurrency,
		HandlerTimeout: cfg.Intake.SubmitTimeout,
	})

	completionWorker := worker.NewQueueWorker("completionWorker", completionQueue, func(ctx context.Context, body []byte) error {
		return completion.HandleNotification(ctx, body)
	}, worker.Config{
		Concurrency:    cfg.Queue.Concurrency,
		HandlerTimeout: cfg.Intake.SaveTimeout,
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		triggerWorker.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		completionWorker.Start(ctx)
	}()

	// Admin endpoint
	r := router.Setup(handler.NewHealthHandler(), handler.NewDocumentHandler(store))
	go func() {
		log.Printf("admin endpoint listening on %s", cfg.Admin.Port)
		if err := r.Run(cfg.Admin.Port); err != nil {
			log.Printf("admin endpoint failed: %v", err)
		}
	}()

	wg.Wait()
	return nil
}
