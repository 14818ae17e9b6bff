package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/muhammadolammi/resumeworker/internal/cache"
	"github.com/muhammadolammi/resumeworker/internal/database"
	"github.com/muhammadolammi/resumeworker/internal/logger"
)

const sessionsQueue = "sessions"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
	statusFailed     = "failed"
)

func errorResult(res database.Resume, stage string, err error) ParseResult {
	return ParseResult{
		ResumeID:      res.ID,
		FileName:      res.OriginalFilename,
		IsErrorResult: true,
		Error:         fmt.Sprintf("%s error: %v", stage, err),
	}
}

// parseResume downloads one resume and runs it through the engine, consulting the cache
// first when one is configured. Failures are reported in the result, not returned.
func (wc *WorkerConfig) parseResume(ctx context.Context, res database.Resume) ParseResult {
	log := logger.Ctx(ctx).With().Str("object_key", res.ObjectKey).Logger()

	// ✅ Retry downloading file (network failures are transient)
	fileBytes, err := retry(3, func() ([]byte, error) {
		return wc.Fetch(ctx, res.ObjectKey)
	})
	if err != nil {
		log.Warn().Err(err).Msg("download failed after retries")
		return errorResult(res, "file download", err)
	}

	digest := cache.Digest(fileBytes)
	if wc.Cache != nil {
		cached, ok, err := wc.Cache.Get(ctx, digest)
		if err != nil {
			log.Warn().Err(err).Msg("cache lookup failed")
		} else if ok {
			log.Debug().Str("digest", digest).Msg("cache hit")
			return ParseResult{ResumeID: res.ID, FileName: res.OriginalFilename, Resume: cached, Cached: true}
		}
	}

	parsed, err := wc.Dispatcher.ParseBytes(res.Mime, fileBytes)
	if err != nil {
		log.Warn().Err(err).Str("mime", res.Mime).Msg("text extraction failed")
		return errorResult(res, "text extraction", err)
	}

	if wc.Cache != nil {
		if err := wc.Cache.Set(ctx, digest, parsed); err != nil {
			log.Warn().Err(err).Msg("cache store failed")
		}
	}
	return ParseResult{ResumeID: res.ID, FileName: res.OriginalFilename, Resume: parsed}
}

// parseSession parses every resume of a session and stores the combined results.
func (wc *WorkerConfig) parseSession(ctx context.Context, currentSession Session) error {
	resumes, err := wc.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return &SessionError{SessionID: currentSession.ID, Stage: "load resumes", Err: err}
	}

	results := &ParseResults{
		SessionID: currentSession.ID,
		Results:   make([]ParseResult, 0, len(resumes)),
	}
	for _, res := range resumes {
		result := wc.parseResume(ctx, res)
		results.Results = append(results.Results, result)

		status := "parsed"
		if result.IsErrorResult {
			status = "parse_failed"
		}
		if err := wc.DB.UpdateResumeUploadStatus(ctx, database.UpdateResumeUploadStatusParams{
			UploadStatus: status,
			ID:           res.ID,
		}); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Str("resume_id", res.ID.String()).Msg("failed to update resume status")
		}
	}
	logger.Ctx(ctx).Info().Int("resumes", len(resumes)).Msg("session parsed")

	resultsJSON, err := json.Marshal(results.Results)
	if err != nil {
		return &SessionError{SessionID: currentSession.ID, Stage: "encode results", Err: err}
	}

	_, err = retry(3, func() (any, error) {
		return nil, wc.DB.CreateOrUpdateParsedResumes(ctx, database.CreateOrUpdateParsedResumesParams{
			Results:   resultsJSON,
			SessionID: results.SessionID,
		})
	})
	if err != nil {
		return &SessionError{SessionID: currentSession.ID, Stage: "store results", Err: err}
	}
	return nil
}

// setStatus records the session status in the database and fans it out to listeners.
func (wc *WorkerConfig) setStatus(ctx context.Context, sessionID uuid.UUID, status, message string) {
	if err := wc.DB.UpdateSessionStatus(ctx, database.UpdateSessionStatusParams{
		Status: status,
		ID:     sessionID,
	}); err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("status", status).Msg("failed to update session status")
	}

	if wc.Publisher == nil {
		return
	}
	update := map[string]any{
		"session_id": sessionID,
		"status":     status,
		"message":    message,
		"timestamp":  time.Now(),
	}
	if err := wc.Publisher.PublishSessionUpdate(sessionID.String(), update); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to publish update")
	}
}

// handleMessage processes one message from the sessions queue.
func (wc *WorkerConfig) handleMessage(ctx context.Context, body []byte) {
	session := Session{}
	if err := json.Unmarshal(body, &session); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("error unmarshalling message body")
		if session.ID != uuid.Nil {
			wc.setStatus(ctx, session.ID, statusFailed, "parsing failed")
		}
		return
	}

	ctx = logger.Ctx(ctx).With().Str("session_id", session.ID.String()).Logger().WithContext(ctx)
	logger.Ctx(ctx).Info().Msg("processing session")

	wc.setStatus(ctx, session.ID, statusProcessing, "parsing started")

	if err := wc.parseSession(ctx, session); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("error parsing session")
		wc.setStatus(ctx, session.ID, statusFailed, "parsing failed")
		return
	}
	wc.setStatus(ctx, session.ID, statusCompleted, "parsing completed")
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	log := logger.Logger.With().Int("worker", id+1).Logger()
	ctx := log.WithContext(context.Background())

	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("error dialling rabbitmq")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to rabbitmq channel")
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		sessionsQueue, // queue name
		true,          // durable (survives broker restarts)
		false,         // auto-delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to declare queue")
	}

	msgs, err := ch.Consume(
		sessionsQueue, // queue name
		"",            // consumer tag
		true,          // auto-ack
		false,         // exclusive
		false,         // no-local
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error consuming rabbitmq message")
	}

	for msg := range msgs {
		workerConfig.handleMessage(ctx, msg.Body)
	}
	log.Info().Msg("delivery channel closed")
}

func (wc *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		logger.Info().Int("worker", i+1).Msg("worker started")
		go worker(i, wc, &wg)
	}
	wg.Wait() // block until all workers finish
}
