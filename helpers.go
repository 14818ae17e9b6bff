package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/streadway/amqp"
)

const sessionUpdatesExchange = "session_updates"

// retryBackoff is the base wait between attempts; attempt n waits n times as long.
var retryBackoff = 500 * time.Millisecond

// retry retries a function up to `attempts` times with linear backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i < attempts-1 {
			time.Sleep(time.Duration(i+1) * retryBackoff)
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// --- File Download ---

func newR2Client(awsConfig aws.Config, r2 *R2Config) *s3.Client {
	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2.AccountID))
	})
}

// r2Fetcher downloads objects from the configured bucket.
func r2Fetcher(client *s3.Client, bucket string) objectFetcher {
	return func(ctx context.Context, key string) ([]byte, error) {
		return DownloadFromR2(ctx, client, bucket, key)
	}
}

func DownloadFromR2(ctx context.Context, client *s3.Client, bucket, key string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	_, err = io.Copy(buf, out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

// --- Status Updates ---

type amqpPublisher struct {
	conn *amqp.Connection
}

func (p *amqpPublisher) PublishSessionUpdate(sessionID string, update map[string]any) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(update)
	if err != nil {
		return err
	}
	routingKey := fmt.Sprintf("session.%s", sessionID)

	return ch.Publish(
		sessionUpdatesExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
