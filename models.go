package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/muhammadolammi/resumeworker/internal/database"
	"github.com/muhammadolammi/resumeworker/internal/extractor"
	"github.com/muhammadolammi/resumeworker/internal/resume"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

// resumeStore is the slice of *database.Queries the worker uses.
type resumeStore interface {
	GetResumesBySession(ctx context.Context, sessionID uuid.UUID) ([]database.Resume, error)
	CreateOrUpdateParsedResumes(ctx context.Context, arg database.CreateOrUpdateParsedResumesParams) error
	UpdateSessionStatus(ctx context.Context, arg database.UpdateSessionStatusParams) error
	UpdateResumeUploadStatus(ctx context.Context, arg database.UpdateResumeUploadStatusParams) error
}

type resultCache interface {
	Get(ctx context.Context, digest string) (*resume.ParsedResume, bool, error)
	Set(ctx context.Context, digest string, res *resume.ParsedResume) error
}

type statusPublisher interface {
	PublishSessionUpdate(sessionID string, update map[string]any) error
}

// objectFetcher downloads one stored resume.
type objectFetcher func(ctx context.Context, key string) ([]byte, error)

type WorkerConfig struct {
	DB          resumeStore
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RABBITMQUrl string
	Publisher   statusPublisher
	Fetch       objectFetcher
	Dispatcher  *extractor.Dispatcher
	// Cache is optional.
	Cache resultCache
}

// ParseResult is the outcome for one resume of a session.
type ParseResult struct {
	ResumeID uuid.UUID            `json:"resume_id"`
	FileName string               `json:"file_name"`
	Resume   *resume.ParsedResume `json:"resume,omitempty"`
	Cached   bool                 `json:"cached"`
	// Error result entry
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

type ParseResults struct {
	ID        uuid.UUID     `json:"id"`
	Results   []ParseResult `json:"results" db:"results"`
	CreatedAt time.Time     `json:"created_at"`
	SessionID uuid.UUID     `json:"session_id"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type Session struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	UserID    uuid.UUID `json:"user_id"`
	Status    string    `json:"status"`
}

// SessionError records which stage of a session failed.
type SessionError struct {
	SessionID uuid.UUID
	Stage     string
	Err       error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session %s: %s: %v", e.SessionID, e.Stage, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}
