package extractor

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/muhammadolammi/resumeworker/internal/resume"
)

// Dispatcher picks the adapter for a document, runs the engine and returns the record.
// Either a complete record or an error wrapping ErrUnparseable comes back, never both.
type Dispatcher struct {
	engine *resume.Engine
	logger zerolog.Logger
}

type DispatcherOption func(*Dispatcher)

func WithLogger(l zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

func NewDispatcher(engine *resume.Engine, opts ...DispatcherOption) *Dispatcher {
	if engine == nil {
		engine = resume.NewEngine()
	}
	d := &Dispatcher{
		engine: engine,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ParseFile parses the resume at path. A missing file, an unsupported extension or an
// undecodable document yields ErrUnparseable.
func (d *Dispatcher) ParseFile(path string) (*resume.ParsedResume, error) {
	lines, err := ExtractLines(path)
	if err != nil {
		d.logger.Warn().Err(err).Str("path", path).Msg("resume not parseable")
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}
	d.logger.Debug().Str("path", path).Int("lines", len(lines)).Msg("resume text extracted")
	return d.engine.Parse(lines), nil
}

// ParseBytes parses resume content of the given MIME type.
func (d *Dispatcher) ParseBytes(contentType string, data []byte) (*resume.ParsedResume, error) {
	text, err := ExtractText(contentType, data)
	if err != nil {
		d.logger.Warn().Err(err).Str("mime", contentType).Msg("resume not parseable")
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}
	return d.engine.ParseText(text), nil
}
