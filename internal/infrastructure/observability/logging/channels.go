// Package logging provides structured logging channels for Meadowlark
// request handling, session state and outbound notifications.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Channel represents a logical logging channel for different app components
type Channel string

const (
	// System channels
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	// Request pipeline channels
	ChannelRequest Channel = "request" // Inbound HTTP request logging
	ChannelSession Channel = "session" // Session and flash state
	ChannelUpload  Channel = "upload"  // Multipart upload handling

	// Business channels
	ChannelSignup Channel = "signup" // Newsletter signup flow
	ChannelOrder  Channel = "order"  // Cart checkout flow
	ChannelMail   Channel = "mail"   // Outbound email notifications

	// Failure channel
	ChannelErrors Channel = "errors" // Recovered panics and unexpected errors
)

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	config   *LoggerConfig
}

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	OutputToFile    bool       `json:"outputToFile"`    // Whether to write logs to files
	OutputToConsole bool       `json:"outputToConsole"` // Whether to write logs to console
	LogDirectory    string     `json:"logDirectory"`    // Directory for log files
	JSONFormat      bool       `json:"jsonFormat"`      // Use JSON format for structured logging
	IncludeSource   bool       `json:"includeSource"`   // Include source file and line in logs
	DefaultLevel    slog.Level `json:"defaultLevel"`    // Default log level
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: true,
		LogDirectory:    "logs",
		JSONFormat:      false,
		IncludeSource:   false,
		DefaultLevel:    slog.LevelDebug,
	}
}

// ConfigForEnv maps the app environment mode to logging output:
// development defaults to Debug on the console; production logs to file
// as JSON at Info.
func ConfigForEnv(env string) *LoggerConfig {
	if env == "production" {
		return &LoggerConfig{
			OutputToFile:    true,
			OutputToConsole: true,
			LogDirectory:    "logs",
			JSONFormat:      true,
			IncludeSource:   false,
			DefaultLevel:    slog.LevelInfo,
		}
	}
	return DefaultLoggerConfig()
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) (*ChanneledLogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	logger := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}

	if config.OutputToFile {
		if err := os.MkdirAll(config.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	channels := []Channel{
		ChannelSystem, ChannelStartup, ChannelShutdown,
		ChannelRequest, ChannelSession, ChannelUpload,
		ChannelSignup, ChannelOrder, ChannelMail,
		ChannelErrors,
	}

	for _, channel := range channels {
		channelLogger, err := logger.createChannelLogger(channel)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger for channel %s: %w", channel, err)
		}
		logger.channels[channel] = channelLogger
	}

	return logger, nil
}

// createChannelLogger creates a slog.Logger for a specific channel
func (cl *ChanneledLogger) createChannelLogger(channel Channel) (*slog.Logger, error) {
	var writers []io.Writer

	if cl.config.OutputToConsole {
		writers = append(writers, os.Stdout)
	}

	if cl.config.OutputToFile {
		filename := fmt.Sprintf("%s.log", string(channel))
		path := filepath.Join(cl.config.LogDirectory, filename)

		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}

		writers = append(writers, file)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     cl.config.DefaultLevel,
		AddSource: cl.config.IncludeSource,
	}

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return slog.New(handler).With(slog.String("channel", string(channel))), nil
}

func (cl *ChanneledLogger) System() *slog.Logger   { return cl.channels[ChannelSystem] }
func (cl *ChanneledLogger) Startup() *slog.Logger  { return cl.channels[ChannelStartup] }
func (cl *ChanneledLogger) Shutdown() *slog.Logger { return cl.channels[ChannelShutdown] }
func (cl *ChanneledLogger) Request() *slog.Logger  { return cl.channels[ChannelRequest] }
func (cl *ChanneledLogger) Session() *slog.Logger  { return cl.channels[ChannelSession] }
func (cl *ChanneledLogger) Upload() *slog.Logger   { return cl.channels[ChannelUpload] }
func (cl *ChanneledLogger) Signup() *slog.Logger   { return cl.channels[ChannelSignup] }
func (cl *ChanneledLogger) Order() *slog.Logger    { return cl.channels[ChannelOrder] }
func (cl *ChanneledLogger) Mail() *slog.Logger     { return cl.channels[ChannelMail] }
func (cl *ChanneledLogger) Errors() *slog.Logger   { return cl.channels[ChannelErrors] }

// GetChannel returns a logger for a specific channel
func (cl *ChanneledLogger) GetChannel(channel Channel) *slog.Logger {
	if logger, exists := cl.channels[channel]; exists {
		return logger
	}
	// Fallback to system channel
	return cl.channels[ChannelSystem]
}

// WithOperation returns a logger with operation context
func (cl *ChanneledLogger) WithOperation(channel Channel, operation string) *slog.Logger {
	return cl.GetChannel(channel).With(slog.String("operation", operation))
}

// LogRequest logs a completed HTTP request on the request channel.
func (cl *ChanneledLogger) LogRequest(method, path, clientIP string, status int, duration time.Duration) {
	cl.Request().Info("Request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("clientIp", clientIP),
		slog.Int("status", status),
		slog.Duration("duration", duration),
	)
}

// LogMailOutcome logs the result of a best-effort email send. The recipient
// address is masked; only the domain survives into the logs.
func (cl *ChanneledLogger) LogMailOutcome(to, subject string, err error) {
	logger := cl.Mail().With(
		slog.String("to", maskEmail(to)),
		slog.String("subject", subject),
	)
	if err != nil {
		logger.Error("Email send failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("Email sent")
}

// maskEmail hides the local part of an address for log output
func maskEmail(addr string) string {
	for i := 0; i < len(addr); i++ {
		if addr[i] == '@' {
			return "****" + addr[i:]
		}
	}
	return "****"
}

// Close flushes and releases logger resources.
func (cl *ChanneledLogger) Close() error {
	cl.System().Info("Channeled logger shutting down")
	return nil
}
