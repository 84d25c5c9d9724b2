package ports

// Logger defines the interface for logging.
//
// Key/value pairs follow the message, e.g. Debug("running", "command", "git clone").
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(err error)
}
