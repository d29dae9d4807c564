package ports

import "context"

// Logger é o log estruturado compartilhado por repositórios, serviços e handlers.
// args seguem o formato chave/valor do slog: logger.Warn("msg", "open_id", id).
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With retorna um logger que acrescenta args a toda entrada
	With(args ...any) Logger
}

// DatabaseProbe verifica se o banco responde
type DatabaseProbe interface {
	Ping(ctx context.Context) error
}
