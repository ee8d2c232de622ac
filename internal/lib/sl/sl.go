package sl

import "log/slog"

// Module tags log records with the emitting subsystem.
func Module(name string) slog.Attr {
	return slog.String("module", name)
}

func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Secret logs a credential without exposing it fully.
func Secret(key, value string) slog.Attr {
	if len(value) > 6 {
		value = value[:6] + "..."
	}
	return slog.String(key, value)
}
