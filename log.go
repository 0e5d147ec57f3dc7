package animated

import "log/slog"

// pkgLogger receives graph warnings and debug stats. Nil means slog.Default().
var pkgLogger *slog.Logger

// SetLogger replaces the logger used for graph-consistency warnings and
// debug-mode frame stats. Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	pkgLogger = l
}

func logger() *slog.Logger {
	if pkgLogger != nil {
		return pkgLogger
	}
	return slog.Default()
}
