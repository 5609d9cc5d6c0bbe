package logs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/turing/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var (
	levelFlag  = cmds.Var[string]("-log-level")
	jsonOutput = cmds.Switch("-log-json")
)

type Logger = *slog.Logger

// Logger fans records out to the terminal writer and the systemd journal.
// Under a systemd unit only the journal is used.
func (Module) Logger(
	writer Writer,
) Logger {
	level, levelErr := parseLevel(*levelFlag)

	var handlers []slog.Handler
	var terminal slog.Handler
	if !isSystemdService() {
		terminal = terminalHandler(writer, level)
		handlers = append(handlers, terminal)
	}
	if journal, err := journalHandler(level); err != nil {
		if terminal != nil {
			record := slog.NewRecord(time.Now(), slog.LevelDebug, "no systemd journal", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journal)
	}

	logger := slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
	if levelErr != nil {
		logger.Warn("bad log level", "error", levelErr)
	}
	return logger
}

func parseLevel(str string) (slog.Level, error) {
	var level slog.Level
	if str == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(str)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", str, err)
	}
	return level, nil
}

func terminalHandler(writer Writer, level slog.Level) slog.Handler {
	options := &slog.HandlerOptions{
		Level: level,
	}
	if *jsonOutput {
		return slog.NewJSONHandler(writer, options)
	}
	return slog.NewTextHandler(writer, options)
}

func journalHandler(level slog.Level) (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level:        level,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// Discard is a logger for callers constructed without one.
func Discard() Logger {
	return slog.New(slog.DiscardHandler)
}

// toJournalKey maps a key to the journal field alphabet.
func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
