package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// CodeSender delivers a one-time code out-of-band (mail, SMS). The
// core only cares that dispatch either happens or errors within the
// caller's deadline.
type CodeSender interface {
	SendCode(ctx context.Context, email, code string) error
}

// LogSender is the development sender: the code lands in the log
// instead of a mailbox.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendCode(ctx context.Context, email, code string) error {
	s.log.Info().
		Str("email", email).
		Str("code", code).
		Msg("two-factor code dispatched")
	return nil
}

var _ CodeSender = (*LogSender)(nil)
