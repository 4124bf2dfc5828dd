package config

import "errors"

var (
	// ErrHelp is returned when --help is present; nothing else is parsed.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned when --version is present.
	ErrVersion = errors.New("version requested")
	// ErrNoCommand is returned when -c is missing or empty.
	ErrNoCommand = errors.New("no cmd provided, try '--help'")
	// ErrNoDuration is returned when every offset is zero and no cron
	// expression is given.
	ErrNoDuration = errors.New("no time set, exiting...")
	// ErrConflictingSchedule is returned when -t is combined with offsets.
	ErrConflictingSchedule = errors.New("flag -t cannot be combined with -d, -h, -m or -s")
	// ErrInvalidCron is returned for malformed -t expressions.
	ErrInvalidCron = errors.New("invalid cron expression")
	// ErrMissingParameter is returned by FlagValue when called without a flag
	// name or argument list.
	ErrMissingParameter = errors.New("missing required parameter")
)

// IsUsage reports whether err is a configuration error that should be shown
// to the user as an informational message followed by a clean exit.
func IsUsage(err error) bool {
	return errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrNoDuration) ||
		errors.Is(err, ErrConflictingSchedule) ||
		errors.Is(err, ErrInvalidCron) ||
		errors.Is(err, ErrMissingParameter)
}
