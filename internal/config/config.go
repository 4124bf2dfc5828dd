package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/adhocore/gronx"
)

// Flag names understood by Parse.
const (
	FlagDays     = "-d"
	FlagHours    = "-h"
	FlagMinutes  = "-m"
	FlagSeconds  = "-s"
	FlagCommand  = "-c"
	FlagCron     = "-t"
	FlagProgress = "-p"
	FlagHelp     = "--help"
	FlagVersion  = "--version"
)

// Config is the invocation config of one process. It is built once by Parse
// and never modified afterwards.
type Config struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	// Command is run through the host shell exactly as given.
	Command string
	// Cron, when set, replaces the offsets: the command fires at the next
	// tick of this 5-field expression.
	Cron string
	// Progress enables the countdown bar.
	Progress bool
}

// Parse builds a Config from the arguments following the program name.
func Parse(args []string) (Config, error) {
	if args == nil {
		args = []string{}
	}
	if HasFlag(FlagHelp, args) {
		return Config{}, ErrHelp
	}
	if HasFlag(FlagVersion, args) {
		return Config{}, ErrVersion
	}

	var cfg Config
	cmd, found, err := FlagValue(FlagCommand, args)
	if err != nil {
		return Config{}, err
	}
	cmd = strings.TrimSpace(cmd)
	if !found || cmd == "" {
		return Config{}, ErrNoCommand
	}
	cfg.Command = cmd

	for _, n := range []struct {
		flag string
		dst  *int
	}{
		{FlagDays, &cfg.Days},
		{FlagHours, &cfg.Hours},
		{FlagMinutes, &cfg.Minutes},
		{FlagSeconds, &cfg.Seconds},
	} {
		if *n.dst, err = FlagNumber(n.flag, args); err != nil {
			return Config{}, err
		}
	}

	cron, _, err := FlagValue(FlagCron, args)
	if err != nil {
		return Config{}, err
	}
	cfg.Cron = strings.TrimSpace(cron)
	cfg.Progress = HasFlag(FlagProgress, args)

	if cfg.Cron != "" {
		if cfg.hasOffset() {
			return Config{}, ErrConflictingSchedule
		}
		if err := validateCron(cfg.Cron); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if !cfg.hasOffset() {
		return Config{}, ErrNoDuration
	}
	return cfg, nil
}

func (c Config) hasOffset() bool {
	return c.Days > 0 || c.Hours > 0 || c.Minutes > 0 || c.Seconds > 0
}

// FireTime returns the absolute time the command should run, counted from
// start. Offsets are applied with calendar arithmetic so seconds, minutes and
// hours roll over into the next unit the way a wall clock does.
func (c Config) FireTime(start time.Time) (time.Time, error) {
	if c.Cron != "" {
		next, err := gronx.NextTickAfter(c.Cron, start, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidCron, c.Cron, err)
		}
		return next, nil
	}
	return time.Date(
		start.Year(),
		start.Month(),
		start.Day()+c.Days,
		start.Hour()+c.Hours,
		start.Minute()+c.Minutes,
		start.Second()+c.Seconds,
		start.Nanosecond(),
		start.Location(),
	), nil
}

// Total returns the full wait counted from start.
func (c Config) Total(start time.Time) (time.Duration, error) {
	at, err := c.FireTime(start)
	if err != nil {
		return 0, err
	}
	return at.Sub(start), nil
}

// validateCron enforces exactly 5 fields (minute hour day-of-month month
// day-of-week); gronx.IsValid also accepts a seconds field.
func validateCron(expr string) error {
	if len(strings.Fields(expr)) != 5 || !gronx.IsValid(expr) {
		return fmt.Errorf("%w %q, expected 5-field format (minute hour day-of-month month day-of-week)", ErrInvalidCron, expr)
	}
	return nil
}
