package logs

import (
	"log/slog"

	"github.com/reusee/intcode/cmds"
)

// LevelTrace is below debug and enables per-instruction machine logs.
const LevelTrace slog.Level = -8

var (
	level    = new(slog.LevelVar)
	levelSet bool
)

func setLevel(l slog.Level) {
	level.Set(l)
	levelSet = true
}

func init() {
	cmds.Define("-log-trace", cmds.Func(func() {
		setLevel(LevelTrace)
	}).Desc("set log level to trace, logging every executed instruction"))
	cmds.Define("-log-debug", cmds.Func(func() {
		setLevel(slog.LevelDebug)
	}).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(func() {
		setLevel(slog.LevelInfo)
	}).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(func() {
		setLevel(slog.LevelWarn)
	}).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(func() {
		setLevel(slog.LevelError)
	}).Desc("set log level to error"))
}
