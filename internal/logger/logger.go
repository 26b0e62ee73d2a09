package logger

import (
	"os"

	"github.com/WitAqua/website/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	config.RegisterKeyListener(config.KeyListener{
		Key: config.LogLevelKey,
		Listener: func(l any) {
			val, ok := l.(string)
			if !ok {
				return
			}
			SetLevel(val)
		},
	})
}

func SetLevel(l string) {
	level.SetLevel(getLevel(l))
}

func New(conf *config.Config) *zap.Logger {
	SetLevel(conf.Log.Level)
	var (
		encoder = getConsoleEncoder()
		sink    = zapcore.AddSync(os.Stdout)
	)
	if conf.Log.File != "" {
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(getLumberjackLogger(conf)))
	}
	core := zapcore.NewCore(encoder, sink, level)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

func getLevel(l string) zapcore.Level {
	switch l {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

func getLumberjackLogger(conf *config.Config) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   conf.Log.File,
		MaxSize:    conf.Log.MaxSize,
		MaxBackups: conf.Log.MaxBackups,
		MaxAge:     conf.Log.MaxAge,
		Compress:   conf.Log.Compress,
	}
}

func getConsoleEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.TimeKey = "time"
	conf.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(conf)
}
