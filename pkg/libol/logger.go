package libol

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const (
	DEBUG = 10
	INFO  = 20
	WARN  = 30
	ERROR = 40
)

var levels = map[int]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

type logger struct {
	Level    int
	FileName string
	FileLog  *log.Logger
	Lock     sync.Mutex
	out      *log.Logger
}

func (l *logger) Write(level int, format string, v ...interface{}) {
	if level < l.Level {
		return
	}
	str, ok := levels[level]
	if !ok {
		str = "NULL"
	}
	l.Lock.Lock()
	defer l.Lock.Unlock()
	l.out.Printf(fmt.Sprintf("%s|%s", str, format), v...)
	if l.FileLog != nil {
		l.FileLog.Printf(fmt.Sprintf("%s|%s", str, format), v...)
	}
}

var Logger = &logger{
	Level: INFO,
	out:   log.New(os.Stderr, "", log.LstdFlags),
}

// SetLogger sets the level and, when file is given, also appends
// every record to that file.
func SetLogger(file string, level int) {
	Logger.Level = level
	if file == "" || Logger.FileName == file {
		return
	}
	Logger.FileName = file
	fp, err := OpenWrite(file)
	if err == nil {
		Logger.FileLog = log.New(fp, "", log.LstdFlags)
	} else {
		Warn("Logger.Init: %s", err)
	}
}

// SetOutput replaces stderr, the returned writer is the previous one.
func SetOutput(w io.Writer) io.Writer {
	Logger.Lock.Lock()
	defer Logger.Lock.Unlock()
	old := Logger.out.Writer()
	Logger.out = log.New(w, "", log.LstdFlags)
	return old
}

type SubLogger struct {
	*logger
	Prefix string
}

func NewSubLogger(prefix string) *SubLogger {
	return &SubLogger{
		logger: Logger,
		Prefix: prefix,
	}
}

var rLogger = NewSubLogger("root")

func Debug(format string, v ...interface{}) {
	rLogger.Debug(format, v...)
}

func Warn(format string, v ...interface{}) {
	rLogger.Warn(format, v...)
}

func Error(format string, v ...interface{}) {
	rLogger.Error(format, v...)
}

func (s *SubLogger) Fmt(format string) string {
	return s.Prefix + "|" + format
}

func (s *SubLogger) Debug(format string, v ...interface{}) {
	s.logger.Write(DEBUG, s.Fmt(format), v...)
}

func (s *SubLogger) Warn(format string, v ...interface{}) {
	s.logger.Write(WARN, s.Fmt(format), v...)
}

func (s *SubLogger) Error(format string, v ...interface{}) {
	s.logger.Write(ERROR, s.Fmt(format), v...)
}
