// Package logger provides a structured logging interface for applications.
package logger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// devEncoder wraps zap's JSON encoder and re-renders every entry as a colored,
// human-readable line followed by the indented fields.
type devEncoder struct {
	zapcore.Encoder
	pool buffer.Pool
}

// newDevEncoder creates a new development encoder with color support and JSON indentation.
func newDevEncoder(encoderConfig zapcore.EncoderConfig) zapcore.Encoder {
	return &devEncoder{
		Encoder: zapcore.NewJSONEncoder(encoderConfig),
		pool:    buffer.NewPool(),
	}
}

// Clone keeps the wrapper so loggers derived through With stay pretty.
func (e *devEncoder) Clone() zapcore.Encoder {
	return &devEncoder{Encoder: e.Encoder.Clone(), pool: e.pool}
}

// EncodeEntry formats a log entry with advanced formatting:
// - Uses colors for log levels
// - Indents the remaining fields as JSON.
func (e *devEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	jsonBuf, err := e.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}
	defer jsonBuf.Free()

	line := e.headline(entry)

	var fieldsMap map[string]any
	if err = json.Unmarshal(jsonBuf.Bytes(), &fieldsMap); err != nil {
		// If we can't parse as JSON, just append the raw entry
		line += " " + strings.TrimRight(jsonBuf.String(), "\n")
	} else {
		line = e.appendFields(line, fieldsMap)
	}

	buf := e.pool.Get()
	buf.AppendString(line)
	buf.AppendString("\n")

	return buf, nil
}

func (e *devEncoder) headline(entry zapcore.Entry) string {
	parts := []string{
		entry.Time.Format("15:04:05.000"),
		colorizeLevel(entry.Level),
	}
	if entry.LoggerName != "" {
		parts = append(parts, color.New(color.Faint).Sprint(entry.LoggerName))
	}
	if entry.Message != "" {
		parts = append(parts, entry.Message)
	}
	return strings.Join(parts, " ")
}

// appendFields drops the keys already shown in the headline and indents the rest.
func (e *devEncoder) appendFields(line string, fieldsMap map[string]any) string {
	for _, k := range []string{messageKey, levelKey, nameKey, timeKey, callerKey} {
		delete(fieldsMap, k)
	}

	if len(fieldsMap) == 0 {
		return line
	}

	prettyJSON, err := json.MarshalIndent(fieldsMap, "", "  ")
	if err != nil {
		return line + fmt.Sprintf(" %v", fieldsMap)
	}

	return line + "\n" + string(prettyJSON)
}

// colorizeLevel adds color to the log level based on its severity.
func colorizeLevel(level zapcore.Level) string {
	var c *color.Color

	switch level {
	case zapcore.DebugLevel:
		c = color.New(color.FgCyan)
	case zapcore.InfoLevel:
		c = color.New(color.FgGreen)
	case zapcore.WarnLevel:
		c = color.New(color.FgYellow)
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		c = color.New(color.FgRed, color.Bold)
	case zapcore.InvalidLevel:
		c = color.New(color.FgMagenta)
	default:
		return level.CapitalString()
	}

	return c.Sprint(level.CapitalString())
}
