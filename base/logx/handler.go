// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to color the level labels of log output.
var UseColor = true

// levelColors are the ANSI colors used for each level label.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "8",
	slog.LevelInfo:  "4",
	slog.LevelWarn:  "3",
	slog.LevelError: "1",
}

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel],
// with level labels colored according to the terminal profile of w
// when [UseColor] is on.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key != slog.LevelKey || !UseColor {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(a.Key, LevelColor(out, lv, lv.String()))
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelColor applies the color associated with the given level to the given
// string, using the color profile of the given output.
func LevelColor(out *termenv.Output, level slog.Level, str string) string {
	clr, ok := levelColors[level]
	if !ok {
		return str
	}
	st := out.String(str).Foreground(out.Color(clr))
	if level >= slog.LevelError {
		st = st.Bold()
	}
	return st.String()
}

// SetDefaultLogger sets the default logger to one writing to
// [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
