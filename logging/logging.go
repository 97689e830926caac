/*
 * STA - Wrapper for slog used by the timing graph and liberty cell model.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package logging is the ambient logging wrapper shared by every core
// package. Warnings are non-fatal: the caller drops the offending
// construct or substitutes a safe default and keeps going. Critical
// errors mark a structural invariant violation (a dangling id, an
// edge with no vertex) and are never swallowed into a sentinel value.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler renders records as "<time> <LEVEL>: <msg> <attrs...>" and
// mirrors everything at warning level or above to stderr, the way
// the teacher's util/logger does for its interactive console.
type Handler struct {
	out   io.Writer
	h     slog.Handler
	mu    *sync.Mutex
	debug bool
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithAttrs(attrs), mu: h.mu, debug: h.debug}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithGroup(name), mu: h.mu, debug: h.debug}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	formattedTime := r.Time.Format("2006/01/02 15:04:05")
	strs := []string{formattedTime, r.Level.String() + ":", r.Message}

	if r.NumAttrs() != 0 {
		r.Attrs(func(a slog.Attr) bool {
			strs = append(strs, a.Key+"="+a.Value.String())
			return true
		})
	}
	b := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(b)
	}
	if h.debug || r.Level >= slog.LevelWarn {
		_, err = os.Stderr.Write(b)
	}
	return err
}

// NewHandler builds a Handler writing to out (nil discards file output).
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		out: out,
		h:   slog.NewTextHandler(out, opts),
		mu:  &sync.Mutex{},
	}
}

var defaultLogger = slog.New(NewHandler(nil, &slog.HandlerOptions{Level: slog.LevelInfo}))

// SetDefault installs logger as the package-level default used by
// Warn and Critical. Tests substitute a logger that writes to a
// buffer they can inspect.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
}

// CriticalError marks a structural invariant violation: an Id that
// resolves to nothing live, an Edge naming a Vertex that was never
// created, or similar. Per spec 7 these are fatal but the core
// itself never calls os.Exit -- it panics with this type and leaves
// the decision of whether to recover to the caller (a CLI driver or
// the search engine).
type CriticalError struct {
	ID      int
	Message string
}

func (e *CriticalError) Error() string {
	return fmt.Sprintf("critical error %d: %s", e.ID, e.Message)
}

// Critical logs a structural-invariant violation and panics with a
// *CriticalError. id is a small integer distinguishing call sites,
// mirroring the numbered criticalError(id, msg) calls in the
// original implementation.
func Critical(id int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	defaultLogger.Error(msg, slog.Int("id", id))
	panic(&CriticalError{ID: id, Message: msg})
}

// Warn logs a recoverable parse-like or builder-semantic condition.
// The caller has already decided on the safe default or has dropped
// the offending construct; Warn only records that it happened.
func Warn(format string, args ...any) {
	defaultLogger.Warn(fmt.Sprintf(format, args...))
}
