package web

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Message levels, lowest to highest severity.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// messageCookie persists queued messages across a redirect.
const messageCookie = "dashboard_messages"

// messagesKey stores this request's queued messages on the echo context.
const messagesKey = "flash_messages"

// Message is one flash notification shown on the next rendered page.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Success queues a success message.
func Success(c echo.Context, format string, args ...interface{}) {
	push(c, LevelSuccess, fmt.Sprintf(format, args...))
}

// Info queues an info message.
func Info(c echo.Context, format string, args ...interface{}) {
	push(c, LevelInfo, fmt.Sprintf(format, args...))
}

// Warning queues a warning message.
func Warning(c echo.Context, format string, args ...interface{}) {
	push(c, LevelWarning, fmt.Sprintf(format, args...))
}

// Error queues an error message.
func Error(c echo.Context, format string, args ...interface{}) {
	push(c, LevelError, fmt.Sprintf(format, args...))
}

func push(c echo.Context, level, text string) {
	msgs, _ := c.Get(messagesKey).([]Message)
	msgs = append(msgs, Message{Level: level, Text: text})
	c.Set(messagesKey, msgs)
	writeMessageCookie(c, msgs)
	setCountHeaders(c, msgs)
}

// Drain collects the messages queued on this request plus any carried over
// from a previous redirect, clears the carry-over cookie, and stamps the
// per-level count headers. Call it when rendering a page.
func Drain(c echo.Context) []Message {
	carried := readMessageCookie(c)
	queued, _ := c.Get(messagesKey).([]Message)
	all := append(carried, queued...)

	clearMessageCookie(c)
	setCountHeaders(c, all)
	return all
}

func setCountHeaders(c echo.Context, msgs []Message) {
	counts := map[string]int{}
	for _, m := range msgs {
		counts[m.Level]++
	}
	h := c.Response().Header()
	for _, level := range []string{LevelSuccess, LevelInfo, LevelWarning, LevelError} {
		h.Set("X-Messages-"+level, fmt.Sprintf("%d", counts[level]))
	}
}

func writeMessageCookie(c echo.Context, msgs []Message) {
	payload, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     messageCookie,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func readMessageCookie(c echo.Context) []Message {
	cookie, err := c.Cookie(messageCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(payload, &msgs); err != nil {
		return nil
	}
	return msgs
}

func clearMessageCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     messageCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
