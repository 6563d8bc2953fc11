package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFlags(t *testing.T) {
	flags, serial, replay := DefaultFlags()

	assert.Equal(t, ":8080", flags.Addr)
	assert.Equal(t, "info", flags.LogLevel)
	assert.Empty(t, serial.SerialPort)
	assert.Equal(t, DEFAULT_BAUD_RATE, serial.BaudRate)
	assert.Equal(t, DEFAULT_SESSION, serial.Session)
	assert.Equal(t, DEFAULT_SESSION, replay.Session)
	assert.Equal(t, 1.0, replay.Speed)
	assert.False(t, replay.Loop)
}
