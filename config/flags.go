package config

import "time"

const DEFAULT_BAUD_RATE = 115200

// DEFAULT_SESSION is the shared session the clicker and replayer drive. Open /?session=classroom on the
// projector to follow it.
const DEFAULT_SESSION = "classroom"

type Flags struct {
	Addr      string
	LogLevel  string
	LogFormat string
}

type SerialFlags struct {
	// SerialPort is a device path, "auto" to pick the first Arduino-like port, or "" to disable the clicker.
	SerialPort string
	BaudRate   int
	Session    string
}

type ReplayFlags struct {
	Path    string
	Speed   float64
	Loop    bool
	Session string
	// StartDelay gives browsers time to connect before the script starts.
	StartDelay time.Duration
}

func DefaultFlags() (*Flags, *SerialFlags, *ReplayFlags) {
	flags := &Flags{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
	}
	serial := &SerialFlags{
		BaudRate: DEFAULT_BAUD_RATE,
		Session:  DEFAULT_SESSION,
	}
	replay := &ReplayFlags{
		Speed:   1.0,
		Session: DEFAULT_SESSION,
	}
	return flags, serial, replay
}
