package drivers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"linegraph/config"
	"linegraph/lesson"
)

const autoPort = "auto"

var ErrNoClickerPort = errors.New("no clicker serial port found")

// Arduino & clones common VIDs
var preferredVIDs = map[string]bool{
	"2341": true, // Arduino
	"2A03": true, // Arduino (older)
	"1A86": true, // CH340
	"10C4": true, // CP210x
	"0403": true, // FTDI
}

// Clicker reads one command per line from a microcontroller button box on a serial port, e.g. "NEXT" or
// "SELECT bean-growth", and applies them to the shared session.
type Clicker struct {
	*config.SerialFlags
	navigator Navigator
	logger    *slog.Logger
	port      serial.Port
}

func NewClicker(serialFlags *config.SerialFlags, navigator Navigator, logger *slog.Logger) *Clicker {
	return &Clicker{
		SerialFlags: serialFlags,
		navigator:   navigator,
		logger:      logger.With("driver", "clicker"),
	}
}

func (c *Clicker) Init() error {
	name := c.SerialPort
	if name == autoPort {
		var err error
		if name, err = autoSelectPort(); err != nil {
			return err
		}
	}
	port, err := serial.Open(name, &serial.Mode{BaudRate: c.BaudRate})
	if err != nil {
		return fmt.Errorf("open serial %s: %w", name, err)
	}
	c.port = port
	c.logger.Info("clicker.connected", "port", name, "baud", c.BaudRate)
	return nil
}

// Run applies commands until the port closes or ctx is cancelled.
func (c *Clicker) Run(ctx context.Context) error {
	if c.port == nil {
		return errors.New("clicker: Run before Init")
	}
	stop := context.AfterFunc(ctx, func() { _ = c.port.Close() })
	defer stop()

	err := c.process(c.port)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (c *Clicker) process(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := lesson.ParseCommand(line)
		if err != nil {
			c.logger.Warn("clicker.parse", "line", line, "err", err)
			continue
		}
		if err := c.navigator.Apply(cmd); err != nil {
			c.logger.Warn("clicker.apply", "action", string(cmd.Action), "err", err)
			continue
		}
		c.logger.Debug("clicker.apply", "action", string(cmd.Action))
	}
	return scanner.Err()
}

func autoSelectPort() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", fmt.Errorf("enumerate ports: %w", err)
	}
	// Look for the first matching "arduino port"
	for _, p := range ports {
		if p.IsUSB && preferredVIDs[strings.ToUpper(p.VID)] {
			return p.Name, nil
		}
	}
	return "", ErrNoClickerPort
}
