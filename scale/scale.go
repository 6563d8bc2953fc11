// Package scale converts data values into drawing-surface coordinates and enumerates axis ticks.
package scale

import (
	"errors"
	"fmt"
	"math"

	"linegraph/models"
	"linegraph/utils"
)

// MaxTicks bounds a single axis so a tiny interval can't exhaust memory.
const MaxTicks = 10000

// tickTolerance absorbs float error when deciding whether the last tick still fits under max.
const tickTolerance = 1e-9

var (
	ErrInvalidMax      = errors.New("axis max must be positive")
	ErrInvalidInterval = errors.New("tick interval must be positive")
	ErrTooManyTicks    = errors.New("too many ticks for axis")
	ErrInvalidMargin   = errors.New("margins must be non-negative and fit inside the canvas")
)

// Mapper maps domain values to canvas coordinates for one chart config. It's stateless after construction.
type Mapper struct {
	config models.ChartConfig
}

func New(config models.ChartConfig) (*Mapper, error) {
	if !(config.XMax() > 0) {
		return nil, fmt.Errorf("x: %w (got %v)", ErrInvalidMax, config.XMax())
	}
	if !(config.YMax() > 0) {
		return nil, fmt.Errorf("y: %w (got %v)", ErrInvalidMax, config.YMax())
	}
	m := config.Margin()
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 ||
		m.Left+m.Right > config.Width() || m.Top+m.Bottom > config.Height() {
		return nil, ErrInvalidMargin
	}
	return &Mapper{config}, nil
}

func (m *Mapper) Config() models.ChartConfig {
	return m.config
}

func (m *Mapper) PlotWidth() float64 {
	return m.config.Width() - m.config.Margin().Left - m.config.Margin().Right
}

func (m *Mapper) PlotHeight() float64 {
	return m.config.Height() - m.config.Margin().Top - m.config.Margin().Bottom
}

// Left is the canvas x of the y-axis.
func (m *Mapper) Left() float64 {
	return m.config.Margin().Left
}

func (m *Mapper) Right() float64 {
	return m.config.Width() - m.config.Margin().Right
}

func (m *Mapper) Top() float64 {
	return m.config.Margin().Top
}

// Bottom is the canvas y of the x-axis.
func (m *Mapper) Bottom() float64 {
	return m.config.Height() - m.config.Margin().Bottom
}

func (m *Mapper) X(value float64) float64 {
	return m.Left() + (value/m.config.XMax())*m.PlotWidth()
}

// Y is inverted: 0 sits on the x-axis at the bottom of the plot area.
func (m *Mapper) Y(value float64) float64 {
	return m.Bottom() - (value/m.config.YMax())*m.PlotHeight()
}

func (m *Mapper) XTicks() ([]float64, error) {
	return Ticks(m.config.XMax(), m.config.XInterval())
}

func (m *Mapper) YTicks() ([]float64, error) {
	return Ticks(m.config.YMax(), m.config.YInterval())
}

// Ticks returns 0, interval, 2*interval, ... stopping before the first value that would exceed max. Each tick is
// computed by multiplication rather than repeated addition so decimal intervals like 2.5 don't drift.
func Ticks(max, interval float64) ([]float64, error) {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return nil, fmt.Errorf("%w (got %v)", ErrInvalidInterval, interval)
	}
	if max < 0 || math.IsNaN(max) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w (got %v)", ErrInvalidMax, max)
	}
	if max/interval >= MaxTicks {
		return nil, fmt.Errorf("%w: %v / %v", ErrTooManyTicks, max, interval)
	}

	ticks := make([]float64, 0, int(max/interval)+1)
	for i := 0; ; i++ {
		tick := utils.RoundToXDp(float64(i)*interval, 9)
		if tick > max+tickTolerance {
			break
		}
		ticks = append(ticks, tick)
	}
	return ticks, nil
}
