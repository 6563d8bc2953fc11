// Package store holds the static lesson catalog: the datasets learners can graph and the seven steps.
package store

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"linegraph/models"
	"linegraph/scale"
)

//go:embed catalog.yaml
var catalogYAML []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type Catalog struct {
	datasets []*models.Dataset
	byID     map[string]*models.Dataset
	steps    []*models.Step
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

// Parse decodes and validates a catalog. Every dataset must produce a drawable chart and there must be exactly
// one step per StepID, in order.
func Parse(data []byte) (*Catalog, error) {
	var dto catalogDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{byID: make(map[string]*models.Dataset)}
	for _, d := range dto.Datasets {
		dataset, err := toDataset(d, dto)
		if err != nil {
			return nil, err
		}
		if _, dup := c.byID[dataset.ID()]; dup {
			return nil, fmt.Errorf("%w: duplicate dataset %q", ErrInvalidCatalog, dataset.ID())
		}
		c.datasets = append(c.datasets, dataset)
		c.byID[dataset.ID()] = dataset
	}
	if len(c.datasets) == 0 {
		return nil, fmt.Errorf("%w: no datasets", ErrInvalidCatalog)
	}

	if len(dto.Steps) != models.StepCount {
		return nil, fmt.Errorf("%w: want %d steps, got %d", ErrInvalidCatalog, models.StepCount, len(dto.Steps))
	}
	for i, s := range dto.Steps {
		id, err := models.ParseStepID(s.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		if id != models.StepID(i) {
			return nil, fmt.Errorf("%w: step %q out of order", ErrInvalidCatalog, s.ID)
		}
		c.steps = append(c.steps, models.NewStep(id, s.Title, s.Description, s.Tip))
	}

	return c, nil
}

func toDataset(d datasetDTO, dto catalogDTO) (*models.Dataset, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("%w: dataset without id", ErrInvalidCatalog)
	}
	if len(d.Points) == 0 {
		return nil, fmt.Errorf("%w: dataset %q has no points", ErrInvalidCatalog, d.ID)
	}

	width, height := d.Chart.Width, d.Chart.Height
	if width == 0 {
		width = dto.Defaults.Width
	}
	if height == 0 {
		height = dto.Defaults.Height
	}
	margin := dto.Defaults.Margin
	if d.Chart.Margin != nil {
		margin = *d.Chart.Margin
	}

	config := models.NewChartConfig(
		width,
		height,
		models.Margin{Top: margin.Top, Right: margin.Right, Bottom: margin.Bottom, Left: margin.Left},
		d.Chart.XLabel,
		d.Chart.YLabel,
		d.Chart.Title,
		d.Chart.XInterval,
		d.Chart.YInterval,
		d.Chart.XMax,
		d.Chart.YMax,
	)

	// Bad intervals or maxima are authoring mistakes, catch them here rather than when a learner reaches them.
	mapper, err := scale.New(config)
	if err != nil {
		return nil, fmt.Errorf("%w: dataset %q: %w", ErrInvalidCatalog, d.ID, err)
	}
	if _, err := mapper.XTicks(); err != nil {
		return nil, fmt.Errorf("%w: dataset %q x axis: %w", ErrInvalidCatalog, d.ID, err)
	}
	if _, err := mapper.YTicks(); err != nil {
		return nil, fmt.Errorf("%w: dataset %q y axis: %w", ErrInvalidCatalog, d.ID, err)
	}

	points := make([]models.DataPoint, len(d.Points))
	for i, p := range d.Points {
		points[i] = models.NewDataPoint(p[0], p[1])
	}

	return models.NewDataset(d.ID, d.Name, d.Description, d.Icon, d.Colour, points, config), nil
}

// Datasets returns the datasets in menu order.
func (c *Catalog) Datasets() []*models.Dataset {
	return append([]*models.Dataset(nil), c.datasets...)
}

func (c *Catalog) Dataset(id string) (*models.Dataset, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// First is the dataset selected before the learner picks one.
func (c *Catalog) First() *models.Dataset {
	return c.datasets[0]
}

func (c *Catalog) Steps() []*models.Step {
	return append([]*models.Step(nil), c.steps...)
}

func (c *Catalog) Step(id models.StepID) *models.Step {
	if !id.Valid() {
		return nil
	}
	return c.steps[id]
}
