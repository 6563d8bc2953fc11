package models

// DataPoint is a single (x, y) reading from a dataset's table.
type DataPoint struct {
	x float64
	y float64
}

func NewDataPoint(x, y float64) DataPoint {
	return DataPoint{x, y}
}

func (p DataPoint) X() float64 {
	return p.x
}

func (p DataPoint) Y() float64 {
	return p.y
}

// Margin is the space between the canvas edge and the plot area on each side.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

type ChartConfig struct {
	// width and height are the size of the drawing surface.
	width  float64
	height float64
	margin Margin
	// xLabel and yLabel are the axis titles, units in brackets.
	xLabel    string
	yLabel    string
	mainTitle string
	// xInterval and yInterval are the pre-authored gaps between ticks. They are never derived from the data.
	xInterval float64
	yInterval float64
	// xMax and yMax are the last values on each axis.
	xMax float64
	yMax float64
}

func NewChartConfig(
	width,
	height float64,
	margin Margin,
	xLabel,
	yLabel,
	mainTitle string,
	xInterval,
	yInterval,
	xMax,
	yMax float64,
) ChartConfig {
	return ChartConfig{
		width,
		height,
		margin,
		xLabel,
		yLabel,
		mainTitle,
		xInterval,
		yInterval,
		xMax,
		yMax,
	}
}

func (c ChartConfig) Width() float64 {
	return c.width
}

func (c ChartConfig) Height() float64 {
	return c.height
}

func (c ChartConfig) Margin() Margin {
	return c.margin
}

func (c ChartConfig) XLabel() string {
	return c.xLabel
}

func (c ChartConfig) YLabel() string {
	return c.yLabel
}

func (c ChartConfig) MainTitle() string {
	return c.mainTitle
}

func (c ChartConfig) XInterval() float64 {
	return c.xInterval
}

func (c ChartConfig) YInterval() float64 {
	return c.yInterval
}

func (c ChartConfig) XMax() float64 {
	return c.xMax
}

func (c ChartConfig) YMax() float64 {
	return c.yMax
}

type Dataset struct {
	// id is the stable key used in urls and scripts.
	id          string
	name        string
	description string
	// icon and colour are only used by the menu.
	icon   string
	colour string
	// points are kept in authoring order, which is also the plotting and joining order.
	points []DataPoint
	config ChartConfig
}

func NewDataset(
	id,
	name,
	description,
	icon,
	colour string,
	points []DataPoint,
	config ChartConfig,
) *Dataset {
	return &Dataset{
		id,
		name,
		description,
		icon,
		colour,
		append([]DataPoint(nil), points...),
		config,
	}
}

func (d *Dataset) ID() string {
	return d.id
}

func (d *Dataset) Name() string {
	return d.name
}

func (d *Dataset) Description() string {
	return d.description
}

func (d *Dataset) Icon() string {
	return d.icon
}

func (d *Dataset) Colour() string {
	return d.colour
}

// Points returns a copy so callers can't reorder the dataset.
func (d *Dataset) Points() []DataPoint {
	return append([]DataPoint(nil), d.points...)
}

func (d *Dataset) Len() int {
	return len(d.points)
}

func (d *Dataset) Config() ChartConfig {
	return d.config
}
