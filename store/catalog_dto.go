package store

type catalogDTO struct {
	Defaults struct {
		Width  float64   `yaml:"width"`
		Height float64   `yaml:"height"`
		Margin marginDTO `yaml:"margin"`
	} `yaml:"defaults"`
	Datasets []datasetDTO `yaml:"datasets"`
	Steps    []stepDTO    `yaml:"steps"`
}

type marginDTO struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

type datasetDTO struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Icon        string       `yaml:"icon"`
	Colour      string       `yaml:"colour"`
	Points      [][2]float64 `yaml:"points"`
	Chart       chartDTO     `yaml:"chart"`
}

type chartDTO struct {
	// Width, Height and Margin fall back to the catalog defaults when omitted.
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Margin    *marginDTO `yaml:"margin"`
	XLabel    string     `yaml:"x_label"`
	YLabel    string     `yaml:"y_label"`
	Title     string     `yaml:"title"`
	XInterval float64    `yaml:"x_interval"`
	YInterval float64    `yaml:"y_interval"`
	XMax      float64    `yaml:"x_max"`
	YMax      float64    `yaml:"y_max"`
}

type stepDTO struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Tip         string `yaml:"tip"`
}
