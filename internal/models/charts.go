package models

// ChartKind selects one of the three supported chart renderings.
type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
	ChartPie  ChartKind = "pie"
)

// ChartConfig describes the single chart owned by a charts component.
type ChartConfig struct {
	Kind     ChartKind `json:"kind,omitempty"`
	Title    string    `json:"title,omitempty"`
	Labels   []string  `json:"labels,omitempty"`
	DataSets []DataSet `json:"dataSets,omitempty"`
}

type DataSet struct {
	Label  string      `json:"label,omitempty"`
	Color  string      `json:"color,omitempty"`
	Points []DataPoint `json:"points,omitempty"`
}

type DataPoint struct {
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
}

// MaxValue returns the largest point value across all data sets, used to
// scale bar and line renderings. Zero when the chart has no points.
func (c ChartConfig) MaxValue() float64 {
	max := 0.0
	for _, ds := range c.DataSets {
		for _, p := range ds.Points {
			if p.Value > max {
				max = p.Value
			}
		}
	}
	return max
}
