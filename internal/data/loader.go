package data

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"chartgrip/internal/domain"
	"chartgrip/internal/eventbus"
)

// datasetFile is the on-disk TOML shape
type datasetFile struct {
	Name       string   `toml:"name"`
	Measure    string   `toml:"measure"`
	Series     []string `toml:"series"`
	Categories []struct {
		Name   string    `toml:"name"`
		Values []float64 `toml:"values"` // one value per series, in order
	} `toml:"categories"`
}

// Load reads a dataset from a TOML file and publishes a DatasetLoadedEvent
// when a bus is supplied
func Load(path string, bus eventbus.EventBus) (*domain.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var file datasetFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	ds, err := fromFile(&file)
	if err != nil {
		return nil, err
	}

	if bus != nil {
		bus.Publish(eventbus.DatasetLoadedEvent{
			Name:       ds.Name,
			Categories: len(ds.Categories),
			Series:     len(ds.Series),
		})
	}
	return ds, nil
}

func fromFile(file *datasetFile) (*domain.Dataset, error) {
	ds := &domain.Dataset{
		Name:    file.Name,
		Measure: file.Measure,
		Series:  file.Series,
	}
	if ds.Measure == "" {
		ds.Measure = "Value"
	}

	for _, cat := range file.Categories {
		if len(cat.Values) != len(file.Series) {
			return nil, fmt.Errorf("category %q has %d values, expected %d", cat.Name, len(cat.Values), len(file.Series))
		}
		c := domain.Category{Name: cat.Name}
		for i, v := range cat.Values {
			c.Values = append(c.Values, domain.SeriesValue{Series: file.Series[i], Value: v})
		}
		ds.Categories = append(ds.Categories, c)
	}
	return ds, nil
}

// Sample returns the built-in demo dataset, used when no dataset file is
// configured
func Sample() *domain.Dataset {
	series := []string{"Q1", "Q2", "Q3", "Q4"}
	rows := map[string][]float64{
		"East":  {120, 135, 98, 160},
		"West":  {90, 110, 130, 105},
		"North": {60, 75, 82, 70},
		"South": {140, 95, 115, 150},
	}

	ds := &domain.Dataset{Name: "Quarterly Sales", Measure: "Sales", Series: series}
	for _, name := range []string{"East", "West", "North", "South"} {
		c := domain.Category{Name: name}
		for i, v := range rows[name] {
			c.Values = append(c.Values, domain.SeriesValue{Series: series[i], Value: v})
		}
		ds.Categories = append(ds.Categories, c)
	}
	return ds
}
