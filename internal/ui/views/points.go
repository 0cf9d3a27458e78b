package views

import (
	"fmt"

	"chartgrip/internal/domain"
	"chartgrip/internal/identity"
)

// BarPoint is one category×series bar in the chart pane
type BarPoint struct {
	Point    *domain.DataPoint
	Category string
	Series   string
	Value    float64
}

// LegendPoint is one series entry in the legend pane. Its identity is
// category-free, so it subsumes every bar of that series by containment.
type LegendPoint struct {
	Point  *domain.DataPoint
	Series string
}

// LabelPoint is one value label in the labels pane
type LabelPoint struct {
	Point *domain.DataPoint
	Text  string
}

// BuildPoints derives the three display collections from the dataset.
// Each record carries its own DataPoint; the engine mutates the Selected
// flags in place during sync.
func BuildPoints(ds *domain.Dataset) ([]*BarPoint, []*LegendPoint, []*LabelPoint) {
	var bars []*BarPoint
	var labels []*LabelPoint

	for _, cat := range ds.Categories {
		for _, v := range cat.Values {
			id := identity.NewBuilder().
				WithCategory(cat.Name).
				WithSeries(v.Series).
				WithMeasure(ds.Measure).
				Create()

			bars = append(bars, &BarPoint{
				Point:    &domain.DataPoint{Identity: id},
				Category: cat.Name,
				Series:   v.Series,
				Value:    v.Value,
			})
			labels = append(labels, &LabelPoint{
				Point: &domain.DataPoint{Identity: id},
				Text:  fmt.Sprintf("%s/%s %.0f", cat.Name, v.Series, v.Value),
			})
		}
	}

	var legend []*LegendPoint
	for _, series := range ds.Series {
		id := identity.NewBuilder().
			WithSeries(series).
			WithMeasure(ds.Measure).
			Create()
		legend = append(legend, &LegendPoint{
			Point:  &domain.DataPoint{Identity: id},
			Series: series,
		})
	}

	return bars, legend, labels
}

// BarDataPoints extracts the engine-facing pool from the bar records
func BarDataPoints(bars []*BarPoint) []*domain.DataPoint {
	out := make([]*domain.DataPoint, len(bars))
	for i, b := range bars {
		out[i] = b.Point
	}
	return out
}

// LegendDataPoints extracts the engine-facing pool from the legend records
func LegendDataPoints(legend []*LegendPoint) []*domain.DataPoint {
	out := make([]*domain.DataPoint, len(legend))
	for i, l := range legend {
		out[i] = l.Point
	}
	return out
}

// LabelDataPoints extracts the engine-facing pool from the label records
func LabelDataPoints(labels []*LabelPoint) []*domain.DataPoint {
	out := make([]*domain.DataPoint, len(labels))
	for i, l := range labels {
		out[i] = l.Point
	}
	return out
}
