package domain

// Chart is one person's named set of points, as loaded from a chart file.
type Chart struct {
	Name   string
	Points []LabeledPoint
}

// ChartRef is a lightweight reference to a chart file on disk.
type ChartRef struct {
	Name   string
	Path   string
	Points int
}
