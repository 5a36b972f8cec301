package models

// Labels of the mood timeline chart, shared by the web page and the CLI.
const (
	TimelineTitle     = "Emotions Over Time"
	TimelineAxisLabel = "Number of Letters"
)
