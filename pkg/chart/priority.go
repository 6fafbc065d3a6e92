package chart

// PriorityChart returns the HID USB file priority chart: how many files fall
// into the critical, medium and quick-win groups.
func PriorityChart() *BarChart {
	return &BarChart{
		Title:  "HID USB soubor priority",
		XTitle: "Priorita",
		YTitle: "Počet souborů",
		Bars: []Bar{
			{Label: "Kritické", Count: 10, Color: "#1FB8CD"},
			{Label: "Střední", Count: 8, Color: "#FFC185"},
			{Label: "Rychlé", Count: 3, Color: "#ECEBD5"},
		},
	}
}
