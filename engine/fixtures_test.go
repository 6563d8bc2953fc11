package engine

import "linegraph/models"

var defaultMargin = models.Margin{Top: 60, Right: 40, Bottom: 80, Left: 80}

func beanGrowth() *models.Dataset {
	return models.NewDataset(
		"bean-growth", "Bean Plant Growth", "", "fa-seedling", "bg-emerald-500",
		points(0, 0, 1, 1, 2, 3, 3, 5, 4, 7, 5, 10, 6, 13, 7, 16, 8, 19, 9, 22, 10, 25),
		models.NewChartConfig(600, 500, defaultMargin,
			"Time (Days)", "Height (cm)", "Graph showing the growth of a bean plant over 10 days",
			2, 5, 10, 30),
	)
}

func springExtension() *models.Dataset {
	return models.NewDataset(
		"spring-extension", "Spring Extension", "", "fa-vector-square", "bg-blue-500",
		points(0, 0, 1, 2.5, 2, 5.2, 3, 7.8, 4, 10.1, 5, 12.5),
		models.NewChartConfig(600, 500, defaultMargin,
			"Force (N)", "Extension (cm)", "Graph showing spring extension against force",
			1, 2.5, 5, 15),
	)
}

func points(xy ...float64) []models.DataPoint {
	out := make([]models.DataPoint, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, models.NewDataPoint(xy[i], xy[i+1]))
	}
	return out
}
