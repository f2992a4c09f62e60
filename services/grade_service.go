package services

import "github.com/stormbless/foodprint-backend/models"

// CalcGrade maps a percentage-of-average figure to a letter grade. Lower is
// better; exactly 100% of the average diet sits at C.
func CalcGrade(percentageOfAvg float64) string {
	switch {
	case percentageOfAvg > 200:
		return "D-"
	case percentageOfAvg > 150:
		return "D"
	case percentageOfAvg > 125:
		return "D+"
	case percentageOfAvg > 100:
		return "C-"
	case percentageOfAvg == 100:
		return "C"
	case percentageOfAvg > 85:
		return "C+"
	case percentageOfAvg > 75:
		return "B-"
	case percentageOfAvg > 65:
		return "B"
	case percentageOfAvg > 60:
		return "B+"
	case percentageOfAvg > 55:
		return "A-"
	case percentageOfAvg > 50:
		return "A"
	default:
		return "A+"
	}
}

// CalcGrades grades each metric independently plus the overall relative
// total.
func CalcGrades(percentageOfAvg models.Impact) models.Grades {
	return models.Grades{
		EmissionsGrade:      CalcGrade(percentageOfAvg.Emissions),
		WaterUseGrade:       CalcGrade(percentageOfAvg.WaterUse),
		LandUseGrade:        CalcGrade(percentageOfAvg.LandUse),
		EutrophicationGrade: CalcGrade(percentageOfAvg.Eutrophication),
		OverallGrade:        CalcGrade(percentageOfAvg.Total),
	}
}
