package catalog

import "alcyxob/scalar-app/internal/domain"

// defaultBenchmarks is the shipped benchmark table: event value ->
// cohort key -> poor/elite pair. Poor anchors a normalized score of 0
// and Elite a score of 100. Time-based events carry poor > elite since
// lower raw values are better. Static data, maintained by hand.
func defaultBenchmarks() map[string]map[string]domain.BenchmarkLevel {
	return map[string]map[string]domain.BenchmarkLevel{
		"shuttle-run": {
			"female_18_29": {Poor: 85, Elite: 56, Unit: unitSeconds},
			"female_30_39": {Poor: 90.4, Elite: 59.6, Unit: unitSeconds},
			"female_40_49": {Poor: 97.7, Elite: 64.4, Unit: unitSeconds},
			"female_50_59": {Poor: 107.6, Elite: 70.9, Unit: unitSeconds},
			"female_60_69": {Poor: 121.4, Elite: 80, Unit: unitSeconds},
			"female_70_79": {Poor: 141.7, Elite: 93.3, Unit: unitSeconds},
			"female_80_89": {Poor: 170, Elite: 112, Unit: unitSeconds},
			"female_90_99": {Poor: 207.3, Elite: 136.6, Unit: unitSeconds},
			"male_18_29": {Poor: 75, Elite: 48, Unit: unitSeconds},
			"male_30_39": {Poor: 79.8, Elite: 51.1, Unit: unitSeconds},
			"male_40_49": {Poor: 86.2, Elite: 55.2, Unit: unitSeconds},
			"male_50_59": {Poor: 94.9, Elite: 60.8, Unit: unitSeconds},
			"male_60_69": {Poor: 107.1, Elite: 68.6, Unit: unitSeconds},
			"male_70_79": {Poor: 125, Elite: 80, Unit: unitSeconds},
			"male_80_89": {Poor: 150, Elite: 96, Unit: unitSeconds},
			"male_90_99": {Poor: 182.9, Elite: 117.1, Unit: unitSeconds},
		},
		"t-test": {
			"female_18_29": {Poor: 16, Elite: 10, Unit: unitSeconds},
			"female_30_39": {Poor: 17, Elite: 10.6, Unit: unitSeconds},
			"female_40_49": {Poor: 18.4, Elite: 11.5, Unit: unitSeconds},
			"female_50_59": {Poor: 20.3, Elite: 12.7, Unit: unitSeconds},
			"female_60_69": {Poor: 22.9, Elite: 14.3, Unit: unitSeconds},
			"female_70_79": {Poor: 26.7, Elite: 16.7, Unit: unitSeconds},
			"female_80_89": {Poor: 32, Elite: 20, Unit: unitSeconds},
			"female_90_99": {Poor: 39, Elite: 24.4, Unit: unitSeconds},
			"male_18_29": {Poor: 14, Elite: 8.5, Unit: unitSeconds},
			"male_30_39": {Poor: 14.9, Elite: 9, Unit: unitSeconds},
			"male_40_49": {Poor: 16.1, Elite: 9.8, Unit: unitSeconds},
			"male_50_59": {Poor: 17.7, Elite: 10.8, Unit: unitSeconds},
			"male_60_69": {Poor: 20, Elite: 12.1, Unit: unitSeconds},
			"male_70_79": {Poor: 23.3, Elite: 14.2, Unit: unitSeconds},
			"male_80_89": {Poor: 28, Elite: 17, Unit: unitSeconds},
			"male_90_99": {Poor: 34.1, Elite: 20.7, Unit: unitSeconds},
		},
		"400m-sprint": {
			"female_18_29": {Poor: 140, Elite: 60, Unit: unitSeconds},
			"female_30_39": {Poor: 149, Elite: 64, Unit: unitSeconds},
			"female_40_49": {Poor: 161, Elite: 69, Unit: unitSeconds},
			"female_50_59": {Poor: 177, Elite: 76, Unit: unitSeconds},
			"female_60_69": {Poor: 200, Elite: 86, Unit: unitSeconds},
			"female_70_79": {Poor: 233, Elite: 100, Unit: unitSeconds},
			"female_80_89": {Poor: 280, Elite: 120, Unit: unitSeconds},
			"female_90_99": {Poor: 341, Elite: 146, Unit: unitSeconds},
			"male_18_29": {Poor: 120, Elite: 52, Unit: unitSeconds},
			"male_30_39": {Poor: 127.7, Elite: 55.3, Unit: unitSeconds},
			"male_40_49": {Poor: 137.9, Elite: 59.8, Unit: unitSeconds},
			"male_50_59": {Poor: 151.9, Elite: 65.8, Unit: unitSeconds},
			"male_60_69": {Poor: 171.4, Elite: 74.3, Unit: unitSeconds},
			"male_70_79": {Poor: 200, Elite: 86.7, Unit: unitSeconds},
			"male_80_89": {Poor: 240, Elite: 104, Unit: unitSeconds},
			"male_90_99": {Poor: 292.7, Elite: 126.8, Unit: unitSeconds},
		},
		"assault-bike": {
			"female_18_29": {Poor: 6, Elite: 28, Unit: unitCalories},
			"female_30_39": {Poor: 6, Elite: 26, Unit: unitCalories},
			"female_40_49": {Poor: 5, Elite: 24, Unit: unitCalories},
			"female_50_59": {Poor: 5, Elite: 22, Unit: unitCalories},
			"female_60_69": {Poor: 4, Elite: 20, Unit: unitCalories},
			"female_70_79": {Poor: 4, Elite: 17, Unit: unitCalories},
			"female_80_89": {Poor: 3, Elite: 14, Unit: unitCalories},
			"female_90_99": {Poor: 2, Elite: 11, Unit: unitCalories},
			"male_18_29": {Poor: 8, Elite: 35, Unit: unitCalories},
			"male_30_39": {Poor: 8, Elite: 33, Unit: unitCalories},
			"male_40_49": {Poor: 7, Elite: 30, Unit: unitCalories},
			"male_50_59": {Poor: 6, Elite: 28, Unit: unitCalories},
			"male_60_69": {Poor: 6, Elite: 24, Unit: unitCalories},
			"male_70_79": {Poor: 5, Elite: 21, Unit: unitCalories},
			"male_80_89": {Poor: 4, Elite: 18, Unit: unitCalories},
			"male_90_99": {Poor: 3, Elite: 14, Unit: unitCalories},
		},
		"air-squats": {
			"female_18_29": {Poor: 15, Elite: 90, Unit: unitRepetitions},
			"female_30_39": {Poor: 14, Elite: 85, Unit: unitRepetitions},
			"female_40_49": {Poor: 13, Elite: 78, Unit: unitRepetitions},
			"female_50_59": {Poor: 12, Elite: 71, Unit: unitRepetitions},
			"female_60_69": {Poor: 10, Elite: 63, Unit: unitRepetitions},
			"female_70_79": {Poor: 9, Elite: 54, Unit: unitRepetitions},
			"female_80_89": {Poor: 8, Elite: 45, Unit: unitRepetitions},
			"female_90_99": {Poor: 6, Elite: 37, Unit: unitRepetitions},
			"male_18_29": {Poor: 20, Elite: 100, Unit: unitRepetitions},
			"male_30_39": {Poor: 19, Elite: 94, Unit: unitRepetitions},
			"male_40_49": {Poor: 17, Elite: 87, Unit: unitRepetitions},
			"male_50_59": {Poor: 16, Elite: 79, Unit: unitRepetitions},
			"male_60_69": {Poor: 14, Elite: 70, Unit: unitRepetitions},
			"male_70_79": {Poor: 12, Elite: 60, Unit: unitRepetitions},
			"male_80_89": {Poor: 10, Elite: 50, Unit: unitRepetitions},
			"male_90_99": {Poor: 8, Elite: 41, Unit: unitRepetitions},
		},
		"knee-raises": {
			"female_18_29": {Poor: 3, Elite: 40, Unit: unitRepetitions},
			"female_30_39": {Poor: 3, Elite: 38, Unit: unitRepetitions},
			"female_40_49": {Poor: 3, Elite: 35, Unit: unitRepetitions},
			"female_50_59": {Poor: 2, Elite: 32, Unit: unitRepetitions},
			"female_60_69": {Poor: 2, Elite: 28, Unit: unitRepetitions},
			"female_70_79": {Poor: 2, Elite: 24, Unit: unitRepetitions},
			"female_80_89": {Poor: 2, Elite: 20, Unit: unitRepetitions},
			"female_90_99": {Poor: 1, Elite: 16, Unit: unitRepetitions},
			"male_18_29": {Poor: 5, Elite: 50, Unit: unitRepetitions},
			"male_30_39": {Poor: 5, Elite: 47, Unit: unitRepetitions},
			"male_40_49": {Poor: 4, Elite: 44, Unit: unitRepetitions},
			"male_50_59": {Poor: 4, Elite: 40, Unit: unitRepetitions},
			"male_60_69": {Poor: 4, Elite: 35, Unit: unitRepetitions},
			"male_70_79": {Poor: 3, Elite: 30, Unit: unitRepetitions},
			"male_80_89": {Poor: 2, Elite: 25, Unit: unitRepetitions},
			"male_90_99": {Poor: 2, Elite: 20, Unit: unitRepetitions},
		},
		"push-ups": {
			"female_18_29": {Poor: 5, Elite: 55, Unit: unitRepetitions},
			"female_30_39": {Poor: 5, Elite: 52, Unit: unitRepetitions},
			"female_40_49": {Poor: 4, Elite: 48, Unit: unitRepetitions},
			"female_50_59": {Poor: 4, Elite: 43, Unit: unitRepetitions},
			"female_60_69": {Poor: 4, Elite: 38, Unit: unitRepetitions},
			"female_70_79": {Poor: 3, Elite: 33, Unit: unitRepetitions},
			"female_80_89": {Poor: 2, Elite: 28, Unit: unitRepetitions},
			"female_90_99": {Poor: 2, Elite: 23, Unit: unitRepetitions},
			"male_18_29": {Poor: 10, Elite: 80, Unit: unitRepetitions},
			"male_30_39": {Poor: 9, Elite: 75, Unit: unitRepetitions},
			"male_40_49": {Poor: 9, Elite: 70, Unit: unitRepetitions},
			"male_50_59": {Poor: 8, Elite: 63, Unit: unitRepetitions},
			"male_60_69": {Poor: 7, Elite: 56, Unit: unitRepetitions},
			"male_70_79": {Poor: 6, Elite: 48, Unit: unitRepetitions},
			"male_80_89": {Poor: 5, Elite: 40, Unit: unitRepetitions},
			"male_90_99": {Poor: 4, Elite: 33, Unit: unitRepetitions},
		},
		"pull-ups": {
			"female_18_29": {Poor: 0, Elite: 20, Unit: unitRepetitions},
			"female_30_39": {Poor: 0, Elite: 19, Unit: unitRepetitions},
			"female_40_49": {Poor: 0, Elite: 17, Unit: unitRepetitions},
			"female_50_59": {Poor: 0, Elite: 16, Unit: unitRepetitions},
			"female_60_69": {Poor: 0, Elite: 14, Unit: unitRepetitions},
			"female_70_79": {Poor: 0, Elite: 12, Unit: unitRepetitions},
			"female_80_89": {Poor: 0, Elite: 10, Unit: unitRepetitions},
			"female_90_99": {Poor: 0, Elite: 8, Unit: unitRepetitions},
			"male_18_29": {Poor: 1, Elite: 30, Unit: unitRepetitions},
			"male_30_39": {Poor: 1, Elite: 28, Unit: unitRepetitions},
			"male_40_49": {Poor: 1, Elite: 26, Unit: unitRepetitions},
			"male_50_59": {Poor: 1, Elite: 24, Unit: unitRepetitions},
			"male_60_69": {Poor: 1, Elite: 21, Unit: unitRepetitions},
			"male_70_79": {Poor: 1, Elite: 18, Unit: unitRepetitions},
			"male_80_89": {Poor: 0, Elite: 15, Unit: unitRepetitions},
			"male_90_99": {Poor: 0, Elite: 12, Unit: unitRepetitions},
		},
		"back-squat": {
			"female_18_29": {Poor: 70, Elite: 270, Unit: unitPounds},
			"female_30_39": {Poor: 66, Elite: 254, Unit: unitPounds},
			"female_40_49": {Poor: 61, Elite: 235, Unit: unitPounds},
			"female_50_59": {Poor: 55, Elite: 213, Unit: unitPounds},
			"female_60_69": {Poor: 49, Elite: 189, Unit: unitPounds},
			"female_70_79": {Poor: 42, Elite: 162, Unit: unitPounds},
			"female_80_89": {Poor: 35, Elite: 135, Unit: unitPounds},
			"female_90_99": {Poor: 29, Elite: 111, Unit: unitPounds},
			"male_18_29": {Poor: 125, Elite: 485, Unit: unitPounds},
			"male_30_39": {Poor: 118, Elite: 456, Unit: unitPounds},
			"male_40_49": {Poor: 109, Elite: 422, Unit: unitPounds},
			"male_50_59": {Poor: 99, Elite: 383, Unit: unitPounds},
			"male_60_69": {Poor: 88, Elite: 340, Unit: unitPounds},
			"male_70_79": {Poor: 75, Elite: 291, Unit: unitPounds},
			"male_80_89": {Poor: 62, Elite: 242, Unit: unitPounds},
			"male_90_99": {Poor: 51, Elite: 199, Unit: unitPounds},
		},
		"deadlift": {
			"female_18_29": {Poor: 95, Elite: 305, Unit: unitPounds},
			"female_30_39": {Poor: 89, Elite: 287, Unit: unitPounds},
			"female_40_49": {Poor: 83, Elite: 265, Unit: unitPounds},
			"female_50_59": {Poor: 75, Elite: 241, Unit: unitPounds},
			"female_60_69": {Poor: 66, Elite: 214, Unit: unitPounds},
			"female_70_79": {Poor: 57, Elite: 183, Unit: unitPounds},
			"female_80_89": {Poor: 48, Elite: 152, Unit: unitPounds},
			"female_90_99": {Poor: 39, Elite: 125, Unit: unitPounds},
			"male_18_29": {Poor: 173, Elite: 552, Unit: unitPounds},
			"male_30_39": {Poor: 163, Elite: 519, Unit: unitPounds},
			"male_40_49": {Poor: 151, Elite: 480, Unit: unitPounds},
			"male_50_59": {Poor: 137, Elite: 436, Unit: unitPounds},
			"male_60_69": {Poor: 121, Elite: 386, Unit: unitPounds},
			"male_70_79": {Poor: 104, Elite: 331, Unit: unitPounds},
			"male_80_89": {Poor: 86, Elite: 276, Unit: unitPounds},
			"male_90_99": {Poor: 71, Elite: 226, Unit: unitPounds},
		},
		"military-press": {
			"female_18_29": {Poor: 35, Elite: 125, Unit: unitPounds},
			"female_30_39": {Poor: 33, Elite: 118, Unit: unitPounds},
			"female_40_49": {Poor: 30, Elite: 109, Unit: unitPounds},
			"female_50_59": {Poor: 28, Elite: 99, Unit: unitPounds},
			"female_60_69": {Poor: 24, Elite: 88, Unit: unitPounds},
			"female_70_79": {Poor: 21, Elite: 75, Unit: unitPounds},
			"female_80_89": {Poor: 18, Elite: 62, Unit: unitPounds},
			"female_90_99": {Poor: 14, Elite: 51, Unit: unitPounds},
			"male_18_29": {Poor: 65, Elite: 230, Unit: unitPounds},
			"male_30_39": {Poor: 61, Elite: 216, Unit: unitPounds},
			"male_40_49": {Poor: 57, Elite: 200, Unit: unitPounds},
			"male_50_59": {Poor: 51, Elite: 182, Unit: unitPounds},
			"male_60_69": {Poor: 46, Elite: 161, Unit: unitPounds},
			"male_70_79": {Poor: 39, Elite: 138, Unit: unitPounds},
			"male_80_89": {Poor: 32, Elite: 115, Unit: unitPounds},
			"male_90_99": {Poor: 27, Elite: 94, Unit: unitPounds},
		},
		"clean-and-jerk": {
			"female_18_29": {Poor: 45, Elite: 185, Unit: unitPounds},
			"female_30_39": {Poor: 42, Elite: 174, Unit: unitPounds},
			"female_40_49": {Poor: 39, Elite: 161, Unit: unitPounds},
			"female_50_59": {Poor: 36, Elite: 146, Unit: unitPounds},
			"female_60_69": {Poor: 31, Elite: 130, Unit: unitPounds},
			"female_70_79": {Poor: 27, Elite: 111, Unit: unitPounds},
			"female_80_89": {Poor: 22, Elite: 92, Unit: unitPounds},
			"female_90_99": {Poor: 18, Elite: 76, Unit: unitPounds},
			"male_18_29": {Poor: 85, Elite: 340, Unit: unitPounds},
			"male_30_39": {Poor: 80, Elite: 320, Unit: unitPounds},
			"male_40_49": {Poor: 74, Elite: 296, Unit: unitPounds},
			"male_50_59": {Poor: 67, Elite: 269, Unit: unitPounds},
			"male_60_69": {Poor: 59, Elite: 238, Unit: unitPounds},
			"male_70_79": {Poor: 51, Elite: 204, Unit: unitPounds},
			"male_80_89": {Poor: 42, Elite: 170, Unit: unitPounds},
			"male_90_99": {Poor: 35, Elite: 139, Unit: unitPounds},
		},
		"snatch": {
			"female_18_29": {Poor: 35, Elite: 150, Unit: unitPounds},
			"female_30_39": {Poor: 33, Elite: 141, Unit: unitPounds},
			"female_40_49": {Poor: 30, Elite: 130, Unit: unitPounds},
			"female_50_59": {Poor: 28, Elite: 118, Unit: unitPounds},
			"female_60_69": {Poor: 24, Elite: 105, Unit: unitPounds},
			"female_70_79": {Poor: 21, Elite: 90, Unit: unitPounds},
			"female_80_89": {Poor: 18, Elite: 75, Unit: unitPounds},
			"female_90_99": {Poor: 14, Elite: 61, Unit: unitPounds},
			"male_18_29": {Poor: 65, Elite: 270, Unit: unitPounds},
			"male_30_39": {Poor: 61, Elite: 254, Unit: unitPounds},
			"male_40_49": {Poor: 57, Elite: 235, Unit: unitPounds},
			"male_50_59": {Poor: 51, Elite: 213, Unit: unitPounds},
			"male_60_69": {Poor: 46, Elite: 189, Unit: unitPounds},
			"male_70_79": {Poor: 39, Elite: 162, Unit: unitPounds},
			"male_80_89": {Poor: 32, Elite: 135, Unit: unitPounds},
			"male_90_99": {Poor: 27, Elite: 111, Unit: unitPounds},
		},
		"10k-row": {
			"female_18_29": {Poor: 3600, Elite: 2160, Unit: unitSeconds},
			"female_30_39": {Poor: 3830, Elite: 2298, Unit: unitSeconds},
			"female_40_49": {Poor: 4138, Elite: 2483, Unit: unitSeconds},
			"female_50_59": {Poor: 4557, Elite: 2734, Unit: unitSeconds},
			"female_60_69": {Poor: 5143, Elite: 3086, Unit: unitSeconds},
			"female_70_79": {Poor: 6000, Elite: 3600, Unit: unitSeconds},
			"female_80_89": {Poor: 7200, Elite: 4320, Unit: unitSeconds},
			"female_90_99": {Poor: 8780, Elite: 5268, Unit: unitSeconds},
			"male_18_29": {Poor: 3300, Elite: 1920, Unit: unitSeconds},
			"male_30_39": {Poor: 3511, Elite: 2043, Unit: unitSeconds},
			"male_40_49": {Poor: 3793, Elite: 2207, Unit: unitSeconds},
			"male_50_59": {Poor: 4177, Elite: 2430, Unit: unitSeconds},
			"male_60_69": {Poor: 4714, Elite: 2743, Unit: unitSeconds},
			"male_70_79": {Poor: 5500, Elite: 3200, Unit: unitSeconds},
			"male_80_89": {Poor: 6600, Elite: 3840, Unit: unitSeconds},
			"male_90_99": {Poor: 8049, Elite: 4683, Unit: unitSeconds},
		},
		"5k-run": {
			"female_18_29": {Poor: 2700, Elite: 1020, Unit: unitSeconds},
			"female_30_39": {Poor: 2872, Elite: 1085, Unit: unitSeconds},
			"female_40_49": {Poor: 3103, Elite: 1172, Unit: unitSeconds},
			"female_50_59": {Poor: 3418, Elite: 1291, Unit: unitSeconds},
			"female_60_69": {Poor: 3857, Elite: 1457, Unit: unitSeconds},
			"female_70_79": {Poor: 4500, Elite: 1700, Unit: unitSeconds},
			"female_80_89": {Poor: 5400, Elite: 2040, Unit: unitSeconds},
			"female_90_99": {Poor: 6585, Elite: 2488, Unit: unitSeconds},
			"male_18_29": {Poor: 2400, Elite: 900, Unit: unitSeconds},
			"male_30_39": {Poor: 2553, Elite: 957, Unit: unitSeconds},
			"male_40_49": {Poor: 2759, Elite: 1034, Unit: unitSeconds},
			"male_50_59": {Poor: 3038, Elite: 1139, Unit: unitSeconds},
			"male_60_69": {Poor: 3429, Elite: 1286, Unit: unitSeconds},
			"male_70_79": {Poor: 4000, Elite: 1500, Unit: unitSeconds},
			"male_80_89": {Poor: 4800, Elite: 1800, Unit: unitSeconds},
			"male_90_99": {Poor: 5854, Elite: 2195, Unit: unitSeconds},
		},
	}
}
