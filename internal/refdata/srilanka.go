package refdata

import "example.com/kitchen-planner/backend/internal/models"

// DefaultDataset возвращает экономический справочник Шри-Ланки (декабрь 2025).
// Источники: HIES 2019 Департамента переписи и статистики, ЦБ Шри-Ланки.
func DefaultDataset() *Dataset {
	return &Dataset{
		DataVersion: "December 2025",

		NationalAverages: NationalAverages{
			HouseholdMonthlyIncome:   63130,
			HouseholdFoodExpenditure: 22130,
			FoodPercentageOfIncome:   35.1,
			AvgHouseholdSize:         3.8,
		},

		IncomeQuintiles: []IncomeQuintile{
			{Quintile: 1, Name: "Poorest 20%", MonthlyIncome: 17572, FoodBudget: Range{Min: 6000, Max: 9000}, FoodPercentage: 50},
			{Quintile: 2, Name: "Low Income", MonthlyIncome: 35000, FoodBudget: Range{Min: 12000, Max: 15000}, FoodPercentage: 42},
			{Quintile: 3, Name: "Middle Income", MonthlyIncome: 63130, FoodBudget: Range{Min: 20000, Max: 25000}, FoodPercentage: 35},
			{Quintile: 4, Name: "Upper Middle Income", MonthlyIncome: 100000, FoodBudget: Range{Min: 30000, Max: 40000}, FoodPercentage: 32},
			{Quintile: 5, Name: "Richest 20%", MonthlyIncome: 196289, FoodBudget: Range{Min: 40000, Max: 70000}, FoodPercentage: 25},
		},

		Sectors: map[models.Sector]SectorProfile{
			models.SectorUrban: {
				MedianIncome:             74679,
				FoodBudget:               Range{Min: 23000, Max: 35000},
				RiceConsumptionPerCapita: 24.1,
				PreferredRiceType:        "samba",
				FoodPercentageOfIncome:   28,
			},
			models.SectorRural: {
				MedianIncome:             50869,
				FoodBudget:               Range{Min: 15000, Max: 25000},
				RiceConsumptionPerCapita: 31.8,
				PreferredRiceType:        "nadu",
				FoodPercentageOfIncome:   37,
				HomeGrownVegetables:      true,
			},
			models.SectorEstate: {
				MedianIncome:             40771,
				FoodBudget:               Range{Min: 13000, Max: 16500},
				RiceConsumptionPerCapita: 35.9,
				PreferredRiceType:        "nadu",
				FoodPercentageOfIncome:   50,
			},
		},

		Districts: []District{
			{Name: "Colombo", MedianIncome: 86981, FoodBudget: Range{Min: 28000, Max: 35000}, Sector: models.SectorUrban, Population: 2324349},
			{Name: "Gampaha", MedianIncome: 69729, FoodBudget: Range{Min: 23000, Max: 28000}, Sector: models.SectorUrban, Population: 2304833},
			{Name: "Kalutara", MedianIncome: 58000, FoodBudget: Range{Min: 19000, Max: 24000}, Sector: models.SectorMixed, Population: 1222504},
			{Name: "Kandy", MedianIncome: 55000, FoodBudget: Range{Min: 18000, Max: 23000}, Sector: models.SectorMixed, Population: 1375382},
			{Name: "Matale", MedianIncome: 46000, FoodBudget: Range{Min: 15000, Max: 19000}, Sector: models.SectorRural, Population: 484531},
			{Name: "Nuwara Eliya", MedianIncome: 43000, FoodBudget: Range{Min: 14000, Max: 17500}, Sector: models.SectorEstate, Population: 711644},
			{Name: "Galle", MedianIncome: 57500, FoodBudget: Range{Min: 19000, Max: 24000}, Sector: models.SectorMixed, Population: 1063334},
			{Name: "Matara", MedianIncome: 51000, FoodBudget: Range{Min: 17000, Max: 21000}, Sector: models.SectorMixed, Population: 814048},
			{Name: "Hambantota", MedianIncome: 48000, FoodBudget: Range{Min: 16000, Max: 20000}, Sector: models.SectorRural, Population: 599903},
			{Name: "Jaffna", MedianIncome: 42000, FoodBudget: Range{Min: 14000, Max: 17000}, Sector: models.SectorMixed, Population: 583882},
			{Name: "Kilinochchi", MedianIncome: 34862, FoodBudget: Range{Min: 12000, Max: 14000}, Sector: models.SectorRural, Population: 113510},
			{Name: "Mannar", MedianIncome: 38000, FoodBudget: Range{Min: 12500, Max: 15500}, Sector: models.SectorRural, Population: 99570},
			{Name: "Vavuniya", MedianIncome: 40000, FoodBudget: Range{Min: 13500, Max: 16500}, Sector: models.SectorRural, Population: 172115},
			{Name: "Mullaitivu", MedianIncome: 34279, FoodBudget: Range{Min: 11500, Max: 14000}, Sector: models.SectorRural, Population: 92238},
			{Name: "Batticaloa", MedianIncome: 35850, FoodBudget: Range{Min: 12000, Max: 14000}, Sector: models.SectorRural, Population: 526567},
			{Name: "Ampara", MedianIncome: 44000, FoodBudget: Range{Min: 14500, Max: 18000}, Sector: models.SectorRural, Population: 649402},
			{Name: "Trincomalee", MedianIncome: 41000, FoodBudget: Range{Min: 13500, Max: 17000}, Sector: models.SectorMixed, Population: 379541},
			{Name: "Kurunegala", MedianIncome: 52000, FoodBudget: Range{Min: 17000, Max: 22000}, Sector: models.SectorMixed, Population: 1618465},
			{Name: "Puttalam", MedianIncome: 61657, FoodBudget: Range{Min: 20000, Max: 26000}, Sector: models.SectorMixed, Population: 762396},
			{Name: "Anuradhapura", MedianIncome: 47000, FoodBudget: Range{Min: 15500, Max: 19500}, Sector: models.SectorRural, Population: 860575},
			{Name: "Polonnaruwa", MedianIncome: 45000, FoodBudget: Range{Min: 15000, Max: 18500}, Sector: models.SectorRural, Population: 406088},
			{Name: "Badulla", MedianIncome: 44500, FoodBudget: Range{Min: 14500, Max: 18500}, Sector: models.SectorMixed, Population: 815405},
			{Name: "Monaragala", MedianIncome: 40500, FoodBudget: Range{Min: 13500, Max: 16500}, Sector: models.SectorRural, Population: 451058},
			{Name: "Ratnapura", MedianIncome: 49000, FoodBudget: Range{Min: 16000, Max: 20000}, Sector: models.SectorMixed, Population: 1088007},
			{Name: "Kegalle", MedianIncome: 50500, FoodBudget: Range{Min: 16500, Max: 21000}, Sector: models.SectorMixed, Population: 840648},
		},

		FoodPrices: FoodPrices{
			Rice: map[string]Price{
				"samba":        {Price: 237.5, Unit: "kg"},
				"nadu":         {Price: 280, Unit: "kg"},
				"kekulu_white": {Price: 217.5, Unit: "kg"},
				"kekulu_red":   {Price: 217.5, Unit: "kg"},
				"basmathi":     {Price: 650, Unit: "kg"},
			},
			WheatFlour: Price{Price: 95, Unit: "kg"},
			DhalRed:    Price{Price: 265, Unit: "kg"},
			Vegetables: map[string]Price{
				"tomato":       {Price: 675, Unit: "kg", Seasonal: true},
				"onion_big":    {Price: 377.5, Unit: "kg"},
				"onion_red":    {Price: 400, Unit: "kg"},
				"potato_local": {Price: 333.5, Unit: "kg"},
				"carrot":       {Price: 700, Unit: "kg"},
				"cabbage":      {Price: 475, Unit: "kg"},
				"green_chilli": {Price: 825, Unit: "kg"},
				"beans":        {Price: 450, Unit: "kg"},
				"brinjal":      {Price: 380, Unit: "kg"},
				"leafy_greens": {Price: 200, Unit: "kg"},
				"pumpkin":      {Price: 180, Unit: "kg"},
				"ginger":       {Price: 1200, Unit: "kg"},
				"garlic":       {Price: 600, Unit: "kg"},
			},
			Proteins: map[string]Price{
				"chicken_whole":        {Price: 1250, Unit: "kg"},
				"chicken_katta":        {Price: 1600, Unit: "kg"},
				"fish_linna":           {Price: 850, Unit: "kg"},
				"fish_thalapath":       {Price: 1850, Unit: "kg"},
				"fish_mackerel":        {Price: 1420, Unit: "kg"},
				"fish_kelawalla":       {Price: 1850, Unit: "kg"},
				"fish_salaya":          {Price: 600, Unit: "kg"},
				"beef_round":           {Price: 2950, Unit: "kg"},
				"mutton":               {Price: 1850, Unit: "kg"},
				"eggs":                 {Price: 33, Unit: "each"},
				"dried_fish_sprats":    {Price: 1200, Unit: "kg"},
				"dried_fish_katta":     {Price: 1800, Unit: "kg"},
				"dried_fish_salaya":    {Price: 600, Unit: "kg"},
				"canned_fish_mackerel": {Price: 450, Unit: "425g"},
				"soya_meat":            {Price: 110, Unit: "90g pack"},
			},
			Dairy: map[string]Price{
				"milk_powder_full_cream": {Price: 900, Unit: "400g"},
				"milk_liquid":            {Price: 140, Unit: "liter"},
				"yogurt":                 {Price: 80, Unit: "cup"},
				"butter":                 {Price: 850, Unit: "200g"},
				"cheese":                 {Price: 2500, Unit: "kg"},
			},
			Beverages: map[string]Price{
				"milo":            {Price: 800, Unit: "400g"},
				"coffee_powder":   {Price: 1800, Unit: "kg"},
				"tea_leaves_dust": {Price: 200, Unit: "pack"},
				"tea_bags":        {Price: 450, Unit: "100 count"},
				"nestomalt":       {Price: 750, Unit: "400g"},
			},
			Spices: map[string]Price{
				"chili_powder":         {Price: 1200, Unit: "kg"},
				"chili_flakes":         {Price: 400, Unit: "kg"},
				"curry_powder_raw":     {Price: 500, Unit: "kg"},
				"curry_powder_roasted": {Price: 600, Unit: "kg"},
				"turmeric_powder":      {Price: 300, Unit: "100g"},
				"pepper_black":         {Price: 200, Unit: "100g"},
				"cinnamon_sticks":      {Price: 350, Unit: "100g"},
				"maldive_fish":         {Price: 450, Unit: "kg"},
			},
			OilsCondiments: map[string]Price{
				"coconut_oil":         {Price: 898, Unit: "liter"},
				"vegetable_oil":       {Price: 850, Unit: "liter"},
				"coconut":             {Price: 160, Unit: "each"},
				"coconut_milk_liquid": {Price: 280, Unit: "pack"},
				"coconut_milk_powder": {Price: 250, Unit: "pack"},
				"sugar":               {Price: 223.5, Unit: "kg"},
				"salt":                {Price: 70, Unit: "kg"},
				"tea_leaves":          {Price: 350, Unit: "100g"},
			},
			Fruits: map[string]Price{
				"banana":         {Price: 125, Unit: "kg"},
				"papaya":         {Price: 180, Unit: "kg"},
				"mango":          {Price: 400, Unit: "kg", Seasonal: true},
				"apple_imported": {Price: 210, Unit: "each"},
				"orange":         {Price: 150, Unit: "kg"},
			},
			Utilities: map[string]Price{
				"lpg_cylinder_12_5kg": {Price: 3690, Unit: "refill"},
			},
		},

		ConsumptionPatterns: ConsumptionPatterns{
			RicePerCapitaKg:       8.45,
			ChickenPerCapitaKg:    0.45,
			EggsPerCapitaCount:    4,
			DhalPerCapitaKg:       0.65,
			VegetablesPerCapitaKg: 8,
			FishPerCapitaKg:       1.2,
			MilkLitersPerCapita:   2.5,
		},

		FamilyTemplates: []FamilyTemplate{
			{People: 1, Budget: Range{Min: 6000, Max: 10000}, RiceKg: 8.5, VegetablesKg: 8, ProteinsKg: 2, EggsCount: 8},
			{People: 2, Budget: Range{Min: 12000, Max: 18000}, RiceKg: 17, VegetablesKg: 16, ProteinsKg: 4, EggsCount: 16},
			{People: 3, Budget: Range{Min: 18000, Max: 24000}, RiceKg: 25, VegetablesKg: 24, ProteinsKg: 6, EggsCount: 24},
			{People: 4, Budget: Range{Min: 22000, Max: 30000}, RiceKg: 34, VegetablesKg: 32, ProteinsKg: 8, EggsCount: 32},
			{People: 5, Budget: Range{Min: 28000, Max: 38000}, RiceKg: 42, VegetablesKg: 40, ProteinsKg: 10, EggsCount: 40},
			{People: 6, Budget: Range{Min: 33000, Max: 45000}, RiceKg: 51, VegetablesKg: 48, ProteinsKg: 12, EggsCount: 48},
			{People: 7, Budget: Range{Min: 38000, Max: 52000}, RiceKg: 59, VegetablesKg: 56, ProteinsKg: 14, EggsCount: 56},
			{People: 8, Budget: Range{Min: 43000, Max: 60000}, RiceKg: 68, VegetablesKg: 64, ProteinsKg: 16, EggsCount: 64},
		},

		Diets: map[models.DietType]DietProfile{
			models.DietMixed: {
				Key:              models.DietMixed,
				Name:             "Mixed (Non-Vegetarian)",
				ProteinSources:   []string{"chicken", "fish", "eggs", "dhal", "beef"},
				BudgetMultiplier: 1.0,
				Description:      "Balanced diet with meat, fish, and vegetables",
			},
			models.DietVegetarian: {
				Key:              models.DietVegetarian,
				Name:             "Vegetarian",
				ProteinSources:   []string{"dhal", "eggs", "dairy", "soya"},
				BudgetMultiplier: 0.75,
				Description:      "Plant-based with dairy and eggs",
			},
			models.DietPescatarian: {
				Key:              models.DietPescatarian,
				Name:             "Pescatarian",
				ProteinSources:   []string{"fish", "eggs", "dhal", "dairy"},
				BudgetMultiplier: 0.90,
				Description:      "Fish and plant-based proteins",
			},
			models.DietVegan: {
				Key:              models.DietVegan,
				Name:             "Vegan",
				ProteinSources:   []string{"dhal", "soya", "beans"},
				BudgetMultiplier: 0.65,
				Description:      "Fully plant-based",
			},
			models.DietHalal: {
				Key:              models.DietHalal,
				Name:             "Halal (Muslim)",
				ProteinSources:   []string{"chicken", "fish", "beef", "mutton", "eggs", "dhal"},
				BudgetMultiplier: 1.05,
				Description:      "Halal meat, emphasis on beef/mutton",
			},
			models.DietBuddhistHindu: {
				Key:              models.DietBuddhistHindu,
				Name:             "Buddhist/Hindu",
				ProteinSources:   []string{"chicken", "fish", "eggs", "dhal"},
				BudgetMultiplier: 0.95,
				Description:      "Occasional meat avoidance, preference for vegetarian curries",
			},
		},

		Seasonal: SeasonalVariations{
			VegetablesPeakHarvest: SeasonalWindow{Months: []int{6, 7, 8, 9}, PriceChange: -35},
			VegetablesOffSeason:   SeasonalWindow{Months: []int{1, 2, 3}, PriceChange: 50},
			MangoSeason:           SeasonalWindow{Months: []int{5, 6, 7}, PriceChange: -40},
			AvocadoSeason:         SeasonalWindow{Months: []int{7, 8, 9}, PriceChange: -35},
			FishMonsoonLow:        SeasonalWindow{Months: []int{5, 6, 7, 8}, PriceChange: 25},
			FishCalmSeason:        SeasonalWindow{Months: []int{11, 12, 1, 2, 3}, PriceChange: -15},
		},

		SavingStrategies: []SavingStrategy{
			{
				Strategy:    "Bulk Purchasing",
				Description: "Purchase staples (rice, flour, sugar, oil) in bulk every 3-4 weeks",
				Savings:     "15-20% annually",
			},
			{
				Strategy:    "Farmers Markets",
				Description: "Shop Saturday/Sunday morning markets for vegetables and fish",
				Savings:     "20-30% vs supermarkets",
			},
			{
				Strategy:    "Seasonal Eating",
				Description: "Buy in-season vegetables and preserve during harvest months (June-Sep)",
				Savings:     "40-50% on off-season items",
			},
			{
				Strategy:    "Protein Substitution",
				Description: "Replace beef with chicken (15% savings) or eggs (60% savings)",
				Savings:     "15-60% on protein costs",
			},
			{
				Strategy:    "Home Gardening",
				Description: "Grow leafy greens, tomatoes, chili in home garden",
				Savings:     "Rs. 3,000-5,000/month",
			},
		},

		CoastalDistricts: []string{
			"Colombo", "Gampaha", "Galle", "Matara", "Hambantota",
			"Jaffna", "Trincomalee", "Batticaloa", "Ampara", "Puttalam",
		},
		NorthEastDistricts: []string{
			"Jaffna", "Kilinochchi", "Mannar", "Mullaitivu",
			"Vavuniya", "Batticaloa", "Trincomalee",
		},

		Catalog: DefaultCatalog(),
	}
}
