package refdata

import "example.com/kitchen-planner/backend/internal/models"

// DefaultCatalog возвращает мастер-каталог товаров домашней кухни.
// Имена товаров — канонические ключи: UI и OCR обязаны резолвить
// свободный текст в эти ключи до обращения к API.
func DefaultCatalog() []models.CatalogItem {
	return []models.CatalogItem{
		// Rice & grains
		{Name: "Rice (Samba)", SinhalaName: "සම්බා සහල්", Category: "Rice", Unit: models.UnitKilogram, ReferencePrice: 230, UsageFrequency: models.FrequencyDaily, SubstitutionGroup: "rice", CaloriesPerUnit: 360},
		{Name: "Rice (Nadu)", SinhalaName: "නාඩු සහල්", Category: "Rice", Unit: models.UnitKilogram, ReferencePrice: 220, UsageFrequency: models.FrequencyDaily, SubstitutionGroup: "rice", CaloriesPerUnit: 350},
		{Name: "Rice (Keeri Samba)", SinhalaName: "කීරි සම්බා", Category: "Rice", Unit: models.UnitKilogram, ReferencePrice: 300, UsageFrequency: models.FrequencyDaily, SubstitutionGroup: "rice", CaloriesPerUnit: 365},
		{Name: "Rice (Red Raw)", SinhalaName: "රතු කැකුළු", Category: "Rice", Unit: models.UnitKilogram, ReferencePrice: 200, UsageFrequency: models.FrequencyDaily, SubstitutionGroup: "rice", CaloriesPerUnit: 340},
		{Name: "Rice (White Raw)", SinhalaName: "සුදු කැකුළු", Category: "Rice", Unit: models.UnitKilogram, ReferencePrice: 210, UsageFrequency: models.FrequencyDaily, SubstitutionGroup: "rice", CaloriesPerUnit: 350},
		{Name: "Basmati Rice", SinhalaName: "බාස්මතී සහල්", Category: "Rice", Unit: models.UnitKilogram, ReferencePrice: 650, UsageFrequency: models.FrequencyAdhoc, SubstitutionGroup: "rice_premium", CaloriesPerUnit: 370},

		// Vegetables
		{Name: "Red Onions", SinhalaName: "රතු ළූණු", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 450, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 40},
		{Name: "Big Onions", SinhalaName: "බී ළූණු", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 380, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 40},
		{Name: "Garlic", SinhalaName: "සුදු ළූණු", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 600, UsageFrequency: models.FrequencyMonthly, CaloriesPerUnit: 149},
		{Name: "Ginger", SinhalaName: "ඉඟුරු", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 800, UsageFrequency: models.FrequencyMonthly, CaloriesPerUnit: 80},
		{Name: "Potatoes", SinhalaName: "අර්තාපල්", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 280, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 77},
		{Name: "Tomatoes", SinhalaName: "තක්කාලි", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 480, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 18},
		{Name: "Green Chillies", SinhalaName: "අමු මිරිස්", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 800, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 40},
		{Name: "Lime", SinhalaName: "දෙහි", Category: "Vegetables", Unit: models.UnitPieces, ReferencePrice: 20, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 30},
		{Name: "Curry Leaves", SinhalaName: "කරපිංචා", Category: "Vegetables", Unit: models.UnitBundle, ReferencePrice: 50, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 10},
		{Name: "Beans", SinhalaName: "බෝංචි", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 450, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 31},
		{Name: "Carrots", SinhalaName: "කැරට්", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 350, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 41},
		{Name: "Cabbage", SinhalaName: "ගෝවා", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 220, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 25},
		{Name: "Pumpkin", SinhalaName: "වට්ටක්කා", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 150, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 26},
		{Name: "Brinjal", SinhalaName: "වම්බටු", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 280, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 25},
		{Name: "Okra", SinhalaName: "බණ්ඩක්කා", Category: "Vegetables", Unit: models.UnitKilogram, ReferencePrice: 200, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 33},
		{Name: "Dhal (Mysore)", SinhalaName: "පරිප්පු", Category: "Dry Goods", Unit: models.UnitKilogram, ReferencePrice: 320, UsageFrequency: models.FrequencyWeekly, CaloriesPerUnit: 340},

		// Meats & fish
		{Name: "Chicken (Whole)", SinhalaName: "කුකුළු මස් (සම්පූර්ණ)", Category: "Meats", Unit: models.UnitKilogram, ReferencePrice: 1250, UsageFrequency: models.FrequencyWeekly, SubstitutionGroup: "chicken"},
		{Name: "Chicken (Curry Cut)", SinhalaName: "කුකුළු මස් (කෑලි)", Category: "Meats", Unit: models.UnitKilogram, ReferencePrice: 1350, UsageFrequency: models.FrequencyWeekly, SubstitutionGroup: "chicken"},
		{Name: "Eggs", SinhalaName: "බිත්තර", Category: "Meats", Unit: models.UnitPieces, ReferencePrice: 55, UsageFrequency: models.FrequencyWeekly},
		{Name: "Fish (Kelawalla)", SinhalaName: "කෙලවල්ලා", Category: "Seafood", Unit: models.UnitKilogram, ReferencePrice: 1800, UsageFrequency: models.FrequencyWeekly, SubstitutionGroup: "fish_premium"},
		{Name: "Fish (Thalapath)", SinhalaName: "තලපත්", Category: "Seafood", Unit: models.UnitKilogram, ReferencePrice: 2000, UsageFrequency: models.FrequencyWeekly, SubstitutionGroup: "fish_premium"},
		{Name: "Sprats", SinhalaName: "හාල්මැස්සෝ", Category: "Seafood", Unit: models.UnitKilogram, ReferencePrice: 1200, UsageFrequency: models.FrequencyMonthly},
		{Name: "Dried Fish (Katta)", SinhalaName: "කරවල (කට්ටා)", Category: "Seafood", Unit: models.UnitKilogram, ReferencePrice: 1800, UsageFrequency: models.FrequencyMonthly},
		{Name: "Canned Fish (Mackerel)", SinhalaName: "ටින් මාළු", Category: "Seafood", Unit: models.UnitCan, ReferencePrice: 450, UsageFrequency: models.FrequencyAdhoc},
		{Name: "Chicken Sausages (Frozen)", SinhalaName: "සොසේජස්", Category: "Frozen Food", Unit: models.UnitPack, ReferencePrice: 650, UsageFrequency: models.FrequencyAdhoc},
		{Name: "Fish Fingers (Frozen)", SinhalaName: "ෆිෂ් ෆින්ගර්ස්", Category: "Frozen Food", Unit: models.UnitPack, ReferencePrice: 750, UsageFrequency: models.FrequencyAdhoc},

		// Spices & condiments
		{Name: "Chili Powder", SinhalaName: "මිරිස් කුඩු", Category: "Spices", Unit: models.UnitKilogram, ReferencePrice: 1200, UsageFrequency: models.FrequencyMonthly},
		{Name: "Turmeric Powder", SinhalaName: "කහ කුඩු", Category: "Spices", Unit: models.UnitPack, ReferencePrice: 250, UsageFrequency: models.FrequencyMonthly},
		{Name: "Curry Powder (Roasted)", SinhalaName: "බැදපු තුනපහ", Category: "Spices", Unit: models.UnitKilogram, ReferencePrice: 600, UsageFrequency: models.FrequencyMonthly},
		{Name: "Curry Powder (Raw)", SinhalaName: "අමු තුනපහ", Category: "Spices", Unit: models.UnitKilogram, ReferencePrice: 500, UsageFrequency: models.FrequencyMonthly},
		{Name: "Salt", SinhalaName: "ලුණු", Category: "Essentials", Unit: models.UnitKilogram, ReferencePrice: 90, UsageFrequency: models.FrequencyMonthly},
		{Name: "Pepper (Black)", SinhalaName: "ගම්මිරිස්", Category: "Spices", Unit: models.UnitPack, ReferencePrice: 200, UsageFrequency: models.FrequencyMonthly},
		{Name: "Maldive Fish", SinhalaName: "උම්බලකඩ", Category: "Spices", Unit: models.UnitKilogram, ReferencePrice: 450, UsageFrequency: models.FrequencyMonthly},

		// Coconut & oil
		{Name: "Coconut", SinhalaName: "පොල්", Category: "Essentials", Unit: models.UnitPieces, ReferencePrice: 120, UsageFrequency: models.FrequencyWeekly},
		{Name: "Coconut Oil", SinhalaName: "පොල්තෙල්", Category: "Essentials", Unit: models.UnitLiter, ReferencePrice: 650, UsageFrequency: models.FrequencyMonthly, SubstitutionGroup: "oil"},
		{Name: "Vegetable Oil", SinhalaName: "එළවළු තෙල්", Category: "Essentials", Unit: models.UnitLiter, ReferencePrice: 850, UsageFrequency: models.FrequencyMonthly, SubstitutionGroup: "oil"},
		{Name: "Coconut Milk (Powder)", SinhalaName: "පොල් කිරිපිටි", Category: "Essentials", Unit: models.UnitPack, ReferencePrice: 250, UsageFrequency: models.FrequencyAdhoc},

		// Bakery & snacks
		{Name: "Bread (Roast)", SinhalaName: "රෝස් පාන්", Category: "Bakery", Unit: models.UnitPieces, ReferencePrice: 110, UsageFrequency: models.FrequencyDaily, SubstitutionGroup: "bread"},
		{Name: "Bread (Sandwich)", SinhalaName: "සැන්ඩ්විච් පාන්", Category: "Bakery", Unit: models.UnitPieces, ReferencePrice: 190, UsageFrequency: models.FrequencyDaily, SubstitutionGroup: "bread"},
		{Name: "Cream Cracker", SinhalaName: "ක්‍රීම් ක්‍රැකර්", Category: "Snacks", Unit: models.UnitPack, ReferencePrice: 350, UsageFrequency: models.FrequencyWeekly},
		{Name: "Marie Biscuits", SinhalaName: "මාරි බිස්කට්", Category: "Snacks", Unit: models.UnitPack, ReferencePrice: 280, UsageFrequency: models.FrequencyWeekly},

		// Dairy
		{Name: "Fresh Milk", SinhalaName: "දියර කිරි", Category: "Dairy", Unit: models.UnitLiter, ReferencePrice: 400, UsageFrequency: models.FrequencyWeekly, SubstitutionGroup: "milk_fresh"},
		{Name: "Milk Powder (Full Cream)", SinhalaName: "කිරිපිටි", Category: "Dairy", Unit: models.UnitKilogram, ReferencePrice: 900, UsageFrequency: models.FrequencyMonthly, SubstitutionGroup: "milk_powder"},
		{Name: "Yoghurt", SinhalaName: "යෝගට්", Category: "Dairy", Unit: models.UnitPieces, ReferencePrice: 90, UsageFrequency: models.FrequencyDaily},
		{Name: "Butter", SinhalaName: "බටර්", Category: "Dairy", Unit: models.UnitPack, ReferencePrice: 850, UsageFrequency: models.FrequencyMonthly},

		// Flour & sugar
		{Name: "Wheat Flour", SinhalaName: "තිරිඟු පිටි", Category: "Essentials", Unit: models.UnitKilogram, ReferencePrice: 220, UsageFrequency: models.FrequencyMonthly, SubstitutionGroup: "flour"},
		{Name: "Rice Flour", SinhalaName: "සහල් පිටි", Category: "Essentials", Unit: models.UnitKilogram, ReferencePrice: 260, UsageFrequency: models.FrequencyAdhoc, SubstitutionGroup: "flour"},
		{Name: "Sugar (White)", SinhalaName: "සුදු සීනි", Category: "Essentials", Unit: models.UnitKilogram, ReferencePrice: 280, UsageFrequency: models.FrequencyMonthly, SubstitutionGroup: "sugar"},
		{Name: "Sugar (Brown)", SinhalaName: "දුඹුරු සීනි", Category: "Essentials", Unit: models.UnitKilogram, ReferencePrice: 320, UsageFrequency: models.FrequencyMonthly, SubstitutionGroup: "sugar"},

		// Beverages
		{Name: "Tea Leaves (Dust)", SinhalaName: "තේ කොළ", Category: "Beverages", Unit: models.UnitPack, ReferencePrice: 200, UsageFrequency: models.FrequencyMonthly},
		{Name: "Coffee Powder", SinhalaName: "කෝපි කුඩු", Category: "Beverages", Unit: models.UnitKilogram, ReferencePrice: 600, UsageFrequency: models.FrequencyAdhoc},
		{Name: "Samaposha", SinhalaName: "සමපෝෂ", Category: "Beverages", Unit: models.UnitPack, ReferencePrice: 250, UsageFrequency: models.FrequencyWeekly},

		// Household
		{Name: "Dish Wash Liquid", SinhalaName: "පිඟන් සෝදන දියර", Category: "Household", Unit: models.UnitLiter, ReferencePrice: 450, UsageFrequency: models.FrequencyMonthly},
		{Name: "Washing Powder", SinhalaName: "රෙදි සෝදන කුඩු", Category: "Household", Unit: models.UnitKilogram, ReferencePrice: 500, UsageFrequency: models.FrequencyMonthly},
		{Name: "Soap Bar", SinhalaName: "සබන් කැටය", Category: "Household", Unit: models.UnitPieces, ReferencePrice: 120, UsageFrequency: models.FrequencyMonthly},
	}
}
