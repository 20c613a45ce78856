package models

// Category is the closed set of transaction and budget categories.
type Category string

const (
	// Income
	CategorySalary            Category = "SALARY"
	CategoryBusinessIncome    Category = "BUSINESS_INCOME"
	CategoryInvestmentReturns Category = "INVESTMENT_RETURNS"
	CategoryRentalIncome      Category = "RENTAL_INCOME"
	CategoryGiftsReceived     Category = "GIFTS_RECEIVED"
	CategoryTaxRefund         Category = "TAX_REFUND"
	CategoryBonus             Category = "BONUS"
	CategorySideHustle        Category = "SIDE_HUSTLE"
	CategoryOtherIncome       Category = "OTHER_INCOME"

	// Essential expenses
	CategoryRentMortgage   Category = "RENT_MORTGAGE"
	CategoryUtilities      Category = "UTILITIES"
	CategoryGroceries      Category = "GROCERIES"
	CategoryTransportation Category = "TRANSPORTATION"
	CategoryGas            Category = "GAS"
	CategoryInsurance      Category = "INSURANCE"
	CategoryPhoneInternet  Category = "PHONE_INTERNET"
	CategoryHealthcare     Category = "HEALTHCARE"
	CategoryDebtPayments   Category = "DEBT_PAYMENTS"

	// Lifestyle expenses
	CategoryDiningOut     Category = "DINING_OUT"
	CategoryDelivery      Category = "DELIVERY"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryShopping      Category = "SHOPPING"
	CategorySubscriptions Category = "SUBSCRIPTIONS"
	CategoryGymFitness    Category = "GYM_FITNESS"
	CategoryTravel        Category = "TRAVEL"
	CategoryHobbies       Category = "HOBBIES"
	CategoryPersonalCare  Category = "PERSONAL_CARE"
	CategoryGiftsGiven    Category = "GIFTS_GIVEN"

	// Financial
	CategorySavings       Category = "SAVINGS"
	CategoryInvestments   Category = "INVESTMENTS"
	CategoryEmergencyFund Category = "EMERGENCY_FUND"
	CategoryRetirement    Category = "RETIREMENT"
	CategoryTaxes         Category = "TAXES"
	CategoryBankFees      Category = "BANK_FEES"

	// Miscellaneous
	CategoryEducation       Category = "EDUCATION"
	CategoryCharity         Category = "CHARITY"
	CategoryPetExpenses     Category = "PET_EXPENSES"
	CategoryHomeImprovement Category = "HOME_IMPROVEMENT"
	CategoryClothing        Category = "CLOTHING"
	CategoryBooksMedia      Category = "BOOKS_MEDIA"
	CategoryOtherExpense    Category = "OTHER_EXPENSE"
)

var categoryNames = map[Category]string{
	CategorySalary:            "Salary",
	CategoryBusinessIncome:    "Business Income",
	CategoryInvestmentReturns: "Investment Returns",
	CategoryRentalIncome:      "Rental Income",
	CategoryGiftsReceived:     "Gifts Received",
	CategoryTaxRefund:         "Tax Refund",
	CategoryBonus:             "Bonus",
	CategorySideHustle:        "Side Hustle",
	CategoryOtherIncome:       "Other Income",
	CategoryRentMortgage:      "Rent/Mortgage",
	CategoryUtilities:         "Utilities",
	CategoryGroceries:         "Groceries",
	CategoryTransportation:    "Transportation",
	CategoryGas:               "Gas/Fuel",
	CategoryInsurance:         "Insurance",
	CategoryPhoneInternet:     "Phone & Internet",
	CategoryHealthcare:        "Healthcare",
	CategoryDebtPayments:      "Debt Payments",
	CategoryDiningOut:         "Dining Out",
	CategoryDelivery:          "Delivery",
	CategoryEntertainment:     "Entertainment",
	CategoryShopping:          "Shopping",
	CategorySubscriptions:     "Subscriptions",
	CategoryGymFitness:        "Gym & Fitness",
	CategoryTravel:            "Travel",
	CategoryHobbies:           "Hobbies",
	CategoryPersonalCare:      "Personal Care",
	CategoryGiftsGiven:        "Gifts Given",
	CategorySavings:           "Savings",
	CategoryInvestments:       "Investments",
	CategoryEmergencyFund:     "Emergency Fund",
	CategoryRetirement:        "Retirement",
	CategoryTaxes:             "Taxes",
	CategoryBankFees:          "Bank Fees",
	CategoryEducation:         "Education",
	CategoryCharity:           "Charity/Donations",
	CategoryPetExpenses:       "Pet Expenses",
	CategoryHomeImprovement:   "Home Improvement",
	CategoryClothing:          "Clothing",
	CategoryBooksMedia:        "Books & Media",
	CategoryOtherExpense:      "Other Expense",
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the human-readable label for the category, or the raw
// value if the category is unknown.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}
