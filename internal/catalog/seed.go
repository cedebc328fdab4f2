package catalog

// seedLessons is the embedded UK small-business finance catalog.
// OrderIndex defines the default learning sequence shown to new users.
var seedLessons = []Lesson{
	{
		ID:           "cashflow-basics",
		Title:        "Cash Flow Basics: Know What's Coming In and Out",
		Category:     CategoryCashflow,
		Difficulty:   Beginner,
		DurationMin:  10,
		OrderIndex:   1,
		Emoji:        "💷",
		SeasonalTags: nil,
	},
	{
		ID:           "separating-finances",
		Title:        "Separating Business and Personal Money",
		Category:     CategoryCashflow,
		Difficulty:   Beginner,
		DurationMin:  8,
		OrderIndex:   2,
		Emoji:        "🏦",
		SeasonalTags: nil,
	},
	{
		ID:           "invoicing-essentials",
		Title:        "Invoicing Essentials: Get Paid On Time",
		Category:     CategoryInvoicing,
		Difficulty:   Beginner,
		DurationMin:  12,
		OrderIndex:   3,
		Emoji:        "🧾",
		SeasonalTags: nil,
	},
	{
		ID:           "chasing-late-payments",
		Title:        "Chasing Late Payments Without Losing Clients",
		Category:     CategoryInvoicing,
		Difficulty:   Intermediate,
		DurationMin:  15,
		OrderIndex:   4,
		Emoji:        "⏰",
		SeasonalTags: nil,
	},
	{
		ID:           "allowable-expenses",
		Title:        "Allowable Expenses: What You Can Claim",
		Category:     CategoryExpenses,
		Difficulty:   Beginner,
		DurationMin:  15,
		OrderIndex:   5,
		Emoji:        "🧮",
		SeasonalTags: []string{TagSelfAssessment, TagTaxYearEnd},
	},
	{
		ID:           "self-assessment-first-return",
		Title:        "Your First Self Assessment Return, Step by Step",
		Category:     CategoryTax,
		Difficulty:   Beginner,
		DurationMin:  20,
		OrderIndex:   6,
		Emoji:        "📋",
		SeasonalTags: []string{TagSelfAssessment},
	},
	{
		ID:           "payments-on-account",
		Title:        "Payments on Account Explained",
		Category:     CategoryTax,
		Difficulty:   Intermediate,
		DurationMin:  12,
		OrderIndex:   7,
		Emoji:        "💸",
		SeasonalTags: []string{TagSelfAssessment},
	},
	{
		ID:           "sa-records-checklist",
		Title:        "The Records HMRC Expects You to Keep",
		Category:     CategoryTax,
		Difficulty:   Beginner,
		DurationMin:  10,
		OrderIndex:   8,
		Emoji:        "🗂️",
		SeasonalTags: []string{TagSelfAssessment, TagMTD},
	},
	{
		ID:           "year-end-accounts",
		Title:        "Preparing Year-End Accounts for Your Limited Company",
		Category:     CategoryTax,
		Difficulty:   Intermediate,
		DurationMin:  25,
		OrderIndex:   9,
		Emoji:        "📊",
		SeasonalTags: []string{TagTaxYearEnd},
	},
	{
		ID:           "year-end-tax-planning",
		Title:        "Year-End Tax Planning Moves Before 5 April",
		Category:     CategoryTax,
		Difficulty:   Advanced,
		DurationMin:  30,
		OrderIndex:   10,
		Emoji:        "🗓️",
		SeasonalTags: []string{TagTaxYearEnd},
	},
	{
		ID:           "new-year-allowances",
		Title:        "New Tax Year: Fresh Allowances and Rates",
		Category:     CategoryTax,
		Difficulty:   Beginner,
		DurationMin:  10,
		OrderIndex:   11,
		Emoji:        "🌱",
		SeasonalTags: []string{TagNewTaxYear},
	},
	{
		ID:           "setting-aside-tax",
		Title:        "Setting Aside Tax Through the Year",
		Category:     CategoryTax,
		Difficulty:   Beginner,
		DurationMin:  8,
		OrderIndex:   12,
		Emoji:        "🐷",
		SeasonalTags: []string{TagNewTaxYear},
	},
	{
		ID:           "vat-registration",
		Title:        "VAT Registration: When You Must and When You Might",
		Category:     CategoryVAT,
		Difficulty:   Intermediate,
		DurationMin:  18,
		OrderIndex:   13,
		Emoji:        "📈",
		SeasonalTags: []string{TagVATQuarter, TagMTD},
	},
	{
		ID:           "vat-return-walkthrough",
		Title:        "Filing a VAT Return Without the Panic",
		Category:     CategoryVAT,
		Difficulty:   Intermediate,
		DurationMin:  20,
		OrderIndex:   14,
		Emoji:        "🧾",
		SeasonalTags: []string{TagVATQuarter},
	},
	{
		ID:           "vat-schemes",
		Title:        "Flat Rate, Cash and Annual VAT Schemes Compared",
		Category:     CategoryVAT,
		Difficulty:   Advanced,
		DurationMin:  25,
		OrderIndex:   15,
		Emoji:        "⚖️",
		SeasonalTags: []string{TagVATQuarter},
	},
	{
		ID:           "mtd-getting-ready",
		Title:        "Making Tax Digital: Getting Your Records Ready",
		Category:     CategoryVAT,
		Difficulty:   Intermediate,
		DurationMin:  15,
		OrderIndex:   16,
		Emoji:        "💻",
		SeasonalTags: []string{TagMTD},
	},
	{
		ID:           "pricing-for-profit",
		Title:        "Pricing for Profit, Not Just Sales",
		Category:     CategoryPricing,
		Difficulty:   Intermediate,
		DurationMin:  18,
		OrderIndex:   17,
		Emoji:        "🏷️",
		SeasonalTags: nil,
	},
	{
		ID:           "funding-options",
		Title:        "Funding Options for Growing Businesses",
		Category:     CategoryFunding,
		Difficulty:   Advanced,
		DurationMin:  30,
		OrderIndex:   18,
		Emoji:        "🚀",
		SeasonalTags: nil,
	},
}
