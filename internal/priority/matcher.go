package priority

import (
	"strings"

	"github.com/finlearn/finlearn/internal/catalog"
)

// Matcher decides whether a free-text profile field makes a lesson
// relevant. Keyword-map matching is fragile by nature, so each mapping
// is its own strategy and can be swapped for a proper tagging scheme
// without touching the scorer.
type Matcher interface {
	Matches(value string, lesson catalog.Lesson) bool
}

// NewPainPointMatcher returns the default pain-point matcher. Exposed
// so the recommender can reuse it for its primary slot.
func NewPainPointMatcher() Matcher { return painPointMatcher{} }

// painPointMatcher maps declared pain points to lesson categories by
// keyword substring, case-insensitive.
type painPointMatcher struct{}

var painPointCategories = map[string][]catalog.Category{
	"cash":    {catalog.CategoryCashflow},
	"money":   {catalog.CategoryCashflow},
	"paid":    {catalog.CategoryInvoicing},
	"invoic":  {catalog.CategoryInvoicing},
	"late":    {catalog.CategoryInvoicing},
	"tax":     {catalog.CategoryTax},
	"hmrc":    {catalog.CategoryTax},
	"vat":     {catalog.CategoryVAT},
	"expense": {catalog.CategoryExpenses},
	"receipt": {catalog.CategoryExpenses},
	"pricing": {catalog.CategoryPricing},
	"price":   {catalog.CategoryPricing},
	"funding": {catalog.CategoryFunding},
	"loan":    {catalog.CategoryFunding},
	"invest":  {catalog.CategoryFunding},
}

func (painPointMatcher) Matches(value string, lesson catalog.Lesson) bool {
	v := strings.ToLower(value)
	if v == "" {
		return false
	}
	for keyword, cats := range painPointCategories {
		if !strings.Contains(v, keyword) {
			continue
		}
		for _, c := range cats {
			if lesson.Category == c {
				return true
			}
		}
	}
	return false
}

// goalMatcher maps learning goals to lesson title keywords.
type goalMatcher struct{}

var goalTitleKeywords = map[string][]string{
	"tax":     {"tax", "self assessment", "year-end"},
	"vat":     {"vat"},
	"cash":    {"cash flow", "cash"},
	"invoice": {"invoic", "paid", "payment"},
	"grow":    {"funding", "pricing"},
	"fund":    {"funding"},
	"price":   {"pricing"},
	"digital": {"digital"},
	"record":  {"records", "digital"},
}

func (goalMatcher) Matches(value string, lesson catalog.Lesson) bool {
	v := strings.ToLower(value)
	if v == "" {
		return false
	}
	title := strings.ToLower(lesson.Title)
	for keyword, titleWords := range goalTitleKeywords {
		if !strings.Contains(v, keyword) {
			continue
		}
		for _, w := range titleWords {
			if strings.Contains(title, w) {
				return true
			}
		}
	}
	return false
}

// industryMatcher maps industries to the categories that matter most
// for them.
type industryMatcher struct{}

var industryCategories = map[string][]catalog.Category{
	"retail":       {catalog.CategoryCashflow, catalog.CategoryVAT},
	"shop":         {catalog.CategoryCashflow, catalog.CategoryVAT},
	"ecommerce":    {catalog.CategoryVAT, catalog.CategoryPricing},
	"online":       {catalog.CategoryVAT, catalog.CategoryPricing},
	"construction": {catalog.CategoryCashflow, catalog.CategoryInvoicing},
	"trade":        {catalog.CategoryInvoicing, catalog.CategoryExpenses},
	"freelance":    {catalog.CategoryInvoicing, catalog.CategoryTax},
	"consult":      {catalog.CategoryInvoicing, catalog.CategoryTax},
	"creative":     {catalog.CategoryInvoicing, catalog.CategoryPricing},
	"hospitality":  {catalog.CategoryCashflow, catalog.CategoryVAT},
	"food":         {catalog.CategoryCashflow, catalog.CategoryVAT},
}

func (industryMatcher) Matches(value string, lesson catalog.Lesson) bool {
	v := strings.ToLower(value)
	if v == "" {
		return false
	}
	for keyword, cats := range industryCategories {
		if !strings.Contains(v, keyword) {
			continue
		}
		for _, c := range cats {
			if lesson.Category == c {
				return true
			}
		}
	}
	return false
}
