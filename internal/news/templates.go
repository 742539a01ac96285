package news

// template is one headline pattern with its fixed price impact.
// "{company}" in the pattern is replaced with the company name.
type template struct {
	headline string
	impact   float64
}

var templates = map[Category][]template{
	CategoryPositive: {
		{"{company} Reports Record Quarterly Profits", 0.15},
		{"{company} Announces Revolutionary New Product", 0.2},
		{"{company} Expands into New Markets", 0.1},
		{"{company} Exceeds Analyst Expectations", 0.12},
		{"Investors Bullish on {company}'s Future", 0.08},
		{"{company} Secures Major Partnership Deal", 0.15},
		{"{company} Stock Upgraded by Analysts", 0.1},
	},
	CategoryNegative: {
		{"{company} Faces Regulatory Investigation", -0.18},
		{"{company} Recalls Defective Products", -0.15},
		{"{company} CEO Steps Down Amid Controversy", -0.2},
		{"{company} Reports Disappointing Earnings", -0.12},
		{"{company} Loses Key Client", -0.1},
		{"Analysts Downgrade {company} Stock", -0.08},
		{"{company} Faces Increased Competition", -0.1},
	},
	CategoryNeutral: {
		{"{company} Announces Leadership Restructuring", 0.03},
		{"{company} to Present at Industry Conference", 0.02},
		{"{company} Maintains Current Outlook", 0.01},
		{"{company} Releases Sustainability Report", 0.02},
		{"{company} Updates Corporate Policies", 0.01},
	},
	CategoryMarket: {
		{"Market Rallies on Economic Data", 0.05},
		{"Investors Concerned About Inflation", -0.05},
		{"Central Bank Adjusts Interest Rates", -0.03},
		{"Economic Growth Exceeds Expectations", 0.04},
		{"Global Trade Tensions Escalate", -0.06},
	},
}
