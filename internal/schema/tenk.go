// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

// tenKItems is the annual report schema. Title fragments cover the
// synonym headings seen across filing years (e.g. item 4 was
// "Submission of Matters to a Vote of Security Holders" before 2010,
// item 6 became "[Reserved]" in 2021).
var tenKItems = []itemDef{
	{id: "1", name: "Business", required: true, titles: []string{
		`business\b`,
		`description\s+of\s+business`,
	}},
	{id: "1A", name: "Risk Factors", required: true, titles: []string{
		`risk\s+factors`,
	}},
	{id: "1B", name: "Unresolved Staff Comments", titles: []string{
		`unresolved\s+staff\s+comments`,
	}},
	{id: "1C", name: "Cybersecurity", titles: []string{
		`cybersecurity`,
	}},
	{id: "2", name: "Properties", titles: []string{
		`propert(?:ies|y)`,
	}},
	{id: "3", name: "Legal Proceedings", required: true, titles: []string{
		`legal\s+proceedings`,
	}},
	{id: "4", name: "Mine Safety Disclosures", titles: []string{
		`mine\s+safety\s+disclosures?`,
		`submission\s+of\s+matters\s+to\s+a\s+vote`,
		`\[?\s*reserved\s*\]?`,
	}},
	{id: "5", name: "Market for Registrant's Common Equity", titles: []string{
		`market\s+for\s+(?:the\s+)?(?:registrant|company)`,
	}},
	{id: "6", name: "Selected Financial Data", titles: []string{
		`selected\s+(?:consolidated\s+)?financial\s+data`,
		`\[?\s*reserved\s*\]?`,
	}},
	{id: "7", name: "Management's Discussion and Analysis of Financial Condition and Results of Operations", required: true, titles: []string{
		`management['\x{2019}]?s?\s+discussion\s+and\s+analysis`,
	}},
	{id: "7A", name: "Quantitative and Qualitative Disclosures About Market Risk", required: true, titles: []string{
		`quantitative\s+and\s+qualitative\s+disclosures?\s+about\s+market\s+risk`,
	}},
	{id: "8", name: "Financial Statements and Supplementary Data", required: true, titles: []string{
		`financial\s+statements\s+and\s+supplementary\s+data`,
	}},
	{id: "9", name: "Changes in and Disagreements with Accountants", titles: []string{
		`changes\s+in\s+and\s+disagreements\s+with\s+accountants`,
	}},
	{id: "9A", name: "Controls and Procedures", titles: []string{
		`controls\s+and\s+procedures`,
	}},
	{id: "9B", name: "Other Information", titles: []string{
		`other\s+information`,
	}},
	{id: "9C", name: "Disclosure Regarding Foreign Jurisdictions that Prevent Inspections", titles: []string{
		`disclosure\s+regarding\s+foreign\s+jurisdictions`,
	}},
	{id: "10", name: "Directors, Executive Officers and Corporate Governance", titles: []string{
		`directors,?\s+(?:and\s+)?executive\s+officers`,
	}},
	{id: "11", name: "Executive Compensation", titles: []string{
		`executive\s+compensation`,
	}},
	{id: "12", name: "Security Ownership of Certain Beneficial Owners and Management", titles: []string{
		`security\s+ownership\s+of\s+certain\s+beneficial\s+owners`,
	}},
	{id: "13", name: "Certain Relationships and Related Transactions", titles: []string{
		`certain\s+relationships\s+and\s+related\s+transactions`,
	}},
	{id: "14", name: "Principal Accountant Fees and Services", titles: []string{
		`principal\s+account(?:ant|ing)\s+fees\s+and\s+services`,
	}},
	{id: "15", name: "Exhibits, Financial Statement Schedules", titles: []string{
		`exhibits?,?\s+(?:and\s+)?financial\s+statement\s+schedules`,
		`exhibits,?\s+and\s+reports\s+on\s+form\s+8-?k`,
	}},
	{id: "16", name: "Form 10-K Summary", titles: []string{
		`form\s+10-?k\s+summary`,
	}},
}
