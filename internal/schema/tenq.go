// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

// tenQItems is the quarterly report schema. Item numbers repeat between
// Part I and Part II, so ids are part-qualified and disambiguation
// leans on schema order plus the per-part section titles.
var tenQItems = []itemDef{
	{id: "part_1__1", name: "Financial Statements", required: true, titles: []string{
		`(?:condensed\s+)?(?:consolidated\s+)?(?:interim\s+)?financial\s+statements`,
	}},
	{id: "part_1__2", name: "Management's Discussion and Analysis of Financial Condition and Results of Operations", required: true, titles: []string{
		`management['\x{2019}]?s?\s+discussion\s+and\s+analysis`,
	}},
	{id: "part_1__3", name: "Quantitative and Qualitative Disclosures About Market Risk", titles: []string{
		`quantitative\s+and\s+qualitative\s+disclosures?\s+about\s+market\s+risk`,
	}},
	{id: "part_1__4", name: "Controls and Procedures", titles: []string{
		`controls\s+and\s+procedures`,
	}},
	{id: "part_2__1", name: "Legal Proceedings", titles: []string{
		`legal\s+proceedings`,
	}},
	{id: "part_2__1A", name: "Risk Factors", titles: []string{
		`risk\s+factors`,
	}},
	{id: "part_2__2", name: "Unregistered Sales of Equity Securities and Use of Proceeds", titles: []string{
		`unregistered\s+sales?\s+of\s+equity\s+securities`,
		`changes\s+in\s+securities`,
	}},
	{id: "part_2__3", name: "Defaults Upon Senior Securities", titles: []string{
		`defaults?\s+upon\s+senior\s+securities`,
	}},
	{id: "part_2__4", name: "Mine Safety Disclosures", titles: []string{
		`mine\s+safety\s+disclosures?`,
		`submission\s+of\s+matters\s+to\s+a\s+vote`,
	}},
	{id: "part_2__5", name: "Other Information", titles: []string{
		`other\s+information`,
	}},
	{id: "part_2__6", name: "Exhibits", titles: []string{
		`exhibits?\b`,
	}},
}
