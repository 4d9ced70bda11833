// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

// eightKItems is the current report schema under the dotted numbering
// in effect since 2004-08-23. Current reports are event-driven, so no
// item is marked required.
var eightKItems = []itemDef{
	{id: "1.01", name: "Entry into a Material Definitive Agreement", titles: []string{
		`entry\s+into\s+a\s+material\s+definitive\s+agreement`,
	}},
	{id: "1.02", name: "Termination of a Material Definitive Agreement", titles: []string{
		`termination\s+of\s+a\s+material\s+definitive\s+agreement`,
	}},
	{id: "1.03", name: "Bankruptcy or Receivership", titles: []string{
		`bankruptcy\s+or\s+receivership`,
	}},
	{id: "1.04", name: "Mine Safety — Reporting of Shutdowns and Patterns of Violations", titles: []string{
		`mine\s+safety`,
	}},
	{id: "1.05", name: "Material Cybersecurity Incidents", titles: []string{
		`material\s+cybersecurity\s+incidents?`,
	}},
	{id: "2.01", name: "Completion of Acquisition or Disposition of Assets", titles: []string{
		`completion\s+of\s+acquisition\s+or\s+disposition\s+of\s+assets`,
	}},
	{id: "2.02", name: "Results of Operations and Financial Condition", titles: []string{
		`results\s+of\s+operations\s+and\s+financial\s+condition`,
	}},
	{id: "2.03", name: "Creation of a Direct Financial Obligation", titles: []string{
		`creation\s+of\s+a\s+direct\s+financial\s+obligation`,
	}},
	{id: "2.04", name: "Triggering Events That Accelerate or Increase a Direct Financial Obligation", titles: []string{
		`triggering\s+events\s+that\s+accelerate`,
	}},
	{id: "2.05", name: "Costs Associated with Exit or Disposal Activities", titles: []string{
		`costs\s+associated\s+with\s+exit\s+or\s+disposal`,
	}},
	{id: "2.06", name: "Material Impairments", titles: []string{
		`material\s+impairments?`,
	}},
	{id: "3.01", name: "Notice of Delisting or Failure to Satisfy a Continued Listing Rule", titles: []string{
		`notice\s+of\s+delisting`,
	}},
	{id: "3.02", name: "Unregistered Sales of Equity Securities", titles: []string{
		`unregistered\s+sales?\s+of\s+equity\s+securities`,
	}},
	{id: "3.03", name: "Material Modification to Rights of Security Holders", titles: []string{
		`material\s+modifications?\s+to\s+rights\s+of\s+security\s+holders`,
	}},
	{id: "4.01", name: "Changes in Registrant's Certifying Accountant", titles: []string{
		`changes?\s+in\s+registrant['\x{2019}]?s?\s+certifying\s+accountant`,
	}},
	{id: "4.02", name: "Non-Reliance on Previously Issued Financial Statements", titles: []string{
		`non-?reliance\s+on\s+previously\s+issued\s+financial\s+statements`,
	}},
	{id: "5.01", name: "Changes in Control of Registrant", titles: []string{
		`changes?\s+in\s+control\s+of\s+registrant`,
	}},
	{id: "5.02", name: "Departure of Directors or Certain Officers; Election of Directors", titles: []string{
		`departure\s+of\s+directors?`,
		`election\s+of\s+directors?`,
	}},
	{id: "5.03", name: "Amendments to Articles of Incorporation or Bylaws; Change in Fiscal Year", titles: []string{
		`amendments?\s+to\s+articles\s+of\s+incorporation`,
	}},
	{id: "5.04", name: "Temporary Suspension of Trading Under Registrant's Employee Benefit Plans", titles: []string{
		`temporary\s+suspension\s+of\s+trading`,
	}},
	{id: "5.05", name: "Amendments to the Registrant's Code of Ethics", titles: []string{
		`amendments?\s+to\s+the\s+registrant['\x{2019}]?s?\s+code\s+of\s+ethics`,
	}},
	{id: "5.06", name: "Change in Shell Company Status", titles: []string{
		`change\s+in\s+shell\s+company\s+status`,
	}},
	{id: "5.07", name: "Submission of Matters to a Vote of Security Holders", titles: []string{
		`submission\s+of\s+matters\s+to\s+a\s+vote`,
	}},
	{id: "5.08", name: "Shareholder Director Nominations", titles: []string{
		`shareholder\s+director\s+nominations?`,
	}},
	{id: "6.01", name: "ABS Informational and Computational Material", titles: []string{
		`abs\s+informational\s+and\s+computational\s+material`,
	}},
	{id: "6.02", name: "Change of Servicer or Trustee", titles: []string{
		`change\s+of\s+servicer\s+or\s+trustee`,
	}},
	{id: "6.03", name: "Change in Credit Enhancement or Other External Support", titles: []string{
		`change\s+in\s+credit\s+enhancement`,
	}},
	{id: "6.04", name: "Failure to Make a Required Distribution", titles: []string{
		`failure\s+to\s+make\s+a\s+required\s+distribution`,
	}},
	{id: "6.05", name: "Securities Act Updating Disclosure", titles: []string{
		`securities\s+act\s+updating\s+disclosure`,
	}},
	{id: "7.01", name: "Regulation FD Disclosure", titles: []string{
		`regulation\s+fd\s+disclosure`,
	}},
	{id: "8.01", name: "Other Events", titles: []string{
		`other\s+events`,
	}},
	{id: "9.01", name: "Financial Statements and Exhibits", titles: []string{
		`financial\s+statements\s+and\s+exhibits`,
	}},
}

// eightKObsoleteItems is the numeric 8-K schema used before 2004-08-23.
var eightKObsoleteItems = []itemDef{
	{id: "1", name: "Changes in Control of Registrant", titles: []string{
		`changes?\s+in\s+control\s+of\s+registrant`,
	}},
	{id: "2", name: "Acquisition or Disposition of Assets", titles: []string{
		`acquisition\s+or\s+disposition\s+of\s+assets`,
	}},
	{id: "3", name: "Bankruptcy or Receivership", titles: []string{
		`bankruptcy\s+or\s+receivership`,
	}},
	{id: "4", name: "Changes in Registrant's Certifying Accountant", titles: []string{
		`changes?\s+in\s+registrant['\x{2019}]?s?\s+certifying\s+accountant`,
	}},
	{id: "5", name: "Other Events", titles: []string{
		`other\s+events`,
	}},
	{id: "6", name: "Resignations of Registrant's Directors", titles: []string{
		`resignations?\s+of\s+registrant['\x{2019}]?s?\s+directors`,
	}},
	{id: "7", name: "Financial Statements and Exhibits", titles: []string{
		`financial\s+statements(?:,\s+pro\s+forma\s+financial\s+information)?\s+and\s+exhibits`,
	}},
	{id: "8", name: "Change in Fiscal Year", titles: []string{
		`change\s+in\s+fiscal\s+year`,
	}},
	{id: "9", name: "Regulation FD Disclosure", titles: []string{
		`regulation\s+fd\s+disclosure`,
	}},
	{id: "10", name: "Amendments to the Registrant's Code of Ethics", titles: []string{
		`amendments?\s+to\s+the\s+registrant['\x{2019}]?s?\s+code\s+of\s+ethics`,
	}},
	{id: "11", name: "Temporary Suspension of Trading Under Registrant's Employee Benefit Plans", titles: []string{
		`temporary\s+suspension\s+of\s+trading`,
	}},
	{id: "12", name: "Results of Operations and Financial Condition", titles: []string{
		`results\s+of\s+operations\s+and\s+financial\s+condition`,
	}},
}
