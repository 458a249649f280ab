package discipline

const staticTablesVersion = "static-2024.1"

var genericTable = Table{
	{Name: "accounting", Prefixes: []string{"ACC", "ACCT"}},
	{Name: "anthropology", Prefixes: []string{"ANTH"}},
	{Name: "art", Prefixes: []string{"ART"}},
	{Name: "biology", Prefixes: []string{"BIOL", "BIO"}},
	{Name: "business_administration", Prefixes: []string{"BUS", "MGT"}},
	{Name: "chemistry", Prefixes: []string{"CHEM"}},
	{Name: "communication", Prefixes: []string{"COMM"}},
	{Name: "computer_science", Prefixes: []string{"CS", "CSC", "CIS"}},
	{Name: "computer_engineering", Prefixes: []string{"CPE", "ECE"}},
	{Name: "criminal_justice", Prefixes: []string{"CJ", "CRJ"}},
	{Name: "economics", Prefixes: []string{"ECON"}},
	{Name: "education", Prefixes: []string{"EDUC", "EDU"}},
	{Name: "electrical_engineering", Prefixes: []string{"EE", "ECE"}},
	{Name: "engineering", Prefixes: []string{"ENGR", "EGR"}},
	{Name: "english", Prefixes: []string{"ENG", "ENGL"}},
	{Name: "finance", Prefixes: []string{"FIN"}},
	{Name: "geography", Prefixes: []string{"GEOG"}},
	{Name: "geology", Prefixes: []string{"GEOL"}},
	{Name: "history", Prefixes: []string{"HIST"}},
	{Name: "information_technology", Prefixes: []string{"IT", "CIS"}},
	{Name: "marketing", Prefixes: []string{"MKT", "MKTG"}},
	{Name: "mathematics", Prefixes: []string{"MATH", "MTH"}},
	{Name: "mechanical_engineering", Prefixes: []string{"ME", "MECH"}},
	{Name: "music", Prefixes: []string{"MUS", "MUSC"}},
	{Name: "nursing", Prefixes: []string{"NURS"}},
	{Name: "philosophy", Prefixes: []string{"PHIL"}},
	{Name: "physics", Prefixes: []string{"PHYS"}},
	{Name: "political_science", Prefixes: []string{"POLS", "POLI", "PSC"}},
	{Name: "psychology", Prefixes: []string{"PSY", "PSYC"}},
	{Name: "public_health", Prefixes: []string{"PH", "PUBH"}},
	{Name: "social_work", Prefixes: []string{"SW", "SOWK"}},
	{Name: "sociology", Prefixes: []string{"SOC"}},
	{Name: "statistics", Prefixes: []string{"STAT"}},
}

var uhManoaTable = Table{
	{Name: "accounting", Prefixes: []string{"ACC"}},
	{Name: "american_studies", Prefixes: []string{"AMST"}},
	{Name: "anthropology", Prefixes: []string{"ANTH"}},
	{Name: "architecture", Prefixes: []string{"ARCH"}},
	{Name: "art", Prefixes: []string{"ART"}},
	{Name: "biology", Prefixes: []string{"BIOL"}},
	{Name: "business_administration", Prefixes: []string{"BUS", "MGT", "FIN", "MKT"}},
	{Name: "chemistry", Prefixes: []string{"CHEM"}},
	{Name: "civil_engineering", Prefixes: []string{"CEE"}},
	{Name: "communications", Prefixes: []string{"COM"}},
	{Name: "computer_science", Prefixes: []string{"ICS"}},
	{Name: "computer_engineering", Prefixes: []string{"EE", "ICS"}},
	{Name: "economics", Prefixes: []string{"ECON"}},
	{Name: "education", Prefixes: []string{"EDCS", "EDEF", "ITE"}},
	{Name: "electrical_engineering", Prefixes: []string{"EE"}},
	{Name: "english", Prefixes: []string{"ENG"}},
	{Name: "finance", Prefixes: []string{"FIN"}},
	{Name: "geography", Prefixes: []string{"GEOG"}},
	{Name: "geology", Prefixes: []string{"GG"}},
	{Name: "hawaiian_studies", Prefixes: []string{"HWST"}},
	{Name: "hawaiian_language", Prefixes: []string{"HAW"}},
	{Name: "history", Prefixes: []string{"HIST"}},
	{Name: "information_computer_sciences", Prefixes: []string{"ICS"}},
	{Name: "journalism", Prefixes: []string{"JOUR"}},
	{Name: "kinesiology", Prefixes: []string{"KRS"}},
	{Name: "linguistics", Prefixes: []string{"LING"}},
	{Name: "marine_biology", Prefixes: []string{"BIOL", "OCN"}},
	{Name: "mathematics", Prefixes: []string{"MATH"}},
	{Name: "mechanical_engineering", Prefixes: []string{"ME"}},
	{Name: "music", Prefixes: []string{"MUS"}},
	{Name: "natural_resources", Prefixes: []string{"NREM"}},
	{Name: "nursing", Prefixes: []string{"NURS"}},
	{Name: "oceanography", Prefixes: []string{"OCN"}},
	{Name: "philosophy", Prefixes: []string{"PHIL"}},
	{Name: "physics", Prefixes: []string{"PHYS"}},
	{Name: "political_science", Prefixes: []string{"POLS"}},
	{Name: "psychology", Prefixes: []string{"PSY"}},
	{Name: "public_health", Prefixes: []string{"PH"}},
	{Name: "social_work", Prefixes: []string{"SW"}},
	{Name: "sociology", Prefixes: []string{"SOC"}},
	{Name: "travel_industry_management", Prefixes: []string{"TIM"}},
}

// StaticTables returns the built-in tables: the generic fallback plus uh_manoa.
func StaticTables() *Tables {
	return &Tables{
		Rev:     staticTablesVersion,
		Generic: genericTable,
		Institutions: map[string]Table{
			"uh_manoa": uhManoaTable,
		},
	}
}
