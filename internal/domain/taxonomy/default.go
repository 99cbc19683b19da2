package taxonomy

// defaultCategories is the reference award taxonomy for the institution.
// Order matters: earlier categories win classification ties.
var defaultCategories = []Category{
	{
		Key:       "leadership",
		Name:      "Internationalization (IZN) Leadership Award",
		Threshold: 3,
		Keywords: []string{
			"leadership", "internationalization", "global", "strategic", "vision", "innovation",
			"partnership", "collaboration", "exchange", "program", "initiative", "development",
			"international", "cross-cultural", "cultural", "diversity", "inclusion", "mentorship",
			"faculty", "student", "research", "academic", "institutional", "governance",
			"policy", "framework", "strategy", "planning", "management", "administration",
			"award", "recognition", "excellence", "achievement", "impact", "outcome",
			"champion", "bold", "cultivate", "global citizens", "lifelong learning",
			"purpose", "ethical", "inclusive leadership",
		},
		Phrases: []string{
			"international leadership", "global strategy", "cross-cultural exchange",
			"international partnership", "global citizenship", "cultural diversity",
			"international collaboration", "global education", "international program",
			"leadership development", "strategic planning", "international initiative",
			"global perspective", "international recognition", "cultural exchange",
			"international faculty", "global student", "international research",
			"champion bold innovation", "cultivate global citizens", "nurture lifelong learning",
			"lead with purpose", "ethical and inclusive leadership",
		},
		Criteria: []string{
			"Champion Bold Innovation",
			"Cultivate Global Citizens",
			"Nurture Lifelong Learning",
			"Lead with Purpose",
			"Ethical and Inclusive Leadership",
		},
	},
	{
		Key:       "education",
		Name:      "Outstanding International Education Program Award",
		Threshold: 2,
		Keywords: []string{
			"education", "program", "curriculum", "academic", "course", "learning",
			"teaching", "pedagogy", "instruction", "training", "development", "skill",
			"knowledge", "expertise", "competency", "qualification", "certification",
			"degree", "diploma", "certificate", "study", "research", "scholarship",
			"international", "global", "cross-cultural", "multicultural", "diverse",
			"inclusive", "accessible", "opportunity", "access", "expand", "foster",
			"collaborative", "innovation", "beyond", "inclusivity",
		},
		Phrases: []string{
			"international education", "global program", "academic excellence",
			"curriculum development", "educational innovation", "learning outcome",
			"student success", "academic achievement", "educational partnership",
			"international curriculum", "global learning", "educational exchange",
			"academic collaboration", "educational initiative", "learning program",
			"expand access to global opportunities", "foster collaborative innovation",
			"embrace inclusivity and beyond",
		},
		Criteria: []string{
			"Expand Access to Global Opportunities",
			"Foster Collaborative Innovation",
			"Embrace Inclusivity and Beyond",
		},
	},
	{
		Key:       "emerging",
		Name:      "Emerging Leadership Award",
		Threshold: 2,
		Keywords: []string{
			"emerging", "new", "innovative", "pioneering", "cutting-edge", "advanced",
			"modern", "contemporary", "current", "latest", "recent", "fresh",
			"breakthrough", "revolutionary", "transformative", "disruptive", "creative",
			"original", "unique", "novel", "unprecedented", "groundbreaking",
			"strategic", "growth", "development", "expansion", "scaling", "scalable",
			"empowerment", "empower", "enable", "facilitate", "support", "assist",
			"mentor", "guide", "lead", "direct", "manage", "coordinate",
		},
		Phrases: []string{
			"emerging leadership", "innovative approach", "pioneering initiative",
			"cutting-edge program", "breakthrough innovation", "transformative change",
			"strategic growth", "inclusive development", "empowerment program",
			"leadership development", "innovative solution", "emerging technology",
			"strategic and inclusive growth", "empowerment of others",
		},
		Criteria: []string{
			"Innovation",
			"Strategic and Inclusive Growth",
			"Empowerment of Others",
		},
	},
	{
		Key:       "regional",
		Name:      "Best Regional Office for Internationalization Award",
		Threshold: 2,
		Keywords: []string{
			"regional", "region", "local", "area", "district", "province", "state",
			"territory", "zone", "office", "branch", "center", "centre", "hub",
			"headquarters", "base", "location", "site", "facility", "institution",
			"comprehensive", "complete", "full", "total", "entire", "whole",
			"cooperation", "collaboration", "partnership", "alliance", "network",
			"coordination", "coordinate", "manage", "administration", "governance",
			"impact", "effect", "result", "outcome", "achievement", "success",
			"measurable", "quantifiable", "assessable", "evaluable",
		},
		Phrases: []string{
			"regional office", "local partnership", "regional collaboration",
			"comprehensive program", "regional initiative", "local development",
			"regional coordination", "local impact", "regional success",
			"comprehensive internationalization efforts", "cooperation and collaboration",
			"measurable impact",
		},
		Criteria: []string{
			"Comprehensive Internationalization Efforts",
			"Cooperation and Collaboration",
			"Measurable Impact",
		},
	},
	{
		Key:       "citizenship",
		Name:      "Global Citizenship Award",
		Threshold: 2,
		Keywords: []string{
			"citizenship", "citizen", "community", "society", "social", "civic",
			"public", "civil", "democratic", "participatory", "engagement", "involvement",
			"participation", "contribution", "service", "volunteer", "activism",
			"advocacy", "awareness", "consciousness", "understanding", "knowledge",
			"cultural", "intercultural", "multicultural", "diversity", "inclusion",
			"tolerance", "respect", "acceptance", "appreciation", "celebration",
			"ignite", "spark", "inspire", "motivate", "encourage", "stimulate",
			"changemaker", "change-maker", "agent", "catalyst", "driver", "force",
			"cultivate", "develop", "foster", "nurture", "grow", "build",
			"active", "engaged", "involved", "interactive",
		},
		Phrases: []string{
			"global citizenship", "cultural awareness", "community engagement",
			"social responsibility", "civic participation", "cultural exchange",
			"intercultural understanding", "global awareness", "cultural diversity",
			"community service", "social impact", "cultural celebration",
			"ignite intercultural understanding", "empower changemakers",
			"cultivate active engagement",
		},
		Criteria: []string{
			"Ignite Intercultural Understanding",
			"Empower Changemakers",
			"Cultivate Active Engagement",
		},
	},
}

// Default returns the built-in five-category taxonomy.
func Default() *Taxonomy {
	t, err := New(defaultCategories)
	if err != nil {
		// The built-in data is static; a failure here is a programming error.
		panic(err)
	}
	return t
}
