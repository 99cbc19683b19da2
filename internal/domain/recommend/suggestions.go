package recommend

// suggestions maps each known criterion to its canned content suggestion.
var suggestions = map[string]string{
	"Champion Bold Innovation":                  "Create documents or events showcasing innovative international programs, cutting-edge research collaborations, or pioneering educational initiatives.",
	"Cultivate Global Citizens":                 "Document student exchange programs, cultural immersion activities, or global citizenship education initiatives.",
	"Nurture Lifelong Learning":                 "Showcase continuing education programs, professional development opportunities, or alumni engagement activities.",
	"Lead with Purpose":                         "Document strategic planning initiatives, vision statements, or leadership development programs.",
	"Ethical and Inclusive Leadership":          "Showcase diversity and inclusion programs, ethical guidelines, or inclusive policy implementations.",
	"Expand Access to Global Opportunities":     "Document scholarship programs, international partnerships, or accessibility initiatives.",
	"Foster Collaborative Innovation":           "Showcase joint research projects, international collaborations, or innovative program partnerships.",
	"Embrace Inclusivity and Beyond":            "Document inclusive practices, diversity initiatives, or equity-focused programs.",
	"Innovation":                                "Create content highlighting new approaches, creative solutions, or breakthrough initiatives.",
	"Strategic and Inclusive Growth":            "Document growth strategies, expansion plans, or inclusive development programs.",
	"Empowerment of Others":                     "Showcase mentoring programs, capacity building initiatives, or empowerment-focused activities.",
	"Comprehensive Internationalization Efforts": "Document holistic internationalization strategies, comprehensive program portfolios, or integrated approaches.",
	"Cooperation and Collaboration":             "Showcase partnership agreements, collaborative projects, or cooperative initiatives.",
	"Measurable Impact":                         "Document outcomes, metrics, success stories, or quantifiable results.",
	"Ignite Intercultural Understanding":        "Showcase cultural exchange programs, intercultural dialogue initiatives, or cultural awareness activities.",
	"Empower Changemakers":                      "Document leadership development programs, change initiatives, or empowerment-focused activities.",
	"Cultivate Active Engagement":               "Showcase community engagement programs, participatory initiatives, or active involvement activities.",
}
