package polarity

// rationales holds explanation text for the strongly polarized cells,
// keyed value code → carrier id. Shown in the explanation UI next to a
// carrier's polarity; weaker cells have no recorded rationale.
var rationales = map[string]map[string]string{
	"SDT": {
		"autonomy":  "Independent thought needs room to form and defend one's own conclusions.",
		"structure": "Heavy procedure prescribes the answer before thinking starts.",
	},
	"SDA": {
		"autonomy":  "Choosing one's own course is the value itself; directed work negates it.",
		"structure": "Rule-bound settings leave little course of one's own to choose.",
	},
	"STI": {
		"risk":      "Uncertainty is the raw material of excitement.",
		"novelty":   "Constant change is exactly what stimulation seeks.",
		"structure": "Procedure flattens the surprises stimulation feeds on.",
		"stability": "A predictable decade is a long time without anything new.",
	},
	"HED": {
		"resources": "Comfort and pleasure are easier to buy than to improvise.",
		"tempo":     "Hard deadlines crowd out enjoyment.",
	},
	"ACH": {
		"visibility":  "Success by social standards needs an audience that sees it.",
		"competition": "Explicit ranking is the clearest proof of doing better.",
	},
	"POD": {
		"authority":   "Formal control over people is the direct expression of dominance.",
		"competition": "Contests decide who ends up in charge.",
	},
	"POR": {
		"resources": "Control of material resources is this value, made situational.",
	},
	"SEP": {
		"risk":      "Irreversible stakes threaten the safe ground personal security stands on.",
		"stability": "A durable, predictable future is what personal safety looks like.",
	},
	"SES": {
		"structure": "Strong institutions and enforced rules keep the wider society safe.",
		"stability": "Societal security is stability at the largest scale.",
	},
	"TRD": {
		"risk":      "Gambles endanger what generations worked to preserve.",
		"novelty":   "Constant change erodes the practices tradition maintains.",
		"structure": "Precedent and procedure carry tradition forward.",
		"stability": "Tradition assumes a future that resembles the past.",
	},
	"COR": {
		"structure": "Compliance needs codified rules to comply with.",
		"autonomy":  "Self-governance removes the obligations conformity honors.",
	},
	"COI": {
		"competition": "Pitting people against each other invites the friction this value avoids.",
	},
	"HUM": {
		"authority":   "Commanding others contradicts recognizing one's own insignificance.",
		"visibility":  "A public stage invites the self-importance humility declines.",
		"competition": "Ranking oneself above others is the opposite of humility.",
	},
	"BEC": {
		"collaboration": "Close continuous contact is where caring for one's own people happens.",
		"care":          "Responsibility for dependents is caring made concrete.",
	},
	"BED": {
		"collaboration": "Dependability is proven inside tight teamwork.",
		"care":          "Being counted on by dependents is reliability at its most literal.",
	},
	"UNC": {
		"care":        "Concern for all people extends naturally to those who depend on you.",
		"competition": "Contests produce losers; justice-minded concern resists that framing.",
	},
	"UNT": {
		"competition": "Ranking people against each other undercuts meeting them as equals.",
	},
}
