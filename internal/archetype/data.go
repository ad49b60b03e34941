package archetype

import "github.com/brtrx/values-explorer-sub000/internal/schema"

// categories lists the catalog's categories in canonical order.
var categories = []string{
	"mythological",
	"historical",
	"fictional",
	"archetypal",
	"professions",
	"philosophies",
}

// archetypes is the static reference catalog. Weight maps are sparse:
// only the values that define the figure are listed, everything else is
// implicitly neutral.
var archetypes = []schema.Archetype{
	// ── mythological ──────────────────────────────────────────────────────
	{Name: "Prometheus", Category: "mythological",
		Description: "Steals fire from the gods to hand humanity its future.",
		ValueProfile: map[string]int{
			"SDT": 3, "SDA": 3, "UNC": 2, "STI": 2, "COR": -3, "TRD": -2, "SEP": -2,
		}},
	{Name: "Athena", Category: "mythological",
		Description: "Strategy, craft, and measured judgment in war and peace.",
		ValueProfile: map[string]int{
			"SDT": 3, "ACH": 2, "SES": 2, "COR": 1, "STI": -1, "HED": -2,
		}},
	{Name: "Odysseus", Category: "mythological",
		Description: "Cunning wanderer who survives on wit and improvisation.",
		ValueProfile: map[string]int{
			"SDA": 3, "STI": 2, "SDT": 2, "ACH": 2, "SEP": 1, "COR": -2, "HUM": -1,
		}},
	{Name: "Hestia", Category: "mythological",
		Description: "Keeper of the hearth; constancy over adventure.",
		ValueProfile: map[string]int{
			"SEP": 3, "TRD": 3, "BED": 2, "BEC": 2, "STI": -3, "POD": -2,
		}},
	{Name: "Ares", Category: "mythological",
		Description: "Raw contest; victory is its own justification.",
		ValueProfile: map[string]int{
			"POD": 3, "STI": 2, "ACH": 2, "FAC": 1, "COI": -3, "HUM": -3, "UNT": -2,
		}},
	{Name: "Demeter", Category: "mythological",
		Description: "Nurture, harvest, and fierce protection of her own.",
		ValueProfile: map[string]int{
			"BEC": 3, "UNN": 2, "SEP": 2, "TRD": 1, "POD": -1, "STI": -1,
		}},
	{Name: "Hermes", Category: "mythological",
		Description: "Messenger, trickster, patron of travelers and thieves.",
		ValueProfile: map[string]int{
			"STI": 3, "SDA": 2, "HED": 2, "SDT": 1, "COR": -2, "TRD": -2, "SES": -1,
		}},
	{Name: "Apollo", Category: "mythological",
		Description: "Order, harmony, and excellence held to a public standard.",
		ValueProfile: map[string]int{
			"ACH": 3, "FAC": 2, "COR": 2, "SDT": 1, "STI": -1, "HUM": -2,
		}},
	{Name: "Dionysus", Category: "mythological",
		Description: "Ecstasy and abandon; every boundary is provisional.",
		ValueProfile: map[string]int{
			"HED": 3, "STI": 3, "SDA": 2, "COR": -3, "SES": -2, "SEP": -2, "FAC": -1,
		}},
	{Name: "Antigone", Category: "mythological",
		Description: "Buries her brother against the king's decree.",
		ValueProfile: map[string]int{
			"TRD": 3, "BED": 3, "UNC": 2, "SDA": 2, "COR": -3, "SEP": -2, "FAC": -1,
		}},
	{Name: "Gaia", Category: "mythological",
		Description: "The living earth itself, prior to every institution.",
		ValueProfile: map[string]int{
			"UNN": 3, "UNC": 2, "TRD": 1, "POR": -2, "POD": -2,
		}},
	{Name: "Loki", Category: "mythological",
		Description: "Shape-shifter who delights in unravelling every settled order.",
		ValueProfile: map[string]int{
			"STI": 3, "SDA": 2, "HED": 1, "COR": -3, "TRD": -3, "BED": -2, "SES": -2,
		}},
	{Name: "Frigg", Category: "mythological",
		Description: "Foresighted guardian of home and kin.",
		ValueProfile: map[string]int{
			"BEC": 3, "SEP": 2, "BED": 2, "TRD": 2, "STI": -2, "POD": -1,
		}},
	{Name: "Icarus", Category: "mythological",
		Description: "Flies toward the sun against every warning.",
		ValueProfile: map[string]int{
			"STI": 3, "SDA": 2, "ACH": 2, "SEP": -3, "COI": -2, "HUM": -2,
		}},
	{Name: "Themis", Category: "mythological",
		Description: "Divine law and right order, blind to persons.",
		ValueProfile: map[string]int{
			"COR": 3, "SES": 3, "UNC": 2, "BED": 1, "STI": -2, "HED": -2,
		}},

	// ── historical ────────────────────────────────────────────────────────
	{Name: "Marie Curie", Category: "historical",
		Description: "Two Nobel prizes, one laboratory, no concessions.",
		ValueProfile: map[string]int{
			"SDT": 3, "ACH": 3, "SDA": 2, "UNC": 1, "HED": -2, "FAC": -1, "SEP": -1,
		}},
	{Name: "Ernest Shackleton", Category: "historical",
		Description: "Brings every man home from the ice.",
		ValueProfile: map[string]int{
			"STI": 3, "BED": 3, "SDA": 2, "ACH": 2, "SEP": -2, "HED": -2,
		}},
	{Name: "Florence Nightingale", Category: "historical",
		Description: "Reinvents nursing through statistics and stubbornness.",
		ValueProfile: map[string]int{
			"BEC": 3, "UNC": 3, "ACH": 2, "SDT": 1, "HED": -2, "FAC": -1,
		}},
	{Name: "Niccolò Machiavelli", Category: "historical",
		Description: "Power as it is, not as it ought to be.",
		ValueProfile: map[string]int{
			"POD": 3, "SDT": 2, "SES": 2, "ACH": 1, "COI": -2, "HUM": -2, "TRD": -1,
		}},
	{Name: "Harriet Tubman", Category: "historical",
		Description: "Returns again and again into danger to lead others out.",
		ValueProfile: map[string]int{
			"UNC": 3, "SDA": 3, "BEC": 2, "SEP": -3, "COR": -2, "FAC": -1,
		}},
	{Name: "Leonardo da Vinci", Category: "historical",
		Description: "Notebooks of everything; mastery as curiosity's byproduct.",
		ValueProfile: map[string]int{
			"SDT": 3, "STI": 2, "SDA": 2, "ACH": 1, "COR": -2, "TRD": -1,
		}},
	{Name: "Queen Victoria", Category: "historical",
		Description: "Empire, propriety, and an era named after her.",
		ValueProfile: map[string]int{
			"TRD": 3, "SES": 3, "FAC": 2, "POD": 2, "COR": 2, "STI": -2, "HED": -1,
		}},
	{Name: "Mahatma Gandhi", Category: "historical",
		Description: "Disobedience without violence, authority without office.",
		ValueProfile: map[string]int{
			"UNC": 3, "HUM": 3, "TRD": 2, "SDA": 2, "POD": -3, "POR": -3, "HED": -2,
		}},
	{Name: "Catherine the Great", Category: "historical",
		Description: "Enlightened absolutism, expanded borders, patron of ideas.",
		ValueProfile: map[string]int{
			"POD": 3, "ACH": 3, "SDT": 2, "POR": 2, "STI": 1, "HUM": -2, "COI": -1,
		}},
	{Name: "Charles Darwin", Category: "historical",
		Description: "Twenty years of patience before one dangerous idea.",
		ValueProfile: map[string]int{
			"SDT": 3, "SEP": 1, "UNN": 2, "ACH": 1, "FAC": -1, "STI": -1,
		}},
	{Name: "Joan of Arc", Category: "historical",
		Description: "Conviction that outranks every earthly hierarchy.",
		ValueProfile: map[string]int{
			"TRD": 3, "SDA": 3, "ACH": 2, "BED": 2, "SEP": -3, "HED": -2,
		}},
	{Name: "Benjamin Franklin", Category: "historical",
		Description: "Printer, diplomat, inventor; usefulness as a creed.",
		ValueProfile: map[string]int{
			"SDT": 2, "ACH": 2, "UNC": 2, "HED": 1, "STI": 1, "TRD": -1,
		}},
	{Name: "Rosa Parks", Category: "historical",
		Description: "Keeps her seat and moves a country.",
		ValueProfile: map[string]int{
			"UNC": 3, "SDA": 2, "HUM": 2, "BED": 2, "FAC": -1, "SEP": -2,
		}},
	{Name: "Napoleon Bonaparte", Category: "historical",
		Description: "A continent reorganized around one man's ambition.",
		ValueProfile: map[string]int{
			"POD": 3, "ACH": 3, "STI": 2, "FAC": 2, "COI": -2, "HUM": -3, "SEP": -1,
		}},
	{Name: "Hildegard of Bingen", Category: "historical",
		Description: "Visions, medicine, and music inside the cloister walls.",
		ValueProfile: map[string]int{
			"TRD": 3, "SDT": 2, "UNN": 2, "BEC": 2, "POD": -1, "HED": -1,
		}},

	// ── fictional ─────────────────────────────────────────────────────────
	{Name: "Sherlock Holmes", Category: "fictional",
		Description: "Reason as a vocation; boredom as the only enemy.",
		ValueProfile: map[string]int{
			"SDT": 3, "STI": 2, "SDA": 2, "ACH": 1, "COI": -2, "TRD": -1, "FAC": -1,
		}},
	{Name: "Samwise Gamgee", Category: "fictional",
		Description: "Carries his friend when he cannot carry the burden.",
		ValueProfile: map[string]int{
			"BED": 3, "BEC": 3, "HUM": 2, "TRD": 2, "SEP": 1, "POD": -2, "FAC": -1,
		}},
	{Name: "Elizabeth Bennet", Category: "fictional",
		Description: "Refuses two advantageous proposals on principle.",
		ValueProfile: map[string]int{
			"SDA": 3, "SDT": 2, "UNT": 2, "HED": 1, "TRD": -1, "POR": -2, "FAC": -1,
		}},
	{Name: "Captain Ahab", Category: "fictional",
		Description: "One whale, whatever it costs everyone aboard.",
		ValueProfile: map[string]int{
			"ACH": 3, "SDA": 3, "POD": 2, "SEP": -3, "BEC": -2, "COI": -2, "HED": -2,
		}},
	{Name: "Atticus Finch", Category: "fictional",
		Description: "Defends the client the town has already convicted.",
		ValueProfile: map[string]int{
			"UNC": 3, "BED": 3, "COR": 2, "HUM": 2, "FAC": -1, "POD": -1,
		}},
	{Name: "Jay Gatsby", Category: "fictional",
		Description: "A mansion built as a message to one person across the bay.",
		ValueProfile: map[string]int{
			"ACH": 3, "FAC": 3, "POR": 2, "HED": 2, "STI": 1, "HUM": -3, "SEP": -1,
		}},
	{Name: "Hermione Granger", Category: "fictional",
		Description: "Reads everything first and breaks the rules last.",
		ValueProfile: map[string]int{
			"SDT": 3, "ACH": 2, "COR": 2, "UNC": 2, "BED": 2, "STI": -1,
		}},
	{Name: "Don Quixote", Category: "fictional",
		Description: "Chooses the nobler world and rides into it.",
		ValueProfile: map[string]int{
			"TRD": 3, "STI": 2, "SDA": 2, "UNC": 1, "SEP": -2, "SDT": -1, "FAC": -1,
		}},
	{Name: "Ellen Ripley", Category: "fictional",
		Description: "Protocol when it protects the crew, defiance when it doesn't.",
		ValueProfile: map[string]int{
			"SEP": 2, "SDA": 3, "BED": 2, "BEC": 2, "POD": -1, "HED": -2, "FAC": -1,
		}},
	{Name: "Tyrion Lannister", Category: "fictional",
		Description: "Wit as armor in a family of swords.",
		ValueProfile: map[string]int{
			"SDT": 3, "HED": 2, "UNT": 2, "STI": 1, "FAC": -2, "TRD": -2, "POD": 1,
		}},
	{Name: "Jean Valjean", Category: "fictional",
		Description: "A stolen loaf, a lifetime of atonement.",
		ValueProfile: map[string]int{
			"BEC": 3, "UNC": 3, "HUM": 2, "BED": 2, "COR": -1, "FAC": -2, "SEP": -1,
		}},
	{Name: "Lisbeth Salander", Category: "fictional",
		Description: "Owes nothing to any institution; settles her own accounts.",
		ValueProfile: map[string]int{
			"SDA": 3, "SDT": 2, "STI": 1, "UNC": 1, "COR": -3, "COI": -2, "TRD": -2, "FAC": -2,
		}},
	{Name: "Okonkwo", Category: "fictional",
		Description: "Strength and standing measured by the old ways.",
		ValueProfile: map[string]int{
			"TRD": 3, "ACH": 3, "FAC": 3, "POD": 2, "SEP": 1, "HED": -2, "UNT": -2,
		}},
	{Name: "Ned Stark", Category: "fictional",
		Description: "Honor kept even when honor is fatal.",
		ValueProfile: map[string]int{
			"BED": 3, "TRD": 2, "COR": 2, "BEC": 2, "SEP": -1, "POD": -1, "FAC": 1,
		}},
	{Name: "Amélie Poulain", Category: "fictional",
		Description: "Small secret kindnesses as a way of life.",
		ValueProfile: map[string]int{
			"BEC": 3, "HED": 2, "STI": 1, "HUM": 2, "SDA": 1, "POD": -2, "FAC": -1,
		}},

	// ── archetypal ────────────────────────────────────────────────────────
	{Name: "The Explorer", Category: "archetypal",
		Description: "The map's edge is an invitation.",
		ValueProfile: map[string]int{
			"STI": 3, "SDA": 3, "SDT": 2, "SEP": -2, "TRD": -2, "COR": -1,
		}},
	{Name: "The Caregiver", Category: "archetypal",
		Description: "Others' needs come first, by choice.",
		ValueProfile: map[string]int{
			"BEC": 3, "BED": 2, "UNC": 2, "HUM": 1, "POD": -2, "ACH": -1, "STI": -1,
		}},
	{Name: "The Ruler", Category: "archetypal",
		Description: "Someone has to hold it all together; it should be me.",
		ValueProfile: map[string]int{
			"POD": 3, "SES": 2, "POR": 2, "COR": 2, "ACH": 2, "HUM": -2, "STI": -1,
		}},
	{Name: "The Sage", Category: "archetypal",
		Description: "Understanding is the point; everything else follows.",
		ValueProfile: map[string]int{
			"SDT": 3, "UNT": 2, "HUM": 1, "SDA": 1, "POR": -2, "FAC": -1, "HED": -1,
		}},
	{Name: "The Rebel", Category: "archetypal",
		Description: "Rules are the problem being solved.",
		ValueProfile: map[string]int{
			"SDA": 3, "STI": 2, "UNC": 1, "COR": -3, "TRD": -3, "SES": -2, "FAC": -1,
		}},
	{Name: "The Creator", Category: "archetypal",
		Description: "If it can be imagined, it should exist.",
		ValueProfile: map[string]int{
			"SDT": 3, "STI": 2, "SDA": 2, "ACH": 1, "COR": -2, "SES": -1,
		}},
	{Name: "The Hero", Category: "archetypal",
		Description: "Proves worth where the stakes are highest.",
		ValueProfile: map[string]int{
			"ACH": 3, "STI": 2, "SDA": 2, "FAC": 1, "SEP": -2, "HED": -1, "HUM": -1,
		}},
	{Name: "The Innocent", Category: "archetypal",
		Description: "Things are good, people are good, it will be fine.",
		ValueProfile: map[string]int{
			"SEP": 2, "HED": 2, "TRD": 1, "BEC": 1, "UNT": 1, "POD": -2, "STI": -1,
		}},
	{Name: "The Jester", Category: "archetypal",
		Description: "Lightness as wisdom; nothing is too sacred to laugh at.",
		ValueProfile: map[string]int{
			"HED": 3, "STI": 2, "UNT": 1, "SDA": 1, "FAC": -2, "TRD": -2, "ACH": -1,
		}},
	{Name: "The Lover", Category: "archetypal",
		Description: "Connection and beauty above all else.",
		ValueProfile: map[string]int{
			"HED": 3, "BEC": 2, "STI": 1, "FAC": 1, "SDT": -1, "SES": -1,
		}},
	{Name: "The Everyman", Category: "archetypal",
		Description: "Belonging, decency, and no airs about it.",
		ValueProfile: map[string]int{
			"COI": 2, "BED": 2, "HUM": 2, "SEP": 2, "FAC": -1, "POD": -2, "ACH": -1,
		}},
	{Name: "The Magician", Category: "archetypal",
		Description: "Transforms what is into what could be.",
		ValueProfile: map[string]int{
			"SDT": 3, "STI": 2, "POD": 1, "ACH": 1, "TRD": -2, "SEP": -1,
		}},
	{Name: "The Guardian", Category: "archetypal",
		Description: "Walls exist because storms exist.",
		ValueProfile: map[string]int{
			"SES": 3, "SEP": 3, "COR": 2, "BED": 2, "TRD": 2, "STI": -2, "HED": -1,
		}},
	{Name: "The Orphan", Category: "archetypal",
		Description: "Trusts the hard-won lesson, not the promise.",
		ValueProfile: map[string]int{
			"SEP": 3, "SDA": 2, "BED": 1, "HUM": 1, "POD": -1, "FAC": -1, "STI": -1,
		}},
	{Name: "The Outlaw Saint", Category: "archetypal",
		Description: "Breaks the law to keep the covenant.",
		ValueProfile: map[string]int{
			"UNC": 3, "SDA": 2, "TRD": 1, "BEC": 2, "COR": -3, "SES": -1, "FAC": -1,
		}},

	// ── professions ───────────────────────────────────────────────────────
	{Name: "The Surgeon", Category: "professions",
		Description: "Precision under pressure, one life at a time.",
		ValueProfile: map[string]int{
			"ACH": 3, "SDT": 2, "BEC": 2, "COR": 1, "SEP": -1, "HED": -1,
		}},
	{Name: "The Startup Founder", Category: "professions",
		Description: "Bets everything on a future only they can see.",
		ValueProfile: map[string]int{
			"SDA": 3, "STI": 3, "ACH": 3, "POR": 1, "SEP": -3, "SES": -2, "TRD": -2,
		}},
	{Name: "The Judge", Category: "professions",
		Description: "The rule decides the case, not the crowd.",
		ValueProfile: map[string]int{
			"COR": 3, "UNC": 2, "SES": 2, "SDT": 1, "HUM": 1, "STI": -2, "FAC": -1,
		}},
	{Name: "The Teacher", Category: "professions",
		Description: "Measures success in other people's growth.",
		ValueProfile: map[string]int{
			"BEC": 3, "UNC": 2, "SDT": 2, "BED": 2, "POR": -2, "POD": -1,
		}},
	{Name: "The Firefighter", Category: "professions",
		Description: "Runs toward what everyone else runs from.",
		ValueProfile: map[string]int{
			"BED": 3, "STI": 2, "BEC": 2, "SEP": -2, "HED": -1, "FAC": -1,
		}},
	{Name: "The Archivist", Category: "professions",
		Description: "What is kept carefully is kept forever.",
		ValueProfile: map[string]int{
			"TRD": 3, "COR": 2, "SES": 2, "SDT": 1, "STI": -3, "POD": -1,
		}},
	{Name: "The Diplomat", Category: "professions",
		Description: "Finds the sentence both sides can sign.",
		ValueProfile: map[string]int{
			"UNT": 3, "COI": 2, "SES": 2, "FAC": 2, "SDT": 1, "STI": -1, "POD": -1,
		}},
	{Name: "The Investigative Journalist", Category: "professions",
		Description: "Publishes what someone powerful wants buried.",
		ValueProfile: map[string]int{
			"UNC": 3, "SDT": 2, "SDA": 2, "STI": 1, "SEP": -2, "FAC": -1, "COI": -2,
		}},
	{Name: "The Park Ranger", Category: "professions",
		Description: "Stewards a place older than any visitor.",
		ValueProfile: map[string]int{
			"UNN": 3, "SEP": 1, "SDA": 2, "HUM": 2, "POR": -2, "FAC": -1,
		}},
	{Name: "The Trial Lawyer", Category: "professions",
		Description: "Wins arguments for a living and keeps score.",
		ValueProfile: map[string]int{
			"ACH": 3, "POD": 2, "SDT": 2, "FAC": 2, "COI": -2, "HUM": -2,
		}},
	{Name: "The Nurse", Category: "professions",
		Description: "Present at the worst moments, steady through all of them.",
		ValueProfile: map[string]int{
			"BEC": 3, "BED": 3, "HUM": 1, "COI": 1, "POD": -2, "FAC": -1,
		}},
	{Name: "The Air Traffic Controller", Category: "professions",
		Description: "A thousand lives per shift, zero tolerance for flair.",
		ValueProfile: map[string]int{
			"SES": 3, "COR": 3, "SEP": 2, "BED": 2, "STI": -2, "SDA": -1, "HED": -1,
		}},
	{Name: "The Ship's Captain", Category: "professions",
		Description: "Final authority and final responsibility, alone at sea.",
		ValueProfile: map[string]int{
			"POD": 2, "BED": 3, "SDA": 2, "SES": 2, "STI": 1, "COI": -1, "HED": -1,
		}},
	{Name: "The Social Worker", Category: "professions",
		Description: "Fights the system from inside it for one family at a time.",
		ValueProfile: map[string]int{
			"UNC": 3, "BEC": 3, "BED": 2, "HUM": 1, "POR": -2, "FAC": -1, "HED": -1,
		}},
	{Name: "The Venture Gambler", Category: "professions",
		Description: "Portfolio logic: nine failures buy one fortune.",
		ValueProfile: map[string]int{
			"POR": 3, "STI": 2, "ACH": 2, "SDT": 1, "SEP": -2, "TRD": -2, "HUM": -1,
		}},

	// ── philosophies ──────────────────────────────────────────────────────
	{Name: "The Stoic", Category: "philosophies",
		Description: "Controls what can be controlled; accepts the rest.",
		ValueProfile: map[string]int{
			"SDT": 2, "HUM": 3, "BED": 2, "SEP": 1, "HED": -3, "FAC": -2, "POR": -2,
		}},
	{Name: "The Epicurean", Category: "philosophies",
		Description: "Modest pleasures, good friends, no fear of the gods.",
		ValueProfile: map[string]int{
			"HED": 3, "SEP": 2, "BEC": 2, "UNT": 1, "POD": -3, "ACH": -2, "FAC": -2,
		}},
	{Name: "The Utilitarian", Category: "philosophies",
		Description: "The greatest good for the greatest number, computed.",
		ValueProfile: map[string]int{
			"UNC": 3, "SDT": 2, "ACH": 1, "TRD": -2, "COI": -1, "FAC": -1,
		}},
	{Name: "The Existentialist", Category: "philosophies",
		Description: "No script; you are what you choose.",
		ValueProfile: map[string]int{
			"SDA": 3, "SDT": 3, "STI": 1, "TRD": -3, "COR": -2, "SES": -1, "FAC": -1,
		}},
	{Name: "The Confucian", Category: "philosophies",
		Description: "Right relationships, rightly ordered, rightly named.",
		ValueProfile: map[string]int{
			"TRD": 3, "COI": 3, "BED": 2, "COR": 2, "HUM": 2, "STI": -2, "SDA": -1,
		}},
	{Name: "The Taoist", Category: "philosophies",
		Description: "The soft water that wears down the hard stone.",
		ValueProfile: map[string]int{
			"HUM": 3, "UNN": 3, "SDA": 1, "UNT": 2, "POD": -3, "ACH": -2, "FAC": -2,
		}},
	{Name: "The Humanist", Category: "philosophies",
		Description: "Human dignity needs no further justification.",
		ValueProfile: map[string]int{
			"UNC": 3, "UNT": 3, "SDT": 2, "BEC": 2, "TRD": -1, "POD": -2,
		}},
	{Name: "The Pragmatist", Category: "philosophies",
		Description: "True is what works; plans are hypotheses.",
		ValueProfile: map[string]int{
			"SDT": 2, "SDA": 2, "ACH": 2, "STI": 1, "TRD": -2, "FAC": -1,
		}},
	{Name: "The Ascetic", Category: "philosophies",
		Description: "Wants less until wanting stops.",
		ValueProfile: map[string]int{
			"HUM": 3, "TRD": 2, "SDT": 1, "HED": -3, "POR": -3, "FAC": -2, "STI": -2,
		}},
	{Name: "The Romantic", Category: "philosophies",
		Description: "Feeling over formula, the sublime over the sensible.",
		ValueProfile: map[string]int{
			"STI": 3, "HED": 2, "UNN": 2, "SDA": 2, "COR": -2, "SES": -2, "SDT": -1,
		}},
	{Name: "The Skeptic", Category: "philosophies",
		Description: "Suspends judgment until the evidence compels it.",
		ValueProfile: map[string]int{
			"SDT": 3, "SDA": 1, "UNT": 1, "TRD": -2, "FAC": -1, "COI": -1,
		}},
	{Name: "The Communitarian", Category: "philosophies",
		Description: "The self is made of its memberships.",
		ValueProfile: map[string]int{
			"BED": 3, "COI": 2, "TRD": 2, "SES": 2, "BEC": 2, "SDA": -2, "STI": -1,
		}},
	{Name: "The Libertarian", Category: "philosophies",
		Description: "Consent is the only legitimate authority.",
		ValueProfile: map[string]int{
			"SDA": 3, "POR": 2, "SDT": 2, "SES": -2, "COR": -2, "COI": -1,
		}},
	{Name: "The Environmentalist", Category: "philosophies",
		Description: "Borrows the planet from the generations to come.",
		ValueProfile: map[string]int{
			"UNN": 3, "UNC": 2, "HUM": 1, "SES": 1, "POR": -3, "HED": -2,
		}},
	{Name: "The Absurdist", Category: "philosophies",
		Description: "No meaning, no despair; push the boulder smiling.",
		ValueProfile: map[string]int{
			"SDA": 3, "HED": 2, "STI": 2, "HUM": 1, "TRD": -2, "SES": -1, "FAC": -2,
		}},
}
