package classify

// Domains describe WHAT an article is about; registers describe what
// cognitive mode it invites. Together they answer: what does this story
// cost the reader mentally?

// DomainOrder fixes evaluation order so score ties resolve to the first
// highest found, run after run.
var DomainOrder = []string{
	"politics", "conflict", "economy", "science", "tech",
	"environment", "health", "culture", "sports", "human", "meta",
}

// RegisterOrder fixes evaluation order for the register axis.
var RegisterOrder = []string{
	"alert", "concern", "analysis", "awareness", "curiosity", "reflection",
}

// DefaultRegister is the no-signal fallback: a plain informational update.
const DefaultRegister = "awareness"

// RegisterCost ranks registers by cognitive cost. Group register selection
// takes the worst member so a story's demand is never averaged away.
var RegisterCost = map[string]int{
	"alert":      5,
	"concern":    4,
	"analysis":   3,
	"reflection": 2,
	"curiosity":  1,
	"awareness":  0,
}

// DomainLabels is the domain taxonomy with display descriptions.
var DomainLabels = map[string]string{
	"conflict":    "War, military, terrorism, civil unrest",
	"politics":    "Governance, legislation, diplomacy, elections",
	"economy":     "Markets, trade, employment, central banking",
	"science":     "Research, discovery, academic, medical",
	"tech":        "Technology industry, digital, AI, cyber",
	"environment": "Climate, nature, energy, sustainability",
	"health":      "Public health, medicine, pandemic, wellbeing",
	"culture":     "Arts, media, society, education, religion",
	"sports":      "Athletic events, competitions",
	"human":       "Human interest, profiles, community stories",
	"meta":        "Media about media, press freedom, information",
}

// RegisterLabels is the register taxonomy with display descriptions.
var RegisterLabels = map[string]string{
	"alert":      "Breaking, urgent, developing",
	"concern":    "Crisis, suffering, threat",
	"analysis":   "Explainer, opinion, deep context",
	"awareness":  "Informational, factual update",
	"curiosity":  "Discovery, innovation, positive",
	"reflection": "Long-form, historical, philosophical",
}
