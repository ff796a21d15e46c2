package curriculum

// Variant identifies one of the curriculum content sets. Both variants
// share the same 72-lesson schedule shape and differ only in task text.
type Variant string

const (
	// VariantStandard is the regular pace for grades 4 and up.
	VariantStandard Variant = "standard"
	// VariantJunior is the lighter pace for grade 3 and below.
	VariantJunior Variant = "junior"
)

// AllVariants returns the variants in display order.
func AllVariants() []Variant {
	return []Variant{VariantStandard, VariantJunior}
}

// VariantDisplayName returns a human-readable name for a variant.
func VariantDisplayName(v Variant) string {
	switch v {
	case VariantStandard:
		return "Standard Track"
	case VariantJunior:
		return "Junior Track"
	default:
		return string(v)
	}
}

// Platform identifies the external tool a lesson is built on.
type Platform string

const (
	PlatformScratch Platform = "scratch"
	PlatformRoblox  Platform = "roblox"
	PlatformReplit  Platform = "replit"
	PlatformLogic   Platform = "logic"
	PlatformTyping  Platform = "typing"
)

// PlatformInfo holds the display name and URL of a platform.
type PlatformInfo struct {
	Name string
	URL  string
}

// Platforms maps each platform key to its display info.
var Platforms = map[Platform]PlatformInfo{
	PlatformScratch: {Name: "Scratch", URL: "https://scratch.mit.edu"},
	PlatformRoblox:  {Name: "Roblox Studio", URL: "https://create.roblox.com"},
	PlatformReplit:  {Name: "Replit", URL: "https://replit.com"},
	PlatformLogic:   {Name: "Khan Academy", URL: "https://www.khanacademy.org"},
	PlatformTyping:  {Name: "TypingClub", URL: "https://www.typingclub.com"},
}

// DayLabel is the working weekday a lesson falls on. The rest weekday
// (Sunday) never appears as a label.
type DayLabel string

const (
	Mon DayLabel = "Mon"
	Tue DayLabel = "Tue"
	Wed DayLabel = "Wed"
	Thu DayLabel = "Thu"
	Fri DayLabel = "Fri"
	Sat DayLabel = "Sat"
)

// workingDays lists the six working-day labels in week order.
var workingDays = [LessonsPerWeek]DayLabel{Mon, Tue, Wed, Thu, Fri, Sat}

// Lesson is one day of the curriculum. Ordinals are dense starting at 1;
// week and phase are non-decreasing functions of the ordinal.
type Lesson struct {
	Ordinal  int
	Week     int
	Phase    int
	Day      DayLabel
	Platform Platform
	Topic    string
}

// Tasks holds the variant-specific task text for one lesson.
type Tasks struct {
	Build     string
	Reasoning string
	Typing    string
	Note      string
}

// Schedule shape constants.
const (
	LessonsPerWeek = 6
	WeeksTotal     = 12
	WeeksPerPhase  = 4
	PhasesTotal    = 3
	TotalLessons   = LessonsPerWeek * WeeksTotal
)

// WeekOf returns the 1-based week an ordinal belongs to.
func WeekOf(ordinal int) int {
	return (ordinal-1)/LessonsPerWeek + 1
}

// PhaseOf returns the 1-based phase an ordinal belongs to.
func PhaseOf(ordinal int) int {
	return (WeekOf(ordinal)-1)/WeeksPerPhase + 1
}

// DayOf returns the day label for an ordinal.
func DayOf(ordinal int) DayLabel {
	return workingDays[(ordinal-1)%LessonsPerWeek]
}

// PhaseDisplayName returns a human-readable name for a phase.
func PhaseDisplayName(phase int) string {
	switch phase {
	case 1:
		return "Phase 1 — Scratch"
	case 2:
		return "Phase 2 — Roblox Studio"
	case 3:
		return "Phase 3 — Python"
	default:
		return "Phase"
	}
}
