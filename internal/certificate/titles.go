package certificate

import "github.com/youngtekkie/tekkie/internal/curriculum"

// genericTitle covers week numbers outside the title tables.
const genericTitle = "Coding Explorer"

// Week titles follow the curriculum arc: Scratch in weeks 1-4, Roblox
// Studio in weeks 5-8, Python on Replit in weeks 9-12. Junior titles
// use simpler wording for younger kids.
var standardTitles = map[int]string{
	1:  "Scratch Starter",
	2:  "Sprite Animator",
	3:  "Game Loop Builder",
	4:  "Scratch Game Designer",
	5:  "Roblox Rookie",
	6:  "Obby Architect",
	7:  "Script Wrangler",
	8:  "Roblox World Maker",
	9:  "Python Pioneer",
	10: "Logic Looper",
	11: "Function Crafter",
	12: "Young Tekkie Graduate",
}

var juniorTitles = map[int]string{
	1:  "Scratch Buddy",
	2:  "Animation Star",
	3:  "Game Maker",
	4:  "Scratch Champion",
	5:  "Roblox Explorer",
	6:  "Obby Builder",
	7:  "Script Helper",
	8:  "Roblox Star",
	9:  "Python Friend",
	10: "Loop Hero",
	11: "Code Crafter",
	12: "Little Tekkie Graduate",
}

// TitleFor returns the certificate title for a week and variant.
// Unknown weeks get a generic title rather than an error.
func TitleFor(variant curriculum.Variant, week int) string {
	table := standardTitles
	if variant == curriculum.VariantJunior {
		table = juniorTitles
	}
	if t, ok := table[week]; ok {
		return t
	}
	return genericTitle
}
