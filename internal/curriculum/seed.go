package curriculum

// entry is one seed row of the standard schedule. Ordinal, week, phase
// and day label are derived from the row's position.
type entry struct {
	platform  Platform
	topic     string
	build     string
	reasoning string
	typing    string
	note      string
}

func row(platform Platform, topic, build, reasoning, typing string, note ...string) entry {
	e := entry{platform: platform, topic: topic, build: build, reasoning: reasoning, typing: typing}
	if len(note) > 0 {
		e.note = note[0]
	}
	return e
}

// standardSeed is the 72-day plan: Phase 1 Scratch (weeks 1-4),
// Phase 2 Roblox Studio (weeks 5-8), Phase 3 Python on Replit (weeks 9-12).
// Six working days per week, Monday through Saturday.
var standardSeed = [TotalLessons]entry{
	// Week 1
	row(PlatformScratch, "Interface + motion blocks", "Move sprite with arrow keys", "Multi-step word problems", "TypingClub lessons 1-5"),
	row(PlatformScratch, "Loops (repeat/forever)", "Continuous movement + bounce off edges", "Pattern puzzles", "Continue lessons"),
	row(PlatformScratch, "Variables", "Create score counter", "Arithmetic reasoning", "Accuracy focus"),
	row(PlatformScratch, "Random numbers", "Falling objects spawn randomly", "Time problems", "1-minute speed test"),
	row(PlatformScratch, "Lives + Game Over screen", "Lose condition when lives reach zero", "Brain teasers", "Timed test"),
	row(PlatformScratch, "Build sprint", "Project: Catch Game (score, lives, increasing speed)", "Quick mixed puzzles (10 mins)", "TypingClub quick review", "Presentation: explain how it works"),
	// Week 2
	row(PlatformScratch, "If statements", "Maze basics (walls + movement rules)", "Fractions reasoning", "TypingClub"),
	row(PlatformScratch, "Timer variable", "Countdown challenge for maze", "Word logic problems", "TypingClub", "Mini-present: what did you add?"),
	row(PlatformScratch, "Enemy logic", "Enemy follows player (simple chase)", "Pattern challenge", "TypingClub"),
	row(PlatformScratch, "Win conditions + sound", "Win/lose screens + sound effects", "Multi-step puzzles", "TypingClub"),
	row(PlatformScratch, "Debugging day", "Break one thing, then fix it (teach debugging)", "Mixed challenge", "TypingClub"),
	row(PlatformScratch, "Build sprint", "Project: Maze Escape (timer, enemy, win/lose)", "Quick mixed puzzles (10 mins)", "TypingClub review", "Presentation: show the full game"),
	// Week 3
	row(PlatformScratch, "Cloning", "Multiple falling objects using clones", "Multiplication reasoning", "TypingClub (target 35 wpm)"),
	row(PlatformScratch, "Difficulty scaling", "Speed increases over time", "Logic word problems", "TypingClub"),
	row(PlatformScratch, "Levels", "Create Level 2 (background switch)", "Pattern puzzles", "TypingClub"),
	row(PlatformScratch, "Restart system", "Restart button / reset variables", "Multi-step maths", "TypingClub"),
	row(PlatformScratch, "Polish", "Animations + sound polish", "Brain teasers", "TypingClub"),
	row(PlatformScratch, "Build sprint", "Project: 2-Level Platformer", "Quick mixed puzzles (10 mins)", "TypingClub review", "Presentation: explain levels + scoring"),
	// Week 4
	row(PlatformScratch, "Plan", "Plan a final game on paper (goal, rules, scoring)", "Reasoning puzzles", "TypingClub"),
	row(PlatformScratch, "Build stage 1", "Start screen + core movement", "Word problems", "TypingClub", "Mini-present: what's built so far?"),
	row(PlatformScratch, "Build stage 2", "Add scoring + difficulty", "Pattern puzzles", "TypingClub"),
	row(PlatformScratch, "Build stage 3", "Add lives + win/lose states", "Logic puzzles", "TypingClub"),
	row(PlatformScratch, "Bug fixing + polish", "Fix issues + improve visuals/sound", "Mixed challenge", "TypingClub"),
	row(PlatformScratch, "Demo day", "Final Scratch game presentation", "Quick mixed puzzles (10 mins)", "TypingClub check-in", "Optional: share link to family"),
	// Week 5
	row(PlatformRoblox, "Studio basics", "Learn interface: Explorer, Properties, parts", "Reasoning puzzles", "TypingClub"),
	row(PlatformRoblox, "Parts + anchoring", "Build a simple obby path", "Pattern puzzles", "TypingClub"),
	row(PlatformRoblox, "Terrain tools", "Add terrain + obstacles", "Word problems", "TypingClub"),
	row(PlatformRoblox, "Level design", "Design full obstacle course layout", "Logic puzzles", "TypingClub"),
	row(PlatformRoblox, "Refinement", "Improve spacing, fairness, reset points", "Brain teasers", "TypingClub"),
	row(PlatformRoblox, "Build sprint", "Project: Full Obby + checkpoints", "Quick mixed puzzles (10 mins)", "TypingClub", "Presentation: show course flow"),
	// Week 6
	row(PlatformRoblox, "Lua variables", "Create a variable + print output", "Reasoning puzzles", "TypingClub (target 40 wpm)"),
	row(PlatformRoblox, "If statements", "Trigger: if player touches, do action", "Word logic problems", "TypingClub"),
	row(PlatformRoblox, "Functions", "Make a reusable function for an action", "Pattern puzzles", "TypingClub"),
	row(PlatformRoblox, "Triggers", "Door opens when item collected", "Logic puzzles", "TypingClub"),
	row(PlatformRoblox, "Timers", "Add countdown / time limit concept", "Brain teasers", "TypingClub"),
	row(PlatformRoblox, "Build sprint", "Project: Door unlock system + timer", "Quick mixed puzzles (10 mins)", "TypingClub", "Presentation: show script working"),
	// Week 7
	row(PlatformRoblox, "Points system", "Award points for actions", "Reasoning puzzles", "TypingClub"),
	row(PlatformRoblox, "Currency", "Create coin/currency variable", "Word problems", "TypingClub"),
	row(PlatformRoblox, "Shop basics", "Simple shop UI concept (buy power-up)", "Pattern puzzles", "TypingClub"),
	row(PlatformRoblox, "Leaderboard concept", "Track best score/time", "Logic puzzles", "TypingClub"),
	row(PlatformRoblox, "Power-ups", "Speed boost / jump boost", "Brain teasers", "TypingClub"),
	row(PlatformRoblox, "Build sprint", "Project: Economy + power-ups integrated", "Quick mixed puzzles (10 mins)", "TypingClub", "Presentation: explain economy rules"),
	// Week 8
	row(PlatformRoblox, "Bug fixing", "Test and fix issues", "Reasoning puzzles", "TypingClub"),
	row(PlatformRoblox, "UI improvement", "Add instructions screen / signage", "Word logic problems", "TypingClub"),
	row(PlatformRoblox, "Polish", "Better layout, pacing, visuals", "Pattern puzzles", "TypingClub"),
	row(PlatformRoblox, "Testing session", "Play-test as if you're a new player", "Logic puzzles", "TypingClub"),
	row(PlatformRoblox, "Final checks", "Final bugs + reset systems", "Brain teasers", "TypingClub"),
	row(PlatformRoblox, "Publish day", "Publish Roblox game (with supervision)", "Quick mixed puzzles (10 mins)", "TypingClub", "Presentation: 'What makes my game fun?'"),
	// Week 9
	row(PlatformReplit, "Print + variables", "Hello world + variables", "Reasoning puzzles", "TypingClub (target 45-50 wpm)"),
	row(PlatformReplit, "Input", "Ask questions, store answers", "Word problems", "TypingClub"),
	row(PlatformReplit, "If statements", "Quiz: correct/incorrect logic", "Pattern puzzles", "TypingClub"),
	row(PlatformReplit, "Loops", "Repeat questions / attempts", "Logic puzzles", "TypingClub"),
	row(PlatformReplit, "Mini challenge", "5-question quiz with score", "Brain teasers", "TypingClub"),
	row(PlatformReplit, "Build sprint", "Project: Interactive Quiz (score + replay)", "Quick mixed puzzles (10 mins)", "TypingClub", "Presentation: demo quiz"),
	// Week 10
	row(PlatformReplit, "Random module", "Use random numbers", "Reasoning puzzles", "TypingClub"),
	row(PlatformReplit, "Guess the number", "Build base game loop", "Word problems", "TypingClub"),
	row(PlatformReplit, "Scoring", "Add score based on attempts", "Pattern puzzles", "TypingClub"),
	row(PlatformReplit, "Difficulty levels", "Easy/medium/hard ranges", "Logic puzzles", "TypingClub"),
	row(PlatformReplit, "Bug fixing", "Handle bad input (letters, blanks)", "Brain teasers", "TypingClub"),
	row(PlatformReplit, "Build sprint", "Project: Improved guessing game", "Quick mixed puzzles (10 mins)", "TypingClub", "Presentation: explain difficulty design"),
	// Week 11
	row(PlatformReplit, "Lists", "Store items in a list", "Reasoning puzzles", "TypingClub"),
	row(PlatformReplit, "Inventory system", "Add/remove items (inventory)", "Word logic problems", "TypingClub"),
	row(PlatformReplit, "Functions", "Make reusable actions (look, take, move)", "Pattern puzzles", "TypingClub"),
	row(PlatformReplit, "Multiple endings", "Win/lose paths based on choices", "Logic puzzles", "TypingClub"),
	row(PlatformReplit, "Refactoring", "Clean code + comments", "Brain teasers", "TypingClub"),
	row(PlatformReplit, "Build sprint", "Project: Text adventure (chapter 1)", "Quick mixed puzzles (10 mins)", "TypingClub", "Presentation: show choices branching"),
	// Week 12
	row(PlatformReplit, "Plan capstone", "Map story, rooms, inventory, endings", "Reasoning puzzles", "TypingClub"),
	row(PlatformReplit, "Build section 1", "Intro + first choices", "Word problems", "TypingClub", "Mini-present: progress update"),
	row(PlatformReplit, "Build section 2", "Add random events + score", "Pattern puzzles", "TypingClub"),
	row(PlatformReplit, "Build section 3", "Add endings + replay option", "Logic puzzles", "TypingClub"),
	row(PlatformReplit, "Testing + polish", "Fix bugs, improve text, clean code", "Brain teasers", "TypingClub"),
	row(PlatformReplit, "Demo day", "Capstone: full text adventure demo", "Quick mixed puzzles (10 mins)", "TypingClub final check-in", "Optional: share with family/friends"),
}
