package curriculum

// juniorOverrides holds the lighter-paced task text for the junior track,
// keyed by ordinal. Ordinals without an override fall back to the standard
// text at read time; the schedule shape is identical for both variants.
var juniorOverrides = map[int]Tasks{
	// Week 1 — gentler first steps in Scratch.
	1: {Build: "Move sprite with arrow keys (one direction is fine)", Reasoning: "One-step word problems", Typing: "TypingClub lessons 1-3"},
	2: {Build: "Make the sprite walk forever in a loop", Reasoning: "Simple pattern puzzles", Typing: "TypingClub lessons 4-5"},
	4: {Build: "Make one object fall from a random spot", Reasoning: "Clock reading practice", Typing: "Short accuracy drill"},
	6: {Build: "Project: Catch Game with just a score counter", Reasoning: "Two quick puzzles", Typing: "TypingClub quick review", Note: "Presentation: show what the game does"},
	// Week 2
	8:  {Build: "Add a countdown that starts at 30", Reasoning: "Picture logic problems", Typing: "TypingClub"},
	11: {Build: "Find the bug a parent hides in one block", Reasoning: "One mixed puzzle", Typing: "TypingClub"},
	12: {Build: "Project: Maze Escape with a timer (enemy optional)", Reasoning: "Two quick puzzles", Typing: "TypingClub review", Note: "Presentation: walk through the maze"},
	// Week 3
	13: {Build: "Two falling objects using clones", Reasoning: "Skip-counting puzzles", Typing: "TypingClub (target 25 wpm)"},
	16: {Build: "Add a restart button", Reasoning: "One multi-step problem", Typing: "TypingClub"},
	18: {Build: "Project: Platformer with one level", Reasoning: "Two quick puzzles", Typing: "TypingClub review", Note: "Presentation: explain the scoring"},
	// Week 4
	19: {Build: "Draw the final game on paper with a parent", Reasoning: "Picture reasoning puzzles", Typing: "TypingClub"},
	23: {Build: "Fix one bug, then add one decoration", Reasoning: "One mixed puzzle", Typing: "TypingClub"},
	24: {Build: "Show the finished Scratch game", Reasoning: "Two quick puzzles", Typing: "TypingClub check-in", Note: "Optional: share with family"},
	// Week 5 — first Roblox week, shorter sessions.
	25: {Build: "Open Studio and place three parts", Reasoning: "Simple reasoning puzzles", Typing: "TypingClub"},
	28: {Build: "Design a short obstacle course (5 jumps)", Reasoning: "Easy logic puzzles", Typing: "TypingClub"},
	30: {Build: "Project: Short Obby with one checkpoint", Reasoning: "Two quick puzzles", Typing: "TypingClub", Note: "Presentation: play through the course"},
	// Week 6
	31: {Build: "Create one variable and print it", Reasoning: "Simple reasoning puzzles", Typing: "TypingClub (target 30 wpm)"},
	34: {Build: "Door opens when the player touches a button", Reasoning: "Easy logic puzzles", Typing: "TypingClub"},
	36: {Build: "Project: One working door script", Reasoning: "Two quick puzzles", Typing: "TypingClub", Note: "Presentation: show the script running"},
	// Week 7
	37: {Build: "Award one point when a coin is touched", Reasoning: "Simple reasoning puzzles", Typing: "TypingClub"},
	41: {Build: "Add a speed boost pad", Reasoning: "One brain teaser", Typing: "TypingClub"},
	42: {Build: "Project: Coins + one power-up", Reasoning: "Two quick puzzles", Typing: "TypingClub", Note: "Presentation: explain the coins"},
	// Week 8
	46: {Build: "Play-test with a parent as the new player", Reasoning: "Easy logic puzzles", Typing: "TypingClub"},
	48: {Build: "Publish the game together with a parent", Reasoning: "Two quick puzzles", Typing: "TypingClub", Note: "Presentation: 'My favourite part is...'"},
	// Week 9 — Python with training wheels.
	49: {Build: "print() your name and age", Reasoning: "Simple reasoning puzzles", Typing: "TypingClub (target 35 wpm)"},
	51: {Build: "One-question quiz with if/else", Reasoning: "Easy pattern puzzles", Typing: "TypingClub"},
	53: {Build: "3-question quiz with score", Reasoning: "One brain teaser", Typing: "TypingClub"},
	54: {Build: "Project: Mini Quiz (3 questions + score)", Reasoning: "Two quick puzzles", Typing: "TypingClub", Note: "Presentation: run the quiz"},
	// Week 10
	56: {Build: "Guess-the-number between 1 and 10", Reasoning: "Simple word problems", Typing: "TypingClub"},
	58: {Build: "Add easy and hard ranges", Reasoning: "Easy logic puzzles", Typing: "TypingClub"},
	60: {Build: "Project: Guessing game with two levels", Reasoning: "Two quick puzzles", Typing: "TypingClub", Note: "Presentation: demo both levels"},
	// Week 11
	61: {Build: "Make a list of three favourite things", Reasoning: "Simple reasoning puzzles", Typing: "TypingClub"},
	64: {Build: "Two endings based on one choice", Reasoning: "Easy logic puzzles", Typing: "TypingClub"},
	66: {Build: "Project: Short story with two choices", Reasoning: "Two quick puzzles", Typing: "TypingClub", Note: "Presentation: read the story aloud"},
	// Week 12
	67: {Build: "Draw the story map with a parent", Reasoning: "Simple reasoning puzzles", Typing: "TypingClub"},
	70: {Build: "Add one ending + play again option", Reasoning: "Easy logic puzzles", Typing: "TypingClub"},
	72: {Build: "Capstone: tell the story adventure start to finish", Reasoning: "Two quick puzzles", Typing: "TypingClub final check-in", Note: "Optional: share with family"},
}
