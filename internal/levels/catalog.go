package levels

// catalog holds the five puzzles in play order. Never mutated; Get and All
// hand out copies.
var catalog = []Level{
	{
		Index:    1,
		Title:    "Foundations of Logic",
		Category: "Simple Reasoning",
		Puzzle:   "If all roses are flowers and some flowers fade quickly, can we conclude that some roses fade quickly? Explain your reasoning.",
	},
	{
		Index:    2,
		Title:    "Analytical Mindset",
		Category: "Math & Problem Solving",
		Puzzle:   "A train leaves at 3 PM traveling 60 km/h. Another leaves at 4 PM traveling 80 km/h. When will the second train catch up? Provide the time and how you calculated it.",
	},
	{
		Index:    3,
		Title:    "Creative Thinking",
		Category: "Abstract Innovation",
		Puzzle:   "Imagine you are stranded on an island with a rope, a bucket, and a mirror. How could you use these to collect fresh water?",
	},
	{
		Index:    4,
		Title:    "Strategic Decision Making",
		Category: "Finance & Risk Strategy",
		Puzzle: "You have $1,000. You can invest in:\n" +
			"1. A savings account (2% return)\n" +
			"2. A startup (50% chance of doubling, 50% chance of losing all)\n" +
			"3. A balanced fund (5% return)\n" +
			"Which option do you choose and why?",
	},
	{
		Index:    5,
		Title:    "Holistic Intelligence",
		Category: "Adaptive Leadership",
		Puzzle: "You are leading a team under stress. Productivity is dropping. You can:\n" +
			"1. Push harder with strict deadlines.\n" +
			"2. Introduce relaxation breaks and creative brainstorming.\n" +
			"3. Reassign tasks to balance workload.\n" +
			"Which do you choose and how would you execute it to ensure long-term success?",
	},
}

// Pillars are the short tags for the five levels, shown on the intro screen.
var Pillars = []string{"Logic", "Analysis", "Creativity", "Strategy", "Adaptability"}
