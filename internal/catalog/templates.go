package catalog

// weightLossTemplate covers weight-loss and general get-fit goals.
var weightLossTemplate = GoalTemplate{
	Name: "weight-loss",
	Phases: []PhaseBlueprint{
		{
			Title:       "Foundation",
			Description: "Establish baselines, habits, and a sustainable routine.",
			TaskPool: []TaskBlueprint{
				{Title: "Log your meals", Description: "Record everything you eat and drink for the day.", DurationMinutes: 15, Resources: []string{"MyFitnessPal", "food diary"}},
				{Title: "30-minute walk", Description: "Brisk walk at a conversational pace.", DurationMinutes: 30},
				{Title: "Plan this week's meals", Description: "Pick recipes and build a shopping list.", DurationMinutes: 30, Resources: []string{"meal prep guide"}},
				{Title: "Weigh-in and measurements", Description: "Record weight and waist measurement at the same time of day.", DurationMinutes: 10},
			},
		},
		{
			Title:       "Building Momentum",
			Description: "Increase activity intensity and tighten nutrition.",
			TaskPool: []TaskBlueprint{
				{Title: "Cardio session", Description: "30–40 minutes of running, cycling, or swimming.", DurationMinutes: 40},
				{Title: "Strength training", Description: "Full-body resistance workout.", DurationMinutes: 45, Resources: []string{"beginner strength program"}},
				{Title: "Prep healthy lunches", Description: "Batch-cook lunches for the next three days.", DurationMinutes: 45},
				{Title: "Review calorie trend", Description: "Compare the week's intake against your target.", DurationMinutes: 15},
			},
		},
		{
			Title:       "Pushing Through",
			Description: "Break plateaus with variation and accountability.",
			TaskPool: []TaskBlueprint{
				{Title: "Interval training", Description: "High-intensity intervals, 20 minutes plus warm-up.", DurationMinutes: 35},
				{Title: "Try a new activity", Description: "A class, hike, or sport you haven't done before.", DurationMinutes: 60},
				{Title: "Strength training", Description: "Progressive overload on main lifts.", DurationMinutes: 45},
				{Title: "Progress photos and review", Description: "Photos, measurements, and a plan check.", DurationMinutes: 15},
			},
		},
		{
			Title:       "Maintenance Mindset",
			Description: "Lock in the habits that keep the weight off.",
			TaskPool: []TaskBlueprint{
				{Title: "Favorite workout", Description: "The activity you most enjoyed this cycle.", DurationMinutes: 45},
				{Title: "Cook a new healthy recipe", Description: "Expand the rotation of meals you can rely on.", DurationMinutes: 45},
				{Title: "Reflect on the journey", Description: "Write down what worked and what to keep doing.", DurationMinutes: 20},
				{Title: "Plan next month's routine", Description: "Set the schedule that maintains your results.", DurationMinutes: 25},
			},
		},
	},
}

// learningTemplate covers learn/study/course goals and the education category.
var learningTemplate = GoalTemplate{
	Name: "learning",
	Phases: []PhaseBlueprint{
		{
			Title:       "Fundamentals",
			Description: "Survey the field and build core vocabulary.",
			TaskPool: []TaskBlueprint{
				{Title: "Study session: basics", Description: "Work through the next section of your primary resource.", DurationMinutes: 45, Resources: []string{"course materials", "textbook chapter 1-3"}},
				{Title: "Flashcard review", Description: "Spaced-repetition review of new terms.", DurationMinutes: 20, Resources: []string{"Anki"}},
				{Title: "Watch an intro lecture", Description: "One video lecture with notes.", DurationMinutes: 40},
				{Title: "Summarize what you learned", Description: "Write a half-page summary from memory.", DurationMinutes: 20},
			},
		},
		{
			Title:       "Deliberate Practice",
			Description: "Apply the fundamentals through exercises.",
			TaskPool: []TaskBlueprint{
				{Title: "Practice exercises", Description: "Complete a problem set or exercise batch.", DurationMinutes: 45},
				{Title: "Study session: next topic", Description: "Advance through the syllabus.", DurationMinutes: 45},
				{Title: "Teach it back", Description: "Explain a concept out loud or in writing, no notes.", DurationMinutes: 25},
				{Title: "Flashcard review", Description: "Keep the spaced-repetition streak going.", DurationMinutes: 20, Resources: []string{"Anki"}},
				{Title: "Quiz yourself", Description: "Self-test on everything covered so far.", DurationMinutes: 30},
			},
		},
		{
			Title:       "Applied Project",
			Description: "Consolidate with a small real-world project.",
			TaskPool: []TaskBlueprint{
				{Title: "Project work session", Description: "Make concrete progress on your capstone project.", DurationMinutes: 60},
				{Title: "Research a gap", Description: "Dig into something the project revealed you don't know.", DurationMinutes: 30},
				{Title: "Get feedback", Description: "Show your work to a peer, forum, or mentor.", DurationMinutes: 30, Resources: []string{"study group", "online community"}},
				{Title: "Flashcard review", Description: "Maintain earlier material.", DurationMinutes: 15},
			},
		},
		{
			Title:       "Mastery Check",
			Description: "Assess, fill gaps, and plan what's next.",
			TaskPool: []TaskBlueprint{
				{Title: "Mock assessment", Description: "A full practice test or project review under real conditions.", DurationMinutes: 60},
				{Title: "Review weak areas", Description: "Targeted study on the topics you missed.", DurationMinutes: 45},
				{Title: "Polish the project", Description: "Finish and document the applied project.", DurationMinutes: 45},
				{Title: "Plan continued learning", Description: "Choose the next course, book, or skill level.", DurationMinutes: 20},
			},
		},
	},
}

// jobSearchTemplate covers job/career-change/interview goals.
var jobSearchTemplate = GoalTemplate{
	Name: "job-search",
	Phases: []PhaseBlueprint{
		{
			Title:       "Positioning",
			Description: "Sharpen your materials and target list.",
			TaskPool: []TaskBlueprint{
				{Title: "Update your resume", Description: "Revise one section with concrete, quantified results.", DurationMinutes: 45, Resources: []string{"resume guide"}},
				{Title: "Refresh LinkedIn profile", Description: "Headline, summary, and recent accomplishments.", DurationMinutes: 30},
				{Title: "Build target company list", Description: "Add five companies with roles you'd want.", DurationMinutes: 30},
				{Title: "Draft a cover letter template", Description: "A base letter you can tailor per application.", DurationMinutes: 40},
			},
		},
		{
			Title:       "Pipeline Building",
			Description: "Applications and networking at a steady cadence.",
			TaskPool: []TaskBlueprint{
				{Title: "Submit two applications", Description: "Tailored resume and letter for each.", DurationMinutes: 60},
				{Title: "Reach out to a contact", Description: "One networking message or coffee-chat request.", DurationMinutes: 20},
				{Title: "Research a target company", Description: "Products, culture, recent news, open roles.", DurationMinutes: 30},
				{Title: "Track application status", Description: "Update your pipeline and schedule follow-ups.", DurationMinutes: 15, Resources: []string{"application tracker"}},
			},
		},
		{
			Title:       "Interview Readiness",
			Description: "Practice until answers are second nature.",
			TaskPool: []TaskBlueprint{
				{Title: "Mock interview", Description: "Full-length practice with a friend or recording.", DurationMinutes: 60},
				{Title: "Prepare STAR stories", Description: "Write out two behavioral answers with outcomes.", DurationMinutes: 40, Resources: []string{"STAR method guide"}},
				{Title: "Technical/role practice", Description: "Practice the skills the role will test.", DurationMinutes: 60},
				{Title: "Prepare your questions", Description: "Thoughtful questions to ask each interviewer.", DurationMinutes: 20},
			},
		},
		{
			Title:       "Closing",
			Description: "Negotiate well and land the offer.",
			TaskPool: []TaskBlueprint{
				{Title: "Research market compensation", Description: "Salary bands for the role and region.", DurationMinutes: 30, Resources: []string{"levels.fyi", "Glassdoor"}},
				{Title: "Practice negotiation", Description: "Rehearse the conversation and your numbers.", DurationMinutes: 30},
				{Title: "Send follow-ups", Description: "Thank-you notes and status check-ins.", DurationMinutes: 20},
				{Title: "Evaluate offers", Description: "Compare compensation, growth, and fit.", DurationMinutes: 30},
			},
		},
	},
}

// savingsTemplate covers save/money/budget goals and the finance category.
var savingsTemplate = GoalTemplate{
	Name: "savings",
	Phases: []PhaseBlueprint{
		{
			Title:       "Financial Snapshot",
			Description: "Know exactly where the money goes.",
			TaskPool: []TaskBlueprint{
				{Title: "Track today's spending", Description: "Log every expense, no matter how small.", DurationMinutes: 10},
				{Title: "List recurring charges", Description: "Subscriptions, memberships, and automatic payments.", DurationMinutes: 30},
				{Title: "Calculate monthly cash flow", Description: "Income minus essential and discretionary spending.", DurationMinutes: 40, Resources: []string{"budget spreadsheet"}},
				{Title: "Set your savings target", Description: "A concrete number and date, broken into months.", DurationMinutes: 20},
			},
		},
		{
			Title:       "Cutting and Automating",
			Description: "Reduce leaks and make saving automatic.",
			TaskPool: []TaskBlueprint{
				{Title: "Cancel an unused subscription", Description: "Pick the weakest recurring charge and cut it.", DurationMinutes: 15},
				{Title: "Set up automatic transfer", Description: "Move a fixed amount to savings on payday.", DurationMinutes: 20},
				{Title: "Comparison-shop a bill", Description: "Insurance, phone, or utilities — get a better rate.", DurationMinutes: 40},
				{Title: "No-spend day review", Description: "Plan a zero-discretionary-spend day and review how it went.", DurationMinutes: 15},
			},
		},
		{
			Title:       "Growing the Gap",
			Description: "Increase the distance between income and spending.",
			TaskPool: []TaskBlueprint{
				{Title: "Weekly budget review", Description: "Compare actuals to plan and adjust categories.", DurationMinutes: 25},
				{Title: "Research a side income", Description: "One concrete option to bring in extra money.", DurationMinutes: 40},
				{Title: "Meal-plan to cut food costs", Description: "Plan the week's meals around what's on sale.", DurationMinutes: 30},
				{Title: "Read about investing basics", Description: "One chapter or article on making savings grow.", DurationMinutes: 30, Resources: []string{"index fund primer"}},
			},
		},
	},
}

// readingTemplate covers read-more/book goals.
var readingTemplate = GoalTemplate{
	Name: "reading",
	Phases: []PhaseBlueprint{
		{
			Title:       "Building the Habit",
			Description: "Make daily reading frictionless.",
			TaskPool: []TaskBlueprint{
				{Title: "Read for 25 minutes", Description: "Phone in another room, timer on.", DurationMinutes: 25},
				{Title: "Build your reading list", Description: "Queue the next three books you're excited about.", DurationMinutes: 20, Resources: []string{"Goodreads"}},
				{Title: "Set up a reading spot", Description: "A comfortable, well-lit place with no screen nearby.", DurationMinutes: 15},
			},
		},
		{
			Title:       "Deepening",
			Description: "Read more, retain more.",
			TaskPool: []TaskBlueprint{
				{Title: "Read for 40 minutes", Description: "A longer, uninterrupted session.", DurationMinutes: 40},
				{Title: "Write margin notes or highlights", Description: "Capture passages worth returning to.", DurationMinutes: 15},
				{Title: "Summarize the last chapter", Description: "Three sentences from memory.", DurationMinutes: 15},
			},
		},
		{
			Title:       "Reading Life",
			Description: "Connect reading to the rest of your life.",
			TaskPool: []TaskBlueprint{
				{Title: "Read for 40 minutes", Description: "Keep the streak alive.", DurationMinutes: 40},
				{Title: "Discuss or review a book", Description: "Book club, a friend, or a written review.", DurationMinutes: 30},
				{Title: "Pick your next book", Description: "Start the next one the same day you finish.", DurationMinutes: 15},
			},
		},
	},
}

// mindfulnessTemplate covers meditation/mindfulness/stress goals.
var mindfulnessTemplate = GoalTemplate{
	Name: "mindfulness",
	Phases: []PhaseBlueprint{
		{
			Title:       "Starting Still",
			Description: "Short daily sits to build the habit.",
			TaskPool: []TaskBlueprint{
				{Title: "5-minute breathing meditation", Description: "Sit, breathe, count breaths to ten, repeat.", DurationMinutes: 10, Resources: []string{"Insight Timer", "Headspace"}},
				{Title: "Body scan before bed", Description: "A guided scan from head to toe.", DurationMinutes: 15},
				{Title: "Note three good things", Description: "Write three things that went well today.", DurationMinutes: 10},
			},
		},
		{
			Title:       "Going Deeper",
			Description: "Longer sits and mindful daily moments.",
			TaskPool: []TaskBlueprint{
				{Title: "15-minute meditation", Description: "Unguided or lightly guided sit.", DurationMinutes: 15},
				{Title: "Mindful walk", Description: "A walk with attention on senses, not thoughts.", DurationMinutes: 25},
				{Title: "Journal on stress triggers", Description: "What spiked stress this week, and what helped.", DurationMinutes: 20},
			},
		},
		{
			Title:       "Integration",
			Description: "Carry the practice into stressful moments.",
			TaskPool: []TaskBlueprint{
				{Title: "20-minute meditation", Description: "A longer unguided sit.", DurationMinutes: 20},
				{Title: "Practice a reset breath", Description: "Use a one-minute breathing reset during the workday.", DurationMinutes: 10},
				{Title: "Weekly reflection", Description: "How has your baseline stress shifted?", DurationMinutes: 20},
			},
		},
	},
}

// careerTemplate is the fallback for the career category.
var careerTemplate = GoalTemplate{
	Name: "career-growth",
	Phases: []PhaseBlueprint{
		{
			Title:       "Self-Assessment",
			Description: "Map strengths, gaps, and direction.",
			TaskPool: []TaskBlueprint{
				{Title: "Write your career inventory", Description: "Skills, wins, and what energizes you.", DurationMinutes: 40},
				{Title: "Identify two growth skills", Description: "Skills that unlock the next role.", DurationMinutes: 30},
				{Title: "Ask for feedback", Description: "One honest conversation with a colleague or manager.", DurationMinutes: 30},
			},
		},
		{
			Title:       "Skill Investment",
			Description: "Deliberate work on the gap that matters most.",
			TaskPool: []TaskBlueprint{
				{Title: "Skill practice session", Description: "Focused practice on your chosen growth skill.", DurationMinutes: 45},
				{Title: "Take on a stretch task", Description: "Volunteer for work slightly beyond your comfort zone.", DurationMinutes: 60},
				{Title: "Learn from an expert", Description: "A talk, article, or conversation with someone ahead of you.", DurationMinutes: 30},
			},
		},
		{
			Title:       "Visibility and Momentum",
			Description: "Make the growth visible and keep it compounding.",
			TaskPool: []TaskBlueprint{
				{Title: "Share your work", Description: "A demo, write-up, or presentation of recent work.", DurationMinutes: 45},
				{Title: "Grow your network", Description: "One new professional connection or reconnection.", DurationMinutes: 20},
				{Title: "Review goals with your manager", Description: "Align on progress and next opportunities.", DurationMinutes: 30},
			},
		},
	},
}

// healthTemplate is the fallback for the health category.
var healthTemplate = GoalTemplate{
	Name: "health",
	Phases: []PhaseBlueprint{
		{
			Title:       "Baseline",
			Description: "Understand where your health stands today.",
			TaskPool: []TaskBlueprint{
				{Title: "Schedule a checkup", Description: "Book or attend an overdue appointment.", DurationMinutes: 20},
				{Title: "Track sleep for the night", Description: "Bedtime, wake time, and how rested you felt.", DurationMinutes: 10},
				{Title: "20-minute movement", Description: "Any activity that raises your heart rate.", DurationMinutes: 20},
			},
		},
		{
			Title:       "Daily Practices",
			Description: "Small, consistent improvements.",
			TaskPool: []TaskBlueprint{
				{Title: "30-minute movement", Description: "Walk, gym, sport — your choice.", DurationMinutes: 30},
				{Title: "Cook a vegetable-forward meal", Description: "Half the plate from plants.", DurationMinutes: 40},
				{Title: "Screen-free wind-down", Description: "No screens for the hour before bed.", DurationMinutes: 15},
				{Title: "Hydration check", Description: "Hit your water target for the day.", DurationMinutes: 5},
			},
		},
		{
			Title:       "Sustainable Rhythm",
			Description: "Make the practices stick.",
			TaskPool: []TaskBlueprint{
				{Title: "Favorite activity session", Description: "The movement you actually enjoy.", DurationMinutes: 40},
				{Title: "Weekly health review", Description: "Sleep, energy, movement — what needs attention?", DurationMinutes: 20},
				{Title: "Plan next week's meals", Description: "Keep good food the default.", DurationMinutes: 30},
			},
		},
	},
}

// personalTemplate is the generic fallback and the personal category default.
var personalTemplate = GoalTemplate{
	Name: "personal",
	Phases: []PhaseBlueprint{
		{
			Title:       "Clarify",
			Description: "Turn the ambition into something concrete.",
			TaskPool: []TaskBlueprint{
				{Title: "Define what success looks like", Description: "Write the specific outcome you want and why.", DurationMinutes: 30},
				{Title: "Break it into milestones", Description: "Three or four checkpoints between here and done.", DurationMinutes: 30},
				{Title: "First small step", Description: "The smallest action that creates momentum.", DurationMinutes: 30},
			},
		},
		{
			Title:       "Consistent Action",
			Description: "Steady progress on the core work.",
			TaskPool: []TaskBlueprint{
				{Title: "Work session", Description: "A focused block on the goal's main activity.", DurationMinutes: 45},
				{Title: "Remove one obstacle", Description: "Fix the thing that made last session harder.", DurationMinutes: 30},
				{Title: "Progress check-in", Description: "What moved this week, and what's next?", DurationMinutes: 15},
			},
		},
		{
			Title:       "Follow Through",
			Description: "Close the gap between almost and done.",
			TaskPool: []TaskBlueprint{
				{Title: "Work session", Description: "Keep the focused blocks going.", DurationMinutes: 45},
				{Title: "Share progress with someone", Description: "Accountability makes finishing easier.", DurationMinutes: 20},
				{Title: "Plan the final push", Description: "List exactly what remains and schedule it.", DurationMinutes: 25},
			},
		},
	},
}

// fitnessTemplate is the fallback for the fitness category.
var fitnessTemplate = GoalTemplate{
	Name: "fitness",
	Phases: []PhaseBlueprint{
		{
			Title:       "Conditioning Base",
			Description: "Build work capacity safely.",
			TaskPool: []TaskBlueprint{
				{Title: "Full-body workout", Description: "Compound movements at moderate intensity.", DurationMinutes: 45, Resources: []string{"beginner program"}},
				{Title: "Zone-2 cardio", Description: "30 minutes at an easy, sustainable pace.", DurationMinutes: 30},
				{Title: "Mobility session", Description: "Stretching and joint prep.", DurationMinutes: 20},
			},
		},
		{
			Title:       "Progressive Overload",
			Description: "Add weight, reps, or pace each week.",
			TaskPool: []TaskBlueprint{
				{Title: "Strength session A", Description: "Lower-body focus, progressive loading.", DurationMinutes: 50},
				{Title: "Strength session B", Description: "Upper-body focus, progressive loading.", DurationMinutes: 50},
				{Title: "Conditioning intervals", Description: "Short hard efforts with full recovery.", DurationMinutes: 30},
				{Title: "Log and review training", Description: "Record loads and plan next session's targets.", DurationMinutes: 15},
			},
		},
		{
			Title:       "Peak and Test",
			Description: "Consolidate gains and measure them.",
			TaskPool: []TaskBlueprint{
				{Title: "Test day", Description: "Measure a benchmark: lift, distance, or time.", DurationMinutes: 60},
				{Title: "Maintenance workout", Description: "Quality work at comfortable loads.", DurationMinutes: 45},
				{Title: "Plan the next block", Description: "Pick the next training focus.", DurationMinutes: 20},
			},
		},
	},
}

// creativityTemplate is the fallback for the creativity category.
var creativityTemplate = GoalTemplate{
	Name: "creativity",
	Phases: []PhaseBlueprint{
		{
			Title:       "Inputs and Play",
			Description: "Fill the well and lower the stakes.",
			TaskPool: []TaskBlueprint{
				{Title: "Freeform practice", Description: "Create without judging: sketch, draft, jam.", DurationMinutes: 30},
				{Title: "Study work you admire", Description: "Pick one piece apart — what makes it work?", DurationMinutes: 30},
				{Title: "Collect ideas", Description: "Add five raw ideas to your idea file.", DurationMinutes: 15},
			},
		},
		{
			Title:       "A Real Piece",
			Description: "Commit to one project and push it forward.",
			TaskPool: []TaskBlueprint{
				{Title: "Project session", Description: "Focused work on your chosen piece.", DurationMinutes: 60},
				{Title: "Technique practice", Description: "Drill the skill the project demands.", DurationMinutes: 30},
				{Title: "Step back and assess", Description: "What does the piece need next?", DurationMinutes: 20},
			},
		},
		{
			Title:       "Finish and Share",
			Description: "Done beats perfect.",
			TaskPool: []TaskBlueprint{
				{Title: "Finishing session", Description: "Close out the remaining details.", DurationMinutes: 60},
				{Title: "Share the work", Description: "Publish, post, or show someone.", DurationMinutes: 30},
				{Title: "Start the next idea", Description: "Pull the next project from the idea file.", DurationMinutes: 20},
			},
		},
	},
}

// relationshipsTemplate is the fallback for the relationships category.
var relationshipsTemplate = GoalTemplate{
	Name: "relationships",
	Phases: []PhaseBlueprint{
		{
			Title:       "Reconnect",
			Description: "Rebuild the habit of reaching out.",
			TaskPool: []TaskBlueprint{
				{Title: "Reach out to someone", Description: "A call or message to someone you've drifted from.", DurationMinutes: 20},
				{Title: "Plan a get-together", Description: "Put something on the calendar with a friend or family.", DurationMinutes: 15},
				{Title: "Reflect on key relationships", Description: "Who matters most, and who's been neglected?", DurationMinutes: 20},
			},
		},
		{
			Title:       "Quality Time",
			Description: "Show up consistently and attentively.",
			TaskPool: []TaskBlueprint{
				{Title: "Undistracted time together", Description: "An hour with someone, phones away.", DurationMinutes: 60},
				{Title: "Do something kind", Description: "A small unprompted gesture for someone close.", DurationMinutes: 20},
				{Title: "Practice listening", Description: "In your next conversation, ask twice as much as you tell.", DurationMinutes: 15},
			},
		},
		{
			Title:       "Deepening",
			Description: "Move from contact to connection.",
			TaskPool: []TaskBlueprint{
				{Title: "A harder conversation", Description: "Address something unsaid, gently.", DurationMinutes: 40},
				{Title: "Shared activity", Description: "Do something new together.", DurationMinutes: 90},
				{Title: "Gratitude note", Description: "Tell someone specifically what they mean to you.", DurationMinutes: 15},
			},
		},
	},
}
