package roast

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/gnomegl/gitroast/internal/models"
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var gradeDescriptions = map[models.Grade]string{
	models.GradeAPlus: "Holy shit, you actually know what you're doing. This is rare. Suspiciously rare. Did you cheat?",
	models.GradeA:     "Pretty good! Not perfect, but you're not actively making the world worse. Still got roasted though.",
	models.GradeB:     "Mediocre. You're the developer equivalent of a participation trophy. Functional, but nobody's impressed.",
	models.GradeC:     "Yikes. Your code technically works, but so does a hammer as a screwdriver. This is painful to watch.",
	models.GradeD:     "Oof. Big oof. Your commits make senior devs cry. Do you need help? Serious question.",
	models.GradeF:     "Genuinely catastrophic. This code is a war crime. Your git history violates the Geneva Convention. Please stop.",
}

var messageCrimes = []string{
	"Your commit messages have the vocabulary of a drunk toddler.",
	"Writing coherent sentences is FREE. Why are you so cheap?",
	"Even cavemen communicated better than this.",
	"Your messages make Trump tweets look like Shakespeare.",
}

// GenerateTemplate renders an analysis into a content bundle using only
// the rules engine. Same analysis in, same bundle out, except for one
// randomly picked quip in the short-message roast.
func GenerateTemplate(analysis *models.Analysis) *models.ContentBundle {
	stats := analysis.Stats
	grade := ComputeGrade(analysis)

	var roasts []models.Roast
	var achievements []models.Achievement
	var suggestions []string

	if stats.HasPattern(models.PatternNightOwl) {
		roasts = append(roasts, models.Roast{
			Emoji: "🦉", Title: "Certified Nocturnal Disaster", Severity: 5,
			Content: fmt.Sprintf("%d%% of your commits are between 11 PM and 5 AM. Are you okay? Seriously. This isn't dedication, this is a cry for help. Your code reeks of sleep deprivation and Monster Energy. Every 3 AM commit is probably introducing bugs that 9 AM you has to fix. You're not a night owl, you're a walking liability with a GitHub account.", stats.LateNightPercentage),
		})
		achievements = append(achievements, models.Achievement{
			Emoji: "🌙", Title: "Vampire Code Goblin",
			Description: fmt.Sprintf("%d commits made while the rest of humanity sleeps. Sunlight is your mortal enemy.", stats.LateNightCommits),
		})
		suggestions = append(suggestions,
			"Get some fucking sleep. Your code quality drops 50% after midnight and it shows.",
			"Those energy drinks aren't a personality trait. They're a coping mechanism.")
	}

	if stats.HasPattern(models.PatternNoLife) {
		roasts = append(roasts, models.Roast{
			Emoji: "💀", Title: "Weekend Prisoner - Life Status: Nonexistent", Severity: 5,
			Content: fmt.Sprintf("%d%% weekend commits. %d times you chose code over literally anything else. While normal people are living their lives, you're here, alone with your bugs. Your family has forgotten your face. Your friends have moved on. But hey, at least your git commit streak is intact, right? RIGHT?! This is genuinely concerning.", stats.WeekendPercentage, stats.WeekendCommits),
		})
		achievements = append(achievements, models.Achievement{
			Emoji: "⛓️", Title: "Stockholm Syndrome: Developer Edition",
			Description: fmt.Sprintf("%d weekend commits. You've been held hostage by your IDE so long you forgot what freedom tastes like.", stats.WeekendCommits),
		})
		suggestions = append(suggestions,
			"Touch grass. I'm serious. Go outside. The sun won't kill you, I promise.",
			"Your commit streak isn't worth your mental health. Log off.")
	}

	if stats.HasPattern(models.PatternLazyMessages) {
		roasts = append(roasts, models.Roast{
			Emoji: "💩", Title: "Commit Message War Criminal", Severity: 5,
			Content: fmt.Sprintf("%d commits with messages under 3 characters. \"fix\", \"wip\", \"f\", \"asdf\" - WHAT THE FUCK DOES THIS MEAN?! You're not being efficient, you're being a selfish prick to everyone (including future you) who has to understand this garbage. Your commit messages read like a caveman discovered Git. This is unacceptable. Learn to communicate like a goddamn adult.", stats.SingleCharMessages),
		})
		suggestions = append(suggestions,
			"Write commit messages like your job depends on it. Because one day, it will.",
			"\"fix\" isn't a commit message. It's the sound your career makes when people review your code.",
			"If you can't explain what you did in 10 words, you probably fucked something up.")
	}

	if stats.HasPattern(models.PatternBugFactory) {
		fixPct := 0
		if stats.TotalCommits > 0 {
			fixPct = roundPercent(stats.FixCommits, stats.TotalCommits)
		}
		roasts = append(roasts, models.Roast{
			Emoji: "🏭", Title: "Industrial-Scale Bug Manufacturing Plant", Severity: 5,
			Content: fmt.Sprintf("%d commits with \"fix\" in them. That's %d%% of your entire git history just unfucking your own fuckups. You're not a developer, you're playing whack-a-mole with bugs of your own creation. Every feature you add breaks two more things. Your code is held together with duct tape, prayers, and increasingly desperate \"fixes\". You're the reason we can't have nice things.", stats.FixCommits, fixPct),
		})
		achievements = append(achievements, models.Achievement{
			Emoji: "🐛", Title: "Professional Chaos Agent",
			Description: fmt.Sprintf("%d fix commits. You create more problems than you solve. This is actually impressive in the worst way possible.", stats.FixCommits),
		})
		suggestions = append(suggestions,
			"WRITE. TESTS. Yes, they take time. You know what takes more time? Fixing the same bug 47 times.",
			"Maybe Google \"what is unit testing\" before pushing to prod again.",
			"Your definition of \"working code\" is terrifying.")
	}

	if stats.HasPattern(models.PatternNeverFinishes) {
		roasts = append(roasts, models.Roast{
			Emoji: "🚧", Title: "The Commitment-Phobe - Emotional Unavailability in Code Form", Severity: 4,
			Content: fmt.Sprintf("%d \"WIP\", \"TODO\", or \"work in progress\" commits. Your entire codebase is an abandoned construction site. You start features like you start New Year's resolutions - with enthusiasm that dies within 48 hours. Every repo is a museum of half-baked ideas and broken promises. Finishing things would require actually seeing something through to completion, which is apparently beneath you. Are you scared of success or just aggressively incompetent?", stats.WipCommits),
		})
		suggestions = append(suggestions,
			"Finish ONE thing. Just ONE. I believe in you. Barely.",
			"Your \"TODO\" comments are older than some junior developers.")
	}

	if stats.AverageMessageLength < 20 {
		shortest := stats.ShortestMessage
		if shortest == "" {
			shortest = "N/A"
		}
		roasts = append(roasts, models.Roast{
			Emoji: "📝", Title: "The Illiterate Developer", Severity: 4,
			Content: fmt.Sprintf("Average commit message: %d characters. Your shortest message was \"%s\". Wow. Just... wow. %s Future devs will need an archaeologist and a priest to decipher your git history. This is weaponized incompetence.", stats.AverageMessageLength, shortest, messageCrimes[rand.Intn(len(messageCrimes))]),
		})
		suggestions = append(suggestions, "Learn to use words. Full words. In complete sentences.")
	}

	if stats.TotalCommits > 0 {
		hour, day := peakActivity(stats)
		roasts = append(roasts, models.Roast{
			Emoji: "⏰", Title: "Your Coding Schedule Screams \"Red Flags\"", Severity: 3,
			Content: fmt.Sprintf("Peak activity: %s on %s. %s", formatHour(hour), dayNames[day], scheduleRoast(hour, day)),
		})
	}

	if stats.TotalCommits > 1000 {
		achievements = append(achievements, models.Achievement{
			Emoji: "🎯", Title: "Commit Count Inflation Expert",
			Description: fmt.Sprintf("%d commits. Quality over quantity doesn't exist in your universe.", stats.TotalCommits),
		})
	}

	if stats.TotalCommits < 10 {
		roasts = append(roasts, models.Roast{
			Emoji: "👶", Title: "Git Noob - Fresh Meat", Severity: 3,
			Content: fmt.Sprintf("%d commits total. Are you new here or just scared? This repo has the energy of someone who read \"Git for Dummies\" once and gave up halfway. You're either a beginner (fair) or someone who makes 5000-line commits (war crime). Either way, this is embarrassing.", stats.TotalCommits),
		})
	}

	if stats.AuthorCount == 1 {
		roasts = append(roasts, models.Roast{
			Emoji: "🏝️", Title: "Solo Dev Island - Population: You, And Your Bugs", Severity: 4,
			Content: "One contributor. You. Alone. Nobody wants to work with you, and after seeing this git history, I understand why. You're not a \"lone wolf genius\" - you're someone nobody else will collaborate with. This code has \"bus factor of 1\" written all over it. When you're gone, this project dies. Not because you're irreplaceable, but because nobody else wants to touch this disaster.",
		})
		achievements = append(achievements, models.Achievement{
			Emoji: "🦸", Title: "Rejected Collaboration Applications: All of Them",
			Description: "Solo developer. Your code is so special nobody else will touch it.",
		})
	}

	roasts, suggestions = readmeRoasts(analysis.Readme, stats.TotalCommits, roasts, suggestions)
	roasts, achievements, suggestions = metadataRoasts(analysis.Metadata, stats.TotalCommits, roasts, achievements, suggestions)

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Honestly? Just start over. This is beyond saving.",
			"Have you considered a career in something that doesn't involve computers?")
	}
	suggestions = append(suggestions,
		"Git history is permanent. Yours is permanently shameful.",
		"Every commit is a chance to be better. You're wasting those chances.",
		"Read \"Clean Code\" and actually apply it, not just tweet about it.",
		"Documentation isn't optional. Write it.")

	if len(roasts) == 0 {
		roasts = defaultRoasts(stats)
	}
	if len(achievements) == 0 {
		achievements = defaultAchievements(stats)
	}

	return &models.ContentBundle{
		Grade:            grade,
		GradeDescription: gradeDescriptions[grade],
		Roasts:           roasts,
		Achievements:     achievements,
		Suggestions:      suggestions,
	}
}

func readmeRoasts(readme *models.ReadmeAnalysis, totalCommits int, roasts []models.Roast, suggestions []string) ([]models.Roast, []string) {
	if readme == nil {
		return roasts, suggestions
	}

	switch {
	case !readme.Exists:
		roasts = append(roasts, models.Roast{
			Emoji: "📄", Title: "No README? Seriously?", Severity: 5,
			Content: fmt.Sprintf("No README file detected. Are you fucking kidding me? This is like opening a restaurant with no menu. How is anyone supposed to use this garbage? \"Just read the code\" isn't an answer, it's an excuse for being lazy. Writing a README takes 10 minutes. You had time to commit %d times but couldn't be bothered to write ONE README? This is a special kind of selfish.", totalCommits),
		})
		suggestions = append(suggestions,
			"Write a README. Any README. Literally anything is better than nothing.",
			"If you can't explain your project in a README, maybe it shouldn't exist.")
	case readme.Quality == models.ReadmeWorthless || readme.Quality == models.ReadmePathetic:
		roasts = append(roasts, models.Roast{
			Emoji: "📝", Title: "README: Technically Exists, Practically Useless", Severity: 4,
			Content: fmt.Sprintf("Your README is %d words. That's it. That's the whole thing. You have a README the way a desert has water - technically present, completely useless. This isn't documentation, it's a fucking Post-it note. No installation instructions, no usage examples, no nothing. Just... empty space where effort should be. Embarrassing.", readme.WordCount),
		})
		suggestions = append(suggestions, "Your README should explain WHAT, WHY, and HOW. Yours explains nothing.")
	case readme.Quality == models.ReadmeLazy || readme.Quality == models.ReadmeMinimal:
		var missing []string
		if !readme.HasInstallSection {
			missing = append(missing, "installation")
		}
		if !readme.HasUsageSection {
			missing = append(missing, "usage examples")
		}
		if !readme.HasLicenseSection {
			missing = append(missing, "license")
		}
		noExamples := ""
		if readme.CodeBlockCount < 1 {
			noExamples = "Zero code examples. ZERO. "
		}
		roasts = append(roasts, models.Roast{
			Emoji: "📋", Title: "Half-Assed Documentation Expert", Severity: 3,
			Content: fmt.Sprintf("Your README exists but it's bare minimum bullshit. %d words of vague nonsense. Missing: %s. %sThis is the README equivalent of \"it works on my machine.\" Put some fucking effort in.", readme.WordCount, strings.Join(missing, ", "), noExamples),
		})
		suggestions = append(suggestions,
			"Add installation instructions. People shouldn't have to guess.",
			"Usage examples aren't optional. They're mandatory.")
	}

	return roasts, suggestions
}

func metadataRoasts(meta *models.RepoMetadata, totalCommits int, roasts []models.Roast, achievements []models.Achievement, suggestions []string) ([]models.Roast, []models.Achievement, []string) {
	if meta == nil {
		return roasts, achievements, suggestions
	}

	if meta.NameQuality == models.NamePlaceholderGarbage {
		roasts = append(roasts, models.Roast{
			Emoji: "🗑️", Title: "Repo Name: Placeholder Trash", Severity: 4,
			Content: fmt.Sprintf("Your repo is named \"%s\". Really? REALLY?! \"test\", \"temp\", \"untitled\", \"asdf\" - these aren't names, they're cries for help. This screams \"I meant to change this later and forgot.\" Professional developers name their repos properly. You named yours like you're making a throwaway folder. This is your public face on GitHub. Show some goddamn self-respect.", meta.Name),
		})
		suggestions = append(suggestions, "Rename your repo to something that doesn't sound like a placeholder.")
	}

	switch meta.DescriptionQuality {
	case models.DescriptionNonexistent:
		roasts = append(roasts, models.Roast{
			Emoji: "🏷️", Title: "Description: Error 404 Not Found", Severity: 4,
			Content: "No repository description. Nothing. Not even a single word explaining what this is. You couldn't take 30 seconds to write ONE SENTENCE about your project? This is maximum laziness. GitHub literally gives you a description field. It's right there. And you just... ignored it. Like documentation doesn't matter. Like other people don't exist. Incredible.",
		})
		suggestions = append(suggestions, "Add a repo description. One sentence. That's all we're asking.")
	case models.DescriptionPathetic, models.DescriptionLazy:
		roasts = append(roasts, models.Roast{
			Emoji: "💬", Title: "Repo Description: Aggressively Unhelpful", Severity: 3,
			Content: fmt.Sprintf("Your repo description is \"%s\". %d characters of pure nothing. That's not a description, that's an afterthought. \"A project\" - WOW THANKS SO HELPFUL. \"My code\" - NO SHIT. Write a real description that actually tells people what this does. Be specific. Be useful. Be anything other than this.", meta.Description, len(meta.Description)),
		})
		suggestions = append(suggestions, "Describe WHAT your project does and WHY it exists.")
	}

	if !meta.HasLicense && totalCommits > 20 {
		roasts = append(roasts, models.Roast{
			Emoji: "⚖️", Title: "No License - Legal Gray Area Specialist", Severity: 3,
			Content: fmt.Sprintf("%d commits, zero license. You know what that means? Nobody can legally use your code. Congrats, you've created work nobody can touch. \"But I want it to be open source!\" - then ADD A FUCKING LICENSE. It takes 2 minutes. MIT, Apache, GPL, pick one. Your code is in legal limbo because you couldn't be bothered with basic open source hygiene.", totalCommits),
		})
		suggestions = append(suggestions, "Add a license. MIT is fine. Just pick something.")
	}

	if len(meta.Topics) == 0 {
		roasts = append(roasts, models.Roast{
			Emoji: "🏷️", Title: "Zero Topics - SEO Failure", Severity: 2,
			Content: "No repository topics. None. GitHub lets you add topics so people can find your repo. You said \"nah.\" This repo is invisible. Undiscoverable. You're basically coding in a dark room with the door locked. Nobody will ever find this. But hey, at least you tried. Wait, no you didn't.",
		})
		suggestions = append(suggestions, "Add topics/tags. Make your repo discoverable.")
	}

	if meta.Stars == 0 && totalCommits > 50 {
		achievements = append(achievements, models.Achievement{
			Emoji: "⭐", Title: "Zero Stars - Universally Ignored",
			Description: fmt.Sprintf("%d commits, 0 stars. Nobody cares. Not even your mom starred this.", totalCommits),
		})
	}

	if meta.Archived {
		achievements = append(achievements, models.Achievement{
			Emoji: "⚰️", Title: "Repository: Officially Dead",
			Description: "This repo is archived. It's a corpse. A monument to abandoned dreams.",
		})
	}

	return roasts, achievements, suggestions
}

func defaultRoasts(stats *models.CommitStats) []models.Roast {
	return []models.Roast{
		{
			Emoji: "🎭", Title: "The Ghost Developer", Severity: 3,
			Content: fmt.Sprintf("%d commits of absolutely nothing noteworthy. Your code is so bland it makes plain oatmeal look exciting. No patterns detected because you're too boring to even fuck up in interesting ways.", stats.TotalCommits),
		},
		{
			Emoji: "⚡", Title: "Suspiciously Clean (Suspiciously Useless)", Severity: 2,
			Content: "Your git history is so clean it's either fake or you just started. Either way, there's not enough here to properly roast you, which is somehow more pathetic than having a bad history.",
		},
	}
}

func defaultAchievements(stats *models.CommitStats) []models.Achievement {
	return []models.Achievement{
		{
			Emoji: "🎖️", Title: "Git Participant Trophy",
			Description: fmt.Sprintf("%d commits. Congrats on doing the bare minimum.", stats.TotalCommits),
		},
	}
}

// peakActivity finds the busiest hour and weekday. The earliest index
// wins a tie, matching the iteration order of the histograms.
func peakActivity(stats *models.CommitStats) (hour, day int) {
	for i, n := range stats.CommitsByHour {
		if n > stats.CommitsByHour[hour] {
			hour = i
		}
	}
	for i, n := range stats.CommitsByDay {
		if n > stats.CommitsByDay[day] {
			day = i
		}
	}
	return hour, day
}

func scheduleRoast(hour, day int) string {
	weekend := day == 5 || day == 6
	switch {
	case hour >= 2 && hour < 6:
		return "What the fuck are you doing awake at this hour? This isn't productivity, it's self-destruction with a keyboard. Go. To. Bed."
	case hour >= 23 || hour < 2:
		return "Midnight coding sessions aren't aesthetic, they're a sign you need better time management and possibly therapy."
	case weekend && hour >= 10 && hour < 14:
		return "It's the weekend. People are brunching. Socializing. Living. You're here. Debugging. Alone. Is this really the life you want?"
	case !weekend && hour >= 9 && hour < 17:
		return "Wow, look at you coding during normal hours like an actual professional! This might be your only redeeming quality."
	case weekend && (hour < 9 || hour > 20):
		return "Weekend + unreasonable hours = you've given up on having a life. This is the saddest flex I've ever seen."
	default:
		return "Your coding schedule is as inconsistent as your commit messages. Which is to say: a complete fucking mess."
	}
}

func formatHour(hour int) string {
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, ampm)
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
