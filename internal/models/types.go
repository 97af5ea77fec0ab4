package models

import "time"

type TargetKind string

const (
	TargetProfile    TargetKind = "profile"
	TargetRepository TargetKind = "repo"
)

// Target is the resolved form of whatever string the user handed us:
// either a profile (Username set) or a repository (Owner/Name set).
type Target struct {
	Kind     TargetKind
	Owner    string
	Name     string
	Username string
}

func (t Target) FullName() string {
	if t.Kind == TargetProfile {
		return t.Username
	}
	return t.Owner + "/" + t.Name
}

type CommitInfo struct {
	AuthorName string
	Message    string
	Date       time.Time
	RepoName   string
}

type Pattern string

const (
	PatternNightOwl      Pattern = "night_owl"
	PatternNoLife        Pattern = "no_life"
	PatternLazyMessages  Pattern = "lazy_messages"
	PatternBugFactory    Pattern = "bug_factory"
	PatternNeverFinishes Pattern = "never_finishes"
)

// CommitStats aggregates everything we derive from a commit set.
// Built once by the analyzer and never mutated afterwards.
type CommitStats struct {
	TotalCommits         int       `json:"totalCommits"`
	CommitsByHour        [24]int   `json:"commitsByHour"`
	CommitsByDay         [7]int    `json:"commitsByDayOfWeek"` // Monday = 0
	LateNightCommits     int       `json:"lateNightCommits"`
	WeekendCommits       int       `json:"weekendCommits"`
	SingleCharMessages   int       `json:"singleCharMessages"`
	FixCommits           int       `json:"fixCommits"`
	WipCommits           int       `json:"wipCommits"`
	MergeCommits         int       `json:"mergeCommits"`
	ShortestMessage      string    `json:"shortestMessage"`
	LongestMessage       string    `json:"longestMessage"`
	AverageMessageLength int       `json:"averageMessageLength"`
	LateNightPercentage  int       `json:"lateNightPercentage"`
	WeekendPercentage    int       `json:"weekendPercentage"`
	Messages             []string  `json:"-"` // first lines, fetch order
	Authors              []string  `json:"authors"`
	AuthorCount          int       `json:"authorCount"`
	SuspiciousPatterns   []Pattern `json:"suspiciousPatterns"`
}

func (s *CommitStats) HasPattern(p Pattern) bool {
	for _, have := range s.SuspiciousPatterns {
		if have == p {
			return true
		}
	}
	return false
}

type ReadmeQuality string

const (
	ReadmeWorthless ReadmeQuality = "worthless"
	ReadmePathetic  ReadmeQuality = "pathetic"
	ReadmeLazy      ReadmeQuality = "lazy"
	ReadmeMinimal   ReadmeQuality = "minimal"
	ReadmeDecent    ReadmeQuality = "decent"
)

type ReadmeAnalysis struct {
	Exists                 bool          `json:"exists"`
	WordCount              int           `json:"wordCount"`
	LineCount              int           `json:"lineCount"`
	HasInstallSection      bool          `json:"hasInstallSection"`
	HasUsageSection        bool          `json:"hasUsageSection"`
	HasContributingSection bool          `json:"hasContributingSection"`
	HasLicenseSection      bool          `json:"hasLicenseSection"`
	HasBadges              bool          `json:"hasBadges"`
	HasCodeBlocks          bool          `json:"hasCodeBlocks"`
	CodeBlockCount         int           `json:"codeBlockCount"`
	Quality                ReadmeQuality `json:"quality"`
}

type NameQuality string

const (
	NamePlaceholderGarbage NameQuality = "placeholder_garbage"
	NameRandomNumbers      NameQuality = "random_numbers"
	NameTooShort           NameQuality = "too_short"
	NameEssay              NameQuality = "essay"
	NameAcceptable         NameQuality = "acceptable"
)

type DescriptionQuality string

const (
	DescriptionNonexistent DescriptionQuality = "nonexistent"
	DescriptionPathetic    DescriptionQuality = "pathetic"
	DescriptionLazy        DescriptionQuality = "lazy"
	DescriptionDecent      DescriptionQuality = "decent"
)

type RepoMetadata struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Stars              int                `json:"stars"`
	Forks              int                `json:"forks"`
	Watchers           int                `json:"watchers"`
	OpenIssues         int                `json:"openIssues"`
	Topics             []string           `json:"topics"`
	HasLicense         bool               `json:"hasLicense"`
	LicenseName        string             `json:"license"`
	Language           string             `json:"language"`
	Archived           bool               `json:"isArchived"`
	DefaultBranch      string             `json:"defaultBranch"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	PushedAt           time.Time          `json:"pushedAt"`
	NameQuality        NameQuality        `json:"nameQuality"`
	DescriptionQuality DescriptionQuality `json:"descriptionQuality"`
}

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

type Roast struct {
	Emoji    string `json:"emoji"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Severity int    `json:"severity"` // 1 (mild) to 5 (brutal)
}

type Achievement struct {
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContentBundle is the unit both content paths produce: the template
// engine fills it deterministically, the generative provider has to
// survive validation to return one.
type ContentBundle struct {
	Grade            Grade         `json:"grade"`
	GradeDescription string        `json:"gradeDescription"`
	Roasts           []Roast       `json:"roasts"`
	Achievements     []Achievement `json:"achievements"`
	Suggestions      []string      `json:"suggestions"`
}

type RepoActivity struct {
	Name     string `json:"name"`
	Commits  int    `json:"commits"`
	Stars    int    `json:"stars"`
	Language string `json:"language"`
}

type Subject struct {
	Kind          TargetKind     `json:"type"`
	FullName      string         `json:"fullName"`
	Owner         string         `json:"owner,omitempty"`
	Repo          string         `json:"repo,omitempty"`
	Username      string         `json:"username,omitempty"`
	TotalRepos    int            `json:"totalRepos,omitempty"`
	AnalyzedRepos int            `json:"analyzedRepos,omitempty"`
	PublicRepos   int            `json:"publicRepos,omitempty"`
	Followers     int            `json:"followers,omitempty"`
	Following     int            `json:"following,omitempty"`
	Bio           string         `json:"bio,omitempty"`
	TopRepos      []RepoActivity `json:"topRepos,omitempty"`
}

// Analysis is the full feature set handed to the grader and both content
// generators. Readme and Metadata are nil on the profile path.
type Analysis struct {
	Subject  Subject
	Stats    *CommitStats
	Readme   *ReadmeAnalysis
	Metadata *RepoMetadata
}

type StatsSummary struct {
	TotalCommits        int `json:"totalCommits"`
	LateNightCommits    int `json:"lateNightCommits"`
	LateNightPercentage int `json:"lateNightPercentage"`
	WeekendCommits      int `json:"weekendCommits"`
	AuthorCount         int `json:"authorCount"`
}

// AnalysisResult is the terminal aggregate of a run. Collaborators render
// it; they do not alter it.
type AnalysisResult struct {
	Kind             TargetKind    `json:"analysisType"`
	Subject          Subject       `json:"repository"`
	Grade            Grade         `json:"grade"`
	GradeDescription string        `json:"gradeDescription"`
	Roasts           []Roast       `json:"roasts"`
	Achievements     []Achievement `json:"achievements"`
	Suggestions      []string      `json:"suggestions"`
	Stats            StatsSummary  `json:"stats"`
}
