package models

// KeywordType is the search intent category assigned to a keyword.
type KeywordType string

const (
	TypeBuying        KeywordType = "buying"
	TypeQuestion      KeywordType = "question"
	TypeComparison    KeywordType = "comparison"
	TypeInformational KeywordType = "informational"
)

// CompetitionLevel is the estimated ranking difficulty for a keyword.
type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "low"
	CompetitionMedium CompetitionLevel = "medium"
	CompetitionHigh   CompetitionLevel = "high"
)

// VolumeLabel buckets a raw volume estimate for display.
type VolumeLabel string

const (
	VolumeLow    VolumeLabel = "low"
	VolumeMedium VolumeLabel = "medium"
	VolumeHigh   VolumeLabel = "high"
)

// FitBreakdown holds the five component scores behind a Business Fit
// Score, each in [0,100].
type FitBreakdown struct {
	IntentMatch     int `json:"intentMatch"`
	CompetitionFit  int `json:"competitionFit"`
	VolumePotential int `json:"volumePotential"`
	MonetizationFit int `json:"monetizationFit"`
	LevelMatch      int `json:"levelMatch"`
}

// ScoredKeyword is a keyword candidate annotated with its Business Fit
// Score and supporting signals. Competition and volume are heuristic
// estimates, not measured data. Immutable once created.
type ScoredKeyword struct {
	Text             string           `json:"text"`
	BusinessFitScore int              `json:"businessFitScore"`
	Breakdown        FitBreakdown     `json:"breakdown"`
	Type             KeywordType      `json:"type"`
	Competition      CompetitionLevel `json:"competition"`
	VolumeEstimate   int              `json:"volumeEstimate"`
	VolumeLabel      VolumeLabel      `json:"volumeLabel"`
	MoneyLabel       string           `json:"moneyLabel"`
	Reasoning        string           `json:"reasoning"`
}

// GroupedKeywords buckets scored keywords by intent type for display.
type GroupedKeywords struct {
	Buying        []ScoredKeyword `json:"buying"`
	Question      []ScoredKeyword `json:"question"`
	Comparison    []ScoredKeyword `json:"comparison"`
	Informational []ScoredKeyword `json:"informational"`
}
