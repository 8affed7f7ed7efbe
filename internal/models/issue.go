package models

import "time"

const (
	MinIssueSeverity = 1
	MaxIssueSeverity = 10
)

const (
	ProblemCramps           = "cramps"
	ProblemHeadache         = "headache"
	ProblemMoodSwings       = "mood_swings"
	ProblemBloating         = "bloating"
	ProblemFatigue          = "fatigue"
	ProblemBreastTenderness = "breast_tenderness"
	ProblemAcne             = "acne"
	ProblemBackPain         = "back_pain"
	ProblemNausea           = "nausea"
	ProblemSpotting         = "spotting"
	ProblemIrritability     = "irritability"
	ProblemInsomnia         = "insomnia"
	ProblemFoodCravings     = "food_cravings"
	ProblemDiarrhea         = "diarrhea"
	ProblemConstipation     = "constipation"
)

// Issue is a problem reported for a day of an active cycle. Issues are
// immutable once created; LoggedByPartnerID is set only when the partner
// authored the entry.
type Issue struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CycleID           uint      `gorm:"not null;index" json:"cycle_id"`
	TrackedAccountID  uint      `gorm:"not null;index" json:"tracked_account_id"`
	LoggedByPartnerID *uint     `json:"logged_by_partner_id,omitempty"`
	Problem           string    `gorm:"not null" json:"problem"`
	Severity          int       `gorm:"not null" json:"severity"`
	Notes             string    `json:"notes,omitempty"`
	LogDate           time.Time `gorm:"type:date;not null;index" json:"log_date"`
	CreatedAt         time.Time `json:"created_at"`
}

func KnownProblems() []string {
	return []string{
		ProblemCramps,
		ProblemHeadache,
		ProblemMoodSwings,
		ProblemBloating,
		ProblemFatigue,
		ProblemBreastTenderness,
		ProblemAcne,
		ProblemBackPain,
		ProblemNausea,
		ProblemSpotting,
		ProblemIrritability,
		ProblemInsomnia,
		ProblemFoodCravings,
		ProblemDiarrhea,
		ProblemConstipation,
	}
}

func IsKnownProblem(problem string) bool {
	for _, known := range KnownProblems() {
		if known == problem {
			return true
		}
	}
	return false
}

func IsValidIssueSeverity(severity int) bool {
	return severity >= MinIssueSeverity && severity <= MaxIssueSeverity
}
