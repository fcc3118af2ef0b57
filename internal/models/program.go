package models

// ProgramProfile is one university program's attributes from the catalog.
// Profiles are loaded once at startup and never mutated afterwards.
type ProgramProfile struct {
	University string        `json:"uni"`
	Program    string        `json:"program"`
	Academic   AcademicBlock `json:"academic"`
	Campus     CampusBlock   `json:"campus"`
	Social     SocialBlock   `json:"social"`
}

// AcademicBlock holds the academic attributes of a profile. The eight
// 1-5 rated attributes are pointers so an absent field can fall back to
// the neutral default of 3.
type AcademicBlock struct {
	Interests               []string `json:"interests"`
	LikedHSCourses          []string `json:"liked_hs_courses"`
	AltToEngineering        []string `json:"alt_to_engineering"`
	LearningStyle           *float64 `json:"learning_style"`
	FirstYearSpecialization *float64 `json:"first_year_specialization"`
	CoopImportance          *float64 `json:"coop_importance"`
	ResearchImportance      *float64 `json:"research_importance"`
	CreativityOrientation   *float64 `json:"creativity_orientation"`
	CareerCertainty         *float64 `json:"career_certainty"`
	MathEnjoyment           *float64 `json:"math_enjoyment"`
	CollaborationPreference *float64 `json:"collaboration_preference"`
}

// Rating returns the named 1-5 attribute, defaulting to 3 when the
// catalog entry omits it. Unknown keys also return the default.
func (a AcademicBlock) Rating(key string) float64 {
	var v *float64
	switch key {
	case "learning_style":
		v = a.LearningStyle
	case "first_year_specialization":
		v = a.FirstYearSpecialization
	case "coop_importance":
		v = a.CoopImportance
	case "research_importance":
		v = a.ResearchImportance
	case "creativity_orientation":
		v = a.CreativityOrientation
	case "career_certainty":
		v = a.CareerCertainty
	case "math_enjoyment":
		v = a.MathEnjoyment
	case "collaboration_preference":
		v = a.CollaborationPreference
	}
	if v == nil {
		return 3
	}
	return *v
}

type CampusBlock struct {
	ClassSizeBin  string   `json:"class_size_bin"`
	Setting       string   `json:"setting"`
	HousingStyles []string `json:"housing_styles"`
	CampusSize    string   `json:"campus_size"`
}

type SocialBlock struct {
	NightScene        *float64 `json:"night_scene"`
	Sports            []string `json:"sports"`
	Clubs             []string `json:"clubs"`
	CulturalEventFreq *float64 `json:"cultural_event_freq"`
}

// NightSceneValue returns the night-scene rating, defaulting to 3.
func (s SocialBlock) NightSceneValue() float64 {
	if s.NightScene == nil {
		return 3
	}
	return *s.NightScene
}

// CulturalEventValue returns the cultural-event frequency, defaulting to 3.
func (s SocialBlock) CulturalEventValue() float64 {
	if s.CulturalEventFreq == nil {
		return 3
	}
	return *s.CulturalEventFreq
}
