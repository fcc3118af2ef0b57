package models

// QuizAnswers is the raw quiz payload posted by the frontend. Numeric
// fields are pointers so an omitted answer can take the same defaults the
// quiz applies (weight 1, rating 3).
type QuizAnswers struct {
	AcademicWeight *float64 `json:"wa"`
	CampusWeight   *float64 `json:"wc"`
	SocialWeight   *float64 `json:"wso"`

	Interests               []string `json:"AA"`
	LearningStyle           *float64 `json:"LS"`
	FirstYearSpecialization *float64 `json:"SP"`
	CoopImportance          *float64 `json:"CO"`
	ResearchImportance      *float64 `json:"UR"`
	CreativityOrientation   *float64 `json:"CR"`
	CareerCertainty         *float64 `json:"CE"`
	LikedCourses            []string `json:"LC"`
	MathEnjoyment           *float64 `json:"ME"`
	CollaborationPreference *float64 `json:"CP"`
	Alternatives            []string `json:"ALT"`

	ClassSize     string   `json:"CSB"`
	Setting       string   `json:"SET"`
	HousingStyles []string `json:"HS"`
	CampusSize    string   `json:"CPS"`

	NightScene        *float64 `json:"NS"`
	Sports            []string `json:"SPT"`
	Clubs             []string `json:"CLB"`
	CulturalEventFreq *float64 `json:"CEV"`
}

// AnswerSet is the immutable answer record passed into every scoring
// function. It is built once per request from the raw payload with all
// defaults resolved; scoring never reads shared state.
type AnswerSet struct {
	AcademicWeight float64
	CampusWeight   float64
	SocialWeight   float64

	Interests               []string
	LearningStyle           float64
	FirstYearSpecialization float64
	CoopImportance          float64
	ResearchImportance      float64
	CreativityOrientation   float64
	CareerCertainty         float64
	LikedCourses            []string
	MathEnjoyment           float64
	CollaborationPreference float64
	Alternatives            []string

	ClassSize     string
	Setting       string
	HousingStyles []string
	CampusSize    string

	NightScene        float64
	Sports            []string
	Clubs             []string
	CulturalEventFreq float64
}

// Resolve applies quiz defaults and produces the immutable answer set.
func (q QuizAnswers) Resolve() AnswerSet {
	return AnswerSet{
		AcademicWeight: deref(q.AcademicWeight, 1),
		CampusWeight:   deref(q.CampusWeight, 1),
		SocialWeight:   deref(q.SocialWeight, 1),

		Interests:               q.Interests,
		LearningStyle:           deref(q.LearningStyle, 3),
		FirstYearSpecialization: deref(q.FirstYearSpecialization, 3),
		CoopImportance:          deref(q.CoopImportance, 3),
		ResearchImportance:      deref(q.ResearchImportance, 3),
		CreativityOrientation:   deref(q.CreativityOrientation, 3),
		CareerCertainty:         deref(q.CareerCertainty, 3),
		LikedCourses:            q.LikedCourses,
		MathEnjoyment:           deref(q.MathEnjoyment, 3),
		CollaborationPreference: deref(q.CollaborationPreference, 3),
		Alternatives:            q.Alternatives,

		ClassSize:     q.ClassSize,
		Setting:       q.Setting,
		HousingStyles: q.HousingStyles,
		CampusSize:    q.CampusSize,

		NightScene:        deref(q.NightScene, 3),
		Sports:            q.Sports,
		Clubs:             q.Clubs,
		CulturalEventFreq: deref(q.CulturalEventFreq, 3),
	}
}

// WeightSum is the normalization denominator for the overall score.
func (a AnswerSet) WeightSum() float64 {
	return a.AcademicWeight + a.CampusWeight + a.SocialWeight
}

func deref(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
