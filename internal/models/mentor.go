package models

type Mentor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	School   string `json:"school"`
	Program  string `json:"program"`
	Year     string `json:"year,omitempty"`
	Bio      string `json:"bio,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

// MentorDirectory mirrors mentors.json: a flat mentor list plus a map
// from "University_Program" keys to mentor ids.
type MentorDirectory struct {
	Mentors        []Mentor            `json:"mentors"`
	ProgramMentors map[string][]string `json:"programMentors"`
}
