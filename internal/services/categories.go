package services

import "strings"

// InterestCategories is the fixed enumeration quiz answers choose from.
var InterestCategories = []string{
	"Engineering", "CS/Math", "Business", "Arts/Humanities",
	"Sciences", "Health", "Undecided",
}

// CourseCategories is the fixed high-school course enumeration.
var CourseCategories = []string{
	"Autoshop", "Biology", "Business", "Chemistry", "Computer Science",
	"Geography", "History", "Language Arts", "Math", "Physics",
	"Visual Arts",
}

// InterestDescriptions gives quiz-facing context for each category.
var InterestDescriptions = map[string]string{
	"Engineering":     "Design and build physical systems and infrastructure",
	"CS/Math":         "Computing, programming, data analysis, and mathematics",
	"Business":        "Finance, marketing, management, and entrepreneurship",
	"Arts/Humanities": "Creative writing, languages, philosophy, and cultural studies",
	"Sciences":        "Natural sciences like biology, chemistry, physics",
	"Health":          "Healthcare, medicine, nursing, and wellness fields",
	"Undecided":       "Not sure yet or interested in multiple areas",
}

// categoryMapping maps a free-text keyword to a canonical category.
// Lookup is a substring scan in declaration order with first-match-wins,
// so ordering is behaviorally significant and the table is a slice, not
// a map.
type categoryMapping struct {
	Keyword  string
	Category string
}

var interestMappings = []categoryMapping{
	{"mechanical engineering", "Engineering"},
	{"civil engineering", "Engineering"},
	{"electrical engineering", "Engineering"},
	{"robotics", "Engineering"},
	{"mechatronics", "Engineering"},
	{"automotive", "Engineering"},
	{"aerospace", "Engineering"},
	{"structural design", "Engineering"},
	{"manufacturing", "Engineering"},
	{"product development", "Engineering"},
	{"engineering design", "Engineering"},

	{"programming", "CS/Math"},
	{"software development", "CS/Math"},
	{"algorithms", "CS/Math"},
	{"data science", "CS/Math"},
	{"mathematics", "CS/Math"},
	{"statistics", "CS/Math"},
	{"computer science", "CS/Math"},
	{"web development", "CS/Math"},
	{"artificial intelligence", "CS/Math"},
	{"machine learning", "CS/Math"},
	{"cryptography", "CS/Math"},
	{"cybersecurity", "CS/Math"},
	{"computational", "CS/Math"},

	{"finance", "Business"},
	{"marketing", "Business"},
	{"entrepreneurship", "Business"},
	{"economics", "Business"},
	{"accounting", "Business"},
	{"management", "Business"},
	{"business", "Business"},
	{"consulting", "Business"},
	{"human resources", "Business"},
	{"sales", "Business"},
	{"investment", "Business"},
	{"stock market", "Business"},
	{"taxation", "Business"},
	{"audit", "Business"},

	{"literature", "Arts/Humanities"},
	{"philosophy", "Arts/Humanities"},
	{"history", "Arts/Humanities"},
	{"languages", "Arts/Humanities"},
	{"writing", "Arts/Humanities"},
	{"cultural studies", "Arts/Humanities"},
	{"art history", "Arts/Humanities"},
	{"music", "Arts/Humanities"},
	{"film", "Arts/Humanities"},
	{"theatre", "Arts/Humanities"},
	{"creative writing", "Arts/Humanities"},
	{"linguistics", "Arts/Humanities"},
	{"anthropology", "Arts/Humanities"},
	{"archaeology", "Arts/Humanities"},

	{"biology", "Sciences"},
	{"chemistry", "Sciences"},
	{"physics", "Sciences"},
	{"environmental science", "Sciences"},
	{"astronomy", "Sciences"},
	{"earth sciences", "Sciences"},
	{"geology", "Sciences"},
	{"biochemistry", "Sciences"},
	{"molecular biology", "Sciences"},
	{"genetics", "Sciences"},
	{"ecology", "Sciences"},
	{"marine biology", "Sciences"},
	{"forensic science", "Sciences"},

	{"medicine", "Health"},
	{"nursing", "Health"},
	{"kinesiology", "Health"},
	{"public health", "Health"},
	{"nutrition", "Health"},
	{"psychology", "Health"},
	{"healthcare", "Health"},
	{"anatomy", "Health"},
	{"physiology", "Health"},
	{"pharmacy", "Health"},
	{"biomedical", "Health"},
	{"dentistry", "Health"},
	{"therapy", "Health"},
	{"mental health", "Health"},
	{"psychiatry", "Health"},
	{"rehabilitation", "Health"},
}

var courseMappings = []categoryMapping{
	{"calculus", "Math"},
	{"algebra", "Math"},
	{"statistics", "Math"},
	{"physics", "Physics"},
	{"biology", "Biology"},
	{"chemistry", "Chemistry"},
	{"computer programming", "Computer Science"},
	{"business studies", "Business"},
	{"economics", "Business"},
	{"english", "Language Arts"},
	{"literature", "Language Arts"},
	{"creative writing", "Language Arts"},
	{"history", "History"},
	{"geography", "Geography"},
	{"art", "Visual Arts"},
	{"visual arts", "Visual Arts"},
	{"design", "Visual Arts"},
	{"shop class", "Autoshop"},
	{"auto mechanics", "Autoshop"},
}

// normalizeTags resolves a program's free-text tags against the user's
// selected categories. A tag that equals a selection case-insensitively
// counts directly; otherwise the mapping table is scanned in order and
// the first keyword found inside the lowercased tag whose category is
// among the selections counts. Each tag contributes at most one entry
// and duplicates collapse.
func normalizeTags(tags, selected []string, table []categoryMapping) map[string]struct{} {
	matched := make(map[string]struct{})
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)

		direct := false
		for _, sel := range selected {
			if strings.ToLower(sel) == tagLower {
				matched[tagLower] = struct{}{}
				direct = true
				break
			}
		}
		if direct {
			continue
		}

		for _, m := range table {
			if !strings.Contains(tagLower, m.Keyword) {
				continue
			}
			if containsString(selected, m.Category) {
				matched[m.Category] = struct{}{}
				break
			}
		}
	}
	return matched
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
