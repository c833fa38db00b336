// Package catalog holds the built-in MCA curriculum data and the
// analysis operations computed over it.
package catalog

import "github.com/Govind-17/chat-with-syllbus/internal/model"

var courses = map[string][]model.Course{
	"sem1": {
		{Code: "MCA101", Name: "Programming Fundamentals", Credits: 4, Prereqs: []string{}},
		{Code: "MCA102", Name: "Discrete Mathematics", Credits: 4, Prereqs: []string{}},
		{Code: "MCA103", Name: "Computer Organization", Credits: 3, Prereqs: []string{}},
	},
	"sem2": {
		{Code: "MCA201", Name: "Data Structures", Credits: 4, Prereqs: []string{"MCA101"}},
		{Code: "MCA202", Name: "Database Systems", Credits: 4, Prereqs: []string{"MCA101"}},
		{Code: "MCA203", Name: "Operating Systems", Credits: 3, Prereqs: []string{"MCA103"}},
	},
	"sem3": {
		{Code: "MCA301", Name: "Algorithm Design", Credits: 4, Prereqs: []string{"MCA201"}},
		{Code: "MCA302", Name: "Machine Learning", Credits: 4, Prereqs: []string{"MCA201", "MCA202"}},
		{Code: "MCA303", Name: "Web Technologies", Credits: 3, Prereqs: []string{"MCA201"}},
	},
	"sem4": {
		{Code: "MCA401", Name: "Cloud Computing", Credits: 4, Prereqs: []string{"MCA203", "MCA303"}},
		{Code: "MCA402", Name: "Advanced Databases", Credits: 3, Prereqs: []string{"MCA202"}},
		{Code: "MCA403", Name: "Data Analytics", Credits: 4, Prereqs: []string{"MCA302"}},
	},
}

var specializations = map[string]model.Specialization{
	"ai": {
		Slug:        "ai",
		Title:       "Artificial Intelligence",
		Core:        []string{"MCA302", "MCA403"},
		Recommended: []string{"MCA401", "MCA301"},
		Projects:    []string{"Capstone in ML", "AI Research Seminar"},
	},
	"web": {
		Slug:        "web",
		Title:       "Full Stack Web",
		Core:        []string{"MCA303", "MCA401"},
		Recommended: []string{"MCA202", "MCA203"},
		Projects:    []string{"Progressive Web App", "Cloud-native Services"},
	},
	"data_science": {
		Slug:        "data_science",
		Title:       "Data Science",
		Core:        []string{"MCA302", "MCA403"},
		Recommended: []string{"MCA202", "MCA402"},
		Projects:    []string{"Analytics Pipeline", "Dashboarding Suite"},
	},
}

var examPrep = map[string][]string{
	"theory":    {"Summaries per module", "Flashcards for key definitions"},
	"practical": {"Daily coding drills", "Mini-labs for OS/DBMS"},
	"ml":        {"Reproduce algorithms from scratch", "Explain model assumptions"},
}

var careerPaths = map[string]model.CareerPath{
	"web_developer": {
		Slug:       "web_developer",
		Required:   []string{"MCA303", "MCA401"},
		NiceToHave: []string{"MCA202"},
		Roles:      []string{"Front-end Engineer", "Full Stack Developer"},
	},
	"data_scientist": {
		Slug:       "data_scientist",
		Required:   []string{"MCA302", "MCA403"},
		NiceToHave: []string{"MCA401", "MCA402"},
		Roles:      []string{"Data Scientist", "ML Engineer"},
	},
	"systems_engineer": {
		Slug:       "systems_engineer",
		Required:   []string{"MCA203", "MCA401"},
		NiceToHave: []string{"MCA301"},
		Roles:      []string{"DevOps Engineer", "Systems Analyst"},
	},
}
