package model

type Course struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Credits int      `json:"credits"`
	Prereqs []string `json:"prereqs"`
}

type CourseEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Specialization struct {
	Slug        string   `json:"specialization"`
	Title       string   `json:"title"`
	Core        []string `json:"core_courses"`
	Recommended []string `json:"recommended"`
	Projects    []string `json:"projects"`
}

type CareerPath struct {
	Slug       string   `json:"slug"`
	Required   []string `json:"required"`
	NiceToHave []string `json:"nice_to_have"`
	Roles      []string `json:"roles"`
}

type CareerMatch struct {
	Slug     string   `json:"slug"`
	Roles    []string `json:"roles"`
	Coverage float64  `json:"coverage"`
	Missing  []string `json:"missing"`
}
