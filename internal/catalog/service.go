package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
	"github.com/Govind-17/chat-with-syllbus/internal/pkg/errors"
)

type CourseGraph struct {
	Nodes []model.Course     `json:"nodes"`
	Edges []model.CourseEdge `json:"edges"`
}

type CreditsReport struct {
	TotalCredits int            `json:"total_credits"`
	Breakdown    map[string]int `json:"breakdown"`
}

type PrerequisiteReport struct {
	Course         model.Course `json:"course"`
	MissingPrereqs []string     `json:"missing_prereqs"`
}

type ExamPlan struct {
	Focus       string   `json:"focus"`
	Suggestions []string `json:"suggestions"`
}

type Service struct {
	lookup map[string]model.Course
	order  []string
}

func NewService() *Service {
	s := &Service{lookup: map[string]model.Course{}}
	semesters := make([]string, 0, len(courses))
	for sem := range courses {
		semesters = append(semesters, sem)
	}
	sort.Strings(semesters)
	for _, sem := range semesters {
		for _, course := range courses[sem] {
			s.lookup[course.Code] = course
			s.order = append(s.order, course.Code)
		}
	}
	return s
}

// CourseGraph lists every course plus a prerequisite edge set suitable
// for rendering a dependency graph.
func (s *Service) CourseGraph() CourseGraph {
	graph := CourseGraph{
		Nodes: make([]model.Course, 0, len(s.order)),
		Edges: []model.CourseEdge{},
	}
	for _, code := range s.order {
		node := s.lookup[code]
		graph.Nodes = append(graph.Nodes, node)
		for _, prereq := range node.Prereqs {
			if _, ok := s.lookup[prereq]; ok {
				graph.Edges = append(graph.Edges, model.CourseEdge{From: prereq, To: node.Code})
			}
		}
	}
	return graph
}

// CalculateCredits sums credits per requested semester. Unknown
// semesters contribute zero rather than failing the whole request.
func (s *Service) CalculateCredits(semesters []string) CreditsReport {
	report := CreditsReport{Breakdown: map[string]int{}}
	for _, sem := range semesters {
		key := strings.ToLower(strings.TrimSpace(sem))
		credits := 0
		for _, course := range courses[key] {
			credits += course.Credits
		}
		report.Breakdown[key] = credits
		report.TotalCredits += credits
	}
	return report
}

func (s *Service) CheckPrerequisites(courseCode string) (PrerequisiteReport, error) {
	code := strings.ToUpper(strings.TrimSpace(courseCode))
	course, ok := s.lookup[code]
	if !ok {
		return PrerequisiteReport{}, fmt.Errorf("course %s: %w", code, errors.ErrNotFound)
	}
	missing := []string{}
	for _, prereq := range course.Prereqs {
		if _, ok := s.lookup[prereq]; !ok {
			missing = append(missing, prereq)
		}
	}
	return PrerequisiteReport{Course: course, MissingPrereqs: missing}, nil
}

func (s *Service) SpecializationRoadmap(slug string) (model.Specialization, error) {
	spec, ok := specializations[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return model.Specialization{}, fmt.Errorf("specialization %q: %w", slug, errors.ErrNotFound)
	}
	return spec, nil
}

// ExamHelper returns preparation suggestions for a focus area, falling
// back to the theory plan for unknown areas.
func (s *Service) ExamHelper(focus string) ExamPlan {
	key := strings.ToLower(strings.TrimSpace(focus))
	suggestions, ok := examPrep[key]
	if !ok {
		suggestions = examPrep["theory"]
	}
	return ExamPlan{Focus: key, Suggestions: suggestions}
}

// MapCareerPaths scores every career path by the share of its required
// courses the student has completed, best match first.
func (s *Service) MapCareerPaths(completed []string) []model.CareerMatch {
	done := map[string]struct{}{}
	for _, code := range completed {
		done[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}

	slugs := make([]string, 0, len(careerPaths))
	for slug := range careerPaths {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	matches := make([]model.CareerMatch, 0, len(slugs))
	for _, slug := range slugs {
		path := careerPaths[slug]
		have := 0
		missing := []string{}
		for _, required := range path.Required {
			if _, ok := done[required]; ok {
				have++
			} else {
				missing = append(missing, required)
			}
		}
		coverage := float64(have) / math.Max(float64(len(path.Required)), 1)
		matches = append(matches, model.CareerMatch{
			Slug:     slug,
			Roles:    path.Roles,
			Coverage: math.Round(coverage*100) / 100,
			Missing:  missing,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Coverage > matches[j].Coverage
	})
	return matches
}
