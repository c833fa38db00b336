package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Govind-17/chat-with-syllbus/internal/catalog"
	"github.com/Govind-17/chat-with-syllbus/internal/pkg/errcode"
	"github.com/Govind-17/chat-with-syllbus/internal/pkg/response"
)

type AnalysisHandler struct {
	catalog *catalog.Service
}

func NewAnalysisHandler(svc *catalog.Service) *AnalysisHandler {
	return &AnalysisHandler{catalog: svc}
}

func (h *AnalysisHandler) CourseGraph(c *gin.Context) {
	response.Success(c, h.catalog.CourseGraph())
}

type creditsRequest struct {
	Semesters []string `json:"semesters"`
}

func (h *AnalysisHandler) Credits(c *gin.Context) {
	var req creditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request body")
		return
	}
	if len(req.Semesters) == 0 {
		response.Error(c, errcode.ErrInvalid, "semesters required")
		return
	}
	response.Success(c, h.catalog.CalculateCredits(req.Semesters))
}

func (h *AnalysisHandler) Prerequisites(c *gin.Context) {
	report, err := h.catalog.CheckPrerequisites(c.Param("code"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, report)
}

func (h *AnalysisHandler) Specialization(c *gin.Context) {
	spec, err := h.catalog.SpecializationRoadmap(c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, spec)
}

func (h *AnalysisHandler) ExamHelper(c *gin.Context) {
	response.Success(c, h.catalog.ExamHelper(c.Query("focus")))
}

type careerRequest struct {
	Courses []string `json:"courses"`
}

func (h *AnalysisHandler) CareerPaths(c *gin.Context) {
	var req careerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request body")
		return
	}
	cleaned := make([]string, 0, len(req.Courses))
	for _, course := range req.Courses {
		if course = strings.TrimSpace(course); course != "" {
			cleaned = append(cleaned, course)
		}
	}
	response.Success(c, gin.H{"matching_paths": h.catalog.MapCareerPaths(cleaned)})
}
