package api

import (
	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathstudio/internal/problem"
)

// GET /api/v1/problem?genre=&tier=
func (s *Server) getProblem(c *gin.Context) {
	g, err := problem.ParseGenre(c.Query("genre"))
	if err != nil {
		s.fail(c, err)
		return
	}
	t, err := problem.ParseTier(c.Query("tier"))
	if err != nil {
		s.fail(c, err)
		return
	}

	p, err := s.engine.GetProblem(g, t, s.ext)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.metrics.ProblemServed(p)
	success(c, p)
}

type challengeRequest struct {
	Count int    `json:"count"`
	Genre string `json:"genre" binding:"required"`
}

// POST /api/v1/challenge
func (s *Server) buildChallenge(c *gin.Context) {
	var req challengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	g, err := problem.ParseGenre(req.Genre)
	if err != nil {
		s.fail(c, err)
		return
	}

	set, err := s.engine.BuildChallengeSet(req.Count, g, s.ext)
	if err != nil {
		s.fail(c, err)
		return
	}
	for _, p := range set {
		s.metrics.ProblemServed(p)
	}
	success(c, set)
}

type checkRequest struct {
	Problem problem.Problem `json:"problem"`
	Answer  string          `json:"answer"`
}

type checkResponse struct {
	Correct bool `json:"correct"`
}

// POST /api/v1/check
func (s *Server) check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if problem.Normalize(req.Problem.Answer) == "" {
		badRequest(c, "problem.answer is required")
		return
	}

	correct := problem.IsCorrect(req.Problem, req.Answer)
	s.metrics.AnswerChecked(req.Problem, correct)
	success(c, checkResponse{Correct: correct})
}

type hintRequest struct {
	Problem problem.Problem `json:"problem"`
	// Index is the currently revealed hint; omitted means none (-1).
	Index *int `json:"index"`
}

type hintResponse struct {
	Index int    `json:"index"`
	Hint  string `json:"hint"`
}

// POST /api/v1/hint
func (s *Server) hint(c *gin.Context) {
	var req hintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	cur := -1
	if req.Index != nil {
		cur = *req.Index
	}

	next := problem.NextHint(req.Problem, cur)
	if next != cur && next >= 0 {
		s.metrics.HintRevealed(req.Problem)
	}
	success(c, hintResponse{Index: next, Hint: problem.Hint(req.Problem, next)})
}

// GET /api/v1/stats
func (s *Server) stats(c *gin.Context) {
	st, err := s.events.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	success(c, st)
}
