package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/store"
)

// GET /api/v1/problems?created_by=&approved=&genre=&tier=&limit=&offset=
func (s *Server) listProblems(c *gin.Context) {
	var f store.ProblemFilter
	f.CreatedBy = c.Query("created_by")

	if v := c.Query("approved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.fail(c, &problem.InputError{Field: "approved", Value: v})
			return
		}
		f.Approved = &b
	}
	if v := c.Query("genre"); v != "" {
		g, err := problem.ParseGenre(v)
		if err != nil {
			s.fail(c, err)
			return
		}
		f.Genre = g
	}
	if v := c.Query("tier"); v != "" {
		t, err := problem.ParseTier(v)
		if err != nil {
			s.fail(c, err)
			return
		}
		f.Tier = &t
	}
	for _, q := range []struct {
		name string
		dst  *int
	}{{"limit", &f.Limit}, {"offset", &f.Offset}} {
		v := c.Query(q.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.fail(c, &problem.InputError{Field: q.name, Value: v})
			return
		}
		*q.dst = n
	}

	recs, err := s.problems.ListProblems(c.Request.Context(), f)
	if err != nil {
		s.fail(c, err)
		return
	}
	if recs == nil {
		recs = []store.ProblemRecord{}
	}
	success(c, recs)
}

// POST /api/v1/problems
func (s *Server) addProblem(c *gin.Context) {
	var in store.NewProblemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	rec, err := s.problems.AddProblem(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	created(c, rec)
}

// GET /api/v1/problems/:id
func (s *Server) getStoredProblem(c *gin.Context) {
	rec, err := s.problems.GetProblem(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	success(c, rec)
}

// POST /api/v1/problems/:id/approve
func (s *Server) approveProblem(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := s.problems.ApproveProblem(ctx, id); err != nil {
		s.fail(c, err)
		return
	}
	s.problemsChanged(c)

	rec, err := s.problems.GetProblem(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	success(c, rec)
}

// DELETE /api/v1/problems/:id
func (s *Server) deleteProblem(c *gin.Context) {
	if err := s.problems.DeleteProblem(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	s.problemsChanged(c)
	success(c, nil)
}

// problemsChanged runs the change hook. A failed reload keeps the old pool
// and is only logged.
func (s *Server) problemsChanged(c *gin.Context) {
	if s.onChange == nil {
		return
	}
	if err := s.onChange(c.Request.Context()); err != nil {
		s.logger.Warn("reload extension pool", zap.Error(err))
	}
}
