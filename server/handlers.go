package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bthstudent/javcheck/audit"
	"github.com/bthstudent/javcheck/board"
	"github.com/bthstudent/javcheck/grouping"
	"github.com/bthstudent/javcheck/report"
)

// AnalyzeRequest runs the engine on boards supplied by the caller. Names
// in Absent must match assembly members exactly.
type AnalyzeRequest struct {
	Assembly   board.Board   `json:"assembly"`
	Candidates []board.Board `json:"candidates"`
	Absent     []string      `json:"absent"`
}

func (srv *Server) analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	arena := board.NewArena(req.Assembly)
	candidates := make([]board.ID, 0, len(req.Candidates))
	for _, b := range req.Candidates {
		candidates = append(candidates, arena.Add(b))
	}

	res := srv.analyzer.Analyze(grouping.Input{
		Arena:      arena,
		Assembly:   0,
		Candidates: candidates,
		Absent:     board.NewNameSet(req.Absent...),
	})

	return c.JSON(http.StatusOK, report.NewResultDocument(arena, 0, res))
}

func (srv *Server) audit(c echo.Context) error {
	ctx := c.Request().Context()
	log := srv.log

	cfg := audit.Config{
		BaseBoard:  srv.cfg.BaseBoard,
		VotingYear: c.QueryParam("year"),
		Absent:     splitList(c.QueryParam("absent")),
		Priority:   splitList(c.QueryParam("priority")),
		Threshold:  srv.cfg.Threshold,
	}

	boards, err := audit.LoadBoards(ctx, srv.fetcher, srv.cfg.Sources)
	if err != nil {
		log.ErrorContext(ctx, "could not load sources", "err", err)
		return echo.NewHTTPError(http.StatusBadGateway, "could not load sources")
	}

	rep, err := srv.auditor.Run(ctx, boards, cfg)
	if err != nil {
		switch {
		case errors.Is(err, audit.ErrUnknownAbsentee):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, audit.ErrAssemblyNotFound), errors.Is(err, audit.ErrNoCandidates):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		log.ErrorContext(ctx, "audit failed", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, report.NewDocument(rep))
}

// splitList splits a comma separated query parameter.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return audit.CleanList(strings.Split(s, ","))
}
