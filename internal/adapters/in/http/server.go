// Package http exposes the locker access operations over REST.
// It coordinates between echo handlers and application use cases, and owns
// the mapping from typed error kinds to HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	serviceName    = "Parcel Locker Service"
	serviceVersion = "1.0"
)

// Server implements the HTTP surface of the locker access service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	enterPinHandler      commands.EnterPinCommandHandler
	setCellStatusHandler commands.SetCellStatusCommandHandler
	setCellPinHandler    commands.SetCellPinCommandHandler

	// Query handlers
	getLockerHandler queries.GetLockerQueryHandler
	getCellHandler   queries.GetCellQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	enterPinHandler commands.EnterPinCommandHandler,
	setCellStatusHandler commands.SetCellStatusCommandHandler,
	setCellPinHandler commands.SetCellPinCommandHandler,
	getLockerHandler queries.GetLockerQueryHandler,
	getCellHandler queries.GetCellQueryHandler,
) *Server {
	return &Server{
		enterPinHandler:      enterPinHandler,
		setCellStatusHandler: setCellStatusHandler,
		setCellPinHandler:    setCellPinHandler,
		getLockerHandler:     getLockerHandler,
		getCellHandler:       getCellHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Root)
	e.GET("/health", s.Health)
	e.GET("/locker/:lockerId", s.GetLocker)
	e.POST("/locker/:lockerId/enterPIN", s.EnterPin)
	e.GET("/locker/:lockerId/cell/:cellId", s.GetCell)
	e.POST("/locker/:lockerId/cell/:cellId/open", s.OpenCell)
	e.POST("/locker/:lockerId/cell/:cellId/close", s.CloseCell)
	e.POST("/locker/:lockerId/cell/:cellId/setPIN", s.SetCellPin)
}

// Root handles GET / - service banner.
func (s *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, bannerDTO{
		Message: serviceName,
		Version: serviceVersion,
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetLocker handles GET /locker/:lockerId - retrieves a locker's cell set.
func (s *Server) GetLocker(ctx echo.Context) error {
	lockerID, err := lockerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetLockerQuery(lockerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getLockerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lockerDTO{
		LockerID: resp.LockerID,
		Cells:    resp.Cells,
	})
}

// EnterPin handles POST /locker/:lockerId/enterPIN - resolves a PIN to its
// cell and opens it.
func (s *Server) EnterPin(ctx echo.Context) error {
	lockerID, err := lockerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body pinDTO
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewInvalidPinErrorWithCause(err))
	}

	cmd, err := commands.NewEnterPinCommand(lockerID, body.Pin)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.enterPinHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cellDTO{
		LockerID: lockerID,
		CellID:   result.CellID,
		Status:   result.Status.String(),
		Pin:      string(result.Pin),
	})
}

// GetCell handles GET /locker/:lockerId/cell/:cellId - retrieves one cell's
// status and PIN, initializing its record on first touch.
func (s *Server) GetCell(ctx echo.Context) error {
	lockerID, err := lockerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCellQuery(lockerID, ctx.Param("cellId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getCellHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cellDTO{
		LockerID: resp.LockerID,
		CellID:   resp.CellID,
		Status:   resp.Status.String(),
		Pin:      string(resp.Pin),
	})
}

// OpenCell handles POST /locker/:lockerId/cell/:cellId/open.
func (s *Server) OpenCell(ctx echo.Context) error {
	return s.setStatus(ctx, cell.Open)
}

// CloseCell handles POST /locker/:lockerId/cell/:cellId/close.
// The body may carry a pin; it is accepted and discarded, closing requires
// no authorization beyond knowing the cell.
func (s *Server) CloseCell(ctx echo.Context) error {
	var body pinDTO
	_ = ctx.Bind(&body)

	return s.setStatus(ctx, cell.Closed)
}

func (s *Server) setStatus(ctx echo.Context, status cell.Status) error {
	lockerID, err := lockerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	cellID := ctx.Param("cellId")

	cmd, err := commands.NewSetCellStatusCommand(lockerID, cellID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.setCellStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cellDTO{
		LockerID: lockerID,
		CellID:   cellID,
		Status:   status.String(),
	})
}

// SetCellPin handles POST /locker/:lockerId/cell/:cellId/setPIN - assigns a
// PIN to a cell, enforcing per-locker uniqueness.
func (s *Server) SetCellPin(ctx echo.Context) error {
	lockerID, err := lockerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	cellID := ctx.Param("cellId")

	var body pinDTO
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewInvalidPinErrorWithCause(err))
	}

	cmd, err := commands.NewSetCellPinCommand(lockerID, cellID, body.Pin)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.setCellPinHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cellDTO{
		LockerID: lockerID,
		CellID:   cellID,
		Status:   result.Status.String(),
		Pin:      string(result.Pin),
	})
}

func lockerIDParam(ctx echo.Context) (int64, error) {
	lockerID, err := strconv.ParseInt(ctx.Param("lockerId"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("lockerId", err)
	}
	return lockerID, nil
}

// fail translates a typed error kind into its HTTP status and writes the
// error body.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	return ctx.JSON(code, errorDTO{
		Code:    code,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidPin),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrLockerNotFound),
		errors.Is(err, errs.ErrCellNotFound),
		errors.Is(err, errs.ErrPinNoMatch):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPinConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
