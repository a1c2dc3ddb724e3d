package handler

import (
	"time"

	"github.com/deppfellow/auth-validation/internal/middleware"
	"github.com/deppfellow/auth-validation/internal/server"
	"github.com/deppfellow/auth-validation/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// logger returns the request-scoped logger, or the server logger when the
// route runs without the context enhancer.
func (h Handler) logger(c echo.Context) *zerolog.Logger {
	return middleware.GetLogger(c, h.server.Logger)
}

// HandlerFunc is a typed endpoint that receives a record which already
// passed its schema and returns a response or an error.
type HandlerFunc[Res any] func(c echo.Context, in validation.Record) (Res, error)

// ResponseHandler writes a successful handler result.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error

	// GetOperation names the handler type in structured logs.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// NoContentResponseHandler writes responses with no body.
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

// handleRequest is the shared execution pipeline for all schema-backed
// endpoints: bind + validate, logging with timings, handler call and
// response writing. Errors are returned to the global error handler.
func handleRequest(
	h Handler,
	c echo.Context,
	schema *validation.Schema,
	handler func(c echo.Context, in validation.Record) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()

	logger := h.logger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("schema", schema.Name()).
		Str("route", c.Path()).
		Logger()

	logger.Info().Msg("handling request")

	validationStart := time.Now()

	in, err := validation.BindAndValidate(c, schema)
	validationDuration := time.Since(validationStart)
	if err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		return err
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	handlerStart := time.Now()
	result, err := handler(c, in)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with validation against schema, logging and
// JSON response writing.
//
//	router.POST("/x", handler.Handle(h, validation.LoginSchema, myFn, http.StatusOK))
func Handle[Res any](
	h Handler,
	schema *validation.Schema,
	handler HandlerFunc[Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, schema, func(c echo.Context, in validation.Record) (interface{}, error) {
			return handler(c, in)
		}, JSONResponseHandler{status: status})
	}
}

// HandleNoContent is Handle for endpoints that only report acceptance.
func HandleNoContent(
	h Handler,
	schema *validation.Schema,
	handler func(c echo.Context, in validation.Record) error,
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, schema, func(c echo.Context, in validation.Record) (interface{}, error) {
			return nil, handler(c, in)
		}, NoContentResponseHandler{status: status})
	}
}
