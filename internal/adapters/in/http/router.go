package http

import (
	"fmt"
	"log/slog"
	"sync"

	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig holds the HTTP settings that are not use cases.
type RouterConfig struct {
	// AdminJWTSecret signs admin tokens. Empty disables admin authentication.
	AdminJWTSecret string
}

var registerSwaggerOnce sync.Once

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// NewRouter builds the echo instance serving the API, its validation and the Swagger UI
// at /swagger/index.html.
func NewRouter(server *Server, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("render openapi document: %w", err)
	}
	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(docJSON)})
	})

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger.With("component", "http")))
	e.Use(AdminAuth([]byte(cfg.AdminJWTSecret)))
	e.Use(validator)

	servers.RegisterHandlers(e, server)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
