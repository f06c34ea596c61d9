package fixtureapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/dto"
	"github.com/rise-and-shine/userbook/http/server/forward"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/ucdef"
	"github.com/rise-and-shine/userbook/ucdef/wrapper"
)

// Handler serves the users routes from a Store.
type Handler struct {
	listUsers ucdef.Query[ucdef.NoInput, []dto.UserDTO]
	getUser   ucdef.Query[GetUserRequest, dto.UserDTO]
	log       logger.Logger
}

// NewHandler creates a Handler. A positive delay holds every response back, which
// makes loading states visible during development.
func NewHandler(store *Store, delay time.Duration, log logger.Logger) *Handler {
	log = log.Named("fixtureapi")

	return &Handler{
		listUsers: ucdef.Chain[ucdef.NoInput, []dto.UserDTO](
			&ListUsers{store: store},
			wrapper.NewLoggerQueryWrapper[ucdef.NoInput, []dto.UserDTO](log),
			wrapper.NewRecoveryQueryWrapper[ucdef.NoInput, []dto.UserDTO](log),
			withDelay[ucdef.NoInput, []dto.UserDTO](delay),
		),
		getUser: ucdef.Chain[GetUserRequest, dto.UserDTO](
			&GetUser{store: store},
			wrapper.NewLoggerQueryWrapper[GetUserRequest, dto.UserDTO](log),
			wrapper.NewRecoveryQueryWrapper[GetUserRequest, dto.UserDTO](log),
			withDelay[GetUserRequest, dto.UserDTO](delay),
		),
		log: log,
	}
}

// Register mounts the routes on r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/users", forward.ToQuery(h.listUsers, h.log))
	r.Get("/users/:id", forward.ToQuery(h.getUser, h.log))
}
