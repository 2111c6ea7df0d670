package router

import (
	"casatente/internal/handlers/amenity"
	"casatente/internal/handlers/feedback"
	"casatente/internal/handlers/reservation"
	"casatente/internal/handlers/room"
	"casatente/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room        room.Handler
	Reservation reservation.Handler
	Amenity     amenity.Handler
	Feedback    feedback.Handler
	User        user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Room.Router(router)
	r.DomainHandlers.Reservation.Router(router)
	r.DomainHandlers.Amenity.Router(router)
	r.DomainHandlers.Feedback.Router(router)
	r.DomainHandlers.User.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
