package app

import (
	"github.com/ferdiebergado/autokit/internal/auth"
	"github.com/ferdiebergado/autokit/internal/automobile"
	"github.com/ferdiebergado/autokit/internal/middleware"
	"github.com/ferdiebergado/autokit/internal/platform/jwt"
	"github.com/ferdiebergado/autokit/internal/platform/router"
	"github.com/ferdiebergado/autokit/internal/platform/validation"
)

func mountAutomobileRoutes(r router.Router, handler *automobile.Handler, signer jwt.Signer,
	validator validation.Validator, maxBodySize int64) {
	r.Group("/api", func(gr router.Router) {
		gr.Post("/automobiles", handler.CreateAutomobile,
			auth.RequireRole(signer, auth.RoleAdmin, auth.RolePerson),
			middleware.DecodePayload[automobile.Request](maxBodySize),
			middleware.ValidateInput[automobile.Request](validator))
		gr.Get("/automobiles", handler.ListAutomobiles,
			auth.RequireRole(signer, auth.RoleUser))
		gr.Get("/automobiles/{id}", handler.GetAutomobile,
			auth.RequireRole(signer, auth.RoleUser))
		gr.Put("/automobiles/{id}", handler.UpdateAutomobile,
			auth.RequireRole(signer, auth.RoleAdmin, auth.RolePerson),
			middleware.DecodePayload[automobile.Request](maxBodySize),
			middleware.ValidateInput[automobile.Request](validator))
		gr.Delete("/automobiles/{id}", handler.DeleteAutomobile,
			auth.RequireRole(signer, auth.RoleAdmin, auth.RolePerson))
		gr.Delete("/automobiles", handler.DeleteAllAutomobiles,
			auth.RequireRole(signer, auth.RoleAdmin))
	})
}
