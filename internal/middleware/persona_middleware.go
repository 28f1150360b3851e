package middleware

import (
	"net/http"

	"hr-dashboard/internal/persona"
	"hr-dashboard/internal/shared/apperror"
	"hr-dashboard/internal/shared/contextutil"
	"hr-dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by ResolvePersona.
const (
	ContextRole      = "role"
	ContextActorID   = "actor_id"
	ContextActorName = "actor_name"
	ContextPersona   = "persona"
)

// ResolvePersona maps the :role path segment to its demo persona. The request
// then acts as that persona. Unknown dashboards are 404.
func ResolvePersona() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := persona.Lookup(c.Param("role"))
		if !ok {
			response.AbortError(c, http.StatusNotFound, apperror.CodeNotFound, "dashboard not found")
			return
		}

		c.Set(ContextRole, string(p.Role))
		c.Set(ContextActorID, p.ID)
		c.Set(ContextActorName, p.Name)
		c.Set(ContextPersona, p)

		ctx := contextutil.WithActorID(c.Request.Context(), p.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// PersonaFrom returns the persona stored by ResolvePersona.
func PersonaFrom(c *gin.Context) (persona.Persona, bool) {
	v, ok := c.Get(ContextPersona)
	if !ok {
		return persona.Persona{}, false
	}
	p, ok := v.(persona.Persona)
	return p, ok
}
