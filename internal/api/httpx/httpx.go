// Package httpx holds the gin glue shared by the API handlers.
package httpx

import (
	"strconv"

	"artmarket/internal/apperr"
	"artmarket/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const principalKey = "principal"

func SetPrincipal(c *gin.Context, p access.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the caller, or the anonymous principal on public
// routes.
func PrincipalFrom(c *gin.Context) access.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(access.Principal); ok {
			return p
		}
	}
	return access.Principal{}
}

// WriteError renders err with the status its kind maps to.
func WriteError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if apperr.KindOf(err) == apperr.KindStore {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("store failure")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": apperr.PublicMessage(err)})
}

// UintParam parses a positive numeric path parameter.
func UintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, apperr.Validation("invalid " + name)
	}
	return uint(v), nil
}
