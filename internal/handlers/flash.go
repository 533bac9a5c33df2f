package handlers

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash is a one-shot notification rendered on the next page load. Category
// maps to an alert style: "success" or "danger".
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

func setFlash(c *gin.Context, category, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(Flash{Category: category, Message: message})
	if err := sess.Save(); err != nil {
		log.WithError(err).Warn("saving flash")
	}
}

// takeFlashes drains pending flashes, persisting the now-empty session so
// each message renders exactly once.
func takeFlashes(c *gin.Context) []Flash {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(); err != nil {
		log.WithError(err).Warn("clearing flashes")
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
