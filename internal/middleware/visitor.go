package middleware

import (
	"blogspace/pkg/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const VisitorKey = "visitor_id"

// LoadVisitor makes sure the session carries a visitor id and exposes it
// on the context under VisitorKey.
func LoadVisitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		visitorID, _ := session.Get(VisitorKey).(string)
		if visitorID == "" {
			visitorID = uuid.NewString()
			session.Set(VisitorKey, visitorID)
			if err := session.Save(); err != nil {
				logger.FromContext(c.Request.Context()).Error("save session", "error", err)
			}
		}

		c.Set(VisitorKey, visitorID)
		c.Next()
	}
}

// VisitorID returns the id set by LoadVisitor.
func VisitorID(c *gin.Context) string {
	return c.GetString(VisitorKey)
}
