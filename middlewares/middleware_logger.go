package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}
		if sess, ok := session.From(c); ok {
			fields["role"] = sess.Role
			fields["branch"] = sess.BranchID
		}
		entry := utils.InfoLogger.WithFields(fields)
		if c.Writer.Status() >= 500 {
			utils.ErrorLogger.WithFields(fields).Error(path)
			return
		}
		entry.Info(path)
	}
}
