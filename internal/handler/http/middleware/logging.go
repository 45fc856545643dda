package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Notebook/internal/metrics"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// RequestLogger logs every request once before dispatch (method and
// path) and once after with the outcome status. The post log runs on
// every exit path: gin resumes the middleware stack after a later stage
// aborts, so short-circuited requests are recorded too.
func RequestLogger(logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		path := c.Request.URL.Path
		logger.Infof("request: %s %s", method, path)

		c.Next()

		status := c.Writer.Status()
		logger.Infof("response: %s %s -> %d", method, path, status)

		// Route template keeps label cardinality bounded; unmatched
		// requests share one bucket.
		routePath := c.FullPath()
		if routePath == "" {
			routePath = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(method, routePath, strconv.Itoa(status)).Inc()
	}
}
