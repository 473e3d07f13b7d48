package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thassiov/challenge/internal/domain/repo"
)

// GenericErrorMessage is the body of every 500 outside development
const GenericErrorMessage = "Something went wrong"

// ErrorHandler renders errors recorded with c.Error by the handlers.
// In verbose mode the whole cause chain is written to the body.
func ErrorHandler(logger *zap.Logger, verbose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		ginErr := c.Errors.Last()
		if ginErr == nil || c.Writer.Written() {
			return
		}

		err := ginErr.Err
		logger.Error("Handled uncaught error", zap.Error(err), zap.String("requestID", GetRequestID(c)))

		var repoErr *repo.Error
		if verbose && errors.As(err, &repoErr) {
			c.String(http.StatusInternalServerError, UnwrapErrorChain(err))
			return
		}
		c.String(http.StatusInternalServerError, GenericErrorMessage)
	}
}

// UnwrapErrorChain renders one line per error in err's chain.
// *repo.Error links print kind, message and details; other links print their message.
func UnwrapErrorChain(err error) string {
	var lines []string
	for err != nil {
		var repoErr *repo.Error
		if !errors.As(err, &repoErr) {
			lines = append(lines, err.Error())
			break
		}

		line := fmt.Sprintf("%s: %s", repoErr.Kind, repoErr.Message)
		if len(repoErr.Details) > 0 {
			details, _ := json.Marshal(repoErr.Details)
			line += ": " + string(details)
		}
		lines = append(lines, line)

		err = repoErr.Err
	}
	return strings.Join(lines, "\n")
}
