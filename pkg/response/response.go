package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"callaudit-srv/pkg/discord"
	pkgErrors "callaudit-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data as the JSON body with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as the JSON body with status 201.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Deleted writes the standard delete acknowledgement.
func Deleted(c *gin.Context, id string) {
	c.JSON(http.StatusOK, DeletedResp{ID: id, Deleted: true})
}

// File writes a downloadable payload with an attachment disposition.
func File(c *gin.Context, contentType, fileName string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK, contentType, data)
}

// Error renders err as {"error": message}. HTTPError and ValidationError keep
// their status and message; anything else becomes a 500 and is reported.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			report(c, err, d)
		}
		c.JSON(httpErr.Code, ErrorResp{Error: httpErr.Message})
		return
	}

	if ve, ok := pkgErrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ErrorResp{Error: ve.Error()})
		return
	}

	report(c, err, d)
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: messageInternal})
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResp{Error: messageUnauthorized})
}

// PanicError writes a 500 for a recovered panic and reports it.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	report(c, fmt.Errorf("panic: %v", rec), d)
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: messageInternal})
}

func report(c *gin.Context, err error, d discord.IDiscord) {
	if d == nil {
		return
	}
	msg := fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	go func() {
		_ = d.ReportBug(context.Background(), msg)
	}()
}
