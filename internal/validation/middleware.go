package validation

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Body returns a gin middleware that runs chains against the JSON body and
// answers 400 {"errors":[...]} without calling the handler when any fail.
// The body stays readable downstream through ShouldBindBodyWith.
func Body(chains ...*Chain) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := readBody(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{{Msg: "Malformed JSON body", Location: locationBody}},
			})
			return
		}

		if errs := Run(body, chains...); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		c.Next()
	}
}

func readBody(c *gin.Context) (map[string]interface{}, bool) {
	body := map[string]interface{}{}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return body, true
	}

	// ShouldBindBodyWith caches the raw bytes; an empty payload is not an error here
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		if raw, ok := c.Get(gin.BodyBytesKey); ok {
			if b, _ := raw.([]byte); len(bytes.TrimSpace(b)) == 0 {
				return map[string]interface{}{}, true
			}
		}
		return nil, false
	}
	if body == nil {
		body = map[string]interface{}{}
	}
	return body, true
}
