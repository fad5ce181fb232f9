package controllers

import (
	"encoding/json"
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// formFiles returns every uploaded file under the given multipart field
// name, or nil when the request carries none.
func formFiles(ctx *gin.Context, field string) []*multipart.FileHeader {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// decodeJSONField unmarshals a JSON-encoded form value into dst. Reports
// whether the field was present; a malformed value returns an error.
func decodeJSONField(ctx *gin.Context, field string, dst interface{}) (bool, error) {
	value, ok := ctx.GetPostForm(field)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return true, err
	}
	return true, nil
}
