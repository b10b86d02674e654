package controllers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/vastra-crm/services"
)

// postForm reads url-encoded or multipart fields from the request body.
type postForm struct {
	c *gin.Context
}

func (f postForm) Get(key string) string {
	return f.c.PostForm(key)
}

// submittedForm returns the request body as a services.Form. JSON objects
// are accepted too; numbers keep their literal text.
func submittedForm(c *gin.Context) (services.Form, error) {
	if !strings.HasPrefix(c.ContentType(), "application/json") {
		return postForm{c: c}, nil
	}
	var body map[string]interface{}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	form := make(services.FormMap, len(body))
	for k, v := range body {
		if v == nil {
			continue
		}
		form[k] = fmt.Sprint(v)
	}
	return form, nil
}
