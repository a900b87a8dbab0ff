package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
)

// The dashboards sometimes post a bare JSON string as the whole body
// (JSON.stringify("Confirmed")) and sometimes a proper object. Accept
// both: a quoted string, or an object with the named field.
func bindStringOrField(c *gin.Context, field string) (string, bool) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s, true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		if v, ok := obj[field]; ok {
			if err := json.Unmarshal(v, &s); err == nil && s != "" {
				return s, true
			}
		}
	}

	return "", false
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
