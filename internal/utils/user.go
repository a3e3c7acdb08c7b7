package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetUserID(c *gin.Context) (uint, error) {
	uidRaw, exists := c.Get("user_id")
	if !exists {
		return 0, errors.New("not logged in")
	}

	uidStr, ok := uidRaw.(string)
	if !ok {
		return 0, errors.New("bad user id type in context")
	}

	uid, err := strconv.ParseUint(uidStr, 10, 32)
	if err != nil {
		return 0, errors.New("bad user id format in context")
	}

	return uint(uid), nil
}

func GetUsername(c *gin.Context) string {
	if name, ok := c.Get("username"); ok {
		if s, ok := name.(string); ok {
			return s
		}
	}
	return ""
}
