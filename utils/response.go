package utils

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// {status: "success"|"error", message?, data?, count?, total?, page?, pages?}

func JSONSuccess(c *gin.Context, code int, message string, data gin.H) {
	body := gin.H{"status": "success"}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// JSONList wraps a paginated collection. count is the number of items in
// this page, total the overall match count.
func JSONList(c *gin.Context, code int, count int, total int64, page, pages int, data gin.H) {
	c.JSON(code, gin.H{
		"status": "success",
		"count":  count,
		"total":  total,
		"page":   page,
		"pages":  pages,
		"data":   data,
	})
}
