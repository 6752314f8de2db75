package handlers

import (
	"net/http"

	"darshanam/locale"

	"github.com/gin-gonic/gin"
)

// GetLanguagesHandler lists the selectable languages.
func GetLanguagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": locale.Languages})
}

// GetStringsHandler returns the display-string table for one language.
func GetStringsHandler(c *gin.Context) {
	lang := c.Param("lang")
	if !locale.Supported(lang) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported language"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lang": lang, "strings": locale.Strings(lang)})
}
