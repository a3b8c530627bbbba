package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is the cookie the front-desk kiosk stores its staff
// token in, for browsers that cannot send a bearer header.
const AccessTokenCookieName = "checkin_access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
