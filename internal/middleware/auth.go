package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"flower_shop/internal/models"
	"flower_shop/internal/repository"
	"flower_shop/internal/services"

	"github.com/gin-gonic/gin"
)

const ContextUserID = "userID"

var errInvalidInitData = errors.New("invalid init data")

type initDataUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// verifyInitData checks the Telegram WebApp initData signature: the secret is
// HMAC-SHA256 of the bot token keyed with "WebAppData", and the hash covers
// the sorted key=value lines of every field except hash itself.
func verifyInitData(botToken, initData string) (*initDataUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, errInvalidInitData
	}

	receivedHash := values.Get("hash")
	if receivedHash == "" {
		return nil, errInvalidInitData
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	dataCheckString := strings.Join(pairs, "\n")

	secretMac := hmac.New(sha256.New, []byte("WebAppData"))
	secretMac.Write([]byte(botToken))
	secret := secretMac.Sum(nil)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(dataCheckString))
	expectedHash := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expectedHash), []byte(receivedHash)) {
		return nil, errInvalidInitData
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return nil, errInvalidInitData
	}
	var user initDataUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, errInvalidInitData
	}
	return &user, nil
}

// Auth verifies the "tma <initData>" Authorization header and stores the
// authenticated user id in the context. Credentials are never parsed past
// this point; downstream code receives a verified identity.
func Auth(botToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if !strings.HasPrefix(authorization, "tma ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			c.Abort()
			return
		}

		initData := strings.TrimPrefix(authorization, "tma ")
		if initData == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Empty initData"})
			c.Abort()
			return
		}

		user, err := verifyInitData(botToken, initData)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid initData signature"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Next()
	}
}

// AdminRequired gates a route on the stored ADMIN role. It must run after
// Auth.
func AdminRequired(userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)

		user, err := userService.GetUser(userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			}
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated identity set by Auth.
func UserID(c *gin.Context) int64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(int64)
	return userID
}
