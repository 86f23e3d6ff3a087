package utils

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const oauthStateKey = "oauth_state"

// SetOAuthState stores the OAuth2 CSRF state token in the session
func SetOAuthState(c *gin.Context, state string) error {
	session := sessions.Default(c)
	session.Set(oauthStateKey, state)
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to save oauth state: %v", err)
	}
	return nil
}

// PopOAuthState returns the stored state token and removes it so it
// cannot be replayed
func PopOAuthState(c *gin.Context) string {
	session := sessions.Default(c)
	state, _ := session.Get(oauthStateKey).(string)
	session.Delete(oauthStateKey)
	_ = session.Save()
	return state
}
