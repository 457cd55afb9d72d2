package app

import "net/http"

const (
	sessionKeyUserID   = "userID"
	sessionKeyUserName = "userName"
)

func (app *Application) sessionUserID(r *http.Request) int {
	return app.sessionManager.GetInt(r.Context(), sessionKeyUserID)
}

func (app *Application) sessionUserName(r *http.Request) string {
	return app.sessionManager.GetString(r.Context(), sessionKeyUserName)
}
