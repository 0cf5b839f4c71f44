package session

import (
	"net/http"
	"net/url"
)

const flashCookie = "tc_flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot toast carried across a redirect.
type Flash struct {
	Kind    string
	Message string
}

func SetFlash(w http.ResponseWriter, kind, message string) {
	v := url.Values{}
	v.Set("k", kind)
	v.Set("m", message)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    v.Encode(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeFlash reads and expires the pending flash.
func TakeFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return Flash{}, false
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	v, err := url.ParseQuery(c.Value)
	if err != nil || v.Get("m") == "" {
		return Flash{}, false
	}
	kind := v.Get("k")
	if kind != FlashSuccess {
		kind = FlashError
	}
	return Flash{Kind: kind, Message: v.Get("m")}, true
}
