package main

import (
	"net/http"
	"strings"
)

type handler struct {
	method    string
	reqPath   string
	handlFunc func(http.ResponseWriter, *http.Request)
}

func (cfg *appConfig) registerAllHandlers(mux *http.ServeMux) {
	var handlers = []handler{
		{
			method:    "GET",
			reqPath:   "/labels",
			handlFunc: cfg.labelsHandler,
		},
		{
			method:    "POST",
			reqPath:   "/boards",
			handlFunc: cfg.createBoardHandler,
		},
		{
			method:    "POST",
			reqPath:   "/boards/{id}/token",
			handlFunc: cfg.tokenHandler,
		},
		{
			method:    "GET",
			reqPath:   "/boards/{id}",
			handlFunc: cfg.boardHandler,
		},
		{
			method:    "POST",
			reqPath:   "/boards/{id}/click",
			handlFunc: cfg.middleWareCheckForToken(cfg.clickHandler),
		},
		{
			method:    "POST",
			reqPath:   "/boards/{id}/clear",
			handlFunc: cfg.middleWareCheckForToken(cfg.clearHandler),
		},
		{
			method:    "GET",
			reqPath:   "/boards/{id}/ws",
			handlFunc: cfg.wsHandler,
		},
	}

	for _, h := range handlers {
		reqLine := strings.Join([]string{h.method, h.reqPath}, " ")

		mux.HandleFunc(reqLine, h.handlFunc)
	}
}
