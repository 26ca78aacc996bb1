package server

import "net/http"

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteIndex+"{$}", ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare(s.SessionMiddleware)...))
	// Redirect URIs may point at a dedicated callback path instead of the index
	s.RegisterRouteHandler("GET "+RouteCallback, ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare(s.SessionMiddleware)...))

	s.RegisterRouteHandler("POST "+RouteAsk, ChainMiddleware(s.AskHandler(), s.HTMLMiddleWare(s.SessionMiddleware)...))

	s.RegisterRouteHandler("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare(s.SessionMiddleware)...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare(s.SessionMiddleware)...))

	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}
