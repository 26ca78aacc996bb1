package server

// Route path constants
const (
	RouteIndex    = "/"
	RouteCallback = "/callback"
	RouteAsk      = "/ask"
	RouteLogout   = "/logout"
	RouteHealth   = "/healthz"
)
