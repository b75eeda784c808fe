package router

import "net/http"

// Router is the surface the app needs from an HTTP router.
type Router interface {
	http.Handler
	Use(middleware func(next http.Handler) http.Handler)
	Get(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Post(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Put(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Patch(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Delete(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Options(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Group(prefix string, fn func(r Router), middlewares ...func(next http.Handler) http.Handler)
}
