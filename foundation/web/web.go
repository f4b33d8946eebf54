package web

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
)

// Handler is the signature all application handlers use. Returning an error
// is for observability only: RespondError has already written the response.
type Handler func(c *Context) error

// Middleware wraps a Handler with pre/post processing.
type Middleware func(Handler) Handler

// App is the entrypoint for the web application, a thin layer over gin that
// converts Handler into gin.HandlerFunc.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{gin.Default()}
}

func (a *App) handle(method, path string, handler Handler, mw []Middleware) {
	// Wrap in reverse so the first middleware runs first.
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}

	a.Handle(method, path, func(gc *gin.Context) {
		c := &Context{Context: gc, Ctx: gc.Request.Context()}
		if err := handler(c); err != nil {
			log.Println("handler error:", err)
		}
	})
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.handle("GET", path, handler, mw)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.handle("POST", path, handler, mw)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.handle("PUT", path, handler, mw)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.handle("PATCH", path, handler, mw)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.handle("DELETE", path, handler, mw)
}

// Shutdown is a hook for cleanup on termination.
func (a *App) Shutdown(ctx context.Context) error {
	return nil
}
