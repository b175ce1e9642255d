// Package handler defines the request-processing contracts the dispatcher works
// with: the Context passed to every call, handler and data-handler functions,
// middleware and error handlers.
//
// The routing core treats these values as opaque references. It only stores them
// at registration and returns them from lookups; core/mux is what calls them.
//
//	func showUser(ctx handler.Context) handler.Response {
//		id := ctx.Param("id")
//		return func(w http.ResponseWriter, r *http.Request) error {
//			_, err := io.WriteString(w, "user "+id)
//			return err
//		}
//	}
//
//	func requireJSON(ctx handler.Context) error {
//		if ctx.Request().Header.Get("Content-Type") != "application/json" {
//			return ErrUnsupportedMediaType
//		}
//		return nil
//	}
package handler
