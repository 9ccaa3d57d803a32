package server

import (
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ortoo/marketfeed/server/graph/generated"
	"github.com/ortoo/marketfeed/server/resolver"
)

// GraphqlHandler is the universal handler for all GraphQL operations issued
// from client. Queries and mutations bind to a POST method, subscriptions
// upgrade to a websocket.
func GraphqlHandler(root *resolver.Resolver) gin.HandlerFunc {
	srv := handler.NewDefaultServer(generated.NewExecutableSchema(generated.Config{
		Resolvers: root,
	}))

	// The default websocket transport rejects cross-origin upgrades, which
	// breaks the hosted playground.
	srv.AddTransport(&transport.Websocket{
		KeepAlivePingInterval: 10 * time.Second,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	})

	return func(c *gin.Context) {
		srv.ServeHTTP(c.Writer, c.Request)
	}
}
