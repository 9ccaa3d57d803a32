package main

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ortoo/marketfeed/server"
	"github.com/ortoo/marketfeed/server/middlewares"
	"github.com/ortoo/marketfeed/server/resolver"
	"github.com/ortoo/marketfeed/storage"
	"github.com/ortoo/marketfeed/utils"
	"github.com/ortoo/marketfeed/utils/dotenv"
	. "github.com/ortoo/marketfeed/utils/flag"
	. "github.com/ortoo/marketfeed/utils/log"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

func init() {
	ParseFlags()
	// Re-init so the log entry picks up the parsed service name.
	InitLogger()

	utils.InitTracer()
	utils.InitProfiler()

	Log.Info("api server initialized")
}

func cleanup() {
	utils.CloseProfiler()
	utils.CloseTracer()
	Log.Info("api server shutdown")
}

func main() {
	defer cleanup()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to database: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	fileStore, err := storage.NewS3FileStoreFromEnv()
	if err != nil {
		Log.Fatal("fail to setup file store: ", err)
	}

	root := &resolver.Resolver{
		DB:        db,
		FileStore: fileStore,
		PostChans: resolver.NewPostChannels(),
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(gintrace.Middleware(ServiceName))
	router.Use(middlewares.AuthContext())

	handler := server.GraphqlHandler(root)
	router.POST("/graphql", handler)
	router.GET("/subscription", handler)

	// Setup graphql playground for debugging
	router.GET("/", func(c *gin.Context) {
		playground.Handler("GraphQL", "/graphql").ServeHTTP(c.Writer, c.Request)
	})
	router.GET("/sub", func(c *gin.Context) {
		playground.Handler("Subscription", "/subscription").ServeHTTP(c.Writer, c.Request)
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	Log.Info("api server starts up")
	router.Run(":8080")
}
