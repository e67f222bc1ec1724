package server

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"workout-api/config"
	"workout-api/internal/handlers"
	"workout-api/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	registerValidationNames()

	r.Use(middleware.DatabaseMiddleware(db))

	categorias := r.Group("/categorias")
	{
		categorias.POST("/", handlers.CreateCategoria)
		categorias.GET("/", handlers.ListCategorias)
		categorias.GET("/:id", handlers.GetCategoria)
	}

	centros := r.Group("/centros_treinamento")
	{
		centros.POST("/", handlers.CreateCentroTreinamento)
		centros.GET("/", handlers.ListCentrosTreinamento)
		centros.GET("/:id", handlers.GetCentroTreinamento)
	}

	atletas := r.Group("/atletas")
	{
		atletas.POST("/", handlers.CreateAtleta)
		atletas.GET("/", handlers.ListAtletas)
		atletas.GET("/:id", handlers.GetAtleta)
		atletas.PATCH("/:id", handlers.UpdateAtleta)
		atletas.DELETE("/:id", handlers.DeleteAtleta)
	}
}

// registerValidationNames makes binding errors report json field names
// instead of Go struct field names.
func registerValidationNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
