package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/auth"
	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/database"
	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/handlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	handlers.RegisterValidators()
	h := &handlers.Handler{DB: db}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Routine Scheduler API (Go Version on Vercel)",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	api := r.Group("/")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/teacher", h.CreateTeacher)
		api.GET("/teacher", h.ListTeachers)
		api.GET("/teacher/:initial", h.GetTeacher)
		api.PUT("/teacher/:initial", h.UpdateTeacher)
		api.DELETE("/teacher/:initial", h.DeleteTeacher)

		api.POST("/room", h.CreateRoom)
		api.GET("/room", h.ListRooms)
		api.GET("/room/labs", h.ListLabRooms)
		api.PUT("/room/:name", h.UpdateRoom)
		api.DELETE("/room/:name", h.DeleteRoom)

		api.POST("/section", h.CreateSection)
		api.GET("/section", h.ListSections)
		api.PUT("/section/:id", h.UpdateSection)
		api.DELETE("/section/:id", h.DeleteSection)

		api.POST("/course", h.CreateCourse)
		api.GET("/course", h.ListCourses)
		api.GET("/course/labs", h.ListLabCourses)
		api.PUT("/course/:id", h.UpdateCourse)
		api.DELETE("/course/:id", h.DeleteCourse)

		api.GET("/schedule/all", h.GetFullSchedule)
		api.GET("/schedule/theory/:batch/:section", h.GetTheorySchedule)
		api.PUT("/schedule/theory/:batch/:section", h.SetTheorySchedule)

		api.POST("/assignment/labs/generate", h.GenerateAssignments)
		api.PUT("/assignment/labs", h.SaveAssignments)
		api.GET("/assignment/labs", h.GetAssignments)
		api.PUT("/assignment/labs/room", h.OverrideRoom)
		api.GET("/assignment/labs/csv", h.ExportAssignmentsCSV)
		api.GET("/assignment/pins/:id", h.GetCoursePins)
		api.PUT("/assignment/pins/:id", h.SetCoursePins)
		api.POST("/assignment/validate", h.ValidateInput)

		api.GET("/api/usage", h.GetMyUsage)
	}
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
