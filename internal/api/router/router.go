package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"student-score/backend/config"
	"student-score/backend/internal/api/handler"
	"student-score/backend/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时登录接口不限流
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	authz middleware.Authorizer,
	limiter middleware.RateLimiter,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 / 监控 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── 前端页面 ──
	r.Static("/static", cfg.Server.FrontendDir)
	r.GET("/", h.Page.Index)
	r.GET("/login", h.Page.LoginPage)

	api := r.Group("/api")
	{
		// 认证模块（无需登录）
		api.POST("/login",
			middleware.RateLimit(limiter, cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow, logger),
			h.Auth.Login,
		)
		api.POST("/logout", h.Auth.Logout)

		// 需要登录的路由
		authorized := api.Group("")
		authorized.Use(middleware.SessionAuth(authz, cfg.Session.Cookie.Name, logger))
		{
			// 学生模块
			students := authorized.Group("/students")
			{
				students.POST("", h.Student.CreateStudent)
				students.GET("", h.Student.ListStudents)
				students.PUT("/:id", h.Student.UpdateStudent)
				students.DELETE("/:id", h.Student.DeleteStudent)
			}

			// 成绩模块
			scores := authorized.Group("/scores")
			{
				scores.POST("", h.Score.CreateScore)
				scores.GET("", h.Score.ListScores)
				scores.PUT("/:id", h.Score.UpdateScore)
				scores.DELETE("/:id", h.Score.DeleteScore)
			}

			// 统计查询
			complexQ := authorized.Group("/complex")
			{
				complexQ.GET("/score-stat", h.Report.ScoreStatistics)
				complexQ.GET("/pass-rate", h.Report.CoursePassRate)
			}

			// 导出模块
			authorized.GET("/export/scores", h.Export.ExportScores)
		}
	}

	return r
}
