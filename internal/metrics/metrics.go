package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	// 课程名由客户端提交，不作为标签
	ScoreHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recorded_score",
			Help:    "Distribution of recorded scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total number of failed data store operations",
		},
		[]string{"op"},
	)
)

// 登录结果标签
const (
	LoginSuccess       = "success"
	LoginUnknownUser   = "unknown_user"
	LoginBadPassword   = "bad_password"
	LoginRejectedEmpty = "empty"
)
