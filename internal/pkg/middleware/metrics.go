// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 记录 HTTP 请求的耗时、次数和正在处理的请求数
type MetricsBuilder struct {
	duration *prometheus.SummaryVec
	total    *prometheus.CounterVec
	inflight prometheus.Gauge
}

// NewMetricsBuilder server 用于区分 web 和 admin
func NewMetricsBuilder(reg prometheus.Registerer, server string) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"server": server}
	return &MetricsBuilder{
		duration: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:   "netflex",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, []string{"method", "path", "status_code"}),
		total: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "netflex",
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status_code"}),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   "netflex",
			Name:        "http_requests_inflight",
			Help:        "HTTP requests being served",
			ConstLabels: labels,
		}),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		b.inflight.Inc()
		defer b.inflight.Dec()

		ctx.Next()

		// 用路由模板，避免 ID 把标签撑爆
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.duration.WithLabelValues(ctx.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}
