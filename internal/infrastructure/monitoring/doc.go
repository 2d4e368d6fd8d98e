/*
Package monitoring provides Prometheus metrics for the HTTP surface, the
service registry and the checksum/generation domain.

# Features

- HTTP request metrics (latency, throughput, size) labelled by route pattern
- Service tool call metrics (duration, errors)
- Validation outcomes per identifier family
- Generated number counts per identifier family
- Process uptime

Route labels use the registered pattern (for example
/v1/bankcard/:number/validate), never the raw path, so identifiers never
become label values.

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	timer := monitoring.NewTimer(metrics, "data", "data.idcard.validate")
	// ... perform operation ...
	timer.Stop("success")
*/
package monitoring
