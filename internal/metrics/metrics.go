// Package metrics содержит доменные метрики Prometheus сервиса магазина.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/retail-store/internal/model"
)

const namespace = "retailstore"

// Metrics содержит счётчики выставленных счетов и применённых скидок.
type Metrics struct {
	registry         *prometheus.Registry
	billsTotal       *prometheus.CounterVec
	discountsTotal   *prometheus.CounterVec
	discountedAmount *prometheus.CounterVec
}

// New создаёт метрики в собственном реестре вместе со стандартными метриками процесса и Go runtime.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		billsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_generated_total",
			Help:      "Number of generated bills by user type.",
		}, []string{"user_type"}),
		discountsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discounts_applied_total",
			Help:      "Number of applied discounts by strategy.",
		}, []string{"strategy"}),
		discountedAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_amount_total",
			Help:      "Total discount granted on generated bills by user type.",
		}, []string{"user_type"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.billsTotal,
		m.discountsTotal,
		m.discountedAmount,
	)

	return m
}

// ObserveBill учитывает сохранённый счёт.
func (m *Metrics) ObserveBill(b *model.Bill) {
	if m == nil || b == nil {
		return
	}

	userType := string(b.UserType)
	m.billsTotal.WithLabelValues(userType).Inc()

	if b.Discount.GreaterThan(decimal.Zero) {
		amount, _ := b.Discount.Float64()
		m.discountedAmount.WithLabelValues(userType).Add(amount)
	}

	for _, d := range b.AppliedDiscounts {
		m.discountsTotal.WithLabelValues(strategyName(d)).Inc()
	}
}

// Handler возвращает HTTP-обработчик для выдачи метрик.
// Сжатие ответа выполняет GzipMiddleware роутера, поэтому собственное сжатие promhttp отключено.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry:           m.registry,
		DisableCompression: true,
	})
}

// strategyName извлекает имя стратегии из описания применённой скидки.
func strategyName(description string) string {
	name, _, _ := strings.Cut(description, " - ")
	return strings.TrimSpace(name)
}
