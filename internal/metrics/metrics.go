package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pricing Metrics
var (
	PriceLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceLookups,
			Help: HelpTextPriceLookups,
		},
		[]string{LabelSource, LabelResult},
	)

	TemplateLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTemplateLookups,
			Help: HelpTextTemplateLookups,
		},
		[]string{LabelResult},
	)
)

// Quality Metrics
var (
	QualityFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQualityFallbacks,
			Help: HelpTextQualityFallbacks,
		},
		[]string{LabelReason},
	)
)

// Expansion Metrics
var (
	ExpansionSlotsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExpansionSlotsSkipped,
			Help: HelpTextExpansionSlotsSkipped,
		},
	)

	ItemsExpanded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsExpanded,
			Help: HelpTextItemsExpanded,
		},
	)
)
