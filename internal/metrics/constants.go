package metrics

// Metric names
const (
	MetricNamePriceLookups          = "itemcore_price_lookups_total"
	MetricNameTemplateLookups       = "itemcore_template_lookups_total"
	MetricNameQualityFallbacks      = "itemcore_quality_fallbacks_total"
	MetricNameExpansionSlotsSkipped = "itemcore_expansion_slots_skipped_total"
	MetricNameItemsExpanded         = "itemcore_items_expanded_total"
)

// Help texts
const (
	HelpTextPriceLookups          = "Total price lookups by source and outcome"
	HelpTextTemplateLookups       = "Total template lookups by outcome"
	HelpTextQualityFallbacks      = "Total quality computations that fell back to the pristine default"
	HelpTextExpansionSlotsSkipped = "Total stack slots skipped during expansion due to an empty content filter"
	HelpTextItemsExpanded         = "Total child instances materialized by stack-slot expansion"
)

// Label names
const (
	LabelSource = "source"
	LabelResult = "result"
	LabelReason = "reason"
)

// Label values
const (
	SourceStatic  = "static"
	SourceDynamic = "dynamic"

	ResultHit  = "hit"
	ResultMiss = "miss"
)
