package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsBought     = "items_bought_total"
	MetricNameItemsSold       = "items_sold_total"
	MetricNameMoneySpent      = "money_spent_total"
	MetricNameMoneyEarned     = "money_earned_total"
	MetricNamePriceDriftTicks = "price_drift_ticks_total"
	MetricNameCatalogPrice    = "catalog_current_price"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextItemsBought     = "Total number of items bought from the vendor"
	HelpTextItemsSold       = "Total number of items sold back to the vendor"
	HelpTextMoneySpent      = "Total money spent buying items"
	HelpTextMoneyEarned     = "Total money earned selling items"
	HelpTextPriceDriftTicks = "Total number of price drift ticks"
	HelpTextCatalogPrice    = "Current drifted price of a catalog item"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
)

// HTTPLatencyBuckets are the histogram buckets for request duration
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
