package telemetry

// Metric units understood by the sink.
const (
	UnitCount = "Count"
	UnitNone  = "None"
)

// Metric names emitted by the handlers.
const (
	MetricPageView          = "PageView"
	MetricProductListView   = "ProductListView"
	MetricProductDetailView = "ProductDetailView"
	MetricAddToCart         = "AddToCart"
	MetricOrderPlaced       = "OrderPlaced"
	MetricOrderItemCount    = "OrderItemCount"
)

// Recorder forwards numeric data points to the metrics backend. Recording is
// best effort: implementations log failures and never return them, so a
// telemetry fault can never fail a user-facing request.
type Recorder interface {
	// Record emits a (name, value, unit) data point.
	Record(name string, value float64, unit string)
	// Count emits a single count data point for name.
	Count(name string)
}

// Noop is a Recorder that discards every data point. Used in tests and when
// no metrics backend is available.
type Noop struct{}

func (Noop) Record(name string, value float64, unit string) {}

func (Noop) Count(name string) {}
