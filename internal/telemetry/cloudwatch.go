package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const publishTimeout = 5 * time.Second

// CloudWatchAPI is the slice of the CloudWatch client the recorder needs.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// CloudWatchRecorder publishes data points to CloudWatch. Each Record call
// fires a detached goroutine with its own timeout, so the request that
// triggered it is never blocked or failed by the metrics backend.
type CloudWatchRecorder struct {
	client    CloudWatchAPI
	namespace string
	log       *slog.Logger
}

// NewCloudWatchRecorder creates a recorder publishing under the namespace.
func NewCloudWatchRecorder(client CloudWatchAPI, namespace string, log *slog.Logger) *CloudWatchRecorder {
	return &CloudWatchRecorder{
		client:    client,
		namespace: namespace,
		log:       log,
	}
}

// Record emits a data point, fire and forget.
func (r *CloudWatchRecorder) Record(name string, value float64, unit string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		r.publish(ctx, name, value, unit)
	}()
}

// Count emits a single count data point.
func (r *CloudWatchRecorder) Count(name string) {
	r.Record(name, 1, UnitCount)
}

func (r *CloudWatchRecorder) publish(ctx context.Context, name string, value float64, unit string) {
	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(r.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name),
				Value:      aws.Float64(value),
				Unit:       types.StandardUnit(unit),
				Timestamp:  aws.Time(time.Now().UTC()),
			},
		},
	}

	if _, err := r.client.PutMetricData(ctx, input); err != nil {
		// Swallowed: telemetry must never affect the response.
		r.log.Warn("failed to publish metric", "name", name, "error", err)
	}
}
