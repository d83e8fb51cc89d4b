package metrics

import "time"

//go:generate mockery --name Provider --dir . --output ../../mocks/metrics --outpkg mocks --with-expecter --filename Provider.go
type Provider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, duration time.Duration)
	IncrementPostOperations(operation string, success bool)
	IncrementMailSends(success bool)
	SetServiceHealth(healthy bool)
}
