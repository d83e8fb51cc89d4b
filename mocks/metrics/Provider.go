package mocks

import "time"

// Provider is a no-op metrics provider for tests.
type Provider struct{}

func (p *Provider) IncrementHTTPRequests(method, path, status string)                      {}
func (p *Provider) RecordHTTPRequestDuration(method, path string, duration time.Duration) {}
func (p *Provider) IncrementPostOperations(operation string, success bool)                {}
func (p *Provider) IncrementMailSends(success bool)                                       {}
func (p *Provider) SetServiceHealth(healthy bool)                                         {}
