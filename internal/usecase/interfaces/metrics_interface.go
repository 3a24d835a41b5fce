package interfaces

import "insurance_backoffice/internal/domain/entities"

// IMetricsRecorder receives domain events worth counting.
type IMetricsRecorder interface {
	EntityCreated(kind entities.Kind)
	ClaimTransitioned(from, to entities.ClaimStatus)
	OperationRejected(kind entities.Kind, reason string)
}

// NopMetrics discards every event.
type NopMetrics struct{}

func (NopMetrics) EntityCreated(entities.Kind)                                  {}
func (NopMetrics) ClaimTransitioned(entities.ClaimStatus, entities.ClaimStatus) {}
func (NopMetrics) OperationRejected(entities.Kind, string)                      {}

var _ IMetricsRecorder = NopMetrics{}
