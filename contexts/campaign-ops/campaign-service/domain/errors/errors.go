package errors

import "errors"

var (
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrCreativeNotFound       = errors.New("creative not found")
	ErrTaskNotFound           = errors.New("task not found")
	ErrHistoryRecordNotFound  = errors.New("weekly history record not found")
	ErrInvalidCampaignInput   = errors.New("invalid campaign input")
	ErrInvalidCreativeInput   = errors.New("invalid creative input")
	ErrInvalidTaskInput       = errors.New("invalid task input")
	ErrInvalidStateTransition = errors.New("invalid campaign state transition")
	ErrNegativeMetricValue    = errors.New("metric values must not be negative")
	ErrActiveCreativeLimit    = errors.New("active creative limit reached")
)
